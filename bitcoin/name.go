// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

// MaxLockNameLen defines the maximum encoded length of a lock name in bytes.
const MaxLockNameLen = 64

// ValidLockName reports whether encoded name bytes fit the commitment
// output limits: at most MaxLockNameLen bytes, URL-safe unreserved
// characters only (A-Z, a-z, 0-9, '-', '_', '.', '~').
func ValidLockName(name []byte) bool {
	if len(name) > MaxLockNameLen {
		return false
	}

	for _, c := range name {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.' || c == '~':
		default:
			return false
		}
	}

	return true
}
