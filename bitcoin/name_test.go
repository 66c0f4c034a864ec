// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"escrow/bitcoin"
)

func TestValidLockName(t *testing.T) {
	tests := []struct {
		name  []byte
		valid bool
	}{
		{[]byte(""), true},
		{[]byte("my-lock_name.1"), true},
		{[]byte("Tilde~dot.under_score"), true},
		{[]byte("my lock name"), false},
		{[]byte("name/with/slashes"), false},
		{[]byte{0x00}, false},
		{bytes.Repeat([]byte{'a'}, 64), true},
		{bytes.Repeat([]byte{'a'}, 65), false},
	}
	for _, test := range tests {
		require.Equal(t, test.valid, bitcoin.ValidLockName(test.name), "name %q", test.name)
	}
}
