// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"errors"
)

var (
	// ErrInsufficientFunds defines that funding coins do not cover the
	// target amount, or that fee subtraction drove an output negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrMalformedScript defines unexpected opcode or push shape met
	// during verification or signing.
	ErrMalformedScript = errors.New("malformed script")

	// ErrUnsupportedNetwork defines unrecognized network identifier.
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrInvalidName defines that a lock name violates the length or
	// charset limits of the commitment output.
	ErrInvalidName = errors.New("invalid lock name")

	// ErrUnknownTxid defines a history index lookup miss by transaction id.
	ErrUnknownTxid = errors.New("unknown txid")

	// ErrUnknownOutput defines a history index lookup with an output
	// index out of range for the transaction.
	ErrUnknownOutput = errors.New("unknown output")

	// ErrInvalidIndex defines a history index shape mismatch at construction.
	ErrInvalidIndex = errors.New("invalid index")
)
