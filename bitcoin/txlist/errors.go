// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package txlist

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"escrow/bitcoin"
)

// InvalidIndexError is the error type describing a shape mismatch at index
// construction. errors.Is matches it against [bitcoin.ErrInvalidIndex].
type InvalidIndexError struct {
	TxHash   chainhash.Hash
	Got      int
	Expected int
}

// Error returns error description.
func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("%s: spent flags for %s: got %d, expected %d",
		bitcoin.ErrInvalidIndex.Error(), e.TxHash, e.Got, e.Expected)
}

// Is implements comparator method for [errors] package.
func (e *InvalidIndexError) Is(target error) bool {
	return errors.Is(target, bitcoin.ErrInvalidIndex) || e.Error() == target.Error()
}

// UnknownTxidError is the error type describing a lookup miss by
// transaction id. errors.Is matches it against [bitcoin.ErrUnknownTxid].
type UnknownTxidError struct {
	TxHash chainhash.Hash
}

// Error returns error description.
func (e *UnknownTxidError) Error() string {
	return fmt.Sprintf("%s: %s", bitcoin.ErrUnknownTxid.Error(), e.TxHash)
}

// Is implements comparator method for [errors] package.
func (e *UnknownTxidError) Is(target error) bool {
	return errors.Is(target, bitcoin.ErrUnknownTxid) || e.Error() == target.Error()
}

// UnknownOutputError is the error type describing a lookup with an output
// index out of range. errors.Is matches it against
// [bitcoin.ErrUnknownOutput].
type UnknownOutputError struct {
	TxHash chainhash.Hash
	Index  uint32
}

// Error returns error description.
func (e *UnknownOutputError) Error() string {
	return fmt.Sprintf("%s: output %d of %s", bitcoin.ErrUnknownOutput.Error(), e.Index, e.TxHash)
}

// Is implements comparator method for [errors] package.
func (e *UnknownOutputError) Is(target error) bool {
	return errors.Is(target, bitcoin.ErrUnknownOutput) || e.Error() == target.Error()
}
