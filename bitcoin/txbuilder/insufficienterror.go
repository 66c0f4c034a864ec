// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"errors"
	"fmt"
	"math/big"

	"escrow/bitcoin"
)

type balanceErrorStage string

const (
	// InsufficientErrorStageFunding defines that funding coins do not cover
	// the upfront and locked amounts.
	InsufficientErrorStageFunding balanceErrorStage = "funding"
	// InsufficientErrorStageFee defines that fee subtraction drove an
	// output value negative.
	InsufficientErrorStageFee balanceErrorStage = "fee"
)

// InsufficientFundsError is the error type to describe insufficient balance
// errors with details. errors.Is matches it against
// [bitcoin.ErrInsufficientFunds].
type InsufficientFundsError struct {
	Stage balanceErrorStage
	Need  *big.Int
	Have  *big.Int
}

// NewInsufficientFundsError is a constructor for InsufficientFundsError.
func NewInsufficientFundsError(stage balanceErrorStage, need, have *big.Int) *InsufficientFundsError {
	return &InsufficientFundsError{stage, need, have}
}

// Error returns error description.
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s (%s): need - %s, have - %s",
		bitcoin.ErrInsufficientFunds.Error(), e.Stage, e.Need, e.Have)
}

// Is implements comparator method for [errors] package.
func (e *InsufficientFundsError) Is(target error) bool {
	if errors.Is(target, bitcoin.ErrInsufficientFunds) {
		return true
	}

	return e.Error() == target.Error()
}
