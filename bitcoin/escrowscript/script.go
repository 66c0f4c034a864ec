// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package escrowscript

import (
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"escrow/internal/reverse"
)

// minLockTimeLen defines the floor length in bytes of the encoded
// relative-locktime push.
const minLockTimeLen = 2

// Branch defines which spending condition of the escrow script a spend
// proof selects.
type Branch byte

const (
	// BranchDelayed defines the relative-locktime branch spendable by the
	// counterparty after the lock window.
	BranchDelayed Branch = 0
	// BranchImmediate defines the branch spendable by the owner at any time.
	BranchImmediate Branch = 1
)

// Builder compiles the escrow redeem script. Compilation is deterministic:
// identical inputs always yield byte-identical scripts.
//
//	OP_IF
//	    <owner pubkey> OP_CHECKSIG
//	OP_ELSE
//	    <locktime> OP_CHECKSEQUENCEVERIFY OP_DROP
//	    <counterparty pubkey> OP_CHECKSIG
//	OP_ENDIF
type Builder struct {
	owner        *btcec.PublicKey
	counterparty *btcec.PublicKey
	lockTime     int64 // relative locktime in blocks.
}

// NewBuilder is a constructor for Builder. Owner and counterparty roles are
// independent, callers may pass the same key for both.
func NewBuilder(owner, counterparty *btcec.PublicKey, lockTime int64) *Builder {
	return &Builder{
		owner:        owner,
		counterparty: counterparty,
		lockTime:     lockTime,
	}
}

// Script compiles the redeem script.
func (b *Builder) Script() ([]byte, error) {
	if b.owner == nil || b.counterparty == nil {
		return nil, errors.New("both owner and counterparty keys are required")
	}
	if b.lockTime <= 0 {
		return nil, errors.New("relative locktime must be positive")
	}

	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_IF).
		AddData(b.owner.SerializeCompressed()).
		AddOp(txscript.OP_CHECKSIG).
		AddOp(txscript.OP_ELSE).
		AddData(EncodeLockTime(b.lockTime)).
		AddOp(txscript.OP_CHECKSEQUENCEVERIFY).
		AddOp(txscript.OP_DROP).
		AddData(b.counterparty.SerializeCompressed()).
		AddOp(txscript.OP_CHECKSIG).
		AddOp(txscript.OP_ENDIF).
		Script()
}

// Address returns the pay-to-script-hash address committing to the
// compiled redeem script.
func (b *Builder) Address(networkParams *chaincfg.Params) (*btcutil.AddressScriptHash, error) {
	script, err := b.Script()
	if err != nil {
		return nil, err
	}

	return btcutil.NewAddressScriptHash(script, networkParams)
}

// EncodeLockTime encodes a relative-locktime value as the minimal-length
// little-endian signed integer, trailing zero bytes stripped down to a
// minimum of 2 bytes.
func EncodeLockTime(lockTime int64) []byte {
	encoded := reverse.Bytes(big.NewInt(lockTime).Bytes())
	if len(encoded) > 0 && encoded[len(encoded)-1]&0x80 != 0 {
		encoded = append(encoded, 0x00)
	}
	for len(encoded) < minLockTimeLen {
		encoded = append(encoded, 0x00)
	}

	return encoded
}

// SpendProof assembles the signature script satisfying the escrow redeem
// script: the signature, the branch selector, and the serialized redeem
// script, in that push order.
func SpendProof(signature []byte, branch Branch, redeemScript []byte) ([]byte, error) {
	builder := txscript.NewScriptBuilder().AddData(signature)
	switch branch {
	case BranchImmediate:
		builder.AddInt64(1)
	case BranchDelayed:
		builder.AddInt64(0)
	default:
		return nil, errors.New("unknown escrow script branch")
	}

	return builder.AddData(redeemScript).Script()
}

// CommitmentScript builds a null-data (OP_RETURN) output script publishing
// the provided data: exactly the unspendable marker and a single push.
func CommitmentScript(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("no commitment data provided")
	}

	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_RETURN).
		AddData(data).
		Script()
}

// MustCommitmentScript uses CommitmentScript, panics in case of error.
func MustCommitmentScript(data []byte) []byte {
	script, err := CommitmentScript(data)
	if err != nil {
		panic(err)
	}

	return script
}
