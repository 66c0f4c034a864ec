// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"escrow/bitcoin/escrowscript"
	"escrow/internal/numbers"
)

// LockedOutputIndex defines the position of the escrow p2sh output in the
// canonical lock transaction layout.
const LockedOutputIndex = 3

// UnlockParams describes data needed to build an unlock transaction.
type UnlockParams struct {
	LockTx           *wire.MsgTx // finalized lock transaction.
	RedeemScript     []byte      // escrow redeem script behind the locked output.
	SatoshiPerKVByte *big.Int    // fee rate in satoshi per kilo virtual byte.
	OwnerAddress     string      // destination for the redeemed value.
}

// UnsignedUnlockTx holds the unlock transaction before the first signing
// pass. It spends the locked output of the lock transaction as its sole
// input and pays the full value to the owner as its sole output.
type UnsignedUnlockTx struct {
	builder *Builder
	tx      *wire.MsgTx
	params  UnlockParams

	lockedValue *big.Int
}

// ProvisionallySignedUnlockTx holds the unlock transaction after the first
// signing pass. The signature is real but covers the placeholder output
// value, so it is only good for sizing: the digest commits to the output
// values and a second pass over the fee-adjusted value is mandatory.
type ProvisionallySignedUnlockTx struct {
	unsigned *UnsignedUnlockTx
}

// Proof returns a copy of the current spend proof. It covers the
// placeholder output value and is superseded by Finalize.
func (p *ProvisionallySignedUnlockTx) Proof() []byte {
	return append([]byte(nil), p.unsigned.tx.TxIn[0].SignatureScript...)
}

// BuildUnlockTx constructs, signs, fee-balances and re-signs an unlock
// transaction redeeming the locked output through the immediate owner
// branch. Returns the finalized transaction and the payed fee in satoshi.
func (b *Builder) BuildUnlockTx(params UnlockParams, privateKey *btcec.PrivateKey) (*wire.MsgTx, *big.Int, error) {
	unsigned, err := b.NewUnsignedUnlockTx(params)
	if err != nil {
		return nil, nil, err
	}

	provisional, err := unsigned.Sign(privateKey)
	if err != nil {
		return nil, nil, err
	}

	return provisional.Finalize(privateKey)
}

// NewUnsignedUnlockTx assembles the unsigned unlock transaction with the
// full locked value as the placeholder output value.
func (b *Builder) NewUnsignedUnlockTx(params UnlockParams) (*UnsignedUnlockTx, error) {
	if params.LockTx == nil {
		return nil, errors.New("lock transaction is required")
	}
	if len(params.RedeemScript) == 0 {
		return nil, errors.New("redeem script is required")
	}
	if len(params.LockTx.TxOut) <= LockedOutputIndex {
		return nil, errors.New("lock transaction has no locked output")
	}

	locked := params.LockTx.TxOut[LockedOutputIndex]
	lockHash := params.LockTx.TxHash()

	tx := wire.NewMsgTx(txVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&lockHash, LockedOutputIndex), nil, nil))

	ownerScript, err := b.payToAddrScript(params.OwnerAddress)
	if err != nil {
		return nil, err
	}

	tx.AddTxOut(wire.NewTxOut(locked.Value, ownerScript))

	return &UnsignedUnlockTx{
		builder:     b,
		tx:          tx,
		params:      params,
		lockedValue: big.NewInt(locked.Value),
	}, nil
}

// Sign performs the first signing pass over the placeholder output value,
// producing the spend proof for the immediate owner branch.
func (u *UnsignedUnlockTx) Sign(privateKey *btcec.PrivateKey) (*ProvisionallySignedUnlockTx, error) {
	err := u.sign(privateKey)
	if err != nil {
		return nil, err
	}

	return &ProvisionallySignedUnlockTx{unsigned: u}, nil
}

// Finalize subtracts the fee estimated from the provisionally signed size
// and re-signs over the final output value. The returned transaction is
// complete and must not be modified.
func (p *ProvisionallySignedUnlockTx) Finalize(privateKey *btcec.PrivateKey) (*wire.MsgTx, *big.Int, error) {
	u := p.unsigned

	fee := estimateFee(virtualSize(u.tx), u.params.SatoshiPerKVByte)
	value := new(big.Int).Sub(u.lockedValue, fee)
	if !numbers.IsPositive(value) {
		return nil, nil, NewInsufficientFundsError(InsufficientErrorStageFee, fee, u.lockedValue)
	}

	u.tx.TxOut[0].Value = value.Int64()

	err := u.sign(privateKey)
	if err != nil {
		return nil, nil, err
	}

	return u.tx, fee, nil
}

// sign signs the sole input over the current output set and installs the
// spend proof selecting the immediate owner branch.
func (u *UnsignedUnlockTx) sign(privateKey *btcec.PrivateKey) error {
	if privateKey == nil {
		return errors.New("signing key is required")
	}

	signature, err := txscript.RawTxInSignature(u.tx, 0, u.params.RedeemScript, signHashType, privateKey)
	if err != nil {
		return err
	}

	proof, err := escrowscript.SpendProof(signature, escrowscript.BranchImmediate, u.params.RedeemScript)
	if err != nil {
		return err
	}

	u.tx.TxIn[0].SignatureScript = proof

	return nil
}
