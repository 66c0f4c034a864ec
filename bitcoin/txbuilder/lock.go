// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"escrow/bitcoin"
	"escrow/bitcoin/escrowscript"
	"escrow/internal/numbers"
)

// LockParams describes data needed to build a lock transaction.
type LockParams struct {
	Coins            []bitcoin.Coin   // funding coins, spendable by the signing key.
	Name             string           // human-readable lock label, committed in output 1.
	UpfrontAmount    *big.Int         // service fee paid immediately, in satoshi.
	LockedAmount     *big.Int         // escrowed amount, in satoshi.
	SatoshiPerKVByte *big.Int         // fee rate in satoshi per kilo virtual byte.
	ServiceAddress   string           // service receiving address for the upfront amount.
	EscrowAddress    string           // p2sh address of the escrow redeem script.
	OwnerPubKey      *btcec.PublicKey // committed in output 0.
	ChangeAddress    string           // owner address for remaining value.
}

// Builder provides lock and unlock transaction building related logic.
type Builder struct {
	networkParams *chaincfg.Params
}

// NewBuilder is a constructor for Builder.
func NewBuilder(networkParams *chaincfg.Params) *Builder {
	return &Builder{
		networkParams: networkParams,
	}
}

// UnsignedLockTx holds the mutable state of a lock transaction before fee
// balancing and signing. It is produced by NewUnsignedLockTx, balanced and
// turned immutable by Finalize.
type UnsignedLockTx struct {
	builder *Builder
	tx      *wire.MsgTx
	coins   []bitcoin.Coin
	params  LockParams

	change       *big.Int // remaining value before fee subtraction.
	changeScript []byte
	balanced     bool
}

// BuildLockTx constructs, fee-balances and signs a lock transaction.
// Returns the finalized transaction and the payed fee in satoshi.
func (b *Builder) BuildLockTx(params LockParams, privateKey *btcec.PrivateKey) (*wire.MsgTx, *big.Int, error) {
	unsigned, err := b.NewUnsignedLockTx(params)
	if err != nil {
		return nil, nil, err
	}

	return unsigned.Finalize(privateKey)
}

// NewUnsignedLockTx assembles the unsigned lock transaction.
//
//	outputs:
//	┌─────────┬──────────────┬────────────────────────────────────────┐
//	│  index  │     type     │             description                │
//	├=========┼==============┼========================================┤
//	│       0 │ commitment   │ OP_RETURN with the owner public key,   │
//	│         │              │ zero value.                            │
//	├─────────┼──────────────┼────────────────────────────────────────┤
//	│       1 │ commitment   │ OP_RETURN with the lock name, zero     │
//	│         │              │ value.                                 │
//	├─────────┼──────────────┼────────────────────────────────────────┤
//	│       2 │ base output  │ upfront fee to the service address.    │
//	├─────────┼──────────────┼────────────────────────────────────────┤
//	│       3 │ base output  │ locked amount to the escrow p2sh       │
//	│         │              │ address.                               │
//	├─────────┼──────────────┼────────────────────────────────────────┤
//	│       4 │ base output  │ change to the owner, appended on       │
//	│         │              │ Finalize, omitted if nothing left.     │
//	└─────────┴──────────────┴────────────────────────────────────────┘
func (b *Builder) NewUnsignedLockTx(params LockParams) (*UnsignedLockTx, error) {
	if params.OwnerPubKey == nil {
		return nil, errors.New("owner public key is required")
	}

	nameBytes := []byte(params.Name)
	if !bitcoin.ValidLockName(nameBytes) {
		return nil, bitcoin.ErrInvalidName
	}

	target := new(big.Int).Add(params.UpfrontAmount, params.LockedAmount)
	total := bitcoin.TotalAmount(params.Coins)
	if numbers.IsLess(total, target) {
		return nil, NewInsufficientFundsError(InsufficientErrorStageFunding, target, total)
	}

	tx := wire.NewMsgTx(txVersion)
	for _, coin := range params.Coins {
		coinHash, err := chainhash.NewHashFromStr(coin.TxHash)
		if err != nil {
			return nil, err
		}

		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(coinHash, coin.Index), nil, nil))
	}

	// owner key commitment output (#0).
	keyCommitment, err := escrowscript.CommitmentScript(params.OwnerPubKey.SerializeCompressed())
	if err != nil {
		return nil, err
	}
	tx.AddTxOut(wire.NewTxOut(0, keyCommitment))

	// name commitment output (#1).
	nameCommitment, err := escrowscript.CommitmentScript(nameBytes)
	if err != nil {
		return nil, err
	}
	tx.AddTxOut(wire.NewTxOut(0, nameCommitment))

	// upfront fee output (#2).
	err = b.addOutput(tx, params.UpfrontAmount, params.ServiceAddress)
	if err != nil {
		return nil, err
	}

	// locked escrow output (#3).
	err = b.addOutput(tx, params.LockedAmount, params.EscrowAddress)
	if err != nil {
		return nil, err
	}

	changeScript, err := b.payToAddrScript(params.ChangeAddress)
	if err != nil {
		return nil, err
	}

	return &UnsignedLockTx{
		builder:      b,
		tx:           tx,
		coins:        params.Coins,
		params:       params,
		change:       new(big.Int).Sub(total, target),
		changeScript: changeScript,
	}, nil
}

// EstimateVirtualSize returns the provisional virtual size of the lock
// transaction: placeholder spend scripts on every input, signature overhead
// added per input, change output counted even though it is appended last.
func (u *UnsignedLockTx) EstimateVirtualSize() (int64, error) {
	sized := u.tx.Copy()
	if numbers.IsPositive(u.change) {
		sized.AddTxOut(wire.NewTxOut(u.change.Int64(), u.changeScript))
	}

	return provisionalVirtualSize(sized, u.params.OwnerPubKey.SerializeCompressed())
}

// balance subtracts the estimated fee from the change value and appends the
// change output. Returns the subtracted fee.
func (u *UnsignedLockTx) balance() (*big.Int, error) {
	if u.balanced {
		return nil, errors.New("lock transaction is already balanced")
	}

	size, err := u.EstimateVirtualSize()
	if err != nil {
		return nil, err
	}

	fee := estimateFee(size, u.params.SatoshiPerKVByte)
	if numbers.IsLess(u.change, fee) {
		return nil, NewInsufficientFundsError(InsufficientErrorStageFee, fee, u.change)
	}

	u.change.Sub(u.change, fee)
	if numbers.IsPositive(u.change) {
		u.tx.AddTxOut(wire.NewTxOut(u.change.Int64(), u.changeScript))
	}
	u.balanced = true

	return fee, nil
}

// Finalize performs fee balancing and signs every input over the final
// output set. The returned transaction is complete and must not be
// modified: any change would invalidate the signatures.
func (u *UnsignedLockTx) Finalize(privateKey *btcec.PrivateKey) (*wire.MsgTx, *big.Int, error) {
	if privateKey == nil {
		return nil, nil, errors.New("signing key is required")
	}

	fee, err := u.balance()
	if err != nil {
		return nil, nil, err
	}

	for idx, coin := range u.coins {
		sigScript, err := txscript.SignatureScript(u.tx, idx, coin.Script, signHashType, privateKey, true)
		if err != nil {
			return nil, nil, err
		}

		u.tx.TxIn[idx].SignatureScript = sigScript
	}

	return u.tx, fee, nil
}

// addOutput appends an output paying the amount to the address.
func (b *Builder) addOutput(tx *wire.MsgTx, amount *big.Int, address string) error {
	script, err := b.payToAddrScript(address)
	if err != nil {
		return err
	}

	tx.AddTxOut(wire.NewTxOut(amount.Int64(), script))

	return nil
}

// payToAddrScript resolves an address string into its ScriptPubKey.
func (b *Builder) payToAddrScript(address string) ([]byte, error) {
	decoded, err := btcutil.DecodeAddress(address, b.networkParams)
	if err != nil {
		return nil, err
	}

	return txscript.PayToAddrScript(decoded)
}
