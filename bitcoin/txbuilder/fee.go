// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"math/big"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/mempool"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// txVersion defines transaction version for this builder. Version 2 is
	// required for relative-locktime enforcement.
	txVersion int32 = 2
	// signHashType define signature hash type for input signing.
	signHashType = txscript.SigHashAll
	// maxSignatureSize defines the maximum expected size of an encoded
	// ECDSA signature in vBytes. Added per input to a provisional size
	// because signatures are not produced until the outputs are final.
	maxSignatureSize = 72
)

// satoshiPerKVByteDivisor converts a sat/kvB rate into satoshi per vByte.
var satoshiPerKVByteDivisor = big.NewInt(1000)

// estimateFee computes fee = ceil(virtualSize * satoshiPerKVByte / 1000).
func estimateFee(virtualSize int64, satoshiPerKVByte *big.Int) *big.Int {
	fee := new(big.Int).Mul(big.NewInt(virtualSize), satoshiPerKVByte)
	fee.Add(fee, big.NewInt(999))

	return fee.Div(fee, satoshiPerKVByteDivisor)
}

// virtualSize returns the virtual size of the transaction in vBytes.
func virtualSize(tx *wire.MsgTx) int64 {
	return mempool.GetTxVirtualSize(btcutil.NewTx(tx))
}

// provisionalVirtualSize returns the virtual size of a not yet signed
// transaction: every input gets a placeholder spend script pushing the
// provided public key, plus maxSignatureSize vBytes for the signature to
// be produced later. The provided transaction is not modified.
func provisionalVirtualSize(tx *wire.MsgTx, publicKey []byte) (int64, error) {
	placeholder, err := txscript.NewScriptBuilder().AddData(publicKey).Script()
	if err != nil {
		return 0, err
	}

	sized := tx.Copy()
	for _, in := range sized.TxIn {
		in.SignatureScript = placeholder
	}

	return virtualSize(sized) + maxSignatureSize*int64(len(sized.TxIn)), nil
}
