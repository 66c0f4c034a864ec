// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"escrow/bitcoin"
)

var testNetworkParams = &chaincfg.TestNet3Params

// testKey derives a deterministic key pair from a single seed byte.
func testKey(seed byte) (*btcec.PrivateKey, *btcec.PublicKey) {
	privateKey, publicKey := btcec.PrivKeyFromBytes(bytes.Repeat([]byte{seed}, 32))

	return privateKey, publicKey
}

// p2pkhAddress returns the pay-to-pubkey-hash address of a public key.
func p2pkhAddress(t *testing.T, publicKey *btcec.PublicKey) btcutil.Address {
	address, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(publicKey.SerializeCompressed()), testNetworkParams)
	require.NoError(t, err)

	return address
}

// fundingCoin builds a confirmed p2pkh coin owned by the public key.
func fundingCoin(t *testing.T, publicKey *btcec.PublicKey, txHash string, index uint32, amount int64) bitcoin.Coin {
	address := p2pkhAddress(t, publicKey)
	script, err := txscript.PayToAddrScript(address)
	require.NoError(t, err)

	return bitcoin.Coin{
		TxHash:  txHash,
		Index:   index,
		Amount:  big.NewInt(amount),
		Script:  script,
		Address: address.EncodeAddress(),
		Height:  100,
	}
}

// executeInput runs the script engine over one input of a signed transaction.
func executeInput(t *testing.T, tx *wire.MsgTx, input int, prevScript []byte, prevValue int64) {
	prevFetcher := txscript.NewCannedPrevOutputFetcher(prevScript, prevValue)
	vm, err := txscript.NewEngine(prevScript, tx, input, txscript.StandardVerifyFlags,
		nil, nil, prevValue, prevFetcher)
	require.NoError(t, err)
	require.NoError(t, vm.Execute())
}
