// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"escrow/bitcoin"
	"escrow/bitcoin/escrowscript"
	"escrow/bitcoin/txbuilder"
)

func TestBuildLockPSBT(t *testing.T) {
	builder := txbuilder.NewBuilder(testNetworkParams)

	_, ownerPub := testKey(0x01)
	_, servicePub := testKey(0x02)
	_, counterpartyPub := testKey(0x03)

	escrowAddress, err := escrowscript.NewBuilder(ownerPub, counterpartyPub, 144).Address(testNetworkParams)
	require.NoError(t, err)

	coins := []bitcoin.Coin{
		fundingCoin(t, ownerPub, coinHashA, 0, 150000),
		fundingCoin(t, ownerPub, coinHashB, 2, 50000),
	}
	params := txbuilder.LockParams{
		Coins:            coins,
		Name:             "my-lock_name.1",
		UpfrontAmount:    big.NewInt(10000),
		LockedAmount:     big.NewInt(100000),
		SatoshiPerKVByte: big.NewInt(5000),
		ServiceAddress:   p2pkhAddress(t, servicePub).EncodeAddress(),
		EscrowAddress:    escrowAddress.EncodeAddress(),
		OwnerPubKey:      ownerPub,
		ChangeAddress:    p2pkhAddress(t, ownerPub).EncodeAddress(),
	}

	serialized, fee, err := builder.BuildLockPSBT(params)
	require.NoError(t, err)
	require.True(t, fee.Sign() > 0)

	packet, err := psbt.NewFromRawBytes(bytes.NewReader(serialized), false)
	require.NoError(t, err)

	require.Len(t, packet.UnsignedTx.TxIn, len(coins))
	require.Len(t, packet.UnsignedTx.TxOut, 5)
	require.Len(t, packet.Inputs, len(coins))

	for idx, coin := range coins {
		in := packet.Inputs[idx]
		require.NotNil(t, in.WitnessUtxo)
		require.EqualValues(t, coin.Amount.Int64(), in.WitnessUtxo.Value)
		require.Equal(t, coin.Script, in.WitnessUtxo.PkScript)
		require.Equal(t, txscript.SigHashAll, in.SighashType)
	}

	// the packet mirrors the canonical layout of the signed builder path.
	require.Equal(t, escrowscript.MustCommitmentScript(ownerPub.SerializeCompressed()),
		packet.UnsignedTx.TxOut[0].PkScript)
	require.EqualValues(t, 10000, packet.UnsignedTx.TxOut[2].Value)
	require.EqualValues(t, 100000, packet.UnsignedTx.TxOut[3].Value)
}
