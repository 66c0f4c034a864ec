// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
)

// BuildLockPSBT assembles and fee-balances the lock transaction, then
// exports it as a serialized PSBT for external wallet signing. Every input
// carries its spent output and sighash type, so the wallet needs nothing
// beyond the packet and its key. Returns serialized PSBT and the fee.
func (b *Builder) BuildLockPSBT(params LockParams) ([]byte, *big.Int, error) {
	unsigned, err := b.NewUnsignedLockTx(params)
	if err != nil {
		return nil, nil, err
	}

	fee, err := unsigned.balance()
	if err != nil {
		return nil, nil, err
	}

	packet, err := psbt.NewFromUnsignedTx(unsigned.tx)
	if err != nil {
		return nil, nil, err
	}

	for idx, coin := range unsigned.coins {
		packet.Inputs[idx].WitnessUtxo = wire.NewTxOut(coin.Amount.Int64(), coin.Script)
		packet.Inputs[idx].SighashType = signHashType
	}

	w := bytes.NewBuffer(nil)
	err = packet.Serialize(w)
	if err != nil {
		return nil, nil, err
	}

	return w.Bytes(), fee, nil
}
