// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package chain

import (
	"bytes"
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"escrow/bitcoin/txlist"
)

// BuildTXList fetches the confirmed history of an address and assembles the
// immutable history index from it. An output counts as unspent when the
// collaborator still lists it for the queried address, spent otherwise.
func BuildTXList(ctx context.Context, client Client, address string) (*txlist.TXList, error) {
	history, err := client.ConfirmedHistory(ctx, address)
	if err != nil {
		return nil, err
	}

	unspent, err := client.ListUnspent(ctx, address)
	if err != nil {
		return nil, err
	}

	unspentSet := make(map[wire.OutPoint]struct{}, len(unspent))
	for _, coin := range unspent {
		coinHash, err := chainhash.NewHashFromStr(coin.TxHash)
		if err != nil {
			return nil, err
		}

		unspentSet[*wire.NewOutPoint(coinHash, coin.Index)] = struct{}{}
	}

	var (
		txs        = make([]*wire.MsgTx, 0, len(history))
		spentFlags = make([][]bool, 0, len(history))
		heights    = make([]int64, 0, len(history))
	)
	for _, entry := range history {
		entryHash, err := chainhash.NewHashFromStr(entry.TxHash)
		if err != nil {
			return nil, err
		}

		raw, err := client.RawTransaction(ctx, *entryHash)
		if err != nil {
			return nil, err
		}

		tx := wire.NewMsgTx(0)
		err = tx.Deserialize(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}

		txHash := tx.TxHash()
		flags := make([]bool, len(tx.TxOut))
		for idx := range tx.TxOut {
			_, stillUnspent := unspentSet[*wire.NewOutPoint(&txHash, uint32(idx))]
			flags[idx] = !stillUnspent
		}

		txs = append(txs, tx)
		spentFlags = append(spentFlags, flags)
		heights = append(heights, entry.Height)
	}

	return txlist.New(txs, spentFlags, heights)
}
