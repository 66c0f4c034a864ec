// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

// Package txlist implements an immutable transaction history index mapping
// transaction id to transaction, per-output spent flag, and confirmation
// height. The index is built once from a batch of fetched transactions and
// only queried thereafter; staleness is handled by reconstruction.
package txlist

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"escrow/bitcoin"
	"escrow/internal/sequencereader"
)

// TXList is the history index. Read-only after construction, safe for
// concurrent readers.
type TXList struct {
	txs     []*wire.MsgTx
	spent   [][]bool
	heights []int64
	order   []chainhash.Hash
	index   map[chainhash.Hash]int
}

// New constructs the index from three parallel sequences: transactions,
// per-transaction per-output spent flags, and confirmation heights. The
// sequences must have equal lengths and every spent-flag sequence must
// match its transaction's output count.
func New(txs []*wire.MsgTx, spentFlags [][]bool, heights []int64) (*TXList, error) {
	if len(spentFlags) != len(txs) || len(heights) != len(txs) {
		return nil, fmt.Errorf("%w: %d transactions with %d spent-flag sequences and %d heights",
			bitcoin.ErrInvalidIndex, len(txs), len(spentFlags), len(heights))
	}

	list := &TXList{
		txs:     make([]*wire.MsgTx, 0, len(txs)),
		spent:   make([][]bool, 0, len(txs)),
		heights: make([]int64, 0, len(txs)),
		order:   make([]chainhash.Hash, 0, len(txs)),
		index:   make(map[chainhash.Hash]int, len(txs)),
	}

	flagsReader := sequencereader.New(spentFlags)
	heightsReader := sequencereader.New(heights)
	for _, tx := range txs {
		flags, _ := flagsReader.Next()
		height, _ := heightsReader.Next()

		hash := tx.TxHash()
		if len(flags) != len(tx.TxOut) {
			return nil, &InvalidIndexError{TxHash: hash, Got: len(flags), Expected: len(tx.TxOut)}
		}
		if _, ok := list.index[hash]; ok {
			return nil, fmt.Errorf("%w: duplicate txid %s", bitcoin.ErrInvalidIndex, hash)
		}

		list.index[hash] = len(list.txs)
		list.txs = append(list.txs, tx)
		list.spent = append(list.spent, append([]bool(nil), flags...))
		list.heights = append(list.heights, height)
		list.order = append(list.order, hash)
	}

	return list, nil
}

// TX returns the transaction with the provided id.
func (l *TXList) TX(hash chainhash.Hash) (*wire.MsgTx, error) {
	idx, ok := l.index[hash]
	if !ok {
		return nil, &UnknownTxidError{TxHash: hash}
	}

	return l.txs[idx], nil
}

// OutputSpent returns the spent flag of one output of the transaction with
// the provided id.
func (l *TXList) OutputSpent(hash chainhash.Hash, output uint32) (bool, error) {
	idx, ok := l.index[hash]
	if !ok {
		return false, &UnknownTxidError{TxHash: hash}
	}
	if uint64(output) >= uint64(len(l.spent[idx])) {
		return false, &UnknownOutputError{TxHash: hash, Index: output}
	}

	return l.spent[idx][output], nil
}

// Height returns the confirmation height of the transaction with the
// provided id.
func (l *TXList) Height(hash chainhash.Hash) (int64, error) {
	idx, ok := l.index[hash]
	if !ok {
		return 0, &UnknownTxidError{TxHash: hash}
	}

	return l.heights[idx], nil
}

// Txids returns the known transaction ids in construction order.
func (l *TXList) Txids() []chainhash.Hash {
	return append([]chainhash.Hash(nil), l.order...)
}

// Len returns how many transactions the index holds.
func (l *TXList) Len() int {
	return len(l.txs)
}
