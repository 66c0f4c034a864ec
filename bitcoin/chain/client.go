// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

// Package chain defines the chain-query collaborator consumed by the
// escrow core. Implementations talk to an external chain-query service,
// the core itself performs no network I/O and propagates collaborator
// failures without retrying.
package chain

import (
	"context"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"escrow/bitcoin"
)

// Client provides chain-query related logic.
type Client interface {
	// ListUnspent returns the currently unspent outputs of an address.
	ListUnspent(ctx context.Context, address string) ([]bitcoin.Coin, error)
	// RawTransaction returns the serialized transaction with the provided id.
	RawTransaction(ctx context.Context, hash chainhash.Hash) ([]byte, error)
	// ConfirmedHistory returns the confirmed transactions of an address
	// with their confirmation heights.
	ConfirmedHistory(ctx context.Context, address string) ([]bitcoin.HistoryEntry, error)
	// EstimateFeeRate returns a fee rate in satoshi per kilo virtual byte
	// targeting confirmation within the provided number of blocks.
	EstimateFeeRate(ctx context.Context, targetBlocks int64) (*big.Int, error)
	// ChainHeight returns the current best block height.
	ChainHeight(ctx context.Context) (int64, error)
	// Broadcast submits a serialized transaction to the network.
	Broadcast(ctx context.Context, rawTx []byte) error
}
