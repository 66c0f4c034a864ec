// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"math/big"
)

// Coin describes one confirmed transaction output that is available
// to fund a new transaction. A coin is consumed exactly once as an input.
type Coin struct {
	TxHash  string
	Index   uint32   // output index in transaction outputs.
	Amount  *big.Int // in Satoshi.
	Script  []byte   // ScriptPubKey.
	Address string   // output recipient address.
	Height  int64    // confirmation height.
}

// HistoryEntry describes one confirmed transaction of an address history.
type HistoryEntry struct {
	TxHash string
	Height int64
}

// TotalAmount returns the summed satoshi amount of provided coins.
func TotalAmount(coins []Coin) *big.Int {
	total := big.NewInt(0)
	for _, coin := range coins {
		total.Add(total, coin.Amount)
	}

	return total
}
