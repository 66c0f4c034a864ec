// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// Network defines a bitcoin network identifier.
type Network string

const (
	// NetworkMainnet defines the main bitcoin network.
	NetworkMainnet Network = "mainnet"
	// NetworkTestnet3 defines the testnet3 bitcoin network.
	NetworkTestnet3 Network = "testnet3"
	// NetworkRegtest defines the local regression test network.
	NetworkRegtest Network = "regtest"
)

// Endpoint describes where a chain-query service for a network lives
// and which chain parameters the network uses.
type Endpoint struct {
	Params *chaincfg.Params
	URL    string
}

// Endpoints maps network identifiers to chain-query endpoints.
// The table is plain data, callers assemble and pass it explicitly.
type Endpoints map[Network]Endpoint

// SelectEndpoint resolves a network identifier against the provided table.
func SelectEndpoint(endpoints Endpoints, network Network) (Endpoint, error) {
	endpoint, ok := endpoints[network]
	if !ok {
		return Endpoint{}, ErrUnsupportedNetwork
	}

	return endpoint, nil
}
