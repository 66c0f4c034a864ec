// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin_test

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"escrow/bitcoin"
)

func TestSelectEndpoint(t *testing.T) {
	endpoints := bitcoin.Endpoints{
		bitcoin.NetworkMainnet:  {Params: &chaincfg.MainNetParams, URL: "https://chain.example.com"},
		bitcoin.NetworkTestnet3: {Params: &chaincfg.TestNet3Params, URL: "https://chain-test.example.com"},
	}

	t.Run("known network", func(t *testing.T) {
		endpoint, err := bitcoin.SelectEndpoint(endpoints, bitcoin.NetworkTestnet3)
		require.NoError(t, err)
		require.Equal(t, &chaincfg.TestNet3Params, endpoint.Params)
		require.Equal(t, "https://chain-test.example.com", endpoint.URL)
	})

	t.Run("unsupported network", func(t *testing.T) {
		_, err := bitcoin.SelectEndpoint(endpoints, bitcoin.Network("signet"))
		require.ErrorIs(t, err, bitcoin.ErrUnsupportedNetwork)

		_, err = bitcoin.SelectEndpoint(endpoints, bitcoin.NetworkRegtest)
		require.ErrorIs(t, err, bitcoin.ErrUnsupportedNetwork)
	})
}
