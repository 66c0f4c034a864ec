// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package signer

import (
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// SignParams defines parameters for the Sign method.
type SignParams struct {
	SerializedPSBT []byte
	Inputs         []int // inputs indexes.
	PrivateKey     *btcec.PrivateKey
}

// Signer provides transaction signing related logic for lock transaction
// packets exported by the builder.
type Signer struct {
	networkParams *chaincfg.Params
}

// NewSigner is a constructor for Signer.
func NewSigner(networkParams *chaincfg.Params) *Signer {
	return &Signer{
		networkParams: networkParams,
	}
}

// Sign signs inputs by provided indexes with the provided key, returns
// updated serialized PSBT. Signatures are attached as partial signatures,
// finalization is left to the collecting side.
func (signer *Signer) Sign(params SignParams) ([]byte, error) {
	packet, err := psbt.NewFromRawBytes(bytes.NewBuffer(params.SerializedPSBT), false)
	if err != nil {
		return nil, err
	}

	for _, input := range params.Inputs {
		if len(packet.Inputs) <= input {
			return nil, errors.New("invalid input index")
		}

		err = signer.signInput(packet, input, params.PrivateKey)
		if err != nil {
			return nil, err
		}
	}

	w := bytes.NewBuffer(nil)
	err = packet.Serialize(w)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// signInput signs one input over the spent output recorded in the packet.
func (signer *Signer) signInput(packet *psbt.Packet, input int, privateKey *btcec.PrivateKey) error {
	in := &packet.Inputs[input]
	if in.WitnessUtxo == nil {
		return errors.New("input carries no spent output")
	}

	sigHashType := in.SighashType
	if sigHashType == 0 {
		sigHashType = txscript.SigHashAll
	}

	signature, err := txscript.RawTxInSignature(
		packet.UnsignedTx, input, in.WitnessUtxo.PkScript, sigHashType, privateKey)
	if err != nil {
		return err
	}

	in.PartialSigs = append(in.PartialSigs, &psbt.PartialSig{
		PubKey:    privateKey.PubKey().SerializeCompressed(),
		Signature: signature,
	})

	return nil
}
