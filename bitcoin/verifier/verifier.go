// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package verifier

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"escrow/bitcoin"
)

// Rule errors returned by Check, one per structural invariant of the
// canonical lock transaction layout.
var (
	// ErrOutputCount defines that the transaction carries an
	// unaccounted-for output or misses a mandatory one.
	ErrOutputCount = errors.New("unexpected output count")
	// ErrKeyCommitment defines a malformed owner key commitment output.
	ErrKeyCommitment = errors.New("invalid owner key commitment output")
	// ErrNameCommitment defines a malformed name commitment output.
	ErrNameCommitment = errors.New("invalid name commitment output")
	// ErrServiceOutput defines that the upfront fee output does not pay
	// the expected service address.
	ErrServiceOutput = errors.New("invalid service fee output")
	// ErrEscrowOutput defines that the locked output is not pay-to-script-hash.
	ErrEscrowOutput = errors.New("invalid escrow output")
	// ErrChangeOutput defines that the trailing output is not a standard
	// address output.
	ErrChangeOutput = errors.New("invalid change output")
)

// canonical lock transaction output positions.
const (
	keyCommitmentOutput  = 0
	nameCommitmentOutput = 1
	serviceOutput        = 2
	escrowOutput         = 3
	changeOutput         = 4

	minOutputs = 4
	maxOutputs = 5
)

// Verify reports whether the candidate lock transaction satisfies every
// structural invariant of the canonical layout and pays its upfront fee to
// the expected service address. Pure: the transaction is not mutated.
func Verify(tx *wire.MsgTx, serviceAddress btcutil.Address, networkParams *chaincfg.Params) bool {
	return Check(tx, serviceAddress, networkParams) == nil
}

// Check re-derives the structural invariants of a candidate lock
// transaction in canonical order and returns the first unmet rule, nil if
// every rule holds. Verify wraps it into the boolean contract.
func Check(tx *wire.MsgTx, serviceAddress btcutil.Address, networkParams *chaincfg.Params) error {
	if len(tx.TxOut) < minOutputs || len(tx.TxOut) > maxOutputs {
		return ErrOutputCount
	}

	ownerKey, err := commitmentData(tx.TxOut[keyCommitmentOutput])
	if err != nil {
		return errors.Join(ErrKeyCommitment, err)
	}
	if _, err = btcec.ParsePubKey(ownerKey); err != nil {
		return errors.Join(ErrKeyCommitment, err)
	}

	name, err := commitmentData(tx.TxOut[nameCommitmentOutput])
	if err != nil {
		return errors.Join(ErrNameCommitment, err)
	}
	if !bitcoin.ValidLockName(name) {
		return errors.Join(ErrNameCommitment, bitcoin.ErrInvalidName)
	}

	err = checkPaysTo(tx.TxOut[serviceOutput], serviceAddress, networkParams)
	if err != nil {
		return errors.Join(ErrServiceOutput, err)
	}

	if txscript.GetScriptClass(tx.TxOut[escrowOutput].PkScript) != txscript.ScriptHashTy {
		return ErrEscrowOutput
	}

	if len(tx.TxOut) > changeOutput {
		if !standardAddressOutput(tx.TxOut[changeOutput], networkParams) {
			return ErrChangeOutput
		}
	}

	return nil
}

// commitmentData extracts the published data of a well-formed commitment
// output: zero value, null-data script of exactly the unspendable marker
// and a single data push.
func commitmentData(out *wire.TxOut) ([]byte, error) {
	if out.Value != 0 {
		return nil, errors.New("commitment output carries value")
	}

	tokenizer := txscript.MakeScriptTokenizer(0, out.PkScript)
	if !tokenizer.Next() || tokenizer.Opcode() != txscript.OP_RETURN {
		return nil, bitcoin.ErrMalformedScript
	}
	if !tokenizer.Next() || len(tokenizer.Data()) == 0 {
		return nil, bitcoin.ErrMalformedScript
	}

	data := tokenizer.Data()
	if tokenizer.Next() || tokenizer.Err() != nil {
		return nil, bitcoin.ErrMalformedScript
	}

	return data, nil
}

// checkPaysTo requires a p2pkh or p2sh output resolving to exactly the
// expected address. Comparison is by encoded form, callers normalize.
func checkPaysTo(out *wire.TxOut, expected btcutil.Address, networkParams *chaincfg.Params) error {
	class, addresses, _, err := txscript.ExtractPkScriptAddrs(out.PkScript, networkParams)
	if err != nil {
		return err
	}
	if class != txscript.PubKeyHashTy && class != txscript.ScriptHashTy {
		return errors.New("not an address output")
	}
	if len(addresses) != 1 {
		return errors.New("unresolvable address output")
	}
	if addresses[0].EncodeAddress() != expected.EncodeAddress() {
		return errors.New("unexpected receiving address")
	}

	return nil
}

// standardAddressOutput reports whether the output pays a single
// resolvable standard address.
func standardAddressOutput(out *wire.TxOut, networkParams *chaincfg.Params) bool {
	switch txscript.GetScriptClass(out.PkScript) {
	case txscript.PubKeyHashTy, txscript.ScriptHashTy,
		txscript.WitnessV0PubKeyHashTy, txscript.WitnessV0ScriptHashTy,
		txscript.WitnessV1TaprootTy:
		return true
	default:
		return false
	}
}
