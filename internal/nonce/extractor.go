// Package nonce extracts ECDSA R-values from transaction scripts and finds reused ones.
package nonce

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

const (
	// MinScriptLength is the length a script must exceed to carry an R-value at the fixed offset.
	MinScriptLength = 74

	rValueStart = 10
	rValueEnd   = 74
)

// Extractor derives the R-value of one script. ok is false when the script is not eligible.
type Extractor interface {
	RValue(script string) (r string, ok bool)
}

// Scripts returns the scripts of tx's inputs followed by those of its outputs.
// Inputs and outputs without a script are skipped.
func Scripts(tx model.Transaction) []string {
	scripts := make([]string, 0, len(tx.Inputs)+len(tx.Outputs))
	for _, in := range tx.Inputs {
		if in.Script != nil {
			scripts = append(scripts, *in.Script)
		}
	}
	for _, out := range tx.Outputs {
		if out.Script != nil {
			scripts = append(scripts, *out.Script)
		}
	}
	return scripts
}

// OffsetExtractor takes the hex characters [10:74) of scripts longer than MinScriptLength.
// It does not check that the slice is part of a signature.
type OffsetExtractor struct{}

// RValue implements Extractor.
func (OffsetExtractor) RValue(script string) (string, bool) {
	if len(script) <= MinScriptLength {
		return "", false
	}
	return script[rValueStart:rValueEnd], true
}

// DERExtractor returns R of the first pushed strict DER signature in a script,
// rendered as 64 lowercase hex characters.
type DERExtractor struct{}

// RValue implements Extractor.
func (DERExtractor) RValue(script string) (string, bool) {
	raw, err := hex.DecodeString(script)
	if err != nil {
		return "", false
	}

	tokenizer := txscript.MakeScriptTokenizer(0, raw)
	for tokenizer.Next() {
		if r, ok := derRValue(tokenizer.Data()); ok {
			return r, true
		}
	}
	return "", false
}

// derRValue expects a DER signature followed by a sighash byte.
func derRValue(data []byte) (string, bool) {
	if len(data) < 9 || data[0] != 0x30 {
		return "", false
	}
	sig := data[:len(data)-1]
	if _, err := ecdsa.ParseDERSignature(sig); err != nil {
		return "", false
	}

	rLen := int(sig[3])
	r := new(big.Int).SetBytes(sig[4 : 4+rLen])
	return fmt.Sprintf("%064x", r), true
}

// ParseExtractor maps a configuration name to an Extractor.
func ParseExtractor(name string) (Extractor, error) {
	switch name {
	case "", "offset":
		return OffsetExtractor{}, nil
	case "der":
		return DERExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", name)
	}
}
