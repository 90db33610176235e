package nonce

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

// ErrMalformedTransaction marks a transaction record that cannot be attributed.
var ErrMalformedTransaction = errors.New("malformed transaction")

// Detect groups rValues by exact value and returns the groups seen at two or more
// positions, ordered by first appearance.
func Detect(rValues []string) []model.DuplicateGroup {
	index := make(map[string]int, len(rValues))
	groups := make([]model.DuplicateGroup, 0)
	for pos, r := range rValues {
		i, ok := index[r]
		if !ok {
			i = len(groups)
			index[r] = i
			groups = append(groups, model.DuplicateGroup{RValue: r})
		}
		groups[i].Positions = append(groups[i].Positions, pos)
	}

	dups := groups[:0]
	for _, g := range groups {
		if len(g.Positions) > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}

// Validate checks that tx carries a well-formed transaction hash.
func Validate(tx model.Transaction) error {
	if tx.Hash == "" {
		return fmt.Errorf("%w: missing hash", ErrMalformedTransaction)
	}
	if len(tx.Hash) != chainhash.MaxHashStringSize {
		return fmt.Errorf("%w: hash %q has length %d", ErrMalformedTransaction, tx.Hash, len(tx.Hash))
	}
	if _, err := chainhash.NewHashFromStr(tx.Hash); err != nil {
		return fmt.Errorf("%w: hash %q: %w", ErrMalformedTransaction, tx.Hash, err)
	}
	return nil
}

// Detector applies an Extractor to transactions and reports reused R-values.
type Detector struct {
	extractor Extractor
}

// NewDetector returns a Detector using extractor, or OffsetExtractor when nil.
func NewDetector(extractor Extractor) *Detector {
	if extractor == nil {
		extractor = OffsetExtractor{}
	}
	return &Detector{extractor: extractor}
}

// RValues returns the R-values of tx's eligible scripts; the slice index is the position.
func (d *Detector) RValues(tx model.Transaction) []string {
	scripts := Scripts(tx)
	values := make([]string, 0, len(scripts))
	for _, script := range scripts {
		if r, ok := d.extractor.RValue(script); ok {
			values = append(values, r)
		}
	}
	return values
}

// DetectTransaction returns the R-values reused within tx.
func (d *Detector) DetectTransaction(tx model.Transaction) ([]model.DuplicateGroup, error) {
	if err := Validate(tx); err != nil {
		return nil, err
	}
	return Detect(d.RValues(tx)), nil
}

// DetectAddress returns the R-values used more than once across txs, in first-seen order.
// Malformed transactions are passed to skip and left out.
func (d *Detector) DetectAddress(txs []model.Transaction, skip func(tx model.Transaction, err error)) []model.ReuseFinding {
	index := make(map[string]int)
	findings := make([]model.ReuseFinding, 0)
	for _, tx := range txs {
		if err := Validate(tx); err != nil {
			if skip != nil {
				skip(tx, err)
			}
			continue
		}
		for pos, r := range d.RValues(tx) {
			i, ok := index[r]
			if !ok {
				i = len(findings)
				index[r] = i
				findings = append(findings, model.ReuseFinding{RValue: r})
			}
			findings[i].Occurrences = append(findings[i].Occurrences, model.Occurrence{TxHash: tx.Hash, Position: pos})
		}
	}

	reused := findings[:0]
	for _, f := range findings {
		if len(f.Occurrences) > 1 {
			reused = append(reused, f)
		}
	}
	return reused
}

// TransactionFindings converts the groups of one transaction into findings.
func TransactionFindings(txHash string, groups []model.DuplicateGroup) []model.ReuseFinding {
	findings := make([]model.ReuseFinding, 0, len(groups))
	for _, g := range groups {
		f := model.ReuseFinding{RValue: g.RValue, Occurrences: make([]model.Occurrence, 0, len(g.Positions))}
		for _, pos := range g.Positions {
			f.Occurrences = append(f.Occurrences, model.Occurrence{TxHash: txHash, Position: pos})
		}
		findings = append(findings, f)
	}
	return findings
}
