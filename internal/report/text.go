package report

import (
	"strconv"
	"strings"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

// EncodeText renders r as plain text.
//
// Transaction mode writes one block per transaction:
//
//	Transaction <hash> has reused R-values:
//	  R-value: <r> reused at positions: [0, 2]
//
// Address mode writes one block per R-value:
//
//	R-value <r> reused across transactions:
//	  <hash> at position <p>
func EncodeText(r model.Report) []byte {
	var blocks []string
	if r.Mode == model.ModeAddress {
		blocks = addressBlocks(r.Findings)
	} else {
		blocks = transactionBlocks(r.Findings)
	}
	return []byte(strings.Join(blocks, "\n") + "\n")
}

func transactionBlocks(findings []model.ReuseFinding) []string {
	var (
		blocks  []string
		current string
		b       strings.Builder
	)
	flush := func() {
		if b.Len() > 0 {
			blocks = append(blocks, strings.TrimSuffix(b.String(), "\n"))
			b.Reset()
		}
	}
	for _, rw := range rows(findings) {
		if rw.txHash != current || b.Len() == 0 {
			flush()
			current = rw.txHash
			b.WriteString("Transaction " + rw.txHash + " has reused R-values:\n")
		}
		b.WriteString("  R-value: " + rw.rValue + " reused at positions: " + formatPositions(rw.positions) + "\n")
	}
	flush()
	return blocks
}

func addressBlocks(findings []model.ReuseFinding) []string {
	blocks := make([]string, 0, len(findings))
	for _, f := range findings {
		lines := make([]string, 0, len(f.Occurrences)+1)
		lines = append(lines, "R-value "+f.RValue+" reused across transactions:")
		for _, o := range f.Occurrences {
			lines = append(lines, "  "+o.TxHash+" at position "+strconv.Itoa(o.Position))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return blocks
}

func formatPositions(positions []int) string {
	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		parts = append(parts, strconv.Itoa(p))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
