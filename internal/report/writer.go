// Package report renders nonce reuse findings for an address.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

// Format is the encoding of report files.
type Format string

const (
	// FormatText is the plain text report.
	FormatText Format = "txt"
	// FormatXLSX is a spreadsheet with one row per transaction and R-value.
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a configuration value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// FileName returns the report file name for address.
func (f Format) FileName(address string) string {
	return address + "." + string(f)
}

// Writer encodes reports and hands them to a Sink.
type Writer struct {
	sink   Sink
	format Format
}

// NewWriter returns a Writer for format.
func NewWriter(sink Sink, format Format) (*Writer, error) {
	if sink == nil {
		return nil, errors.New("report sink is required")
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	return &Writer{sink: sink, format: format}, nil
}

// Write stores the report of one address. Reports without findings are not written.
func (w *Writer) Write(ctx context.Context, r model.Report) error {
	if r.Empty() {
		return nil
	}

	var (
		data []byte
		err  error
	)
	switch w.format {
	case FormatXLSX:
		data, err = EncodeXLSX(r)
	default:
		data = EncodeText(r)
	}
	if err != nil {
		return fmt.Errorf("encode report for %s: %w", r.Address, err)
	}

	if err := w.sink.Put(ctx, r.Address, data); err != nil {
		return fmt.Errorf("write report for %s: %w", r.Address, err)
	}
	return nil
}

// row is one transaction's use of a reused R-value.
type row struct {
	txHash    string
	rValue    string
	positions []int
}

// rows flattens findings into per transaction rows, keeping finding and occurrence order.
func rows(findings []model.ReuseFinding) []row {
	out := make([]row, 0, len(findings))
	for _, f := range findings {
		start := len(out)
		for _, o := range f.Occurrences {
			i := start
			for ; i < len(out); i++ {
				if out[i].txHash == o.TxHash {
					break
				}
			}
			if i == len(out) {
				out = append(out, row{txHash: o.TxHash, rValue: f.RValue})
			}
			out[i].positions = append(out[i].positions, o.Position)
		}
	}
	return out
}
