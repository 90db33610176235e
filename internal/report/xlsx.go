package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

// SheetName is the worksheet holding the findings.
const SheetName = "Findings"

var xlsxHeader = []interface{}{"Transaction", "R-value", "Positions"}

// EncodeXLSX renders r as a workbook with a header row and one row per transaction and R-value.
func EncodeXLSX(r model.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &xlsxHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, rw := range rows(r.Findings) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{rw.txHash, rw.rValue, joinPositions(rw.positions)}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func joinPositions(positions []int) string {
	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		parts = append(parts, strconv.Itoa(p))
	}
	return strings.Join(parts, ", ")
}
