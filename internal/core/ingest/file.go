package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx"
)

// ParseFile parses an uploaded file fully held in memory, choosing the reader
// by extension. Excel workbooks are read from their first sheet; everything
// else is treated as delimited text.
func ParseFile(name string, data []byte) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return ParseXLSX(data)
	}
	return Parse(string(data)), nil
}

// ParseXLSX reads the first worksheet of a workbook into rows of formatted
// cell values, skipping blank rows the same way the text parser does.
func ParseXLSX(data []byte) ([][]string, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	rows := [][]string{}
	if len(file.Sheets) == 0 {
		return rows, nil
	}
	for _, r := range file.Sheets[0].Rows {
		if r == nil {
			continue
		}
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			if c != nil {
				cells[i] = c.String()
			}
		}
		if len(cells) > 1 || (len(cells) == 1 && cells[0] != "") {
			rows = append(rows, cells)
		}
	}
	return rows, nil
}
