// Package ingest turns an uploaded spreadsheet into account records: it parses
// delimited text into rows, proposes a column mapping from the header and builds
// the records the bulk replace writes.
package ingest

import (
	"strings"
)

// Parse converts raw delimited text into rows of cells. Text containing a tab
// is treated as tab-separated without quoting; anything else is parsed as
// comma-separated with double-quote quoting.
func Parse(text string) [][]string {
	if strings.Contains(text, "\t") {
		return parseTSV(text)
	}
	return parseCSV(text)
}

func parseTSV(text string) [][]string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(strings.TrimSuffix(line, "\r"), "\t"))
	}
	return rows
}

// parseCSV is a single pass scanner. A doubled quote inside a quoted cell is a
// literal quote; commas and line breaks inside quotes belong to the cell.
func parseCSV(text string) [][]string {
	rows := [][]string{}
	row := []string{}
	var cell strings.Builder
	inQuotes := false

	endCell := func() {
		row = append(row, cell.String())
		cell.Reset()
	}
	endRow := func() {
		endCell()
		if len(row) > 1 || row[0] != "" {
			rows = append(rows, row)
		}
		row = []string{}
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			endCell()
		case (ch == '\r' || ch == '\n') && !inQuotes:
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			cell.WriteByte(ch)
		}
	}
	endRow()

	return rows
}
