package ingest

import (
	"strings"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
)

// BuildRecords converts data rows (header excluded) into records using mapping.
// Columns are applied in order so a field mapped twice keeps the later value.
// Rows where no mapped field has a non-empty value are dropped.
func BuildRecords(rows [][]string, mapping domain.ColumnMapping) []domain.Record {
	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		rec := domain.NewRecord()
		for col, field := range mapping {
			if field == domain.FieldIgnore || !field.IsValid() {
				continue
			}
			value := ""
			if col < len(row) {
				value = strings.TrimSpace(row[col])
			}
			rec.Set(field, value)
		}
		if rec.HasData() {
			records = append(records, rec)
		}
	}
	return records
}

// SplitHeader separates the header row from the data rows.
func SplitHeader(rows [][]string) (header []string, data [][]string) {
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], rows[1:]
}
