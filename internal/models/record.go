package models

import "time"

// SalesRecord is a row of the sales_records table. Fields holds the JSONB document.
type SalesRecord struct {
	RecordID         string            `json:"recordID"`
	Fields           map[string]string `json:"fields"`
	NormalizedVendor string            `json:"normalizedVendor"`
	CreatedAt        time.Time         `json:"createdAt"`
}
