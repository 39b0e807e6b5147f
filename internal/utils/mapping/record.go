package mapping

import (
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/models"
)

// ToModelRecord converts a domain record into its table row.
func ToModelRecord(r domain.Record) models.SalesRecord {
	return models.SalesRecord{
		RecordID:         r.RecordID,
		Fields:           r.Document(),
		NormalizedVendor: r.NormalizedVendor,
		CreatedAt:        r.CreatedAt,
	}
}

// ToDomainRecord converts a table row back into a domain record.
func ToDomainRecord(m models.SalesRecord) domain.Record {
	return domain.RecordFromDocument(m.RecordID, m.Fields, m.CreatedAt)
}

// ToDomainRecords converts a slice of rows.
func ToDomainRecords(ms []models.SalesRecord) []domain.Record {
	if ms == nil {
		return nil
	}
	records := make([]domain.Record, len(ms))
	for i, m := range ms {
		records[i] = ToDomainRecord(m)
	}
	return records
}
