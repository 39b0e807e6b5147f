package dto

import (
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
)

// RecordResponse is the client view of a record. The normalized vendor is
// internal and never returned.
type RecordResponse struct {
	RecordID  string            `json:"recordID"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ListRecordsParams defines query parameters for listing records.
// A nil Limit means the role default; 0 means no limit.
type ListRecordsParams struct {
	Limit  *int   `form:"limit" binding:"omitempty,min=0,max=10000"`
	Search string `form:"q"`
}

// LimitOr returns the requested limit, or def when none was given.
func (p ListRecordsParams) LimitOr(def int) int {
	if p.Limit == nil {
		return def
	}
	return *p.Limit
}

// ListRecordsResponse wraps the list of records.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Count   int              `json:"count"`
}

// RecordStatsResponse summarizes the collection for the administrator.
type RecordStatsResponse struct {
	Count           int    `json:"count"`
	Vendors         int    `json:"vendors"`
	TotalAmount     string `json:"totalAmount"`
	UnparsedAmounts int    `json:"unparsedAmounts"`
}

// AnalysisResponse carries the AI executive report.
type AnalysisResponse struct {
	Report string `json:"report"`
}

// ToRecordResponse converts a domain.Record to RecordResponse DTO
func ToRecordResponse(r *domain.Record) RecordResponse {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[string(k)] = v
	}
	return RecordResponse{
		RecordID:  r.RecordID,
		Fields:    fields,
		CreatedAt: r.CreatedAt,
	}
}

// ToListRecordsResponse converts a slice of domain.Record to ListRecordsResponse DTO
func ToListRecordsResponse(records []domain.Record) ListRecordsResponse {
	res := make([]RecordResponse, len(records))
	for i := range records {
		res[i] = ToRecordResponse(&records[i])
	}
	return ListRecordsResponse{Records: res, Count: len(res)}
}

// ToRecordStatsResponse converts domain.RecordStats to its DTO
func ToRecordStatsResponse(s *domain.RecordStats) RecordStatsResponse {
	return RecordStatsResponse{
		Count:           s.Count,
		Vendors:         s.Vendors,
		TotalAmount:     s.TotalAmount,
		UnparsedAmounts: s.UnparsedAmounts,
	}
}
