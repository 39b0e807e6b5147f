package dto

import (
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
)

// previewRows is how many data rows the mapping screen shows.
const previewRows = 5

// UploadResponse is returned after a file is parsed and staged for review.
type UploadResponse struct {
	UploadID        string         `json:"uploadID"`
	FileName        string         `json:"fileName"`
	Header          []string       `json:"header"`
	ProposedMapping []domain.Field `json:"proposedMapping"`
	Preview         [][]string     `json:"preview"`
	RowCount        int            `json:"rowCount"`
	Status          string         `json:"status"`
	Deleted         int            `json:"deleted"`
	Inserted        int            `json:"inserted"`
	LastError       string         `json:"lastError,omitempty"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// CommitImportRequest carries the administrator's final column mapping.
// An empty mapping commits the proposed one.
type CommitImportRequest struct {
	Mapping []string `json:"mapping" binding:"omitempty,dive,importfield"`
}

// CommitImportResponse reports a finished bulk replace.
type CommitImportResponse struct {
	UploadID      string `json:"uploadID"`
	Deleted       int    `json:"deleted"`
	Inserted      int    `json:"inserted"`
	InsertBatches int    `json:"insertBatches"`
	DeleteBatches int    `json:"deleteBatches"`
}

// FieldsResponse lists the mapping targets.
type FieldsResponse struct {
	Fields []domain.Field `json:"fields"`
}

// ToUploadResponse converts a domain.Upload to UploadResponse DTO
func ToUploadResponse(u *domain.Upload) UploadResponse {
	n := previewRows
	if len(u.Rows) < n {
		n = len(u.Rows)
	}
	return UploadResponse{
		UploadID:        u.UploadID,
		FileName:        u.FileName,
		Header:          u.Header,
		ProposedMapping: u.ProposedMapping,
		Preview:         u.Rows[:n],
		RowCount:        len(u.Rows),
		Status:          string(u.Status),
		Deleted:         u.Deleted,
		Inserted:        u.Inserted,
		LastError:       u.LastError,
		UpdatedAt:       u.UpdatedAt,
	}
}

// ToCommitImportResponse converts a domain.ReplaceResult to its DTO
func ToCommitImportResponse(uploadID string, r *domain.ReplaceResult) CommitImportResponse {
	return CommitImportResponse{
		UploadID:      uploadID,
		Deleted:       r.Deleted,
		Inserted:      r.Inserted,
		InsertBatches: r.InsertBatches,
		DeleteBatches: r.DeleteBatches,
	}
}
