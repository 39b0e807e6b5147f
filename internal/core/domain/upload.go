package domain

import "time"

// UploadStatus tracks a staged import through review and commit.
type UploadStatus string

const (
	UploadStaged  UploadStatus = "staged"
	UploadRunning UploadStatus = "running"
	UploadFailed  UploadStatus = "failed"
	UploadDone    UploadStatus = "done"
)

// Upload is a parsed file held in memory between the mapping review and the commit.
type Upload struct {
	UploadID        string
	FileName        string
	Header          []string
	Rows            [][]string // data rows, header excluded
	ProposedMapping ColumnMapping
	Status          UploadStatus
	Deleted         int
	Inserted        int
	LastError       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReplaceResult summarizes a finished bulk replace.
type ReplaceResult struct {
	Deleted       int
	Inserted      int
	InsertBatches int
	DeleteBatches int
}

// RecordStats summarizes the shared collection for the administrator dashboard.
type RecordStats struct {
	Count           int
	Vendors         int
	TotalAmount     string
	UnparsedAmounts int
}
