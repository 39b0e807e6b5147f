package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Field is one of the semantic targets a spreadsheet column can be mapped to.
type Field string

const (
	FieldIgnore Field = "Ignore"
	FieldClient Field = "Client"
	FieldVendor Field = "Vendor"
	FieldAmount Field = "Amount"
	FieldStatus Field = "Status"
	FieldPhone  Field = "Phone"
	FieldDate   Field = "Date"
	FieldNote   Field = "Note"
)

// Fields is the fixed enumeration offered to the administrator, in display order.
var Fields = []Field{FieldIgnore, FieldClient, FieldVendor, FieldAmount, FieldStatus, FieldPhone, FieldDate, FieldNote}

// IsValid reports whether f belongs to the field enumeration.
func (f Field) IsValid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// ParseField resolves a field name case-insensitively.
func ParseField(name string) (Field, bool) {
	name = strings.TrimSpace(name)
	for _, known := range Fields {
		if strings.EqualFold(name, string(known)) {
			return known, true
		}
	}
	return "", false
}

// Record is one imported account row. Only the fields mapped at import time are
// present; absence means the column was not imported for this batch.
type Record struct {
	RecordID string           `json:"recordID"`
	Fields   map[Field]string `json:"fields"`
	// NormalizedVendor is derived from the Vendor field by Set and is never edited directly.
	NormalizedVendor string    `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewRecord returns an empty record ready for Set.
func NewRecord() Record {
	return Record{Fields: make(map[Field]string)}
}

// Set assigns a field value, keeping NormalizedVendor in sync with Vendor.
func (r *Record) Set(field Field, value string) {
	if r.Fields == nil {
		r.Fields = make(map[Field]string)
	}
	r.Fields[field] = value
	if field == FieldVendor {
		r.NormalizedVendor = strings.ToLower(value)
	}
}

// Get returns the value of field and whether it was imported.
func (r Record) Get(field Field) (string, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// Value returns the value of field or "" when absent.
func (r Record) Value(field Field) string {
	return r.Fields[field]
}

// HasData reports whether at least one field holds a non-empty value.
func (r Record) HasData() bool {
	for _, v := range r.Fields {
		if v != "" {
			return true
		}
	}
	return false
}

// Document returns the stored key/value form of the record, including the
// derived normalized_vendor key when a vendor was imported.
func (r Record) Document() map[string]string {
	doc := make(map[string]string, len(r.Fields)+1)
	for k, v := range r.Fields {
		doc[string(k)] = v
	}
	if _, ok := r.Fields[FieldVendor]; ok {
		doc["normalized_vendor"] = r.NormalizedVendor
	}
	return doc
}

// RecordFromDocument rebuilds a record from its stored form. Unknown keys are
// kept verbatim so batches imported with a different field set still round-trip.
func RecordFromDocument(id string, doc map[string]string, createdAt time.Time) Record {
	rec := NewRecord()
	rec.RecordID = id
	rec.CreatedAt = createdAt
	for k, v := range doc {
		if k == "normalized_vendor" {
			continue
		}
		if field, ok := ParseField(k); ok {
			rec.Set(field, v)
			continue
		}
		rec.Fields[Field(k)] = v
	}
	return rec
}

// searchText is the lower-cased JSON serialization the free-text search matches against.
func (r Record) searchText() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Document()); err != nil {
		return ""
	}
	return strings.ToLower(buf.String())
}
