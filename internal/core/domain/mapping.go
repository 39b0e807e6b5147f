package domain

import "fmt"

// ColumnMapping associates each source column index with a target field.
// It lives only for the duration of one upload's review and commit.
type ColumnMapping []Field

// FieldAt returns the field mapped to column index, Ignore when out of range.
func (m ColumnMapping) FieldAt(index int) Field {
	if index < 0 || index >= len(m) {
		return FieldIgnore
	}
	return m[index]
}

// Override reassigns one column. Any field of the enumeration is accepted,
// duplicates included.
func (m ColumnMapping) Override(index int, field Field) error {
	if index < 0 || index >= len(m) {
		return fmt.Errorf("column %d out of range (0-%d)", index, len(m)-1)
	}
	if !field.IsValid() {
		return fmt.Errorf("unknown field %q", field)
	}
	m[index] = field
	return nil
}

// Clone returns an independent copy.
func (m ColumnMapping) Clone() ColumnMapping {
	out := make(ColumnMapping, len(m))
	copy(out, m)
	return out
}

// Mapped reports whether any column targets a non-Ignore field.
func (m ColumnMapping) Mapped() bool {
	for _, f := range m {
		if f != FieldIgnore {
			return true
		}
	}
	return false
}
