package domain

import "strings"

// FilterForVendor keeps the records whose normalized vendor contains the
// lower-cased vendor name. The match is a substring match on purpose so that a
// first name finds "juan perez" and "juan perez lopez" alike.
func FilterForVendor(records []Record, vendorName string) []Record {
	needle := strings.ToLower(vendorName)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.NormalizedVendor, needle) {
			out = append(out, r)
		}
	}
	return out
}

// FilterForSession derives the view of records visible to the session.
func FilterForSession(records []Record, session *Session) []Record {
	if session == nil {
		return []Record{}
	}
	if session.IsAdministrator() {
		out := make([]Record, len(records))
		copy(out, records)
		return out
	}
	return FilterForVendor(records, session.VendorName)
}

// FilterBySearch keeps records whose lower-cased serialization contains the
// lower-cased term. An empty term keeps everything.
func FilterBySearch(records []Record, term string) []Record {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.searchText(), needle) {
			out = append(out, r)
		}
	}
	return out
}

// DeriveView applies the session filter and then the search term.
func DeriveView(records []Record, session *Session, term string) []Record {
	return FilterBySearch(FilterForSession(records, session), term)
}
