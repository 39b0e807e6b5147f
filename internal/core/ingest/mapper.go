package ingest

import (
	"strings"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
)

// headerRules are checked in order; the first rule with a keyword contained in
// the lower-cased header wins. Spanish spellings come from the source sheets.
var headerRules = []struct {
	field    domain.Field
	keywords []string
}{
	{domain.FieldClient, []string{"client"}}, // also matches "cliente"
	{domain.FieldVendor, []string{"vendedor", "vendor"}},
	{domain.FieldAmount, []string{"monto", "amount"}},
	{domain.FieldStatus, []string{"status"}}, // also matches "estatus"
	{domain.FieldPhone, []string{"tel", "phone"}},
}

// ProposeMapping guesses a field for every header column. Columns matching no
// rule default to Ignore.
func ProposeMapping(header []string) domain.ColumnMapping {
	mapping := make(domain.ColumnMapping, len(header))
	for i, h := range header {
		mapping[i] = guessField(h)
	}
	return mapping
}

func guessField(header string) domain.Field {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, rule := range headerRules {
		for _, kw := range rule.keywords {
			if strings.Contains(h, kw) {
				return rule.field
			}
		}
	}
	return domain.FieldIgnore
}
