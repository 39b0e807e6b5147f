package domain_test

import (
	"testing"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func vendorRecord(client, vendor string) domain.Record {
	rec := domain.NewRecord()
	rec.Set(domain.FieldClient, client)
	rec.Set(domain.FieldVendor, vendor)
	return rec
}

func clients(records []domain.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Value(domain.FieldClient))
	}
	return out
}

func TestFilterForVendor_SubstringSemantics(t *testing.T) {
	records := []domain.Record{
		vendorRecord("Ana", "Juan Perez"),
		vendorRecord("Beto", "Juan Perez Lopez"),
	}

	assert.Equal(t, []string{"Ana", "Beto"}, clients(domain.FilterForVendor(records, "Juan")))
	assert.Equal(t, []string{"Beto"}, clients(domain.FilterForVendor(records, "Lopez")))
	assert.Empty(t, domain.FilterForVendor(records, "Maria"))
}

func TestFilterForVendor_LooseMatchIncludesLongerNames(t *testing.T) {
	records := []domain.Record{
		vendorRecord("C1", "Ana"),
		vendorRecord("C2", "Anabel"),
	}
	assert.Equal(t, []string{"C1", "C2"}, clients(domain.FilterForVendor(records, "ana")))
}

func TestFilterForSession(t *testing.T) {
	records := []domain.Record{
		vendorRecord("Ana", "Juan"),
		vendorRecord("Beto", "Maria"),
		domain.NewRecord(),
	}

	admin := &domain.Session{Role: domain.RoleAdministrator}
	assert.Len(t, domain.FilterForSession(records, admin), 3)

	vendor := &domain.Session{Role: domain.RoleVendor, VendorName: "MARIA"}
	assert.Equal(t, []string{"Beto"}, clients(domain.FilterForSession(records, vendor)))

	assert.Empty(t, domain.FilterForSession(records, nil))
}

func TestFilterBySearch(t *testing.T) {
	a := vendorRecord("Ana & Hijos", "Juan")
	a.Set(domain.FieldStatus, "Vencido")
	b := vendorRecord("Beto", "Juan")
	records := []domain.Record{a, b}

	assert.Len(t, domain.FilterBySearch(records, ""), 2)
	assert.Equal(t, []string{"Ana & Hijos"}, clients(domain.FilterBySearch(records, "VENCIDO")))
	assert.Equal(t, []string{"Ana & Hijos"}, clients(domain.FilterBySearch(records, "& hijos")))
	assert.Len(t, domain.FilterBySearch(records, "juan"), 2)
}

func TestDeriveView_IsIdempotent(t *testing.T) {
	records := []domain.Record{
		vendorRecord("Ana", "Juan"),
		vendorRecord("Beto", "Maria"),
	}
	session := &domain.Session{Role: domain.RoleVendor, VendorName: "juan"}

	first := domain.DeriveView(records, session, "an")
	second := domain.DeriveView(records, session, "an")
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Ana"}, clients(first))
}

func TestSession_CanSee(t *testing.T) {
	rec := vendorRecord("Ana", "Juan Perez")

	assert.True(t, (&domain.Session{Role: domain.RoleVendor, VendorName: "perez"}).CanSee(rec))
	assert.False(t, (&domain.Session{Role: domain.RoleVendor, VendorName: "lopez"}).CanSee(rec))
	assert.True(t, (&domain.Session{Role: domain.RoleAdministrator}).CanSee(rec))

	var none *domain.Session
	assert.False(t, none.CanSee(rec))
}
