package pgsql

import (
	portsrepo "github.com/SscSPs/salesmaster_cloud/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	recordRepo := newPgxRecordRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RecordRepo: recordRepo,
	}
}
