package pgsql

import (
	portsrepo "github.com/SscSPs/org_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the pgx-backed repository set shared by all
// services.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ProjectRepo:      newPgxProjectRepository(pool),
		ReportingRepo:    newPgxReportingRepository(pool),
		AnnualRecordRepo: newPgxAnnualRecordRepository(pool),
	}
}
