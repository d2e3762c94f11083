package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/org_finance_app/internal/models"
	"github.com/SscSPs/org_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAnnualRecordRepository struct {
	BaseRepository
}

// newPgxAnnualRecordRepository creates a new repository for the memoized
// academic-year snapshots.
func newPgxAnnualRecordRepository(pool *pgxpool.Pool) portsrepo.AnnualRecordRepository {
	return &PgxAnnualRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAnnualRecordRepository implements portsrepo.AnnualRecordRepository
var _ portsrepo.AnnualRecordRepository = (*PgxAnnualRecordRepository)(nil)

const selectRecordQuery = `
	SELECT id, starting_date, ending_date, starting_money, total_expenses, total_revenue
	FROM finance.annual_record
	WHERE id = $1;
`

func (r *PgxAnnualRecordRepository) scanRecord(ctx context.Context, recordID int64) (*domain.AnnualRecord, error) {
	var m models.AnnualRecord
	err := r.Pool.QueryRow(ctx, selectRecordQuery, recordID).Scan(
		&m.RecordID,
		&m.StartingDate,
		&m.EndingDate,
		&m.StartingMoney,
		&m.TotalExpenses,
		&m.TotalRevenue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find annual record %d: %w", recordID, err)
	}
	record := mapping.ToDomainAnnualRecord(m)
	return &record, nil
}

// FindRecordByID looks up a snapshot by its year key.
func (r *PgxAnnualRecordRepository) FindRecordByID(ctx context.Context, recordID int64) (*domain.AnnualRecord, error) {
	return r.scanRecord(ctx, recordID)
}

// CreateRecordIfAbsent inserts the snapshot unless the year key is already
// taken, then re-reads the row. Losing a concurrent insert race is fine; the
// read returns the winner either way.
func (r *PgxAnnualRecordRepository) CreateRecordIfAbsent(ctx context.Context, record domain.AnnualRecord) (*domain.AnnualRecord, error) {
	m := mapping.ToModelAnnualRecord(record)
	insertQuery := `
		INSERT INTO finance.annual_record (id, starting_date, ending_date, starting_money, total_expenses, total_revenue)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, insertQuery,
		m.RecordID,
		m.StartingDate,
		m.EndingDate,
		m.StartingMoney,
		m.TotalExpenses,
		m.TotalRevenue,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to insert annual record %d", m.RecordID), err)
	}

	return r.scanRecord(ctx, m.RecordID)
}
