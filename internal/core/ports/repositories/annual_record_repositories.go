package repositories

import (
	"context"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
)

// AnnualRecordRepository is the memoization store for academic-year
// snapshots.
type AnnualRecordRepository interface {
	// FindRecordByID looks up a snapshot by its year key (e.g. 20242025).
	// Returns apperrors.ErrNotFound when no snapshot exists yet.
	FindRecordByID(ctx context.Context, recordID int64) (*domain.AnnualRecord, error)

	// CreateRecordIfAbsent persists the snapshot unless one already exists
	// for the same year key, then returns whichever row won. Concurrent
	// first-loads of the same year therefore converge on a single record.
	CreateRecordIfAbsent(ctx context.Context, record domain.AnnualRecord) (*domain.AnnualRecord, error)
}
