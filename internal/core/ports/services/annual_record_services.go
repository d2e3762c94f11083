package services

import (
	"context"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnnualRecordService owns the memoized academic-year snapshots and the
// balance carry-forward chain built on top of them.
type AnnualRecordService interface {
	// GetOrCreateRecord returns the snapshot for the academic year starting
	// in startYear, computing and persisting it (and any missing
	// predecessors, up to a bounded depth) on first access. Years that have
	// not closed yet are rejected with ErrValidation; the in-flight year is
	// always live-computed.
	GetOrCreateRecord(ctx context.Context, startYear int) (*domain.AnnualRecord, error)

	// CurrentBalance combines the frozen prior-year closing balance with the
	// live totals of the current academic year.
	CurrentBalance(ctx context.Context) (decimal.Decimal, error)

	// AnnualComparison compares the current academic year's live total for
	// the metric against the previous year's frozen snapshot.
	AnnualComparison(ctx context.Context, metric domain.BreakdownMetric) (*domain.YearComparison, error)
}
