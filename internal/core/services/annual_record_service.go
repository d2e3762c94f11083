package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_finance_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// maxCarryForwardYears caps how far back the snapshot chain will be rebuilt
// in a single request. Anything older starts from a zero balance.
const maxCarryForwardYears = 50

// annualRecordService owns the memoized academic-year snapshots and the
// balance carry-forward built on them.
type annualRecordService struct {
	BaseService
	recordRepo    portsrepo.AnnualRecordRepository
	reportingRepo portsrepo.ReportingRepository
	nowFn         func() time.Time
}

// AnnualRecordServiceOption configures optional dependencies of
// annualRecordService.
type AnnualRecordServiceOption func(*annualRecordService)

// WithAnnualRecordClock overrides the clock, mainly for tests.
func WithAnnualRecordClock(nowFn func() time.Time) AnnualRecordServiceOption {
	return func(s *annualRecordService) {
		s.nowFn = nowFn
	}
}

// NewAnnualRecordService creates a new annual record service.
func NewAnnualRecordService(recordRepo portsrepo.AnnualRecordRepository, reportingRepo portsrepo.ReportingRepository, opts ...AnnualRecordServiceOption) portssvc.AnnualRecordService {
	s := &annualRecordService{
		recordRepo:    recordRepo,
		reportingRepo: reportingRepo,
		nowFn:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AnnualRecordService = (*annualRecordService)(nil)

// yearTotals computes the live expense and revenue totals of one academic year.
func (s *annualRecordService) yearTotals(ctx context.Context, year domain.AcademicYear) (expenses, revenue decimal.Decimal, err error) {
	from, to := year.Range()
	expenses, err = s.reportingRepo.SumExpenses(ctx, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	revenue, err = s.reportingRepo.SumRevenue(ctx, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return expenses, revenue, nil
}

// GetOrCreateRecord returns the snapshot for the academic year starting in
// startYear. Only closed years can be snapshotted; the in-flight year stays
// live-computed, otherwise a mid-year request would freeze partial totals
// forever. On a miss it rebuilds the chain: it walks backward through
// missing years until it hits an existing snapshot, a year predating all
// recorded activity, or the depth cap, then computes the missing snapshots
// forward so every starting balance carries the previous year's close.
func (s *annualRecordService) GetOrCreateRecord(ctx context.Context, startYear int) (*domain.AnnualRecord, error) {
	current := domain.CurrentAcademicYear(s.nowFn())
	if startYear >= current.StartYear {
		return nil, apperrors.NewAppError(400,
			fmt.Sprintf("academic year %s has not closed yet", domain.AcademicYearOf(startYear)),
			apperrors.ErrValidation)
	}

	target := domain.AcademicYearOf(startYear)

	record, err := s.recordRepo.FindRecordByID(ctx, target.Key())
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	earliest, hasActivity, err := s.reportingRepo.EarliestActivity(ctx)
	if err != nil {
		return nil, err
	}

	// Walk backward to find where the chain can be anchored.
	missing := []domain.AcademicYear{target}
	base := decimal.Zero
	for len(missing) < maxCarryForwardYears {
		prev := missing[len(missing)-1].Previous()
		if !hasActivity || earliest.After(yearEnd(prev)) {
			// Nothing ever happened in or before prev, zero base.
			break
		}
		prevRecord, err := s.recordRepo.FindRecordByID(ctx, prev.Key())
		if err == nil {
			base = prevRecord.ClosingBalance()
			break
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		missing = append(missing, prev)
	}

	// Compute forward, oldest first, carrying each close into the next start.
	var latest *domain.AnnualRecord
	for i := len(missing) - 1; i >= 0; i-- {
		year := missing[i]
		expenses, revenue, err := s.yearTotals(ctx, year)
		if err != nil {
			return nil, err
		}

		from, to := year.Range()
		candidate := domain.AnnualRecord{
			RecordID:      year.Key(),
			StartingDate:  from,
			EndingDate:    to,
			StartingMoney: base,
			TotalExpenses: expenses,
			TotalRevenue:  revenue,
		}
		// A concurrent request may have written this year first; the stored
		// row wins either way.
		latest, err = s.recordRepo.CreateRecordIfAbsent(ctx, candidate)
		if err != nil {
			return nil, err
		}
		base = latest.ClosingBalance()
	}

	s.LogInfo(ctx, "Annual record chain materialized",
		slog.Int("start_year", startYear),
		slog.Int("years_built", len(missing)))
	return latest, nil
}

func yearEnd(year domain.AcademicYear) time.Time {
	_, end := year.Range()
	return end
}

// CurrentBalance combines the previous year's frozen closing balance with
// the live totals of the current academic year.
func (s *annualRecordService) CurrentBalance(ctx context.Context) (decimal.Decimal, error) {
	current := domain.CurrentAcademicYear(s.nowFn())

	prev, err := s.GetOrCreateRecord(ctx, current.StartYear-1)
	if err != nil {
		return decimal.Zero, err
	}

	expenses, revenue, err := s.yearTotals(ctx, current)
	if err != nil {
		return decimal.Zero, err
	}

	return prev.ClosingBalance().Add(revenue).Sub(expenses), nil
}

// AnnualComparison compares the current academic year's live total for the
// metric against the previous year's frozen snapshot.
func (s *annualRecordService) AnnualComparison(ctx context.Context, metric domain.BreakdownMetric) (*domain.YearComparison, error) {
	current := domain.CurrentAcademicYear(s.nowFn())

	prev, err := s.GetOrCreateRecord(ctx, current.StartYear-1)
	if err != nil {
		return nil, err
	}

	expenses, revenue, err := s.yearTotals(ctx, current)
	if err != nil {
		return nil, err
	}

	var currentTotal, previousTotal decimal.Decimal
	switch metric {
	case domain.MetricRevenue:
		currentTotal = revenue
		previousTotal = prev.TotalRevenue
	case domain.MetricExpenses:
		currentTotal = expenses
		previousTotal = prev.TotalExpenses
	default:
		return nil, apperrors.NewAppError(400, "unknown comparison metric: "+string(metric), apperrors.ErrValidation)
	}

	return &domain.YearComparison{
		Year:          current,
		PreviousYear:  current.Previous(),
		CurrentTotal:  currentTotal,
		PreviousTotal: previousTotal,
		ChangePercent: domain.ChangePercent(currentTotal, previousTotal),
	}, nil
}
