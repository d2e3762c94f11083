package services

import (
	"context"
	"time"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_finance_app/internal/core/ports/services"
)

// recentTicketsLimit caps the recent-submissions card.
const recentTicketsLimit = 10

// semesterLengthDays is the nominal semester length used by the progress card.
const semesterLengthDays = 150

// reportingService computes the dashboard aggregates.
type reportingService struct {
	BaseService
	repo    portsrepo.ReportingRepository
	records portssvc.AnnualRecordService
	nowFn   func() time.Time
}

// ReportingServiceOption configures optional dependencies of reportingService.
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock, mainly for tests.
func WithReportingClock(nowFn func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.nowFn = nowFn
	}
}

// NewReportingService creates a new reporting service. The annual record
// service supplies the carried balance shown on the summary card.
func NewReportingService(repo portsrepo.ReportingRepository, records portssvc.AnnualRecordService, opts ...ReportingServiceOption) portssvc.ReportingService {
	s := &reportingService{
		repo:    repo,
		records: records,
		nowFn:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// resolveYear maps the optional startYear parameter onto an academic year.
func (s *reportingService) resolveYear(startYear int) domain.AcademicYear {
	if startYear == 0 {
		return domain.CurrentAcademicYear(s.nowFn())
	}
	return domain.AcademicYearOf(startYear)
}

// Summary returns the current academic year's totals plus the carried
// current balance.
func (s *reportingService) Summary(ctx context.Context) (*domain.FinancialSummary, error) {
	year := domain.CurrentAcademicYear(s.nowFn())
	from, to := year.Range()

	expenses, err := s.repo.SumExpenses(ctx, from, to)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.SumRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}
	balance, err := s.records.CurrentBalance(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.FinancialSummary{
		Year:           year,
		TotalExpenses:  expenses,
		TotalRevenue:   revenue,
		NetIncome:      revenue.Sub(expenses),
		CurrentBalance: balance,
	}, nil
}

// MonthlyBreakdown returns exactly 12 points in academic-month order for the
// requested academic year. Months without activity report zero.
func (s *reportingService) MonthlyBreakdown(ctx context.Context, startYear int) (domain.AcademicYear, []domain.MonthlyPoint, error) {
	year := s.resolveYear(startYear)
	from, to := year.Range()

	expenseByMonth, err := s.repo.MonthlyExpenseTotals(ctx, from, to)
	if err != nil {
		return year, nil, err
	}
	revenueByMonth, err := s.repo.MonthlyRevenueTotals(ctx, from, to)
	if err != nil {
		return year, nil, err
	}

	points := make([]domain.MonthlyPoint, 0, len(domain.AcademicMonths))
	for _, month := range domain.AcademicMonths {
		points = append(points, domain.MonthlyPoint{
			Month:    domain.MonthLabel(month),
			Expenses: expenseByMonth[month],
			Revenue:  revenueByMonth[month],
		})
	}
	return year, points, nil
}

// byMetric dispatches a per-project breakdown over one date window.
func (s *reportingService) byMetric(ctx context.Context, from, to time.Time, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error) {
	switch metric {
	case domain.MetricExpenses:
		return s.repo.ExpenseTotalsByProject(ctx, from, to)
	case domain.MetricRevenue:
		return s.repo.RevenueTotalsByProject(ctx, from, to)
	default:
		return nil, apperrors.NewAppError(400, "unknown breakdown metric: "+string(metric), apperrors.ErrValidation)
	}
}

// AcademicYearBreakdown ranks projects by the metric within an academic year.
func (s *reportingService) AcademicYearBreakdown(ctx context.Context, startYear int, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error) {
	from, to := s.resolveYear(startYear).Range()
	return s.byMetric(ctx, from, to, metric)
}

// SemesterBreakdown ranks projects by the metric within a semester.
func (s *reportingService) SemesterBreakdown(ctx context.Context, term domain.SemesterTerm, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error) {
	if term.Semester != domain.SemesterFirst && term.Semester != domain.SemesterSecond {
		return nil, apperrors.NewAppError(400, "unknown semester: "+string(term.Semester), apperrors.ErrValidation)
	}
	if term.Year == 0 {
		// An omitted year means the requested semester of the current
		// academic year; the caller's semester choice stands.
		year := domain.CurrentAcademicYear(s.nowFn())
		if term.Semester == domain.SemesterFirst {
			term.Year = year.StartYear
		} else {
			term.Year = year.EndYear
		}
	}
	from, to := term.Range()
	return s.byMetric(ctx, from, to, metric)
}

// TopProjects truncates the academic-year breakdown to the n largest. The
// repository already sorts descending, so truncation keeps the top spenders
// or earners.
func (s *reportingService) TopProjects(ctx context.Context, startYear, n int, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error) {
	if n <= 0 {
		n = 5
	}
	rows, err := s.AcademicYearBreakdown(ctx, startYear, metric)
	if err != nil {
		return nil, err
	}
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

// RevenueByPaymentMode groups the academic year's realized revenue by
// payment mode.
func (s *reportingService) RevenueByPaymentMode(ctx context.Context, startYear int) ([]domain.PaymentModeAmount, error) {
	from, to := s.resolveYear(startYear).Range()
	return s.repo.RevenueByPaymentMode(ctx, from, to)
}

// RecentTickets lists the latest submissions of the current academic year.
func (s *reportingService) RecentTickets(ctx context.Context) ([]domain.ProjectTicket, error) {
	from, to := domain.CurrentAcademicYear(s.nowFn()).Range()
	return s.repo.RecentTickets(ctx, from, to, recentTicketsLimit)
}

// SemesterProgress reports how far the current semester has advanced toward
// the academic year's July 31 close, against a nominal 150-day length.
func (s *reportingService) SemesterProgress(ctx context.Context) (*domain.SemesterProgress, error) {
	now := s.nowFn()
	year := domain.CurrentAcademicYear(now)
	_, end := year.Range()

	daysLeft := int(end.Sub(now.UTC().Truncate(24*time.Hour)).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}

	elapsed := semesterLengthDays - daysLeft
	percentage := elapsed * 100 / semesterLengthDays
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	return &domain.SemesterProgress{
		DaysLeft:   daysLeft,
		TotalDays:  semesterLengthDays,
		Percentage: percentage,
	}, nil
}
