package services

import (
	"context"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
)

// ReportingService computes the dashboard aggregates: totals, monthly
// series, and per-project breakdowns.
type ReportingService interface {
	// Summary returns the current academic year's totals plus the carried
	// current balance.
	Summary(ctx context.Context) (*domain.FinancialSummary, error)

	// MonthlyBreakdown returns exactly 12 points in academic-month order
	// (Aug..Jul) for the academic year starting in startYear; startYear 0
	// means the current academic year. Months without activity report zero.
	MonthlyBreakdown(ctx context.Context, startYear int) (domain.AcademicYear, []domain.MonthlyPoint, error)

	// AcademicYearBreakdown ranks projects by the metric within an academic
	// year, descending, omitting zero totals.
	AcademicYearBreakdown(ctx context.Context, startYear int, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error)

	// SemesterBreakdown ranks projects by the metric within a semester.
	SemesterBreakdown(ctx context.Context, term domain.SemesterTerm, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error)

	// TopProjects truncates the academic-year breakdown to the n largest.
	TopProjects(ctx context.Context, startYear, n int, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error)

	// RevenueByPaymentMode groups the academic year's realized revenue by
	// payment mode.
	RevenueByPaymentMode(ctx context.Context, startYear int) ([]domain.PaymentModeAmount, error)

	// RecentTickets lists the latest submissions of the current academic year.
	RecentTickets(ctx context.Context) ([]domain.ProjectTicket, error)

	// SemesterProgress reports days left until the academic year closes.
	SemesterProgress(ctx context.Context) (*domain.SemesterProgress, error)
}
