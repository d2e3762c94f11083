package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the aggregation queries behind the dashboard.
//
// Expense aggregates attribute amounts to the parent project's
// implementation date and apply NO status filter. Revenue aggregates use the
// revenue row's own date and only count revenue of completed projects. The
// asymmetry is a business rule, not an oversight.
type ReportingRepository interface {
	// SumExpenses totals unit_price*quantity for expenses whose project was
	// implemented inside [from, to], any status.
	SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumRevenue totals revenue received inside [from, to] for completed
	// projects only.
	SumRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// MonthlyExpenseTotals groups expense totals by calendar month.
	MonthlyExpenseTotals(ctx context.Context, from, to time.Time) (map[time.Month]decimal.Decimal, error)

	// MonthlyRevenueTotals groups completed-project revenue by calendar month.
	MonthlyRevenueTotals(ctx context.Context, from, to time.Time) (map[time.Month]decimal.Decimal, error)

	// ExpenseTotalsByProject returns per-project expense totals inside the
	// period, descending, omitting zero-total projects.
	ExpenseTotalsByProject(ctx context.Context, from, to time.Time) ([]domain.ProjectAmount, error)

	// RevenueTotalsByProject returns per-project completed revenue totals
	// inside the period, descending, omitting zero-total projects.
	RevenueTotalsByProject(ctx context.Context, from, to time.Time) ([]domain.ProjectAmount, error)

	// RevenueByPaymentMode groups completed-project revenue by payment mode.
	RevenueByPaymentMode(ctx context.Context, from, to time.Time) ([]domain.PaymentModeAmount, error)

	// RecentTickets lists the latest project submissions inside the period.
	RecentTickets(ctx context.Context, from, to time.Time, limit int) ([]domain.ProjectTicket, error)

	// EarliestActivity returns the oldest implementation date on record; ok is
	// false when no projects exist at all.
	EarliestActivity(ctx context.Context) (time.Time, bool, error)
}
