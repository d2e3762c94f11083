package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BreakdownMetric selects which amount a per-project breakdown ranks by.
type BreakdownMetric string

const (
	MetricExpenses BreakdownMetric = "expenses"
	MetricRevenue  BreakdownMetric = "revenue"
)

// MonthlyPoint is one bucket of the monthly chart series.
type MonthlyPoint struct {
	Month    string          `json:"month"` // 3-letter label, Aug..Jul
	Expenses decimal.Decimal `json:"expenses"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ProjectAmount is a per-project total for a breakdown list.
type ProjectAmount struct {
	ProjectID   string          `json:"projectID"`
	ProjectName string          `json:"projectName"`
	Total       decimal.Decimal `json:"total"`
}

// PaymentModeAmount is the revenue collected through one payment mode.
type PaymentModeAmount struct {
	Mode  string          `json:"mode"`
	Total decimal.Decimal `json:"total"`
}

// FinancialSummary feeds the dashboard summary cards.
type FinancialSummary struct {
	Year           AcademicYear    `json:"year"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	NetIncome      decimal.Decimal `json:"netIncome"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// ProjectTicket is one row of the recent-submissions card.
type ProjectTicket struct {
	ProjectID      string        `json:"projectID"`
	Name           string        `json:"name"`
	Status         ProjectStatus `json:"status"`
	SubmissionDate time.Time     `json:"submissionDate"`
}

// SemesterProgress tracks how far the current semester has advanced.
type SemesterProgress struct {
	DaysLeft   int `json:"daysLeft"`
	TotalDays  int `json:"totalDays"`
	Percentage int `json:"percentage"`
}

// YearComparison is a year-over-year card: the live total for the current
// academic year against the frozen snapshot of the previous one.
type YearComparison struct {
	Year          AcademicYear    `json:"year"`
	PreviousYear  AcademicYear    `json:"previousYear"`
	CurrentTotal  decimal.Decimal `json:"currentTotal"`
	PreviousTotal decimal.Decimal `json:"previousTotal"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// ChangePercent computes the year-over-year percentage change, rounded to
// two decimals. A non-positive previous total yields zero rather than a
// division by zero.
func ChangePercent(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
}

// PercentOfMax normalizes value against the largest value of a series for
// bar-style rendering. A zero max yields 0%.
func PercentOfMax(value, max decimal.Decimal) decimal.Decimal {
	if !max.IsPositive() {
		return decimal.Zero
	}
	return value.Div(max).Mul(decimal.NewFromInt(100)).Round(2)
}
