package dto

import (
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinancialSummaryResponse feeds the dashboard summary cards.
type FinancialSummaryResponse struct {
	AcademicYear   string          `json:"academicYear"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	NetIncome      decimal.Decimal `json:"netIncome"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// MonthlyPointResponse is one bucket of the monthly chart series.
type MonthlyPointResponse struct {
	Month    string          `json:"month"`
	Expenses decimal.Decimal `json:"expenses"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// MonthlyBreakdownResponse is the full academic-year chart series.
type MonthlyBreakdownResponse struct {
	AcademicYear string                 `json:"academicYear"`
	Months       []MonthlyPointResponse `json:"months"`
}

// ProjectAmountResponse is one bar of a per-project breakdown, with its
// height normalized against the largest entry.
type ProjectAmountResponse struct {
	ProjectID    string          `json:"projectID"`
	ProjectName  string          `json:"projectName"`
	Total        decimal.Decimal `json:"total"`
	PercentOfMax decimal.Decimal `json:"percentOfMax"`
}

// PaymentModeAmountResponse is revenue grouped by payment mode.
type PaymentModeAmountResponse struct {
	Mode  string          `json:"mode"`
	Total decimal.Decimal `json:"total"`
}

// YearComparisonResponse is a year-over-year summary card.
type YearComparisonResponse struct {
	Year          string          `json:"year"`
	PreviousYear  string          `json:"previousYear"`
	CurrentTotal  decimal.Decimal `json:"currentTotal"`
	PreviousTotal decimal.Decimal `json:"previousTotal"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// ProjectTicketResponse is one row of the recent-submissions card.
type ProjectTicketResponse struct {
	ProjectID      string `json:"projectID"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	SubmissionDate string `json:"submissionDate"`
}

// SemesterProgressResponse tracks the current semester countdown.
type SemesterProgressResponse struct {
	DaysLeft   int `json:"daysLeft"`
	TotalDays  int `json:"totalDays"`
	Percentage int `json:"percentage"`
}

// ToFinancialSummaryResponse converts a domain summary to its response shape
func ToFinancialSummaryResponse(s domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		AcademicYear:   s.Year.String(),
		TotalExpenses:  s.TotalExpenses,
		TotalRevenue:   s.TotalRevenue,
		NetIncome:      s.NetIncome,
		CurrentBalance: s.CurrentBalance,
	}
}

// ToMonthlyBreakdownResponse converts the monthly series to its response shape
func ToMonthlyBreakdownResponse(year domain.AcademicYear, points []domain.MonthlyPoint) MonthlyBreakdownResponse {
	resp := MonthlyBreakdownResponse{
		AcademicYear: year.String(),
		Months:       make([]MonthlyPointResponse, len(points)),
	}
	for i, p := range points {
		resp.Months[i] = MonthlyPointResponse{Month: p.Month, Expenses: p.Expenses, Revenue: p.Revenue}
	}
	return resp
}

// ToProjectAmountResponses converts a breakdown list, normalizing each entry
// against the largest total. The list arrives sorted descending so the first
// entry carries the maximum.
func ToProjectAmountResponses(rows []domain.ProjectAmount) []ProjectAmountResponse {
	out := make([]ProjectAmountResponse, len(rows))
	max := decimal.Zero
	if len(rows) > 0 {
		max = rows[0].Total
	}
	for i, row := range rows {
		out[i] = ProjectAmountResponse{
			ProjectID:    row.ProjectID,
			ProjectName:  row.ProjectName,
			Total:        row.Total,
			PercentOfMax: domain.PercentOfMax(row.Total, max),
		}
	}
	return out
}

// ToYearComparisonResponse converts a domain comparison to its response shape
func ToYearComparisonResponse(c domain.YearComparison) YearComparisonResponse {
	return YearComparisonResponse{
		Year:          c.Year.String(),
		PreviousYear:  c.PreviousYear.String(),
		CurrentTotal:  c.CurrentTotal,
		PreviousTotal: c.PreviousTotal,
		ChangePercent: c.ChangePercent,
	}
}

// ToProjectTicketResponses converts ticket rows to their response shape
func ToProjectTicketResponses(rows []domain.ProjectTicket) []ProjectTicketResponse {
	out := make([]ProjectTicketResponse, len(rows))
	for i, row := range rows {
		out[i] = ProjectTicketResponse{
			ProjectID:      row.ProjectID,
			Name:           row.Name,
			Status:         string(row.Status),
			SubmissionDate: row.SubmissionDate.Format("2006-01-02"),
		}
	}
	return out
}
