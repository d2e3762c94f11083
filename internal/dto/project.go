package dto

import (
	"time"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseInput is one expense line of a create/edit project payload.
type ExpenseInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	StoreName     string          `json:"storeName"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int64           `json:"quantity"`
	ModeOfPayment string          `json:"modeOfPayment" binding:"required"`
}

// RevenueInput is one revenue line of a create/edit project payload.
type RevenueInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	ModeOfPayment string          `json:"modeOfPayment" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// SaveProjectRequest is the full-project payload shared by the create and
// edit flows: the project plus its complete expense and revenue sets.
type SaveProjectRequest struct {
	Name               string         `json:"name" binding:"required"`
	Description        string         `json:"description"`
	ImplementationDate string         `json:"implementationDate" binding:"required,datetime=2006-01-02"`
	SubmissionDate     string         `json:"submissionDate" binding:"omitempty,datetime=2006-01-02"`
	Status             string         `json:"status" binding:"required"`
	Expenses           []ExpenseInput `json:"expenses" binding:"dive"`
	Revenue            []RevenueInput `json:"revenue" binding:"dive"`
}

// StatusUpdateInput is one entry of a batch status update.
type StatusUpdateInput struct {
	ProjectID string `json:"projectID" binding:"required,uuid"`
	Status    string `json:"status" binding:"required"`
}

// BatchStatusUpdateRequest carries the status board's pending changes.
type BatchStatusUpdateRequest struct {
	Updates []StatusUpdateInput `json:"updates" binding:"required,min=1,dive"`
}

// ProjectResponse is a single project in API responses.
type ProjectResponse struct {
	ProjectID          string `json:"projectID"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	ImplementationDate string `json:"implementationDate"`
	SubmissionDate     string `json:"submissionDate"`
	Status             string `json:"status"`
}

// ProjectListItemResponse is one row of the project listing.
type ProjectListItemResponse struct {
	ProjectResponse
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// ExpenseResponse is one expense row of the project detail view.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	StoreName     string          `json:"storeName,omitempty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int64           `json:"quantity"`
	ModeOfPayment string          `json:"modeOfPayment"`
	Total         decimal.Decimal `json:"total"`
}

// RevenueResponse is one revenue row of the project detail view.
type RevenueResponse struct {
	RevenueID     string          `json:"revenueID"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	ModeOfPayment string          `json:"modeOfPayment"`
	Date          string          `json:"date"`
}

// ProjectDetailsResponse is the full project detail view.
type ProjectDetailsResponse struct {
	Project       ProjectResponse   `json:"project"`
	Expenses      []ExpenseResponse `json:"expenses"`
	Revenue       []RevenueResponse `json:"revenue"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	TotalRevenue  decimal.Decimal   `json:"totalRevenue"`
	NetIncome     decimal.Decimal   `json:"netIncome"`
}

// ToProjectResponse converts a domain Project to its response shape
func ToProjectResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:          p.ProjectID,
		Name:               p.Name,
		Description:        p.Description,
		ImplementationDate: p.ImplementationDate.Format("2006-01-02"),
		SubmissionDate:     p.SubmissionDate.Format("2006-01-02"),
		Status:             string(p.Status),
	}
}

// ToProjectListResponse converts listing rows to their response shape
func ToProjectListResponse(rows []domain.ProjectWithTotals) []ProjectListItemResponse {
	out := make([]ProjectListItemResponse, len(rows))
	for i, row := range rows {
		out[i] = ProjectListItemResponse{
			ProjectResponse: ToProjectResponse(row.Project),
			TotalExpenses:   row.TotalExpenses,
			TotalRevenue:    row.TotalRevenue,
			NetIncome:       row.TotalRevenue.Sub(row.TotalExpenses),
		}
	}
	return out
}

// ToProjectDetailsResponse converts domain ProjectDetails to its response shape
func ToProjectDetailsResponse(d domain.ProjectDetails) ProjectDetailsResponse {
	resp := ProjectDetailsResponse{
		Project:       ToProjectResponse(d.Project),
		Expenses:      make([]ExpenseResponse, len(d.Expenses)),
		Revenue:       make([]RevenueResponse, len(d.Revenue)),
		TotalExpenses: d.TotalExpenses,
		TotalRevenue:  d.TotalRevenue,
		NetIncome:     d.NetIncome,
	}
	for i, e := range d.Expenses {
		resp.Expenses[i] = ExpenseResponse{
			ExpenseID:     e.ExpenseID,
			Name:          e.Name,
			Description:   e.Description,
			StoreName:     e.StoreName,
			UnitPrice:     e.UnitPrice,
			Quantity:      e.Quantity,
			ModeOfPayment: e.ModeOfPayment,
			Total:         e.Total(),
		}
	}
	for i, r := range d.Revenue {
		resp.Revenue[i] = RevenueResponse{
			RevenueID:     r.RevenueID,
			Name:          r.Name,
			Description:   r.Description,
			Amount:        r.Amount,
			ModeOfPayment: r.ModeOfPayment,
			Date:          r.Date.Format("2006-01-02"),
		}
	}
	return resp
}

// ParseDate parses the YYYY-MM-DD wire format used for all date fields.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
