package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus indicates where a project sits in the organization's workflow.
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "pending"
	StatusInProgress ProjectStatus = "in progress"
	StatusApproved   ProjectStatus = "approved"
	StatusRejected   ProjectStatus = "rejected"
	StatusCompleted  ProjectStatus = "completed"
	StatusCancelled  ProjectStatus = "cancelled"
	StatusDraft      ProjectStatus = "draft"
)

var validStatuses = map[ProjectStatus]struct{}{
	StatusPending:    {},
	StatusInProgress: {},
	StatusApproved:   {},
	StatusRejected:   {},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusDraft:      {},
}

// The status board only moves projects between these four states.
var batchUpdatableStatuses = map[ProjectStatus]struct{}{
	StatusPending:    {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid reports whether s is part of the full status vocabulary.
func (s ProjectStatus) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

// IsBatchUpdatable reports whether s may be assigned through the batch
// status-update operation.
func (s ProjectStatus) IsBatchUpdatable() bool {
	_, ok := batchUpdatableStatuses[s]
	return ok
}

// Project is a single org initiative that owns expenses and revenue.
type Project struct {
	ProjectID          string        `json:"projectID"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	ImplementationDate time.Time     `json:"implementationDate"`
	SubmissionDate     time.Time     `json:"submissionDate"`
	Status             ProjectStatus `json:"status"`
}

// ProjectWithTotals is a project listing row with its aggregated amounts.
type ProjectWithTotals struct {
	Project
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// ProjectDetails is the full detail view: the project, its expense and
// revenue rows, and the derived totals.
type ProjectDetails struct {
	Project       Project         `json:"project"`
	Expenses      []Expense       `json:"expenses"`
	Revenue       []Revenue       `json:"revenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// StatusUpdate is one entry of a batch status change.
type StatusUpdate struct {
	ProjectID string        `json:"projectID"`
	Status    ProjectStatus `json:"status"`
}

// ProjectFilter narrows and orders the project listing.
type ProjectFilter struct {
	Search    string
	Status    ProjectStatus
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortOrder string
}
