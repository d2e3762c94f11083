package repositories

import (
	"context"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects and their
// owned expense/revenue rows. Multi-row writes are atomic: either the whole
// bundle lands or none of it does.
type ProjectRepository interface {
	// SaveProjectBundle inserts a project with its expenses and revenue in a
	// single transaction.
	SaveProjectBundle(ctx context.Context, project domain.Project, expenses []domain.Expense, revenue []domain.Revenue) error

	// ReplaceProjectBundle updates the project row and swaps its entire
	// expense/revenue set in a single transaction.
	ReplaceProjectBundle(ctx context.Context, project domain.Project, expenses []domain.Expense, revenue []domain.Revenue) error

	// DeleteProject removes the project and everything it owns in a single
	// transaction.
	DeleteProject(ctx context.Context, projectID string) error

	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectsWithTotals lists projects with aggregated expense/revenue
	// totals, filtered and ordered per the filter.
	FindProjectsWithTotals(ctx context.Context, filter domain.ProjectFilter) ([]domain.ProjectWithTotals, error)

	FindExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error)
	FindRevenueByProject(ctx context.Context, projectID string) ([]domain.Revenue, error)

	// UpdateStatuses applies all status changes in one transaction.
	UpdateStatuses(ctx context.Context, updates []domain.StatusUpdate) error

	// ListStatuses returns the distinct status values currently in use.
	ListStatuses(ctx context.Context) ([]domain.ProjectStatus, error)
}
