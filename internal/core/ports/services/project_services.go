package services

import (
	"context"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/SscSPs/org_finance_app/internal/dto"
)

// ProjectSvcFacade defines the operations for managing projects and their
// owned expense/revenue rows.
type ProjectSvcFacade interface {
	// CreateProject validates and persists a full project bundle atomically.
	CreateProject(ctx context.Context, req dto.SaveProjectRequest) (*domain.Project, error)

	// UpdateProject replaces the project and its entire expense/revenue set
	// atomically. Used by the edit flow.
	UpdateProject(ctx context.Context, projectID string, req dto.SaveProjectRequest) (*domain.Project, error)

	// DeleteProject removes the project and cascades to its rows.
	DeleteProject(ctx context.Context, projectID string) error

	// GetProjectDetails returns the project, its rows, and derived totals.
	GetProjectDetails(ctx context.Context, projectID string) (*domain.ProjectDetails, error)

	// ListProjects returns listing rows with totals, filtered and sorted.
	ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.ProjectWithTotals, error)

	// ListStatuses returns the distinct status values currently in use.
	ListStatuses(ctx context.Context) ([]domain.ProjectStatus, error)

	// BatchUpdateStatus validates every entry against the status-board
	// vocabulary before applying all updates in one transaction.
	BatchUpdateStatus(ctx context.Context, updates []domain.StatusUpdate) error
}
