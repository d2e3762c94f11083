package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_finance_app/internal/core/ports/services"
	"github.com/SscSPs/org_finance_app/internal/dto"
	"github.com/google/uuid"
)

// projectService implements the project workflows on top of the project
// repository.
type projectService struct {
	BaseService
	repo  portsrepo.ProjectRepository
	nowFn func() time.Time
}

// ProjectServiceOption configures optional dependencies of projectService.
type ProjectServiceOption func(*projectService)

// WithProjectClock overrides the clock, mainly for tests.
func WithProjectClock(nowFn func() time.Time) ProjectServiceOption {
	return func(s *projectService) {
		s.nowFn = nowFn
	}
}

// NewProjectService creates a new project service.
func NewProjectService(repo portsrepo.ProjectRepository, opts ...ProjectServiceOption) portssvc.ProjectSvcFacade {
	s := &projectService{
		repo:  repo,
		nowFn: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// buildBundle validates the request and converts it into the domain bundle
// that gets persisted. projectID is reused on edit and freshly minted on
// create by the callers.
func (s *projectService) buildBundle(req dto.SaveProjectRequest, projectID string) (domain.Project, []domain.Expense, []domain.Revenue, error) {
	var zero domain.Project

	status := domain.ProjectStatus(req.Status)
	if !status.IsValid() {
		return zero, nil, nil, apperrors.NewAppError(400, fmt.Sprintf("invalid project status: %s", req.Status), apperrors.ErrValidation)
	}

	implementationDate, err := dto.ParseDate(req.ImplementationDate)
	if err != nil {
		return zero, nil, nil, apperrors.NewAppError(400, "invalid implementation date", apperrors.ErrValidation)
	}

	submissionDate := s.nowFn().UTC().Truncate(24 * time.Hour)
	if req.SubmissionDate != "" {
		submissionDate, err = dto.ParseDate(req.SubmissionDate)
		if err != nil {
			return zero, nil, nil, apperrors.NewAppError(400, "invalid submission date", apperrors.ErrValidation)
		}
	}

	project := domain.Project{
		ProjectID:          projectID,
		Name:               req.Name,
		Description:        req.Description,
		ImplementationDate: implementationDate,
		SubmissionDate:     submissionDate,
		Status:             status,
	}

	expenses := make([]domain.Expense, 0, len(req.Expenses))
	for i, in := range req.Expenses {
		if in.UnitPrice.IsNegative() {
			return zero, nil, nil, apperrors.NewAppError(400, fmt.Sprintf("expense %d: unit price must not be negative", i), apperrors.ErrValidation)
		}
		if in.Quantity < 0 {
			return zero, nil, nil, apperrors.NewAppError(400, fmt.Sprintf("expense %d: quantity must not be negative", i), apperrors.ErrValidation)
		}
		expenses = append(expenses, domain.Expense{
			ExpenseID:     uuid.NewString(),
			ProjectID:     projectID,
			Name:          in.Name,
			Description:   in.Description,
			StoreName:     in.StoreName,
			UnitPrice:     in.UnitPrice,
			Quantity:      in.Quantity,
			ModeOfPayment: in.ModeOfPayment,
		})
	}

	revenue := make([]domain.Revenue, 0, len(req.Revenue))
	for i, in := range req.Revenue {
		if !in.Amount.IsPositive() {
			return zero, nil, nil, apperrors.NewAppError(400, fmt.Sprintf("revenue %d: amount must be positive", i), apperrors.ErrValidation)
		}
		date, err := dto.ParseDate(in.Date)
		if err != nil {
			return zero, nil, nil, apperrors.NewAppError(400, fmt.Sprintf("revenue %d: invalid date", i), apperrors.ErrValidation)
		}
		revenue = append(revenue, domain.Revenue{
			RevenueID:     uuid.NewString(),
			ProjectID:     projectID,
			Name:          in.Name,
			Description:   in.Description,
			Amount:        in.Amount,
			ModeOfPayment: in.ModeOfPayment,
			Date:          date,
		})
	}

	return project, expenses, revenue, nil
}

// CreateProject validates and persists a full project bundle atomically.
func (s *projectService) CreateProject(ctx context.Context, req dto.SaveProjectRequest) (*domain.Project, error) {
	projectID := uuid.NewString()
	project, expenses, revenue, err := s.buildBundle(req, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveProjectBundle(ctx, project, expenses, revenue); err != nil {
		s.LogError(ctx, err, "Failed to save project bundle", slog.String("project_id", projectID))
		return nil, err
	}

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", projectID),
		slog.Int("expenses", len(expenses)),
		slog.Int("revenue", len(revenue)))
	return &project, nil
}

// UpdateProject replaces the project and its entire expense/revenue set.
func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.SaveProjectRequest) (*domain.Project, error) {
	project, expenses, revenue, err := s.buildBundle(req, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceProjectBundle(ctx, project, expenses, revenue); err != nil {
		s.LogError(ctx, err, "Failed to replace project bundle", slog.String("project_id", projectID))
		return nil, err
	}

	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	return &project, nil
}

// DeleteProject removes the project and everything it owns.
func (s *projectService) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.repo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

// GetProjectDetails returns the project with its rows and derived totals.
func (s *projectService) GetProjectDetails(ctx context.Context, projectID string) (*domain.ProjectDetails, error) {
	project, err := s.repo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.repo.FindExpensesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.FindRevenueByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	details := &domain.ProjectDetails{
		Project:  *project,
		Expenses: expenses,
		Revenue:  revenue,
	}
	for _, e := range expenses {
		details.TotalExpenses = details.TotalExpenses.Add(e.Total())
	}
	for _, r := range revenue {
		details.TotalRevenue = details.TotalRevenue.Add(r.Amount)
	}
	details.NetIncome = details.TotalRevenue.Sub(details.TotalExpenses)

	return details, nil
}

// ListProjects returns listing rows with totals, filtered and sorted.
func (s *projectService) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.ProjectWithTotals, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("invalid status filter: %s", filter.Status), apperrors.ErrValidation)
	}
	return s.repo.FindProjectsWithTotals(ctx, filter)
}

// ListStatuses returns the distinct status values currently in use.
func (s *projectService) ListStatuses(ctx context.Context) ([]domain.ProjectStatus, error) {
	return s.repo.ListStatuses(ctx)
}

// BatchUpdateStatus validates every entry before touching the database, then
// applies all updates in one transaction. One bad entry rejects the batch.
func (s *projectService) BatchUpdateStatus(ctx context.Context, updates []domain.StatusUpdate) error {
	if len(updates) == 0 {
		return apperrors.NewAppError(400, "no status updates provided", apperrors.ErrValidation)
	}

	for _, update := range updates {
		if !update.Status.IsBatchUpdatable() {
			return apperrors.NewAppError(400, fmt.Sprintf("status %q is not allowed for project %s", update.Status, update.ProjectID), apperrors.ErrValidation)
		}
	}

	if err := s.repo.UpdateStatuses(ctx, updates); err != nil {
		s.LogError(ctx, err, "Failed to apply batch status update", slog.Int("count", len(updates)))
		return err
	}

	s.LogInfo(ctx, "Batch status update applied", slog.Int("count", len(updates)))
	return nil
}
