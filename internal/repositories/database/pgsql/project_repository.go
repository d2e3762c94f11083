package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/org_finance_app/internal/models"
	"github.com/SscSPs/org_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data and the
// expense/revenue rows each project owns.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepository
var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

const insertExpenseQuery = `
	INSERT INTO finance.expenses (id, project_id, name, "desc", store_name, unit_price, quantity, mode_of_payment)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

const insertRevenueQuery = `
	INSERT INTO finance.revenue (id, project_id, name, "desc", amount, mode_of_payment, date)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// queueBundleInserts batches the expense and revenue inserts of one project.
func queueBundleInserts(batch *pgx.Batch, expenses []domain.Expense, revenue []domain.Revenue) {
	for _, e := range expenses {
		modelExpense := mapping.ToModelExpense(e)
		batch.Queue(insertExpenseQuery,
			modelExpense.ExpenseID,
			modelExpense.ProjectID,
			modelExpense.Name,
			modelExpense.Description,
			modelExpense.StoreName,
			modelExpense.UnitPrice,
			modelExpense.Quantity,
			modelExpense.ModeOfPayment,
		)
	}
	for _, r := range revenue {
		modelRevenue := mapping.ToModelRevenue(r)
		batch.Queue(insertRevenueQuery,
			modelRevenue.RevenueID,
			modelRevenue.ProjectID,
			modelRevenue.Name,
			modelRevenue.Description,
			modelRevenue.Amount,
			modelRevenue.ModeOfPayment,
			modelRevenue.Date,
		)
	}
}

// SaveProjectBundle inserts a project with all of its expense and revenue
// rows within a single DB transaction.
func (r *PgxProjectRepository) SaveProjectBundle(ctx context.Context, project domain.Project, expenses []domain.Expense, revenue []domain.Revenue) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	modelProject := mapping.ToModelProject(project)
	projectQuery := `
		INSERT INTO finance.projects (id, name, "desc", implementation_date, submission_date, status)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, projectQuery,
		modelProject.ProjectID,
		modelProject.Name,
		modelProject.Description,
		modelProject.ImplementationDate,
		modelProject.SubmissionDate,
		modelProject.Status,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert project "+modelProject.ProjectID, err)
	}

	batch := &pgx.Batch{}
	queueBundleInserts(batch, expenses, revenue)
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert rows for project "+modelProject.ProjectID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// ReplaceProjectBundle updates the project row and swaps its entire
// expense/revenue set within a single DB transaction.
func (r *PgxProjectRepository) ReplaceProjectBundle(ctx context.Context, project domain.Project, expenses []domain.Expense, revenue []domain.Revenue) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelProject := mapping.ToModelProject(project)
	updateQuery := `
		UPDATE finance.projects
		SET name = $2, "desc" = $3, implementation_date = $4, submission_date = $5, status = $6
		WHERE id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		modelProject.ProjectID,
		modelProject.Name,
		modelProject.Description,
		modelProject.ImplementationDate,
		modelProject.SubmissionDate,
		modelProject.Status,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update project "+modelProject.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Full replacement: drop the old set, then insert the new one.
	if _, err := tx.Exec(ctx, `DELETE FROM finance.expenses WHERE project_id = $1;`, modelProject.ProjectID); err != nil {
		return apperrors.NewAppError(500, "failed to clear expenses for project "+modelProject.ProjectID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM finance.revenue WHERE project_id = $1;`, modelProject.ProjectID); err != nil {
		return apperrors.NewAppError(500, "failed to clear revenue for project "+modelProject.ProjectID, err)
	}

	batch := &pgx.Batch{}
	queueBundleInserts(batch, expenses, revenue)
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert replacement rows for project "+modelProject.ProjectID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteProject removes the project and everything it owns within a single
// DB transaction.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM finance.expenses WHERE project_id = $1;`, projectID); err != nil {
		return apperrors.NewAppError(500, "failed to delete expenses for project "+projectID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM finance.revenue WHERE project_id = $1;`, projectID); err != nil {
		return apperrors.NewAppError(500, "failed to delete revenue for project "+projectID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM finance.projects WHERE id = $1;`, projectID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete project "+projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT id, name, "desc", implementation_date, submission_date, status
		FROM finance.projects
		WHERE id = $1;
	`
	var modelProject models.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&modelProject.ProjectID,
		&modelProject.Name,
		&modelProject.Description,
		&modelProject.ImplementationDate,
		&modelProject.SubmissionDate,
		&modelProject.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}

	domainProject := mapping.ToDomainProject(modelProject)
	return &domainProject, nil
}

// sortColumns whitelists the sortable listing columns.
var sortColumns = map[string]string{
	"name":                "p.name",
	"submission_date":     "p.submission_date",
	"implementation_date": "p.implementation_date",
	"expenses":            "total_expenses",
	"revenue":             "total_revenue",
	"net":                 "(COALESCE(r.total, 0) - COALESCE(e.total, 0))",
}

// FindProjectsWithTotals lists projects with their aggregated totals.
// Expense and revenue sums come from per-project subqueries so the two
// aggregates never multiply each other's rows.
func (r *PgxProjectRepository) FindProjectsWithTotals(ctx context.Context, filter domain.ProjectFilter) ([]domain.ProjectWithTotals, error) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf(`(p.name ILIKE $%d OR p."desc" ILIKE $%d)`, len(args), len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf(`p.status = $%d`, len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf(`p.implementation_date >= $%d`, len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf(`p.implementation_date <= $%d`, len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = sortColumns["implementation_date"]
	}
	order := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		order = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT
			p.id, p.name, p."desc", p.implementation_date, p.submission_date, p.status,
			COALESCE(e.total, 0) AS total_expenses,
			COALESCE(r.total, 0) AS total_revenue
		FROM finance.projects p
		LEFT JOIN (
			SELECT project_id, SUM(unit_price * quantity) AS total
			FROM finance.expenses GROUP BY project_id
		) e ON e.project_id = p.id
		LEFT JOIN (
			SELECT project_id, SUM(amount) AS total
			FROM finance.revenue GROUP BY project_id
		) r ON r.project_id = p.id
		%s
		ORDER BY %s %s;
	`, whereClause, sortColumn, order)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying project listing: %w", err)
	}
	defer rows.Close()

	result := []domain.ProjectWithTotals{}
	for rows.Next() {
		var modelProject models.Project
		var row domain.ProjectWithTotals
		if err := rows.Scan(
			&modelProject.ProjectID,
			&modelProject.Name,
			&modelProject.Description,
			&modelProject.ImplementationDate,
			&modelProject.SubmissionDate,
			&modelProject.Status,
			&row.TotalExpenses,
			&row.TotalRevenue,
		); err != nil {
			return nil, fmt.Errorf("error scanning project listing row: %w", err)
		}
		row.Project = mapping.ToDomainProject(modelProject)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project listing rows: %w", err)
	}

	return result, nil
}

// FindExpensesByProject retrieves all expense rows of a project, name order.
func (r *PgxProjectRepository) FindExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	query := `
		SELECT id, project_id, name, "desc", store_name, unit_price, quantity, mode_of_payment
		FROM finance.expenses
		WHERE project_id = $1
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var modelExpenses []models.Expense
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID,
			&m.ProjectID,
			&m.Name,
			&m.Description,
			&m.StoreName,
			&m.UnitPrice,
			&m.Quantity,
			&m.ModeOfPayment,
		); err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		modelExpenses = append(modelExpenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

// FindRevenueByProject retrieves all revenue rows of a project, latest first.
func (r *PgxProjectRepository) FindRevenueByProject(ctx context.Context, projectID string) ([]domain.Revenue, error) {
	query := `
		SELECT id, project_id, name, "desc", amount, mode_of_payment, date
		FROM finance.revenue
		WHERE project_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error querying revenue for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var modelRevenue []models.Revenue
	for rows.Next() {
		var m models.Revenue
		if err := rows.Scan(
			&m.RevenueID,
			&m.ProjectID,
			&m.Name,
			&m.Description,
			&m.Amount,
			&m.ModeOfPayment,
			&m.Date,
		); err != nil {
			return nil, fmt.Errorf("error scanning revenue row: %w", err)
		}
		modelRevenue = append(modelRevenue, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revenue rows: %w", err)
	}

	return mapping.ToDomainRevenueSlice(modelRevenue), nil
}

// UpdateStatuses applies every status change within a single DB transaction,
// so a failing update rolls the whole batch back.
func (r *PgxProjectRepository) UpdateStatuses(ctx context.Context, updates []domain.StatusUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `UPDATE finance.projects SET status = $2 WHERE id = $1;`
	for _, update := range updates {
		tag, err := tx.Exec(ctx, query, update.ProjectID, string(update.Status))
		if err != nil {
			return apperrors.NewAppError(500, "failed to update status for project "+update.ProjectID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}

	return r.Commit(ctx, tx)
}

// ListStatuses returns the distinct status values currently in use.
func (r *PgxProjectRepository) ListStatuses(ctx context.Context) ([]domain.ProjectStatus, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT status FROM finance.projects ORDER BY status;`)
	if err != nil {
		return nil, fmt.Errorf("error querying project statuses: %w", err)
	}
	defer rows.Close()

	result := []domain.ProjectStatus{}
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, fmt.Errorf("error scanning status row: %w", err)
		}
		result = append(result, domain.ProjectStatus(status))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status rows: %w", err)
	}

	return result, nil
}
