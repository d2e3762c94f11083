package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for the dashboard
// aggregation queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// SumExpenses totals expense amounts for projects implemented inside the
// window. Expenses count regardless of project status.
func (r *PgxReportingRepository) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(e.unit_price * e.quantity), 0)
		FROM finance.expenses e
		JOIN finance.projects p ON p.id = e.project_id
		WHERE p.implementation_date >= $1 AND p.implementation_date <= $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing expenses: %w", err)
	}
	return total, nil
}

// SumRevenue totals revenue received inside the window. Only revenue of
// completed projects counts as realized.
func (r *PgxReportingRepository) SumRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(rv.amount), 0)
		FROM finance.revenue rv
		JOIN finance.projects p ON p.id = rv.project_id
		WHERE rv.date >= $1 AND rv.date <= $2
		  AND p.status = 'completed';
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing revenue: %w", err)
	}
	return total, nil
}

func scanMonthTotals(rows pgx.Rows) (map[time.Month]decimal.Decimal, error) {
	defer rows.Close()
	result := make(map[time.Month]decimal.Decimal)
	for rows.Next() {
		var month int
		var total decimal.Decimal
		if err := rows.Scan(&month, &total); err != nil {
			return nil, fmt.Errorf("error scanning monthly total row: %w", err)
		}
		result[time.Month(month)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", err)
	}
	return result, nil
}

// MonthlyExpenseTotals groups expense totals by the calendar month of the
// parent project's implementation date.
func (r *PgxReportingRepository) MonthlyExpenseTotals(ctx context.Context, from, to time.Time) (map[time.Month]decimal.Decimal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM p.implementation_date)::int AS month,
		       COALESCE(SUM(e.unit_price * e.quantity), 0) AS total
		FROM finance.expenses e
		JOIN finance.projects p ON p.id = e.project_id
		WHERE p.implementation_date >= $1 AND p.implementation_date <= $2
		GROUP BY month;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly expense totals: %w", err)
	}
	return scanMonthTotals(rows)
}

// MonthlyRevenueTotals groups completed-project revenue by the calendar
// month of the revenue date.
func (r *PgxReportingRepository) MonthlyRevenueTotals(ctx context.Context, from, to time.Time) (map[time.Month]decimal.Decimal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM rv.date)::int AS month,
		       COALESCE(SUM(rv.amount), 0) AS total
		FROM finance.revenue rv
		JOIN finance.projects p ON p.id = rv.project_id
		WHERE rv.date >= $1 AND rv.date <= $2
		  AND p.status = 'completed'
		GROUP BY month;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly revenue totals: %w", err)
	}
	return scanMonthTotals(rows)
}

func scanProjectAmounts(rows pgx.Rows) ([]domain.ProjectAmount, error) {
	defer rows.Close()
	result := []domain.ProjectAmount{}
	for rows.Next() {
		var row domain.ProjectAmount
		if err := rows.Scan(&row.ProjectID, &row.ProjectName, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning project amount row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project amount rows: %w", err)
	}
	return result, nil
}

// ExpenseTotalsByProject ranks projects by expense total inside the window,
// descending, skipping projects with nothing spent.
func (r *PgxReportingRepository) ExpenseTotalsByProject(ctx context.Context, from, to time.Time) ([]domain.ProjectAmount, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(e.unit_price * e.quantity), 0) AS total
		FROM finance.projects p
		JOIN finance.expenses e ON e.project_id = p.id
		WHERE p.implementation_date >= $1 AND p.implementation_date <= $2
		GROUP BY p.id, p.name
		HAVING SUM(e.unit_price * e.quantity) > 0
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying expense totals by project: %w", err)
	}
	return scanProjectAmounts(rows)
}

// RevenueTotalsByProject ranks completed projects by realized revenue inside
// the window, descending, skipping projects with nothing received.
func (r *PgxReportingRepository) RevenueTotalsByProject(ctx context.Context, from, to time.Time) ([]domain.ProjectAmount, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(rv.amount), 0) AS total
		FROM finance.projects p
		JOIN finance.revenue rv ON rv.project_id = p.id
		WHERE rv.date >= $1 AND rv.date <= $2
		  AND p.status = 'completed'
		GROUP BY p.id, p.name
		HAVING SUM(rv.amount) > 0
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying revenue totals by project: %w", err)
	}
	return scanProjectAmounts(rows)
}

// RevenueByPaymentMode groups completed-project revenue by payment mode,
// largest first.
func (r *PgxReportingRepository) RevenueByPaymentMode(ctx context.Context, from, to time.Time) ([]domain.PaymentModeAmount, error) {
	query := `
		SELECT rv.mode_of_payment, COALESCE(SUM(rv.amount), 0) AS total
		FROM finance.revenue rv
		JOIN finance.projects p ON p.id = rv.project_id
		WHERE rv.date >= $1 AND rv.date <= $2
		  AND p.status = 'completed'
		GROUP BY rv.mode_of_payment
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying revenue by payment mode: %w", err)
	}
	defer rows.Close()

	result := []domain.PaymentModeAmount{}
	for rows.Next() {
		var row domain.PaymentModeAmount
		if err := rows.Scan(&row.Mode, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning payment mode row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment mode rows: %w", err)
	}
	return result, nil
}

// RecentTickets lists the most recently submitted projects inside the window.
func (r *PgxReportingRepository) RecentTickets(ctx context.Context, from, to time.Time, limit int) ([]domain.ProjectTicket, error) {
	query := `
		SELECT id, name, status, submission_date
		FROM finance.projects
		WHERE submission_date >= $1 AND submission_date <= $2
		ORDER BY submission_date DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent tickets: %w", err)
	}
	defer rows.Close()

	result := []domain.ProjectTicket{}
	for rows.Next() {
		var row domain.ProjectTicket
		var status string
		if err := rows.Scan(&row.ProjectID, &row.Name, &status, &row.SubmissionDate); err != nil {
			return nil, fmt.Errorf("error scanning ticket row: %w", err)
		}
		row.Status = domain.ProjectStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket rows: %w", err)
	}
	return result, nil
}

// EarliestActivity returns the oldest implementation date on record. ok is
// false for an empty projects table, which lets the carry-forward chain stop
// before its depth cap.
func (r *PgxReportingRepository) EarliestActivity(ctx context.Context) (time.Time, bool, error) {
	// MIN over an empty table yields a single NULL row, hence the pointer.
	var earliest *time.Time
	err := r.Pool.QueryRow(ctx, `SELECT MIN(implementation_date) FROM finance.projects;`).Scan(&earliest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("error querying earliest activity: %w", err)
	}
	if earliest == nil {
		return time.Time{}, false, nil
	}
	return *earliest, true, nil
}
