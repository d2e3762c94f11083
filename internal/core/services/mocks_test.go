package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProjectBundle(ctx context.Context, project domain.Project, expenses []domain.Expense, revenue []domain.Revenue) error {
	args := m.Called(ctx, project, expenses, revenue)
	return args.Error(0)
}

func (m *MockProjectRepository) ReplaceProjectBundle(ctx context.Context, project domain.Project, expenses []domain.Expense, revenue []domain.Revenue) error {
	args := m.Called(ctx, project, expenses, revenue)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectsWithTotals(ctx context.Context, filter domain.ProjectFilter) ([]domain.ProjectWithTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectWithTotals), args.Error(1)
}

func (m *MockProjectRepository) FindExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockProjectRepository) FindRevenueByProject(ctx context.Context, projectID string) ([]domain.Revenue, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Revenue), args.Error(1)
}

func (m *MockProjectRepository) UpdateStatuses(ctx context.Context, updates []domain.StatusUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockProjectRepository) ListStatuses(ctx context.Context) ([]domain.ProjectStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectStatus), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) MonthlyExpenseTotals(ctx context.Context, from, to time.Time) (map[time.Month]decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[time.Month]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) MonthlyRevenueTotals(ctx context.Context, from, to time.Time) (map[time.Month]decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[time.Month]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) ExpenseTotalsByProject(ctx context.Context, from, to time.Time) ([]domain.ProjectAmount, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAmount), args.Error(1)
}

func (m *MockReportingRepository) RevenueTotalsByProject(ctx context.Context, from, to time.Time) ([]domain.ProjectAmount, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAmount), args.Error(1)
}

func (m *MockReportingRepository) RevenueByPaymentMode(ctx context.Context, from, to time.Time) ([]domain.PaymentModeAmount, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentModeAmount), args.Error(1)
}

func (m *MockReportingRepository) RecentTickets(ctx context.Context, from, to time.Time, limit int) ([]domain.ProjectTicket, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectTicket), args.Error(1)
}

func (m *MockReportingRepository) EarliestActivity(ctx context.Context) (time.Time, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Bool(1), args.Error(2)
}

// --- Mock AnnualRecordRepository ---

type MockAnnualRecordRepository struct {
	mock.Mock
}

func (m *MockAnnualRecordRepository) FindRecordByID(ctx context.Context, recordID int64) (*domain.AnnualRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualRecord), args.Error(1)
}

func (m *MockAnnualRecordRepository) CreateRecordIfAbsent(ctx context.Context, record domain.AnnualRecord) (*domain.AnnualRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualRecord), args.Error(1)
}

// --- Mock AnnualRecordService ---

type MockAnnualRecordService struct {
	mock.Mock
}

func (m *MockAnnualRecordService) GetOrCreateRecord(ctx context.Context, startYear int) (*domain.AnnualRecord, error) {
	args := m.Called(ctx, startYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualRecord), args.Error(1)
}

func (m *MockAnnualRecordService) CurrentBalance(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAnnualRecordService) AnnualComparison(ctx context.Context, metric domain.BreakdownMetric) (*domain.YearComparison, error) {
	args := m.Called(ctx, metric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearComparison), args.Error(1)
}
