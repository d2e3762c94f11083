package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/org_finance_app/internal/core/ports/services"
	"github.com/SscSPs/org_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AnnualRecordServiceTestSuite struct {
	suite.Suite
	mockRecords   *MockAnnualRecordRepository
	mockReporting *MockReportingRepository
	service       portssvc.AnnualRecordService
}

func (suite *AnnualRecordServiceTestSuite) SetupTest() {
	suite.mockRecords = new(MockAnnualRecordRepository)
	suite.mockReporting = new(MockReportingRepository)
	// Fixed clock: September 15, 2025 sits in the 2025-2026 academic year.
	clock := func() time.Time { return time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC) }
	suite.service = services.NewAnnualRecordService(suite.mockRecords, suite.mockReporting, services.WithAnnualRecordClock(clock))
}

func (suite *AnnualRecordServiceTestSuite) TestGetOrCreateRecord_Memoized() {
	ctx := context.Background()
	existing := &domain.AnnualRecord{
		RecordID:      20242025,
		StartingMoney: decimal.NewFromInt(1000),
		TotalExpenses: decimal.NewFromInt(300),
		TotalRevenue:  decimal.NewFromInt(500),
	}

	suite.mockRecords.On("FindRecordByID", ctx, int64(20242025)).Return(existing, nil).Once()

	record, err := suite.service.GetOrCreateRecord(ctx, 2024)

	suite.Require().NoError(err)
	suite.Equal(existing, record)
	// A hit must not trigger any aggregation work.
	suite.mockReporting.AssertNotCalled(suite.T(), "SumExpenses", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRecords.AssertExpectations(suite.T())
}

func (suite *AnnualRecordServiceTestSuite) TestGetOrCreateRecord_RejectsOpenYears() {
	ctx := context.Background()

	// September 2025 sits inside 2025-2026, so both the in-flight year and
	// anything after it must be refused before any snapshot gets written.
	for _, startYear := range []int{2025, 2026} {
		record, err := suite.service.GetOrCreateRecord(ctx, startYear)

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(record)
	}
	suite.mockRecords.AssertNotCalled(suite.T(), "CreateRecordIfAbsent", mock.Anything, mock.Anything)
	suite.mockRecords.AssertNotCalled(suite.T(), "FindRecordByID", mock.Anything, mock.Anything)
	suite.mockReporting.AssertNotCalled(suite.T(), "SumExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnnualRecordServiceTestSuite) TestGetOrCreateRecord_CarriesPreviousClose() {
	ctx := context.Background()
	target := domain.AcademicYearOf(2024)
	from, to := target.Range()

	prevRecord := &domain.AnnualRecord{
		RecordID:      20232024,
		StartingMoney: decimal.NewFromInt(1000),
		TotalExpenses: decimal.NewFromInt(300),
		TotalRevenue:  decimal.NewFromInt(500),
	}

	suite.mockRecords.On("FindRecordByID", ctx, int64(20242025)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReporting.On("EarliestActivity", ctx).Return(time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), true, nil).Once()
	suite.mockRecords.On("FindRecordByID", ctx, int64(20232024)).Return(prevRecord, nil).Once()
	suite.mockReporting.On("SumExpenses", ctx, from, to).Return(decimal.NewFromInt(200), nil).Once()
	suite.mockReporting.On("SumRevenue", ctx, from, to).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockRecords.On("CreateRecordIfAbsent", ctx, mock.MatchedBy(func(r domain.AnnualRecord) bool {
		// Starting money is 1000 + 500 - 300 carried from the prior close.
		return r.RecordID == 20242025 &&
			r.StartingMoney.Equal(decimal.NewFromInt(1200)) &&
			r.TotalExpenses.Equal(decimal.NewFromInt(200)) &&
			r.TotalRevenue.Equal(decimal.NewFromInt(500))
	})).Return(&domain.AnnualRecord{
		RecordID:      20242025,
		StartingDate:  from,
		EndingDate:    to,
		StartingMoney: decimal.NewFromInt(1200),
		TotalExpenses: decimal.NewFromInt(200),
		TotalRevenue:  decimal.NewFromInt(500),
	}, nil).Once()

	record, err := suite.service.GetOrCreateRecord(ctx, 2024)

	suite.Require().NoError(err)
	suite.True(record.StartingMoney.Equal(decimal.NewFromInt(1200)))
	suite.True(record.ClosingBalance().Equal(decimal.NewFromInt(1500)))
	suite.mockRecords.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *AnnualRecordServiceTestSuite) TestGetOrCreateRecord_ZeroBaseBeforeFirstActivity() {
	ctx := context.Background()
	target := domain.AcademicYearOf(2024)
	from, to := target.Range()

	suite.mockRecords.On("FindRecordByID", ctx, int64(20242025)).Return(nil, apperrors.ErrNotFound).Once()
	// The first recorded project lands inside the target year itself, so no
	// older snapshot is ever consulted.
	suite.mockReporting.On("EarliestActivity", ctx).Return(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), true, nil).Once()
	suite.mockReporting.On("SumExpenses", ctx, from, to).Return(decimal.NewFromInt(200), nil).Once()
	suite.mockReporting.On("SumRevenue", ctx, from, to).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockRecords.On("CreateRecordIfAbsent", ctx, mock.MatchedBy(func(r domain.AnnualRecord) bool {
		return r.RecordID == 20242025 && r.StartingMoney.IsZero()
	})).Return(&domain.AnnualRecord{
		RecordID:      20242025,
		StartingMoney: decimal.Zero,
		TotalExpenses: decimal.NewFromInt(200),
		TotalRevenue:  decimal.NewFromInt(500),
	}, nil).Once()

	record, err := suite.service.GetOrCreateRecord(ctx, 2024)

	suite.Require().NoError(err)
	suite.True(record.StartingMoney.IsZero())
	suite.mockRecords.AssertNotCalled(suite.T(), "FindRecordByID", ctx, int64(20232024))
	suite.mockRecords.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *AnnualRecordServiceTestSuite) TestGetOrCreateRecord_BuildsMissingChainForward() {
	ctx := context.Background()
	year2023 := domain.AcademicYearOf(2023)
	year2024 := domain.AcademicYearOf(2024)
	from23, to23 := year2023.Range()
	from24, to24 := year2024.Range()

	suite.mockRecords.On("FindRecordByID", ctx, int64(20242025)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReporting.On("EarliestActivity", ctx).Return(time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), true, nil).Once()
	suite.mockRecords.On("FindRecordByID", ctx, int64(20232024)).Return(nil, apperrors.ErrNotFound).Once()

	// 2023-2024 closes at 0 + 500 - 300 = 200.
	suite.mockReporting.On("SumExpenses", ctx, from23, to23).Return(decimal.NewFromInt(300), nil).Once()
	suite.mockReporting.On("SumRevenue", ctx, from23, to23).Return(decimal.NewFromInt(500), nil).Once()
	built2023 := &domain.AnnualRecord{
		RecordID:      20232024,
		StartingMoney: decimal.Zero,
		TotalExpenses: decimal.NewFromInt(300),
		TotalRevenue:  decimal.NewFromInt(500),
	}
	suite.mockRecords.On("CreateRecordIfAbsent", ctx, mock.MatchedBy(func(r domain.AnnualRecord) bool {
		return r.RecordID == 20232024 && r.StartingMoney.IsZero()
	})).Return(built2023, nil).Once()

	suite.mockReporting.On("SumExpenses", ctx, from24, to24).Return(decimal.NewFromInt(100), nil).Once()
	suite.mockReporting.On("SumRevenue", ctx, from24, to24).Return(decimal.NewFromInt(400), nil).Once()
	built2024 := &domain.AnnualRecord{
		RecordID:      20242025,
		StartingMoney: decimal.NewFromInt(200),
		TotalExpenses: decimal.NewFromInt(100),
		TotalRevenue:  decimal.NewFromInt(400),
	}
	suite.mockRecords.On("CreateRecordIfAbsent", ctx, mock.MatchedBy(func(r domain.AnnualRecord) bool {
		return r.RecordID == 20242025 && r.StartingMoney.Equal(decimal.NewFromInt(200))
	})).Return(built2024, nil).Once()

	record, err := suite.service.GetOrCreateRecord(ctx, 2024)

	suite.Require().NoError(err)
	suite.True(record.StartingMoney.Equal(decimal.NewFromInt(200)))
	suite.True(record.ClosingBalance().Equal(decimal.NewFromInt(500)))
	suite.mockRecords.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *AnnualRecordServiceTestSuite) TestCurrentBalance_CombinesFrozenAndLive() {
	ctx := context.Background()
	current := domain.AcademicYearOf(2025)
	from, to := current.Range()

	prevRecord := &domain.AnnualRecord{
		RecordID:      20242025,
		StartingMoney: decimal.NewFromInt(1000),
		TotalExpenses: decimal.NewFromInt(300),
		TotalRevenue:  decimal.NewFromInt(500),
	}

	suite.mockRecords.On("FindRecordByID", ctx, int64(20242025)).Return(prevRecord, nil).Once()
	suite.mockReporting.On("SumExpenses", ctx, from, to).Return(decimal.NewFromInt(200), nil).Once()
	suite.mockReporting.On("SumRevenue", ctx, from, to).Return(decimal.NewFromInt(500), nil).Once()

	balance, err := suite.service.CurrentBalance(ctx)

	suite.Require().NoError(err)
	// 1200 frozen close plus 500 live revenue minus 200 live expenses.
	suite.True(balance.Equal(decimal.NewFromInt(1500)), "got %s", balance)
	suite.mockRecords.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *AnnualRecordServiceTestSuite) TestAnnualComparison_Revenue() {
	ctx := context.Background()
	current := domain.AcademicYearOf(2025)
	from, to := current.Range()

	prevRecord := &domain.AnnualRecord{
		RecordID:      20242025,
		TotalExpenses: decimal.NewFromInt(300),
		TotalRevenue:  decimal.NewFromInt(400),
	}

	suite.mockRecords.On("FindRecordByID", ctx, int64(20242025)).Return(prevRecord, nil).Once()
	suite.mockReporting.On("SumExpenses", ctx, from, to).Return(decimal.NewFromInt(200), nil).Once()
	suite.mockReporting.On("SumRevenue", ctx, from, to).Return(decimal.NewFromInt(500), nil).Once()

	comparison, err := suite.service.AnnualComparison(ctx, domain.MetricRevenue)

	suite.Require().NoError(err)
	suite.Equal(2025, comparison.Year.StartYear)
	suite.Equal(2024, comparison.PreviousYear.StartYear)
	suite.True(comparison.CurrentTotal.Equal(decimal.NewFromInt(500)))
	suite.True(comparison.PreviousTotal.Equal(decimal.NewFromInt(400)))
	suite.True(comparison.ChangePercent.Equal(decimal.NewFromInt(25)))
	suite.mockRecords.AssertExpectations(suite.T())
}

func TestAnnualRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnnualRecordServiceTestSuite))
}
