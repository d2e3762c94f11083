package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/org_finance_app/internal/core/ports/services"
	"github.com/SscSPs/org_finance_app/internal/dto"
	"github.com/SscSPs/org_finance_app/internal/handlers"
	"github.com/SscSPs/org_finance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, req dto.SaveProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) UpdateProject(ctx context.Context, projectID string, req dto.SaveProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}
func (m *MockProjectService) GetProjectDetails(ctx context.Context, projectID string) (*domain.ProjectDetails, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectDetails), args.Error(1)
}
func (m *MockProjectService) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.ProjectWithTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectWithTotals), args.Error(1)
}
func (m *MockProjectService) ListStatuses(ctx context.Context) ([]domain.ProjectStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectStatus), args.Error(1)
}
func (m *MockProjectService) BatchUpdateStatus(ctx context.Context, updates []domain.StatusUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}
func (m *MockReportingService) MonthlyBreakdown(ctx context.Context, startYear int) (domain.AcademicYear, []domain.MonthlyPoint, error) {
	args := m.Called(ctx, startYear)
	if args.Get(1) == nil {
		return args.Get(0).(domain.AcademicYear), nil, args.Error(2)
	}
	return args.Get(0).(domain.AcademicYear), args.Get(1).([]domain.MonthlyPoint), args.Error(2)
}
func (m *MockReportingService) AcademicYearBreakdown(ctx context.Context, startYear int, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error) {
	args := m.Called(ctx, startYear, metric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAmount), args.Error(1)
}
func (m *MockReportingService) SemesterBreakdown(ctx context.Context, term domain.SemesterTerm, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error) {
	args := m.Called(ctx, term, metric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAmount), args.Error(1)
}
func (m *MockReportingService) TopProjects(ctx context.Context, startYear, n int, metric domain.BreakdownMetric) ([]domain.ProjectAmount, error) {
	args := m.Called(ctx, startYear, n, metric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectAmount), args.Error(1)
}
func (m *MockReportingService) RevenueByPaymentMode(ctx context.Context, startYear int) ([]domain.PaymentModeAmount, error) {
	args := m.Called(ctx, startYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentModeAmount), args.Error(1)
}
func (m *MockReportingService) RecentTickets(ctx context.Context) ([]domain.ProjectTicket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectTicket), args.Error(1)
}
func (m *MockReportingService) SemesterProgress(ctx context.Context) (*domain.SemesterProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SemesterProgress), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

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

var _ portssvc.AnnualRecordService = (*MockAnnualRecordService)(nil)

// --- Test Suite ---
type ProjectHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockProjects  *MockProjectService
	mockReporting *MockReportingService
	mockRecords   *MockAnnualRecordService
	jwtSecret     string
	jwtIssuer     string
}

func (suite *ProjectHandlerTestSuite) generateTestToken(userID string) string {
	return suite.generateTokenWithIssuer(userID, suite.jwtIssuer)
}

func (suite *ProjectHandlerTestSuite) generateTokenWithIssuer(userID, issuer string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.jwtIssuer = "ofa-test"

	suite.mockProjects = new(MockProjectService)
	suite.mockReporting = new(MockReportingService)
	suite.mockRecords = new(MockAnnualRecordService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		JWTIssuer:    suite.jwtIssuer,
		IsProduction: true, // keep swagger out of the test router
	}
	container := &portssvc.ServiceContainer{
		Project:      suite.mockProjects,
		Reporting:    suite.mockReporting,
		AnnualRecord: suite.mockRecords,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// --- Test Cases ---

func (suite *ProjectHandlerTestSuite) TestListProjects_PublicRead() {
	rows := []domain.ProjectWithTotals{
		{
			Project: domain.Project{
				ProjectID:          uuid.NewString(),
				Name:               "Hackathon",
				ImplementationDate: time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC),
				SubmissionDate:     time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
				Status:             domain.StatusCompleted,
			},
			TotalExpenses: decimal.NewFromInt(200),
			TotalRevenue:  decimal.NewFromInt(500),
		},
	}
	suite.mockProjects.On("ListProjects", mock.Anything, mock.MatchedBy(func(f domain.ProjectFilter) bool {
		return f.SortBy == "implementation_date" && f.SortOrder == "desc"
	})).Return(rows, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ProjectListItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Hackathon", resp[0].Name)
	suite.True(resp[0].NetIncome.Equal(decimal.NewFromInt(300)))
	suite.mockProjects.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestGetProjectDetails_NotFound() {
	projectID := uuid.NewString()
	suite.mockProjects.On("GetProjectDetails", mock.Anything, projectID).Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockProjects.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_RequiresAuth() {
	body := bytes.NewBufferString(`{"name":"Hackathon","implementationDate":"2025-09-20","status":"pending"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjects.AssertNotCalled(suite.T(), "CreateProject")
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_RejectsForeignIssuer() {
	body := bytes.NewBufferString(`{"name":"Hackathon","implementationDate":"2025-09-20","status":"pending"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTokenWithIssuer(uuid.NewString(), "some-other-app"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjects.AssertNotCalled(suite.T(), "CreateProject")
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	created := &domain.Project{
		ProjectID:          uuid.NewString(),
		Name:               "Hackathon",
		ImplementationDate: time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC),
		SubmissionDate:     time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		Status:             domain.StatusPending,
	}
	suite.mockProjects.On("CreateProject", mock.Anything, mock.MatchedBy(func(r dto.SaveProjectRequest) bool {
		return r.Name == "Hackathon" && r.Status == "pending"
	})).Return(created, nil).Once()

	body := bytes.NewBufferString(`{"name":"Hackathon","implementationDate":"2025-09-20","submissionDate":"2025-09-01","status":"pending"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProjectResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ProjectID, resp.ProjectID)
	suite.mockProjects.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestBatchUpdateStatus_ValidationFailure() {
	suite.mockProjects.On("BatchUpdateStatus", mock.Anything, mock.Anything).
		Return(apperrors.NewAppError(400, `status "archived" is not allowed`, apperrors.ErrValidation)).Once()

	body := bytes.NewBufferString(`{"updates":[{"projectID":"` + uuid.NewString() + `","status":"archived"}]}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/projects/status", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProjects.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestGetAnnualRecord_OpenYearRejected() {
	suite.mockRecords.On("GetOrCreateRecord", mock.Anything, 2025).
		Return(nil, apperrors.NewAppError(400, "academic year 2025-2026 has not closed yet", apperrors.ErrValidation)).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/annual-record/2025", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRecords.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestGetSummary_PublicRead() {
	summary := &domain.FinancialSummary{
		Year:           domain.AcademicYearOf(2025),
		TotalExpenses:  decimal.NewFromInt(200),
		TotalRevenue:   decimal.NewFromInt(500),
		NetIncome:      decimal.NewFromInt(300),
		CurrentBalance: decimal.NewFromInt(1500),
	}
	suite.mockReporting.On("Summary", mock.Anything).Return(summary, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FinancialSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-2026", resp.AcademicYear)
	suite.True(resp.CurrentBalance.Equal(decimal.NewFromInt(1500)))
	suite.mockReporting.AssertExpectations(suite.T())
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
