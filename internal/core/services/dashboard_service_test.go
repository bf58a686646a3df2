package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/core/services"
)

// --- Mock DashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetPeriodTotals(ctx context.Context, filter domain.TransactionFilter) (domain.PeriodTotals, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.PeriodTotals), args.Error(1)
}

func (m *MockDashboardRepository) GetPriorBalance(ctx context.Context, filter domain.TransactionFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDashboardRepository) GetCategoryBreakdown(ctx context.Context, filter domain.TransactionFilter) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, filter)
	var totals []domain.CategoryTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.CategoryTotal)
	}
	return totals, args.Error(1)
}

func (m *MockDashboardRepository) GetDailyFlows(ctx context.Context, filter domain.TransactionFilter) ([]domain.DailyFlow, error) {
	args := m.Called(ctx, filter)
	var flows []domain.DailyFlow
	if args.Get(0) != nil {
		flows = args.Get(0).([]domain.DailyFlow)
	}
	return flows, args.Error(1)
}

func (m *MockDashboardRepository) FindTransactionsByType(ctx context.Context, filter domain.TransactionFilter, txnType domain.TransactionType) (domain.PaginatedTransactions, error) {
	args := m.Called(ctx, filter, txnType)
	return args.Get(0).(domain.PaginatedTransactions), args.Error(1)
}

func (m *MockDashboardRepository) FindTransactionsForExport(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

// --- Test Suite ---
type DashboardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDashboardRepository
	service  portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDashboardRepository)
	suite.service = services.NewDashboardService(suite.mockRepo)
}

func testFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		Period: domain.Period{
			Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC),
		},
		RequesterID:   "user-1",
		RequesterRole: domain.RoleAdmin,
		SortBy:        domain.SortByDate,
		SortOrder:     domain.SortDesc,
		Page:          1,
		Limit:         10,
	}
}

func (suite *DashboardServiceTestSuite) TestBuildReport_Success() {
	filter := testFilter()

	totals := domain.PeriodTotals{
		TotalEntradas: decimal.NewFromInt(500),
		TotalSaidas:   decimal.NewFromInt(200),
	}
	prior := decimal.NewFromInt(1000)
	despesas := []domain.CategoryTotal{
		{Category: domain.CategoryMarket, Total: decimal.NewFromInt(200)},
	}
	flows := []domain.DailyFlow{
		{Day: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Entradas: decimal.NewFromInt(500), Saidas: decimal.Zero},
		{Day: time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), Entradas: decimal.Zero, Saidas: decimal.NewFromInt(200)},
	}
	entradas := domain.PaginatedTransactions{Total: 1, Page: 1, Limit: 10}
	saidas := domain.PaginatedTransactions{Total: 1, Page: 1, Limit: 10}

	suite.mockRepo.On("GetPeriodTotals", mock.Anything, filter).Return(totals, nil).Once()
	suite.mockRepo.On("GetPriorBalance", mock.Anything, filter).Return(prior, nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", mock.Anything, filter).Return(despesas, nil).Once()
	suite.mockRepo.On("GetDailyFlows", mock.Anything, filter).Return(flows, nil).Once()
	suite.mockRepo.On("FindTransactionsByType", mock.Anything, filter, domain.Entrada).Return(entradas, nil).Once()
	suite.mockRepo.On("FindTransactionsByType", mock.Anything, filter, domain.Saida).Return(saidas, nil).Once()

	report, err := suite.service.BuildReport(context.Background(), filter)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(filter.Period, report.Period)
	suite.True(report.SaldoPeriodo().Equal(decimal.NewFromInt(300)))
	suite.True(report.SaldoAtual().Equal(decimal.NewFromInt(1300)))
	suite.Equal(despesas, report.Despesas)
	suite.Equal(entradas, report.Entradas)
	suite.Equal(saidas, report.Saidas)

	// The fold seeds the cumulative balance with the prior balance.
	suite.Require().Len(report.Fluxo.SaldoAcumulado, 2)
	suite.True(report.Fluxo.SaldoAcumulado[0].Equal(decimal.NewFromInt(1500)))
	suite.True(report.Fluxo.SaldoAcumulado[1].Equal(decimal.NewFromInt(1300)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestBuildReport_EmptyPeriod() {
	filter := testFilter()

	suite.mockRepo.On("GetPeriodTotals", mock.Anything, filter).Return(domain.PeriodTotals{TotalEntradas: decimal.Zero, TotalSaidas: decimal.Zero}, nil).Once()
	suite.mockRepo.On("GetPriorBalance", mock.Anything, filter).Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockRepo.On("GetCategoryBreakdown", mock.Anything, filter).Return([]domain.CategoryTotal{}, nil).Once()
	suite.mockRepo.On("GetDailyFlows", mock.Anything, filter).Return([]domain.DailyFlow{}, nil).Once()
	suite.mockRepo.On("FindTransactionsByType", mock.Anything, filter, domain.Entrada).Return(domain.PaginatedTransactions{Page: 1, Limit: 10}, nil).Once()
	suite.mockRepo.On("FindTransactionsByType", mock.Anything, filter, domain.Saida).Return(domain.PaginatedTransactions{Page: 1, Limit: 10}, nil).Once()

	report, err := suite.service.BuildReport(context.Background(), filter)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.SaldoPeriodo().IsZero())
	suite.True(report.MargemLucro().IsZero())
	suite.True(report.SaldoAtual().Equal(decimal.NewFromInt(1000)))
	suite.Empty(report.Fluxo.Labels)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestBuildReport_QueryFailureFailsWholeReport() {
	filter := testFilter()
	expectedErr := assert.AnError

	suite.mockRepo.On("GetPeriodTotals", mock.Anything, filter).Return(domain.PeriodTotals{}, nil).Maybe()
	suite.mockRepo.On("GetPriorBalance", mock.Anything, filter).Return(decimal.Zero, expectedErr).Once()
	suite.mockRepo.On("GetCategoryBreakdown", mock.Anything, filter).Return([]domain.CategoryTotal{}, nil).Maybe()
	suite.mockRepo.On("GetDailyFlows", mock.Anything, filter).Return([]domain.DailyFlow{}, nil).Maybe()
	suite.mockRepo.On("FindTransactionsByType", mock.Anything, filter, mock.Anything).Return(domain.PaginatedTransactions{}, nil).Maybe()

	report, err := suite.service.BuildReport(context.Background(), filter)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
