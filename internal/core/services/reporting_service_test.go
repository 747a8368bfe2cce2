package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	portssvc "github.com/adiwira-dev/stockledger/internal/core/ports/services"
	"github.com/adiwira-dev/stockledger/internal/core/services"
	"github.com/adiwira-dev/stockledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

// Ensure MockReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetLedgerTotals(ctx context.Context, rng domain.DateRange) (domain.LedgerTotals, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(domain.LedgerTotals), args.Error(1)
}

func (m *MockReportingRepository) GetStockCapital(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) GetCashflowByType(ctx context.Context, rng domain.DateRange) ([]domain.CashflowGroup, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashflowGroup), args.Error(1)
}

func (m *MockReportingRepository) ListLedgerEntriesInRange(ctx context.Context, rng domain.DateRange) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockReportingRepository) GetGrossProfitData(ctx context.Context, rng domain.DateRange) (int64, int64, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) GetPaymentBreakdownData(ctx context.Context, rng domain.DateRange) ([]domain.PaymentMethodAgg, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethodAgg), args.Error(1)
}

func (m *MockReportingRepository) GetTopItems(ctx context.Context, rng domain.DateRange, limit int) ([]domain.TopItem, error) {
	args := m.Called(ctx, rng, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopItem), args.Error(1)
}

func (m *MockReportingRepository) SearchStatement(ctx context.Context, rng domain.DateRange, query string, limit, offset int) ([]domain.StatementRow, int64, error) {
	args := m.Called(ctx, rng, query, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.StatementRow), args.Get(1).(int64), args.Error(2)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func entryAt(ts time.Time, income, expense, balance int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		Income:       income,
		Expense:      expense,
		BalanceAfter: balance,
		CreatedAt:    ts,
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestSummary_Success() {
	ctx := context.Background()
	rng := domain.DateRange{}
	suite.mockRepo.On("GetLedgerTotals", ctx, rng).Return(domain.LedgerTotals{Income: 450, Expense: 1000, EndingBalance: -550}, nil).Once()
	suite.mockRepo.On("GetStockCapital", ctx).Return(int64(700), nil).Once()

	summary, err := suite.service.Summary(ctx, rng)

	suite.Require().NoError(err)
	suite.Equal(int64(450), summary.TotalIncome)
	suite.Equal(int64(1000), summary.TotalExpense)
	suite.Equal(int64(-550), summary.NetCash)
	suite.Equal(int64(-550), summary.EndingBalance)
	suite.Equal(int64(700), summary.StockCapital)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_TotalsError() {
	ctx := context.Background()
	suite.mockRepo.On("GetLedgerTotals", ctx, domain.DateRange{}).Return(domain.LedgerTotals{}, assert.AnError).Once()

	_, err := suite.service.Summary(ctx, domain.DateRange{})

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetStockCapital", mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestCashflowByType_FillsNet() {
	ctx := context.Background()
	suite.mockRepo.On("GetCashflowByType", ctx, domain.DateRange{}).Return([]domain.CashflowGroup{
		{Type: "SALE", Income: 450},
		{Type: "STOCK_IN", Expense: 1000},
	}, nil).Once()

	groups, err := suite.service.CashflowByType(ctx, domain.DateRange{})

	suite.Require().NoError(err)
	suite.Require().Len(groups, 2)
	suite.Equal(int64(450), groups[0].Net)
	suite.Equal(int64(-1000), groups[1].Net)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrend_DailyBuckets() {
	ctx := context.Background()
	day1 := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	suite.mockRepo.On("ListLedgerEntriesInRange", ctx, domain.DateRange{}).Return([]domain.LedgerEntry{
		entryAt(day1, 0, 1000, -1000),
		entryAt(day1.Add(2*time.Hour), 450, 0, -550),
		entryAt(day2, 300, 0, -250),
	}, nil).Once()

	points, err := suite.service.Trend(ctx, domain.TrendDaily, domain.DateRange{})

	suite.Require().NoError(err)
	suite.Require().Len(points, 2)
	suite.Equal("2024-03-04", points[0].Period)
	suite.Equal(int64(450), points[0].Income)
	suite.Equal(int64(1000), points[0].Expense)
	suite.Equal(int64(-550), points[0].Net)
	// Bucket balance is the running balance after the bucket's last entry.
	suite.Equal(int64(-550), points[0].Balance)
	suite.Equal("2024-03-05", points[1].Period)
	suite.Equal(int64(-250), points[1].Balance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrend_WeeklyKeysOnMonday() {
	ctx := context.Background()
	// Sunday 2024-03-10 belongs to the week starting Monday 2024-03-04.
	sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	suite.mockRepo.On("ListLedgerEntriesInRange", ctx, domain.DateRange{}).Return([]domain.LedgerEntry{
		entryAt(sunday, 100, 0, 100),
	}, nil).Once()

	points, err := suite.service.Trend(ctx, domain.TrendWeekly, domain.DateRange{})

	suite.Require().NoError(err)
	suite.Require().Len(points, 1)
	suite.Equal("2024-03-04", points[0].Period)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrend_InvalidGroupByDefaultsToDaily() {
	ctx := context.Background()
	ts := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	suite.mockRepo.On("ListLedgerEntriesInRange", ctx, domain.DateRange{}).Return([]domain.LedgerEntry{
		entryAt(ts, 50, 0, 50),
	}, nil).Once()

	points, err := suite.service.Trend(ctx, domain.TrendGroupBy("hourly"), domain.DateRange{})

	suite.Require().NoError(err)
	suite.Require().Len(points, 1)
	suite.Equal("2024-06-01", points[0].Period)
}

func (suite *ReportingServiceTestSuite) TestTrend_Empty() {
	ctx := context.Background()
	suite.mockRepo.On("ListLedgerEntriesInRange", ctx, domain.DateRange{}).Return([]domain.LedgerEntry{}, nil).Once()

	points, err := suite.service.Trend(ctx, domain.TrendMonthly, domain.DateRange{})

	suite.Require().NoError(err)
	suite.NotNil(points)
	suite.Empty(points)
}

func (suite *ReportingServiceTestSuite) TestGrossProfit_Margin() {
	ctx := context.Background()
	suite.mockRepo.On("GetGrossProfitData", ctx, domain.DateRange{}).Return(int64(450), int64(300), nil).Once()

	report, err := suite.service.GrossProfit(ctx, domain.DateRange{})

	suite.Require().NoError(err)
	suite.Equal(int64(450), report.Income)
	suite.Equal(int64(300), report.COGS)
	suite.Equal(int64(150), report.GrossProfit)
	suite.Equal("33.33", report.MarginPct.StringFixed(2))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGrossProfit_ZeroIncome() {
	ctx := context.Background()
	suite.mockRepo.On("GetGrossProfitData", ctx, domain.DateRange{}).Return(int64(0), int64(0), nil).Once()

	report, err := suite.service.GrossProfit(ctx, domain.DateRange{})

	suite.Require().NoError(err)
	suite.True(report.MarginPct.IsZero())
}

func (suite *ReportingServiceTestSuite) TestPaymentBreakdown_MapsBuckets() {
	ctx := context.Background()
	suite.mockRepo.On("GetPaymentBreakdownData", ctx, domain.DateRange{}).Return([]domain.PaymentMethodAgg{
		{Method: "CASH", Amount: 450, Count: 2},
		{Method: "TRANSFER", Amount: 600, Count: 1},
		{Method: "UNPAID", Amount: 200, Count: 1},
	}, nil).Once()

	breakdown, err := suite.service.PaymentBreakdown(ctx, domain.DateRange{})

	suite.Require().NoError(err)
	suite.Equal(int64(450), breakdown.Cash.Amount)
	suite.Equal(int64(2), breakdown.Cash.Count)
	suite.Equal(int64(600), breakdown.Transfer.Amount)
	suite.Equal(int64(200), breakdown.Unpaid.Amount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTopItems_DefaultLimit() {
	ctx := context.Background()
	suite.mockRepo.On("GetTopItems", ctx, domain.DateRange{}, 10).Return([]domain.TopItem{}, nil).Once()

	_, err := suite.service.TopItems(ctx, domain.DateRange{}, 0)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestStatement_ClampsAndWraps() {
	ctx := context.Background()
	rows := []domain.StatementRow{{EntryID: "e1", Description: "sales revenue", Income: 450, BalanceAfter: 450}}
	suite.mockRepo.On("SearchStatement", ctx, domain.DateRange{}, "sales", 20, 0).Return(rows, int64(1), nil).Once()

	resp, err := suite.service.Statement(ctx, dto.StatementParams{Query: "sales", Page: 0, Limit: -5})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.Limit)
	suite.Equal(int64(1), resp.Total)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("sales revenue", resp.Data[0].Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
