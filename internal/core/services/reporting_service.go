package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	portssvc "github.com/adiwira-dev/stockledger/internal/core/ports/services"
	"github.com/adiwira-dev/stockledger/internal/dto"
	"github.com/adiwira-dev/stockledger/internal/utils/pagination"
)

const defaultTopItemsLimit = 10

// reportingService implements the read-only finance reports over the ledger
// and transaction history.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Summary returns range totals, ending balance and the current stock capital.
func (s *reportingService) Summary(ctx context.Context, rng domain.DateRange) (*domain.FinanceSummary, error) {
	totals, err := s.reportingRepo.GetLedgerTotals(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve ledger totals")
		return nil, fmt.Errorf("failed to retrieve ledger totals: %w", err)
	}

	stockCapital, err := s.reportingRepo.GetStockCapital(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve stock capital")
		return nil, fmt.Errorf("failed to retrieve stock capital: %w", err)
	}

	summary := &domain.FinanceSummary{
		TotalIncome:   totals.Income,
		TotalExpense:  totals.Expense,
		NetCash:       totals.Income - totals.Expense,
		EndingBalance: totals.EndingBalance,
		StockCapital:  stockCapital,
	}

	s.LogDebug(ctx, "Finance summary generated",
		slog.Int64("total_income", summary.TotalIncome),
		slog.Int64("total_expense", summary.TotalExpense))
	return summary, nil
}

// CashflowByType groups ledger cash movement by originating transaction type.
func (s *reportingService) CashflowByType(ctx context.Context, rng domain.DateRange) ([]domain.CashflowGroup, error) {
	groups, err := s.reportingRepo.GetCashflowByType(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve cashflow data")
		return nil, fmt.Errorf("failed to retrieve cashflow data: %w", err)
	}
	for i := range groups {
		groups[i].Net = groups[i].Income - groups[i].Expense
	}
	return groups, nil
}

// Trend buckets in-range ledger entries by day, week or month. Buckets come
// out in ascending time order; Balance is the running balance after the
// bucket's last entry.
func (s *reportingService) Trend(ctx context.Context, groupBy domain.TrendGroupBy, rng domain.DateRange) ([]domain.TrendPoint, error) {
	if !groupBy.Valid() {
		groupBy = domain.TrendDaily
	}

	entries, err := s.reportingRepo.ListLedgerEntriesInRange(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries for trend")
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	points := make([]domain.TrendPoint, 0)
	index := make(map[string]int)
	for _, e := range entries {
		key := groupBy.BucketKey(e.CreatedAt)
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, domain.TrendPoint{Period: key})
		}
		points[i].Income += e.Income
		points[i].Expense += e.Expense
		// Entries arrive in creation order, so the last write wins.
		points[i].Balance = e.BalanceAfter
	}
	for i := range points {
		points[i].Net = points[i].Income - points[i].Expense
	}

	s.LogDebug(ctx, "Trend report generated",
		slog.String("group_by", string(groupBy)),
		slog.Int("entry_count", len(entries)),
		slog.Int("bucket_count", len(points)))
	return points, nil
}

// GrossProfit aggregates sale revenue against cost of goods sold.
func (s *reportingService) GrossProfit(ctx context.Context, rng domain.DateRange) (*domain.GrossProfitReport, error) {
	income, cogs, err := s.reportingRepo.GetGrossProfitData(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve gross profit data")
		return nil, fmt.Errorf("failed to retrieve gross profit data: %w", err)
	}

	report := &domain.GrossProfitReport{
		Income:      income,
		COGS:        cogs,
		GrossProfit: income - cogs,
		MarginPct:   decimal.Zero,
	}
	if income != 0 {
		report.MarginPct = decimal.NewFromInt(report.GrossProfit).
			Div(decimal.NewFromInt(income)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return report, nil
}

// PaymentBreakdown buckets sales by CASH, TRANSFER or UNPAID.
func (s *reportingService) PaymentBreakdown(ctx context.Context, rng domain.DateRange) (*domain.PaymentBreakdown, error) {
	aggs, err := s.reportingRepo.GetPaymentBreakdownData(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve payment breakdown data")
		return nil, fmt.Errorf("failed to retrieve payment breakdown data: %w", err)
	}

	breakdown := &domain.PaymentBreakdown{}
	for _, agg := range aggs {
		bucket := domain.PaymentBucket{Amount: agg.Amount, Count: agg.Count}
		switch agg.Method {
		case string(domain.PayCash):
			breakdown.Cash = bucket
		case string(domain.PayTransfer):
			breakdown.Transfer = bucket
		default:
			breakdown.Unpaid = bucket
		}
	}
	return breakdown, nil
}

// TopItems lists best-selling items by revenue, up to limit rows.
func (s *reportingService) TopItems(ctx context.Context, rng domain.DateRange, limit int) ([]domain.TopItem, error) {
	if limit <= 0 {
		limit = defaultTopItemsLimit
	}
	items, err := s.reportingRepo.GetTopItems(ctx, rng, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve top items")
		return nil, fmt.Errorf("failed to retrieve top items: %w", err)
	}
	return items, nil
}

// Statement returns a paginated ascending ledger listing.
func (s *reportingService) Statement(ctx context.Context, params dto.StatementParams) (*dto.StatementResponse, error) {
	page, limit := pagination.Clamp(params.Page, params.Limit)

	rows, total, err := s.reportingRepo.SearchStatement(ctx, params.Range, params.Query, limit, pagination.Offset(page, limit))
	if err != nil {
		s.LogError(ctx, err, "Failed to search ledger statement")
		return nil, fmt.Errorf("failed to search ledger statement: %w", err)
	}

	return &dto.StatementResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  rows,
	}, nil
}
