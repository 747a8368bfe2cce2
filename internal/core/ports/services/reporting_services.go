package services

import (
	"context"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/adiwira-dev/stockledger/internal/dto"
)

// ReportingSvcFacade defines the read-only aggregate queries over the
// ledger and transaction history. Empty ranges yield zero totals and empty
// lists, never errors.
type ReportingSvcFacade interface {
	// Summary returns range totals, the ending balance and the current stock
	// capital snapshot.
	Summary(ctx context.Context, rng domain.DateRange) (*domain.FinanceSummary, error)

	// CashflowByType groups ledger cash movement by transaction type.
	CashflowByType(ctx context.Context, rng domain.DateRange) ([]domain.CashflowGroup, error)

	// Trend buckets ledger entries by calendar day, ISO week or month, in
	// ascending time order.
	Trend(ctx context.Context, groupBy domain.TrendGroupBy, rng domain.DateRange) ([]domain.TrendPoint, error)

	// GrossProfit aggregates sale revenue against cost of goods sold.
	GrossProfit(ctx context.Context, rng domain.DateRange) (*domain.GrossProfitReport, error)

	// PaymentBreakdown buckets sales by CASH, TRANSFER or UNPAID.
	PaymentBreakdown(ctx context.Context, rng domain.DateRange) (*domain.PaymentBreakdown, error)

	// TopItems lists the best-selling items by revenue, up to limit
	// (non-positive limits default to 10).
	TopItems(ctx context.Context, rng domain.DateRange, limit int) ([]domain.TopItem, error)

	// Statement returns a paginated ascending ledger listing, optionally
	// filtered by a description substring.
	Statement(ctx context.Context, params dto.StatementParams) (*dto.StatementResponse, error)
}
