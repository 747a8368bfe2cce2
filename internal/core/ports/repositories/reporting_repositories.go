package repositories

import (
	"context"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries over the
// ledger, transactions and items. Implementations must never mutate state.
type ReportingRepository interface {
	// GetLedgerTotals sums income and expense over the in-range ledger rows
	// and returns the running balance after the last of them.
	GetLedgerTotals(ctx context.Context, rng domain.DateRange) (domain.LedgerTotals, error)

	// GetStockCapital sums stock x costPrice over all items. Point-in-time
	// snapshot, never date-filtered.
	GetStockCapital(ctx context.Context) (int64, error)

	// GetCashflowByType sums income/expense per originating transaction type;
	// entries whose transaction is gone group under OTHER.
	GetCashflowByType(ctx context.Context, rng domain.DateRange) ([]domain.CashflowGroup, error)

	// ListLedgerEntriesInRange returns in-range ledger entries in ascending
	// creation order, for trend bucketing.
	ListLedgerEntriesInRange(ctx context.Context, rng domain.DateRange) ([]domain.LedgerEntry, error)

	// GetGrossProfitData sums sale revenue and cost of goods sold over
	// in-range SALE transaction lines.
	GetGrossProfitData(ctx context.Context, rng domain.DateRange) (income int64, cogs int64, err error)

	// GetPaymentBreakdownData groups in-range SALE transactions by settlement
	// method, with unpaid sales counted at their line revenue.
	GetPaymentBreakdownData(ctx context.Context, rng domain.DateRange) ([]domain.PaymentMethodAgg, error)

	// GetTopItems aggregates qty and revenue per item over in-range SALE
	// lines, revenue-descending, up to limit rows.
	GetTopItems(ctx context.Context, rng domain.DateRange, limit int) ([]domain.TopItem, error)

	// SearchStatement returns one ascending page of ledger rows matching an
	// optional case-insensitive description substring, plus the total match
	// count.
	SearchStatement(ctx context.Context, rng domain.DateRange, query string, limit, offset int) ([]domain.StatementRow, int64, error)
}
