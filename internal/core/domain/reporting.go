package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is an optional [from, to] filter; a nil bound leaves that side
// open. All reporting queries take one.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// TrendGroupBy selects the calendar bucket width for the trend report.
type TrendGroupBy string

const (
	TrendDaily   TrendGroupBy = "day"
	TrendWeekly  TrendGroupBy = "week"
	TrendMonthly TrendGroupBy = "month"
)

// Valid reports whether g is a known grouping.
func (g TrendGroupBy) Valid() bool {
	return g == TrendDaily || g == TrendWeekly || g == TrendMonthly
}

// BucketKey returns the bucket identifier for a timestamp: the calendar day
// (YYYY-MM-DD), the Monday of the ISO week (YYYY-MM-DD), or the month
// (YYYY-MM). Keys are computed in UTC so bucket edges do not drift with the
// server timezone.
func (g TrendGroupBy) BucketKey(t time.Time) string {
	t = t.UTC()
	switch g {
	case TrendWeekly:
		// Weekday() is Sunday-based; shift to Monday-based ISO numbering.
		dayNum := int(t.Weekday())
		if dayNum == 0 {
			dayNum = 7
		}
		monday := t.AddDate(0, 0, 1-dayNum)
		return monday.Format("2006-01-02")
	case TrendMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// LedgerTotals is the raw range aggregate the summary report is built from.
type LedgerTotals struct {
	Income        int64
	Expense       int64
	EndingBalance int64 // balanceAfter of the last in-range entry, 0 when none
}

// PaymentMethodAgg is one raw grouping row of the payment breakdown query;
// Method is CASH, TRANSFER or UNPAID.
type PaymentMethodAgg struct {
	Method string
	Amount int64
	Count  int64
}

// FinanceSummary is the aggregate cash position over a date range, plus the
// point-in-time stock capital snapshot.
type FinanceSummary struct {
	TotalIncome   int64 `json:"totalIncome"`
	TotalExpense  int64 `json:"totalExpense"`
	NetCash       int64 `json:"netCash"`
	EndingBalance int64 `json:"endingBalance"`
	StockCapital  int64 `json:"stockCapital"` // sum of stock x costPrice over all items, not range-filtered
}

// CashflowGroup is the income/expense aggregate for one transaction type.
// Entries whose transaction type cannot be resolved fall under "OTHER".
type CashflowGroup struct {
	Type    string `json:"type"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
}

// TrendPoint is one time bucket of the trend report. Balance is the running
// balance after the bucket's last entry.
type TrendPoint struct {
	Period  string `json:"period"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
	Balance int64  `json:"balance"`
}

// GrossProfitReport aggregates revenue versus cost of goods sold over SALE
// transactions. MarginPct is fractional, hence decimal.
type GrossProfitReport struct {
	Income      int64           `json:"income"`
	COGS        int64           `json:"cogs"`
	GrossProfit int64           `json:"grossProfit"`
	MarginPct   decimal.Decimal `json:"marginPct"`
}

// PaymentBucket is the amount/count aggregate for one settlement method.
type PaymentBucket struct {
	Amount int64 `json:"amount"`
	Count  int64 `json:"count"`
}

// PaymentBreakdown buckets SALE transactions by how they were settled.
// Unpaid sales are counted at their full line revenue.
type PaymentBreakdown struct {
	Cash     PaymentBucket `json:"CASH"`
	Transfer PaymentBucket `json:"TRANSFER"`
	Unpaid   PaymentBucket `json:"UNPAID"`
}

// TopItem is one row of the best-sellers report, revenue-descending.
// Name falls back to the raw item ID when the item no longer exists.
type TopItem struct {
	ItemID  string `json:"itemID"`
	Name    string `json:"name"`
	Qty     int64  `json:"qty"`
	Revenue int64  `json:"revenue"`
}

// StatementRow is one ledger row of the paginated statement listing.
type StatementRow struct {
	EntryID      string    `json:"id"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Income       int64     `json:"income"`
	Expense      int64     `json:"expense"`
	BalanceAfter int64     `json:"balanceAfter"`
}
