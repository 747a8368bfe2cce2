package dto

import (
	"time"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
)

// ReportRangeParams defines the shared date range query parameters for the
// finance reports.
type ReportRangeParams struct {
	From string `form:"from"` // Inclusive, YYYY-MM-DD or RFC3339
	To   string `form:"to"`   // Inclusive, YYYY-MM-DD or RFC3339
}

// TrendParams defines query parameters for the trend report.
type TrendParams struct {
	ReportRangeParams
	GroupBy string `form:"groupBy,default=day" binding:"omitempty,oneof=day week month"`
}

// TopItemsParams defines query parameters for the best-sellers report.
type TopItemsParams struct {
	ReportRangeParams
	Limit int `form:"limit,default=10"`
}

// StatementParams names the inputs of the paginated statement query.
type StatementParams struct {
	Range domain.DateRange
	Query string // Optional description substring filter
	Page  int
	Limit int
}

// StatementResponse wraps one page of the ledger statement.
type StatementResponse struct {
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
	Total int64                 `json:"total"`
	Data  []domain.StatementRow `json:"data"`
}

// SummaryResponse represents the finance summary report response.
type SummaryResponse struct {
	TotalIncome   int64 `json:"totalIncome"`
	TotalExpense  int64 `json:"totalExpense"`
	NetCash       int64 `json:"netCash"`
	EndingBalance int64 `json:"endingBalance"`
	StockCapital  int64 `json:"stockCapital"`
}

// ToSummaryResponse converts a domain summary to a DTO response
func ToSummaryResponse(s *domain.FinanceSummary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpense:  s.TotalExpense,
		NetCash:       s.NetCash,
		EndingBalance: s.EndingBalance,
		StockCapital:  s.StockCapital,
	}
}

// parseRangeBound accepts either a bare date or a full RFC3339 timestamp.
func parseRangeBound(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ToDateRange parses the raw range parameters. The To bound is widened to
// the end of its day when given as a bare date, so "to=2024-01-31" includes
// the whole of that day.
func (p ReportRangeParams) ToDateRange() (domain.DateRange, error) {
	var rng domain.DateRange
	if p.From != "" {
		from, err := parseRangeBound(p.From)
		if err != nil {
			return rng, err
		}
		rng.From = &from
	}
	if p.To != "" {
		to, err := parseRangeBound(p.To)
		if err != nil {
			return rng, err
		}
		if to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0 && to.Nanosecond() == 0 {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		rng.To = &to
	}
	return rng, nil
}
