package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	"github.com/adiwira-dev/stockledger/internal/models"
	"github.com/adiwira-dev/stockledger/internal/utils/mapping"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// rangeClause appends optional inclusive bounds on a timestamp column to the
// argument list and returns the matching SQL fragment.
func rangeClause(col string, rng domain.DateRange, args *[]interface{}) string {
	clause := ""
	if rng.From != nil {
		*args = append(*args, *rng.From)
		clause += " AND " + col + " >= $" + strconv.Itoa(len(*args))
	}
	if rng.To != nil {
		*args = append(*args, *rng.To)
		clause += " AND " + col + " <= $" + strconv.Itoa(len(*args))
	}
	return clause
}

// GetLedgerTotals sums income and expense over in-range ledger rows and
// returns the running balance after the last of them.
func (r *reportingRepository) GetLedgerTotals(ctx context.Context, rng domain.DateRange) (domain.LedgerTotals, error) {
	var totals domain.LedgerTotals

	args := []interface{}{}
	filter := rangeClause("created_at", rng, &args)

	sumQuery := `
		SELECT COALESCE(SUM(income), 0), COALESCE(SUM(expense), 0)
		FROM ledger_entries
		WHERE 1=1` + filter
	if err := r.Pool.QueryRow(ctx, sumQuery, args...).Scan(&totals.Income, &totals.Expense); err != nil {
		return totals, fmt.Errorf("error querying ledger totals: %w", err)
	}

	// The ending balance comes from the last in-range row in append order.
	lastQuery := `
		SELECT balance_after
		FROM ledger_entries
		WHERE 1=1` + filter + `
		ORDER BY seq DESC
		LIMIT 1`
	rows, err := r.Pool.Query(ctx, lastQuery, args...)
	if err != nil {
		return totals, fmt.Errorf("error querying ending balance: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&totals.EndingBalance); err != nil {
			return totals, fmt.Errorf("error scanning ending balance: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return totals, fmt.Errorf("error iterating ending balance rows: %w", err)
	}

	return totals, nil
}

// GetStockCapital sums stock x cost price over all items.
func (r *reportingRepository) GetStockCapital(ctx context.Context) (int64, error) {
	var capital int64
	query := `SELECT COALESCE(SUM(stock * cost_price), 0) FROM items;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&capital); err != nil {
		return 0, fmt.Errorf("error querying stock capital: %w", err)
	}
	return capital, nil
}

// GetCashflowByType sums income and expense per originating transaction
// type. Entries whose transaction no longer resolves group under OTHER.
func (r *reportingRepository) GetCashflowByType(ctx context.Context, rng domain.DateRange) ([]domain.CashflowGroup, error) {
	args := []interface{}{}
	query := `
		SELECT
			COALESCE(t.type, 'OTHER') AS tx_type,
			COALESCE(SUM(e.income), 0) AS total_income,
			COALESCE(SUM(e.expense), 0) AS total_expense
		FROM ledger_entries e
		LEFT JOIN transactions t ON e.transaction_id = t.transaction_id
		WHERE 1=1` + rangeClause("e.created_at", rng, &args) + `
		GROUP BY tx_type
		ORDER BY tx_type;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying cashflow data: %w", err)
	}
	defer rows.Close()

	result := []domain.CashflowGroup{}
	for rows.Next() {
		var g domain.CashflowGroup
		if err := rows.Scan(&g.Type, &g.Income, &g.Expense); err != nil {
			return nil, fmt.Errorf("error scanning cashflow row: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cashflow rows: %w", err)
	}

	return result, nil
}

// ListLedgerEntriesInRange returns in-range ledger entries in append order.
func (r *reportingRepository) ListLedgerEntriesInRange(ctx context.Context, rng domain.DateRange) ([]domain.LedgerEntry, error) {
	args := []interface{}{}
	query := `
		SELECT entry_id, seq, transaction_id, description, income, expense, balance_after, created_at
		FROM ledger_entries
		WHERE 1=1` + rangeClause("created_at", rng, &args) + `
		ORDER BY seq ASC;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(&m.EntryID, &m.Seq, &m.TransactionID, &m.Description, &m.Income, &m.Expense, &m.BalanceAfter, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning ledger entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}

	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// GetGrossProfitData sums sale revenue and cost of goods sold over in-range
// SALE transaction lines.
func (r *reportingRepository) GetGrossProfitData(ctx context.Context, rng domain.DateRange) (int64, int64, error) {
	args := []interface{}{}
	query := `
		SELECT
			COALESCE(SUM(l.subtotal_sell), 0) AS income,
			COALESCE(SUM(l.subtotal_cost), 0) AS cogs
		FROM transaction_lines l
		JOIN transactions t ON l.transaction_id = t.transaction_id
		WHERE t.type = 'SALE'` + rangeClause("t.date", rng, &args) + `;
	`
	var income, cogs int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&income, &cogs); err != nil {
		return 0, 0, fmt.Errorf("error querying gross profit data: %w", err)
	}
	return income, cogs, nil
}

// GetPaymentBreakdownData groups in-range SALE transactions by settlement
// method. Paid sales count at their payment amount, unpaid ones at their
// full line revenue.
func (r *reportingRepository) GetPaymentBreakdownData(ctx context.Context, rng domain.DateRange) ([]domain.PaymentMethodAgg, error) {
	args := []interface{}{}
	query := `
		SELECT
			COALESCE(p.method, 'UNPAID') AS method,
			COALESCE(SUM(CASE WHEN p.payment_id IS NULL THEN s.revenue ELSE p.amount END), 0) AS amount,
			COUNT(*) AS txn_count
		FROM transactions t
		LEFT JOIN payments p ON p.transaction_id = t.transaction_id
		JOIN (
			SELECT transaction_id, COALESCE(SUM(subtotal_sell), 0) AS revenue
			FROM transaction_lines
			GROUP BY transaction_id
		) s ON s.transaction_id = t.transaction_id
		WHERE t.type = 'SALE'` + rangeClause("t.date", rng, &args) + `
		GROUP BY method
		ORDER BY method;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying payment breakdown data: %w", err)
	}
	defer rows.Close()

	result := []domain.PaymentMethodAgg{}
	for rows.Next() {
		var agg domain.PaymentMethodAgg
		if err := rows.Scan(&agg.Method, &agg.Amount, &agg.Count); err != nil {
			return nil, fmt.Errorf("error scanning payment breakdown row: %w", err)
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment breakdown rows: %w", err)
	}

	return result, nil
}

// GetTopItems aggregates qty and revenue per item over in-range SALE lines,
// revenue-descending. Deleted items fall back to their raw ID as the name.
func (r *reportingRepository) GetTopItems(ctx context.Context, rng domain.DateRange, limit int) ([]domain.TopItem, error) {
	args := []interface{}{}
	filter := rangeClause("t.date", rng, &args)
	args = append(args, limit)
	query := `
		SELECT
			l.item_id,
			COALESCE(i.name, l.item_id) AS item_name,
			SUM(l.qty) AS total_qty,
			COALESCE(SUM(l.subtotal_sell), 0) AS revenue
		FROM transaction_lines l
		JOIN transactions t ON l.transaction_id = t.transaction_id
		LEFT JOIN items i ON i.item_id = l.item_id
		WHERE t.type = 'SALE'` + filter + `
		GROUP BY l.item_id, i.name
		ORDER BY revenue DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying top items: %w", err)
	}
	defer rows.Close()

	result := []domain.TopItem{}
	for rows.Next() {
		var item domain.TopItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Qty, &item.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning top item row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top item rows: %w", err)
	}

	return result, nil
}

// SearchStatement returns one ascending page of ledger rows matching an
// optional case-insensitive description substring, plus the total count.
func (r *reportingRepository) SearchStatement(ctx context.Context, rng domain.DateRange, query string, limit, offset int) ([]domain.StatementRow, int64, error) {
	args := []interface{}{escapeLike(query)}
	filter := `WHERE ($1 = '' OR description ILIKE '%' || $1 || '%')` + rangeClause("created_at", rng, &args)

	countQuery := `SELECT COUNT(*) FROM ledger_entries ` + filter
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting statement rows: %w", err)
	}

	args = append(args, limit, offset)
	pageQuery := `
		SELECT entry_id, created_at, description, income, expense, balance_after
		FROM ledger_entries ` + filter + `
		ORDER BY seq ASC
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;
	`
	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying statement rows: %w", err)
	}
	defer rows.Close()

	result := []domain.StatementRow{}
	for rows.Next() {
		var row domain.StatementRow
		if err := rows.Scan(&row.EntryID, &row.Date, &row.Description, &row.Income, &row.Expense, &row.BalanceAfter); err != nil {
			return nil, 0, fmt.Errorf("error scanning statement row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating statement rows: %w", err)
	}

	return result, total, nil
}
