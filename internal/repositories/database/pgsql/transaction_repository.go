package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adiwira-dev/stockledger/internal/apperrors"
	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	"github.com/adiwira-dev/stockledger/internal/models"
	"github.com/adiwira-dev/stockledger/internal/utils/mapping"
)

// ledgerAppendLockID is the advisory lock key that serializes ledger appends.
// Every apply unit takes it before reading the prior balance, so concurrent
// transactions produce a strictly ordered, gapless running balance.
const ledgerAppendLockID = 815042

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction, line,
// payment and ledger data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction applies a transaction atomically: items are locked and
// restocked in line order, the transaction with its lines and optional
// payment is inserted, and the derived ledger entry is appended under the
// ledger advisory lock. Any failure rolls everything back.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, lines []domain.LineRequest, payment *domain.Payment) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Serialize the ledger append across concurrent apply units. Taking the
	// lock first also gives item lock acquisition a stable order relative to
	// other appliers, which keeps deadlocks out of the hot path.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ledgerAppendLockID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to acquire ledger lock", err)
	}

	// 1. Insert the transaction row.
	modelTxn := mapping.ToModelTransaction(txn)
	txnQuery := `
		INSERT INTO transactions (transaction_id, type, date, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, txnQuery,
		modelTxn.TransactionID,
		modelTxn.Type,
		modelTxn.Date,
		modelTxn.Note,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	// 2. Resolve, lock and restock each referenced item in line order.
	builtLines := make([]domain.TransactionLine, len(lines))
	for i, req := range lines {
		item, err := findItemForUpdate(ctx, tx, req.ItemID)
		if err != nil {
			return nil, err
		}

		line := domain.BuildLine(txn.Type, *item, req.Qty, req.UnitCost, req.UnitPrice)
		line.LineID = uuid.NewString()
		line.TransactionID = txn.TransactionID

		newStock := item.Stock + txn.Type.StockDelta(req.Qty)
		if newStock < 0 {
			return nil, fmt.Errorf("%w: stock not enough for %s", apperrors.ErrInsufficientStock, item.Name)
		}

		updateQuery := `
			UPDATE items
			SET stock = $2, last_updated_at = $3, last_updated_by = $4
			WHERE item_id = $1;
		`
		if _, err := tx.Exec(ctx, updateQuery, item.ItemID, newStock, txn.CreatedAt, txn.CreatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to update stock for item "+item.ItemID, err)
		}

		builtLines[i] = line
	}
	txn.Lines = builtLines

	// 3. Insert the lines as one batch.
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO transaction_lines (line_id, transaction_id, item_id, qty, unit_cost, unit_price, subtotal_cost, subtotal_sell)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, line := range builtLines {
		modelLine := mapping.ToModelTransactionLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.TransactionID,
			modelLine.ItemID,
			modelLine.Qty,
			modelLine.UnitCost,
			modelLine.UnitPrice,
			modelLine.SubtotalCost,
			modelLine.SubtotalSell,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lines for transaction "+txn.TransactionID, err)
	}

	// 4. Insert the payment, filling a zero amount with the sale total now
	// that line prices are resolved.
	if payment != nil {
		if payment.Amount == 0 {
			payment.Amount = domain.SaleTotal(builtLines)
		}
		modelPayment := mapping.ToModelPayment(*payment)
		paymentQuery := `
			INSERT INTO payments (payment_id, transaction_id, method, amount, transfer_ref)
			VALUES ($1, $2, $3, $4, $5);
		`
		_, err = tx.Exec(ctx, paymentQuery,
			modelPayment.PaymentID,
			modelPayment.TransactionID,
			modelPayment.Method,
			modelPayment.Amount,
			modelPayment.TransferRef,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to insert payment for transaction "+txn.TransactionID, err)
		}
		txn.Payment = payment
	}

	// 5. Append the derived ledger entry on top of the prior running balance.
	// The prior entry is the one with the highest append sequence. created_at
	// is stamped before the advisory lock is taken, so it can disagree with
	// append order under concurrency and must not be the order key.
	var prior int64
	err = tx.QueryRow(ctx, `
		SELECT balance_after FROM ledger_entries
		ORDER BY seq DESC
		LIMIT 1;
	`).Scan(&prior)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to read prior ledger balance", err)
	}

	income, expense := domain.LedgerAmounts(txn.Type, builtLines)
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		TransactionID: txn.TransactionID,
		Description:   txn.Type.LedgerDescription(),
		Income:        income,
		Expense:       expense,
		BalanceAfter:  domain.NextBalance(prior, income, expense),
		CreatedAt:     txn.CreatedAt,
	}
	modelEntry := mapping.ToModelLedgerEntry(entry)
	entryQuery := `
		INSERT INTO ledger_entries (entry_id, transaction_id, description, income, expense, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq;
	`
	err = tx.QueryRow(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.TransactionID,
		modelEntry.Description,
		modelEntry.Income,
		modelEntry.Expense,
		modelEntry.BalanceAfter,
		modelEntry.CreatedAt,
	).Scan(&entry.Seq)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to append ledger entry for transaction "+txn.TransactionID, err)
	}
	txn.LedgerEntry = &entry

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &txn, nil
}

// findItemForUpdate reads an item row with a row lock held for the rest of
// the transaction.
func findItemForUpdate(ctx context.Context, tx pgx.Tx, itemID string) (*domain.Item, error) {
	query := `
		SELECT item_id, name, cost_price, sell_price, stock, image_url, created_at, created_by, last_updated_at, last_updated_by
		FROM items
		WHERE item_id = $1
		FOR UPDATE;
	`
	var m models.Item
	err := tx.QueryRow(ctx, query, itemID).Scan(
		&m.ItemID,
		&m.Name,
		&m.CostPrice,
		&m.SellPrice,
		&m.Stock,
		&m.ImageURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("item " + itemID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to lock item "+itemID, err)
	}
	item := mapping.ToDomainItem(m)
	return &item, nil
}

// FindTransactionByID retrieves a transaction with its lines, payment and
// derived ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, type, date, note, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = $1;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.Type,
		&m.Date,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	if err := r.attachChildren(ctx, []*domain.Transaction{&txn}); err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListTransactions retrieves a date-descending page of transactions with
// their lines, payments and ledger entries.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, type, date, note, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.Type,
			&m.Date,
			&m.Note,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	refs := make([]*domain.Transaction, len(txns))
	for i := range txns {
		refs[i] = &txns[i]
	}
	if err := r.attachChildren(ctx, refs); err != nil {
		return nil, err
	}
	return txns, nil
}

// attachChildren loads lines, payments and ledger entries for a set of
// transactions in three batch queries.
func (r *PgxTransactionRepository) attachChildren(ctx context.Context, txns []*domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	ids := make([]string, len(txns))
	byID := make(map[string]*domain.Transaction, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
		byID[t.TransactionID] = t
		t.Lines = []domain.TransactionLine{}
	}

	lineQuery := `
		SELECT line_id, transaction_id, item_id, qty, unit_cost, unit_price, subtotal_cost, subtotal_sell
		FROM transaction_lines
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, line_id;
	`
	rows, err := r.Pool.Query(ctx, lineQuery, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query transaction lines", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m models.TransactionLine
		if err := rows.Scan(
			&m.LineID,
			&m.TransactionID,
			&m.ItemID,
			&m.Qty,
			&m.UnitCost,
			&m.UnitPrice,
			&m.SubtotalCost,
			&m.SubtotalSell,
		); err != nil {
			return apperrors.NewAppError(500, "failed to scan transaction line row", err)
		}
		if t, ok := byID[m.TransactionID]; ok {
			t.Lines = append(t.Lines, mapping.ToDomainTransactionLine(m))
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating transaction line rows", err)
	}

	paymentQuery := `
		SELECT payment_id, transaction_id, method, amount, transfer_ref
		FROM payments
		WHERE transaction_id = ANY($1);
	`
	payRows, err := r.Pool.Query(ctx, paymentQuery, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer payRows.Close()
	for payRows.Next() {
		var m models.Payment
		if err := payRows.Scan(&m.PaymentID, &m.TransactionID, &m.Method, &m.Amount, &m.TransferRef); err != nil {
			return apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		if t, ok := byID[m.TransactionID]; ok {
			payment := mapping.ToDomainPayment(m)
			t.Payment = &payment
		}
	}
	if err := payRows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating payment rows", err)
	}

	entryQuery := `
		SELECT entry_id, seq, transaction_id, description, income, expense, balance_after, created_at
		FROM ledger_entries
		WHERE transaction_id = ANY($1);
	`
	entryRows, err := r.Pool.Query(ctx, entryQuery, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer entryRows.Close()
	for entryRows.Next() {
		var m models.LedgerEntry
		if err := entryRows.Scan(&m.EntryID, &m.Seq, &m.TransactionID, &m.Description, &m.Income, &m.Expense, &m.BalanceAfter, &m.CreatedAt); err != nil {
			return apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		if t, ok := byID[m.TransactionID]; ok {
			entry := mapping.ToDomainLedgerEntry(m)
			t.LedgerEntry = &entry
		}
	}
	if err := entryRows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	return nil
}
