package models

import "time"

// LedgerEntry is the database row for one append-only ledger record.
// Rows are strictly ordered by seq, the database-assigned append sequence,
// and never updated.
type LedgerEntry struct {
	EntryID       string    `db:"entry_id"`
	Seq           int64     `db:"seq"`
	TransactionID string    `db:"transaction_id"`
	Description   string    `db:"description"`
	Income        int64     `db:"income"`
	Expense       int64     `db:"expense"`
	BalanceAfter  int64     `db:"balance_after"`
	CreatedAt     time.Time `db:"created_at"`
}
