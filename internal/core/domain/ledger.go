package domain

import (
	"fmt"
	"time"
)

// LedgerEntry is one append-only financial record derived from exactly one
// transaction, carrying the running cash balance after that transaction.
// Entries are totally ordered by Seq, the storage-assigned append sequence.
// CreatedAt is stamped when the request is accepted, which under concurrency
// can disagree with the order entries were appended in, so it is never used
// as an order key.
type LedgerEntry struct {
	EntryID       string    `json:"entryID"` // Primary Key (UUID)
	Seq           int64     `json:"seq"`     // append sequence, assigned on insert
	TransactionID string    `json:"transactionID"`
	Description   string    `json:"description"`
	Income        int64     `json:"income"`  // >= 0
	Expense       int64     `json:"expense"` // >= 0
	BalanceAfter  int64     `json:"balanceAfter"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Net is the entry's cash effect.
func (e LedgerEntry) Net() int64 {
	return e.Income - e.Expense
}

// NextBalance computes the running balance after applying income and expense
// to the prior balance.
func NextBalance(prior, income, expense int64) int64 {
	return prior + income - expense
}

// VerifyRunningBalance replays entries in their given (creation) order and
// checks the fold invariant balanceAfter[i] = balanceAfter[i-1] + income[i]
// - expense[i], with a prior balance of zero before the first entry.
func VerifyRunningBalance(entries []LedgerEntry) error {
	var prior int64
	for i, e := range entries {
		want := NextBalance(prior, e.Income, e.Expense)
		if e.BalanceAfter != want {
			return fmt.Errorf("ledger entry %s (index %d): balanceAfter is %d, want %d", e.EntryID, i, e.BalanceAfter, want)
		}
		prior = e.BalanceAfter
	}
	return nil
}
