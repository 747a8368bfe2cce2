package domain_test

import (
	"sort"
	"testing"
	"time"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestVerifyRunningBalance(t *testing.T) {
	t.Run("empty log is consistent", func(t *testing.T) {
		assert.NoError(t, domain.VerifyRunningBalance(nil))
	})

	t.Run("consistent fold passes", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			{EntryID: "e1", Expense: 1000, BalanceAfter: -1000},
			{EntryID: "e2", Income: 450, BalanceAfter: -550},
			{EntryID: "e3", Income: 300, BalanceAfter: -250},
		}
		assert.NoError(t, domain.VerifyRunningBalance(entries))
	})

	t.Run("broken fold is reported with the offending entry", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			{EntryID: "e1", Expense: 1000, BalanceAfter: -1000},
			{EntryID: "e2", Income: 450, BalanceAfter: -500}, // should be -550
		}
		err := domain.VerifyRunningBalance(entries)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "e2")
	})
}

// Two writers can stamp CreatedAt before either reaches the append point, so
// the entry with the later timestamp may be appended first. The fold holds in
// append (Seq) order and seeing it break when replayed by timestamp is what
// makes Seq, not CreatedAt, the total order key.
func TestVerifyRunningBalance_AppendOrderNotTimestampOrder(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		{EntryID: "b", Seq: 1, Income: 450, BalanceAfter: 450, CreatedAt: base.Add(time.Millisecond)},
		{EntryID: "a", Seq: 2, Expense: 1000, BalanceAfter: -550, CreatedAt: base},
		{EntryID: "c", Seq: 3, Income: 300, BalanceAfter: -250, CreatedAt: base.Add(2 * time.Millisecond)},
	}

	assert.NoError(t, domain.VerifyRunningBalance(entries))

	byTimestamp := append([]domain.LedgerEntry{}, entries...)
	sort.Slice(byTimestamp, func(i, j int) bool {
		return byTimestamp[i].CreatedAt.Before(byTimestamp[j].CreatedAt)
	})
	assert.Error(t, domain.VerifyRunningBalance(byTimestamp))
}

func TestNextBalance(t *testing.T) {
	assert.Equal(t, int64(-1000), domain.NextBalance(0, 0, 1000))
	assert.Equal(t, int64(-550), domain.NextBalance(-1000, 450, 0))
	assert.Equal(t, int64(0), domain.NextBalance(0, 0, 0))
}

func TestLedgerEntry_Net(t *testing.T) {
	assert.Equal(t, int64(450), domain.LedgerEntry{Income: 450}.Net())
	assert.Equal(t, int64(-1000), domain.LedgerEntry{Expense: 1000}.Net())
}
