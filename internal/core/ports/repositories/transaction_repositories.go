package repositories

import (
	"context"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
)

// TransactionWriter defines the single write operation of the processor.
type TransactionWriter interface {
	// SaveTransaction applies a transaction as one atomic unit: it resolves
	// and locks every referenced item in line order, checks and writes the
	// new stock values, persists the transaction with its lines and optional
	// payment, and appends the derived ledger entry carrying the new running
	// balance. Any failure rolls the whole unit back.
	//
	// Returns apperrors.ErrNotFound when a line references a missing item and
	// apperrors.ErrInsufficientStock when a line would drive stock negative.
	SaveTransaction(ctx context.Context, txn domain.Transaction, lines []domain.LineRequest, payment *domain.Payment) (*domain.Transaction, error)
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its lines, payment and
	// derived ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a date-descending page of transactions, each
	// populated with lines, payment and ledger entry.
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error)
}

// TransactionRepositoryFacade combines the transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionWriter
	TransactionReader
}
