package services

import (
	"context"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/adiwira-dev/stockledger/internal/dto"
)

// TransactionWriterSvc defines the apply operation of the processor.
type TransactionWriterSvc interface {
	// Apply validates a transaction request and applies it atomically:
	// stock mutation, transaction persistence and ledger append all succeed
	// or none do. The returned transaction carries its resolved lines,
	// payment and the appended ledger entry.
	Apply(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves one transaction with lines, payment and
	// ledger entry.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a date-descending page of transactions.
	ListTransactions(ctx context.Context, page, limit int) ([]domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionWriterSvc
	TransactionReaderSvc
}
