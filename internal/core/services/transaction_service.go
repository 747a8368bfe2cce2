package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adiwira-dev/stockledger/internal/apperrors"
	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	portssvc "github.com/adiwira-dev/stockledger/internal/core/ports/services"
	"github.com/adiwira-dev/stockledger/internal/dto"
	"github.com/adiwira-dev/stockledger/internal/utils/pagination"
)

// transactionService implements the transaction processor on top of the
// transaction repository, which owns the atomic apply unit.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateRequest checks the request against the per-type rules before any
// item is resolved: quantity rules per line and payment applicability.
func (s *transactionService) validateRequest(req dto.CreateTransactionRequest) error {
	if !req.Type.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, string(req.Type))
	}
	if len(req.Lines) == 0 {
		return fmt.Errorf("%w: transaction requires at least one line", apperrors.ErrValidation)
	}
	for i, line := range req.Lines {
		if line.ItemID == "" {
			return fmt.Errorf("%w: line %d: itemID is required", apperrors.ErrValidation, i)
		}
		if err := req.Type.ValidateQty(line.Qty); err != nil {
			return fmt.Errorf("%w: line %d: %s", apperrors.ErrValidation, i, err.Error())
		}
	}
	if req.Payment != nil {
		if req.Type != domain.TxSale {
			return fmt.Errorf("%w: payment is only allowed on SALE transactions", apperrors.ErrValidation)
		}
		if !req.Payment.Method.Valid() {
			return fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, string(req.Payment.Method))
		}
		if req.Payment.Amount != nil && *req.Payment.Amount <= 0 {
			return fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
		}
	}
	return nil
}

// Apply validates and applies a transaction: stock movement, persistence and
// the derived ledger append happen in one atomic repository call.
func (s *transactionService) Apply(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if err := s.validateRequest(req); err != nil {
		s.LogDebug(ctx, "Transaction request rejected", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		Date:          date,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	lines := make([]domain.LineRequest, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.LineRequest{
			ItemID:    l.ItemID,
			Qty:       l.Qty,
			UnitCost:  l.UnitCost,
			UnitPrice: l.UnitPrice,
		}
	}

	var payment *domain.Payment
	if req.Payment != nil {
		payment = &domain.Payment{
			PaymentID:     uuid.NewString(),
			TransactionID: txn.TransactionID,
			Method:        req.Payment.Method,
			TransferRef:   req.Payment.TransferRef,
		}
		if req.Payment.Amount != nil {
			payment.Amount = *req.Payment.Amount
		}
		// A zero amount is filled with the sale total once line prices
		// are resolved inside the repository.
	}

	applied, err := s.txnRepo.SaveTransaction(ctx, txn, lines, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to apply transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("type", string(req.Type)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction applied successfully",
		slog.String("transaction_id", applied.TransactionID),
		slog.String("type", string(applied.Type)),
		slog.Int("line_count", len(applied.Lines)))
	return applied, nil
}

// GetTransactionByID retrieves a transaction with its lines, payment and
// derived ledger entry.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a date-descending page of transactions.
func (s *transactionService) ListTransactions(ctx context.Context, page, limit int) ([]domain.Transaction, error) {
	page, limit = pagination.Clamp(page, limit)
	txns, err := s.txnRepo.ListTransactions(ctx, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
