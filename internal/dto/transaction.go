package dto

import (
	"time"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
)

// CreateTransactionLineRequest is one requested item movement.
// Unit cost and price overrides are optional; absent means "use the
// item's current prices".
type CreateTransactionLineRequest struct {
	ItemID    string `json:"itemID" binding:"required"`
	Qty       int64  `json:"qty" binding:"required"`
	UnitCost  *int64 `json:"unitCost" binding:"omitempty,min=0"`
	UnitPrice *int64 `json:"unitPrice" binding:"omitempty,min=0"`
}

// CreatePaymentRequest is the optional settlement of a SALE.
type CreatePaymentRequest struct {
	Method      domain.PaymentMethod `json:"method" binding:"required,oneof=CASH TRANSFER"`
	Amount      *int64               `json:"amount" binding:"omitempty,min=1"` // Defaults to the sale total
	TransferRef string               `json:"transferRef"`
}

// CreateTransactionRequest defines the data needed to apply a transaction.
type CreateTransactionRequest struct {
	Type    domain.TxType                  `json:"type" binding:"required,oneof=STOCK_IN SALE REJECT ADJUST"`
	Date    *time.Time                     `json:"date"` // Defaults to now
	Note    string                         `json:"note"`
	Lines   []CreateTransactionLineRequest `json:"lines" binding:"required,min=1,dive"`
	Payment *CreatePaymentRequest          `json:"payment"`
}

// TransactionLineResponse defines the data returned for a transaction line.
type TransactionLineResponse struct {
	LineID       string `json:"lineID"`
	ItemID       string `json:"itemID"`
	Qty          int64  `json:"qty"`
	UnitCost     int64  `json:"unitCost"`
	UnitPrice    *int64 `json:"unitPrice,omitempty"`
	SubtotalCost int64  `json:"subtotalCost"`
	SubtotalSell *int64 `json:"subtotalSell,omitempty"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string `json:"paymentID"`
	Method      string `json:"method"`
	Amount      int64  `json:"amount"`
	TransferRef string `json:"transferRef,omitempty"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID      string    `json:"entryID"`
	Description  string    `json:"description"`
	Income       int64     `json:"income"`
	Expense      int64     `json:"expense"`
	BalanceAfter int64     `json:"balanceAfter"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TransactionResponse defines the combined response for a transaction with
// its lines, payment and derived ledger entry.
type TransactionResponse struct {
	TransactionID string                    `json:"transactionID"`
	Type          string                    `json:"type"`
	Date          time.Time                 `json:"date"`
	Note          string                    `json:"note,omitempty"`
	Lines         []TransactionLineResponse `json:"lines"`
	Payment       *PaymentResponse          `json:"payment,omitempty"`
	LedgerEntry   *LedgerEntryResponse      `json:"ledgerEntry,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
	CreatedBy     string                    `json:"createdBy"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// ListTransactionsResponse wraps a date-descending page of transactions.
type ListTransactionsResponse struct {
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) *LedgerEntryResponse {
	if e == nil {
		return nil
	}
	return &LedgerEntryResponse{
		EntryID:      e.EntryID,
		Description:  e.Description,
		Income:       e.Income,
		Expense:      e.Expense,
		BalanceAfter: e.BalanceAfter,
		CreatedAt:    e.CreatedAt,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	lines := make([]TransactionLineResponse, len(txn.Lines))
	for i, l := range txn.Lines {
		lines[i] = TransactionLineResponse{
			LineID:       l.LineID,
			ItemID:       l.ItemID,
			Qty:          l.Qty,
			UnitCost:     l.UnitCost,
			UnitPrice:    l.UnitPrice,
			SubtotalCost: l.SubtotalCost,
			SubtotalSell: l.SubtotalSell,
		}
	}

	var payment *PaymentResponse
	if txn.Payment != nil {
		payment = &PaymentResponse{
			PaymentID:   txn.Payment.PaymentID,
			Method:      string(txn.Payment.Method),
			Amount:      txn.Payment.Amount,
			TransferRef: txn.Payment.TransferRef,
		}
	}

	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Date:          txn.Date,
		Note:          txn.Note,
		Lines:         lines,
		Payment:       payment,
		LedgerEntry:   ToLedgerEntryResponse(txn.LedgerEntry),
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
