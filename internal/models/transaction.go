package models

import "time"

// TxType mirrors domain.TxType at the persistence layer.
type TxType string

const (
	TxStockIn TxType = "STOCK_IN"
	TxSale    TxType = "SALE"
	TxReject  TxType = "REJECT"
	TxAdjust  TxType = "ADJUST"
)

// Transaction is the database row for one business event. Lines and the
// optional payment live in child tables and are written in the same database
// transaction as the parent row.
type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	Type          TxType    `db:"type"`
	Date          time.Time `db:"date"`
	Note          string    `db:"note"`
	AuditFields
}

// TransactionLine is the database row for one item movement within a transaction.
// unit_price and subtotal_sell are null for non-SALE transactions.
type TransactionLine struct {
	LineID        string `db:"line_id"`
	TransactionID string `db:"transaction_id"`
	ItemID        string `db:"item_id"`
	Qty           int64  `db:"qty"`
	UnitCost      int64  `db:"unit_cost"`
	UnitPrice     *int64 `db:"unit_price"`
	SubtotalCost  int64  `db:"subtotal_cost"`
	SubtotalSell  *int64 `db:"subtotal_sell"`
}

// Payment is the database row for a SALE settlement, 0:1 with its transaction.
type Payment struct {
	PaymentID     string `db:"payment_id"`
	TransactionID string `db:"transaction_id"`
	Method        string `db:"method"`
	Amount        int64  `db:"amount"`
	TransferRef   string `db:"transfer_ref"`
}
