package domain

import (
	"errors"
	"fmt"
	"time"
)

// TxType enumerates the four kinds of stock transactions.
type TxType string

const (
	TxStockIn TxType = "STOCK_IN"
	TxSale    TxType = "SALE"
	TxReject  TxType = "REJECT"
	TxAdjust  TxType = "ADJUST"
)

// ErrZeroQty and ErrNonPositiveQty are the per-type quantity rule violations.
var (
	ErrZeroQty        = errors.New("qty must not be zero for ADJUST")
	ErrNonPositiveQty = errors.New("qty must be positive for SALE, STOCK_IN and REJECT")
)

// Valid reports whether t is one of the four known transaction types.
func (t TxType) Valid() bool {
	switch t {
	case TxStockIn, TxSale, TxReject, TxAdjust:
		return true
	}
	return false
}

// ValidateQty enforces the quantity rule for this transaction type:
// ADJUST accepts any non-zero quantity (negative decreases stock), the
// other types require a strictly positive quantity.
func (t TxType) ValidateQty(qty int64) error {
	if t == TxAdjust {
		if qty == 0 {
			return ErrZeroQty
		}
		return nil
	}
	if qty <= 0 {
		return ErrNonPositiveQty
	}
	return nil
}

// StockDelta returns the signed stock movement a line quantity causes under
// this transaction type.
func (t TxType) StockDelta(qty int64) int64 {
	switch t {
	case TxStockIn, TxAdjust:
		return qty
	case TxSale, TxReject:
		return -qty
	}
	return 0
}

// LedgerDescription is the fixed human-readable label stamped on the ledger
// entry derived from a transaction of this type.
func (t TxType) LedgerDescription() string {
	switch t {
	case TxSale:
		return "sales revenue"
	case TxStockIn:
		return "stock purchase capital"
	case TxReject:
		return "rejected stock (non-revenue)"
	case TxAdjust:
		return "stock adjustment"
	}
	return string(t)
}

// PaymentMethod enumerates how a sale was settled.
type PaymentMethod string

const (
	PayCash     PaymentMethod = "CASH"
	PayTransfer PaymentMethod = "TRANSFER"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PayCash || m == PayTransfer
}

// TransactionLine is one item-quantity movement within a transaction.
// UnitPrice and SubtotalSell are populated only for SALE transactions.
type TransactionLine struct {
	LineID        string `json:"lineID"`
	TransactionID string `json:"transactionID"`
	ItemID        string `json:"itemID"`
	Qty           int64  `json:"qty"`
	UnitCost      int64  `json:"unitCost"`
	UnitPrice     *int64 `json:"unitPrice,omitempty"`
	SubtotalCost  int64  `json:"subtotalCost"`
	SubtotalSell  *int64 `json:"subtotalSell,omitempty"`
}

// Payment records how a SALE transaction was settled. It has no lifecycle of
// its own outside its parent transaction.
type Payment struct {
	PaymentID     string        `json:"paymentID"`
	TransactionID string        `json:"transactionID"`
	Method        PaymentMethod `json:"method"`
	Amount        int64         `json:"amount"` // positive
	TransferRef   string        `json:"transferRef,omitempty"`
}

// Transaction is one business event (stock receipt, sale, reject or
// adjustment) composed of one or more lines and, for sales, an optional
// payment. Transactions are immutable once created.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	Type          TxType            `json:"type"`
	Date          time.Time         `json:"date"`
	Note          string            `json:"note,omitempty"`
	Lines         []TransactionLine `json:"lines"`
	Payment       *Payment          `json:"payment,omitempty"`
	LedgerEntry   *LedgerEntry      `json:"ledgerEntry,omitempty"` // populated on reads when requested
	AuditFields
}

// LineRequest names an item movement before the item's prices are resolved.
// Overrides are optional; nil means "use the item's current price".
type LineRequest struct {
	ItemID    string
	Qty       int64
	UnitCost  *int64
	UnitPrice *int64
}

// BuildLine resolves a requested line against the referenced item: unit cost
// and price default to the item's prices unless the request overrides them,
// and subtotals are computed per the transaction type. Sell-side fields are
// kept only for SALE.
func BuildLine(t TxType, item Item, qty int64, unitCostOverride, unitPriceOverride *int64) TransactionLine {
	unitCost := item.CostPrice
	if unitCostOverride != nil {
		unitCost = *unitCostOverride
	}
	unitPrice := item.SellPrice
	if unitPriceOverride != nil {
		unitPrice = *unitPriceOverride
	}

	line := TransactionLine{
		ItemID:       item.ItemID,
		Qty:          qty,
		UnitCost:     unitCost,
		SubtotalCost: unitCost * qty,
	}
	if t == TxSale {
		price := unitPrice
		subtotalSell := unitPrice * qty
		line.UnitPrice = &price
		line.SubtotalSell = &subtotalSell
	}
	return line
}

// LedgerAmounts derives the cash attribution of a transaction: only sales
// produce income and only stock purchases produce expense. Rejects and
// adjustments move stock but not recorded cash, by policy.
func LedgerAmounts(t TxType, lines []TransactionLine) (income int64, expense int64) {
	switch t {
	case TxSale:
		for _, l := range lines {
			if l.SubtotalSell != nil {
				income += *l.SubtotalSell
			}
		}
	case TxStockIn:
		for _, l := range lines {
			expense += l.SubtotalCost
		}
	}
	return income, expense
}

// SaleTotal is the revenue total of a SALE transaction's lines.
func SaleTotal(lines []TransactionLine) int64 {
	var total int64
	for _, l := range lines {
		if l.SubtotalSell != nil {
			total += *l.SubtotalSell
		}
	}
	return total
}

// String implements fmt.Stringer for log output.
func (t TxType) String() string { return string(t) }

var _ fmt.Stringer = TxType("")
