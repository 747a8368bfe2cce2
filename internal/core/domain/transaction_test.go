package domain_test

import (
	"testing"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestTxType_ValidateQty(t *testing.T) {
	tests := []struct {
		name    string
		txType  domain.TxType
		qty     int64
		wantErr error
	}{
		{name: "sale positive qty", txType: domain.TxSale, qty: 3, wantErr: nil},
		{name: "sale zero qty", txType: domain.TxSale, qty: 0, wantErr: domain.ErrNonPositiveQty},
		{name: "sale negative qty", txType: domain.TxSale, qty: -1, wantErr: domain.ErrNonPositiveQty},
		{name: "stock in positive qty", txType: domain.TxStockIn, qty: 10, wantErr: nil},
		{name: "stock in zero qty", txType: domain.TxStockIn, qty: 0, wantErr: domain.ErrNonPositiveQty},
		{name: "reject negative qty", txType: domain.TxReject, qty: -2, wantErr: domain.ErrNonPositiveQty},
		{name: "adjust positive qty", txType: domain.TxAdjust, qty: 5, wantErr: nil},
		{name: "adjust negative qty", txType: domain.TxAdjust, qty: -5, wantErr: nil},
		{name: "adjust zero qty", txType: domain.TxAdjust, qty: 0, wantErr: domain.ErrZeroQty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txType.ValidateQty(tt.qty)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTxType_StockDelta(t *testing.T) {
	tests := []struct {
		name   string
		txType domain.TxType
		qty    int64
		want   int64
	}{
		{name: "stock in adds", txType: domain.TxStockIn, qty: 10, want: 10},
		{name: "sale subtracts", txType: domain.TxSale, qty: 3, want: -3},
		{name: "reject subtracts", txType: domain.TxReject, qty: 2, want: -2},
		{name: "adjust positive adds", txType: domain.TxAdjust, qty: 4, want: 4},
		{name: "adjust negative subtracts", txType: domain.TxAdjust, qty: -4, want: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txType.StockDelta(tt.qty))
		})
	}
}

func TestBuildLine(t *testing.T) {
	item := domain.Item{
		ItemID:    "item-1",
		Name:      "Kopi Bubuk",
		CostPrice: 100,
		SellPrice: 150,
		Stock:     10,
	}

	t.Run("sale line defaults prices from item", func(t *testing.T) {
		line := domain.BuildLine(domain.TxSale, item, 3, nil, nil)

		assert.Equal(t, "item-1", line.ItemID)
		assert.Equal(t, int64(100), line.UnitCost)
		assert.Equal(t, int64(300), line.SubtotalCost)
		if assert.NotNil(t, line.UnitPrice) {
			assert.Equal(t, int64(150), *line.UnitPrice)
		}
		if assert.NotNil(t, line.SubtotalSell) {
			assert.Equal(t, int64(450), *line.SubtotalSell)
		}
	})

	t.Run("sale line honors overrides", func(t *testing.T) {
		line := domain.BuildLine(domain.TxSale, item, 2, int64Ptr(90), int64Ptr(200))

		assert.Equal(t, int64(90), line.UnitCost)
		assert.Equal(t, int64(180), line.SubtotalCost)
		if assert.NotNil(t, line.SubtotalSell) {
			assert.Equal(t, int64(400), *line.SubtotalSell)
		}
	})

	t.Run("non-sale line drops sell-side fields", func(t *testing.T) {
		line := domain.BuildLine(domain.TxStockIn, item, 10, nil, nil)

		assert.Equal(t, int64(1000), line.SubtotalCost)
		assert.Nil(t, line.UnitPrice)
		assert.Nil(t, line.SubtotalSell)
	})
}

func TestLedgerAmounts(t *testing.T) {
	saleLines := []domain.TransactionLine{
		{Qty: 3, UnitCost: 100, SubtotalCost: 300, SubtotalSell: int64Ptr(450)},
		{Qty: 1, UnitCost: 200, SubtotalCost: 200, SubtotalSell: int64Ptr(250)},
	}
	costLines := []domain.TransactionLine{
		{Qty: 10, UnitCost: 100, SubtotalCost: 1000},
	}

	tests := []struct {
		name        string
		txType      domain.TxType
		lines       []domain.TransactionLine
		wantIncome  int64
		wantExpense int64
	}{
		{name: "sale attributes income only", txType: domain.TxSale, lines: saleLines, wantIncome: 700, wantExpense: 0},
		{name: "stock in attributes expense only", txType: domain.TxStockIn, lines: costLines, wantIncome: 0, wantExpense: 1000},
		{name: "reject moves no cash", txType: domain.TxReject, lines: costLines, wantIncome: 0, wantExpense: 0},
		{name: "adjust moves no cash", txType: domain.TxAdjust, lines: costLines, wantIncome: 0, wantExpense: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income, expense := domain.LedgerAmounts(tt.txType, tt.lines)
			assert.Equal(t, tt.wantIncome, income)
			assert.Equal(t, tt.wantExpense, expense)
		})
	}
}

func TestTxType_LedgerDescription(t *testing.T) {
	assert.Equal(t, "sales revenue", domain.TxSale.LedgerDescription())
	assert.Equal(t, "stock purchase capital", domain.TxStockIn.LedgerDescription())
	assert.Equal(t, "rejected stock (non-revenue)", domain.TxReject.LedgerDescription())
	assert.Equal(t, "stock adjustment", domain.TxAdjust.LedgerDescription())
}
