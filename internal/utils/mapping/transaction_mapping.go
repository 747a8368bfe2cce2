package mapping

import (
	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/adiwira-dev/stockledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Lines and payment are mapped separately since they live in child tables.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          models.TxType(d.Type),
		Date:          d.Date,
		Note:          d.Note,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TxType(m.Type),
		Date:          m.Date,
		Note:          m.Note,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionLine converts a domain TransactionLine to its model
func ToModelTransactionLine(d domain.TransactionLine) models.TransactionLine {
	return models.TransactionLine{
		LineID:        d.LineID,
		TransactionID: d.TransactionID,
		ItemID:        d.ItemID,
		Qty:           d.Qty,
		UnitCost:      d.UnitCost,
		UnitPrice:     d.UnitPrice,
		SubtotalCost:  d.SubtotalCost,
		SubtotalSell:  d.SubtotalSell,
	}
}

// ToDomainTransactionLine converts a model TransactionLine to its domain form
func ToDomainTransactionLine(m models.TransactionLine) domain.TransactionLine {
	return domain.TransactionLine{
		LineID:        m.LineID,
		TransactionID: m.TransactionID,
		ItemID:        m.ItemID,
		Qty:           m.Qty,
		UnitCost:      m.UnitCost,
		UnitPrice:     m.UnitPrice,
		SubtotalCost:  m.SubtotalCost,
		SubtotalSell:  m.SubtotalSell,
	}
}

// ToDomainTransactionLineSlice converts model lines to domain lines
func ToDomainTransactionLineSlice(ms []models.TransactionLine) []domain.TransactionLine {
	lines := make([]domain.TransactionLine, len(ms))
	for i, m := range ms {
		lines[i] = ToDomainTransactionLine(m)
	}
	return lines
}

// ToModelPayment converts a domain Payment to its model
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		TransactionID: d.TransactionID,
		Method:        string(d.Method),
		Amount:        d.Amount,
		TransferRef:   d.TransferRef,
	}
}

// ToDomainPayment converts a model Payment to its domain form
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		TransactionID: m.TransactionID,
		Method:        domain.PaymentMethod(m.Method),
		Amount:        m.Amount,
		TransferRef:   m.TransferRef,
	}
}
