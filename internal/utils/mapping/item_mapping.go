package mapping

import (
	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/adiwira-dev/stockledger/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:      d.ItemID,
		Name:        d.Name,
		CostPrice:   d.CostPrice,
		SellPrice:   d.SellPrice,
		Stock:       d.Stock,
		ImageURL:    d.ImageURL,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:      m.ItemID,
		Name:        m.Name,
		CostPrice:   m.CostPrice,
		SellPrice:   m.SellPrice,
		Stock:       m.Stock,
		ImageURL:    m.ImageURL,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainItemSlice converts a slice of model Items to domain Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	items := make([]domain.Item, len(ms))
	for i, m := range ms {
		items[i] = ToDomainItem(m)
	}
	return items
}
