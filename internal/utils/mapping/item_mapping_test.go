package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/adiwira-dev/stockledger/internal/models"
	"github.com/adiwira-dev/stockledger/internal/utils/mapping"
)

// Items created without an image must map to the column's empty-string
// default, never to a NULL parameter.
func TestToModelItem_NoImage(t *testing.T) {
	m := mapping.ToModelItem(domain.Item{ItemID: "item-1", Name: "Kopi", CostPrice: 500, SellPrice: 800})

	assert.Equal(t, "", m.ImageURL)
	assert.Equal(t, "item-1", m.ItemID)
	assert.Equal(t, "Kopi", m.Name)
}

func TestItemMapping_RoundTrip(t *testing.T) {
	d := domain.Item{
		ItemID:    "item-2",
		Name:      "Teh",
		CostPrice: 300,
		SellPrice: 500,
		Stock:     12,
		ImageURL:  "https://cdn.example.com/teh.png",
	}

	back := mapping.ToDomainItem(mapping.ToModelItem(d))
	assert.Equal(t, d, back)
}

func TestToDomainItem_EmptyImage(t *testing.T) {
	d := mapping.ToDomainItem(models.Item{ItemID: "item-3", Name: "Gula", ImageURL: ""})
	assert.Equal(t, "", d.ImageURL)
}
