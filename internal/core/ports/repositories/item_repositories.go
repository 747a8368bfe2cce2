package repositories

import (
	"context"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
)

// ItemReader defines read operations for item data
type ItemReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves a name-ascending page of items, optionally filtered
	// by a case-insensitive name substring.
	ListItems(ctx context.Context, nameQuery string, limit, offset int) ([]domain.Item, error)
}

// ItemWriter defines write operations for item data. Stock is excluded here
// on purpose: it is mutated only inside SaveTransaction.
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItem updates an existing item's fields.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes an item. Historical transaction lines keep the raw ID.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
