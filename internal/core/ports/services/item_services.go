package services

import (
	"context"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	"github.com/adiwira-dev/stockledger/internal/dto"
)

// ItemReaderSvc defines read operations for items.
type ItemReaderSvc interface {
	// GetItemByID retrieves a specific item.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves a name-ascending page of items filtered by an
	// optional name substring.
	ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.Item, error)
}

// ItemWriterSvc defines write operations for items. None of these touch
// stock movements; those belong to the transaction processor.
type ItemWriterSvc interface {
	// CreateItem persists a new item.
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error)

	// UpdateItem applies a partial update to an existing item.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, updaterUserID string) (*domain.Item, error)

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemSvcFacade combines all item service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
