package services

import (
	"context"
	"errors"
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

// itemService provides item catalogue operations. Stock never moves here.
type itemService struct {
	BaseService
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates a new item service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// CreateItem persists a new item with optional opening stock.
func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error) {
	if req.CostPrice < 0 || req.SellPrice < 0 || req.Stock < 0 {
		return nil, fmt.Errorf("%w: prices and stock must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	item := domain.Item{
		ItemID:    uuid.NewString(),
		Name:      req.Name,
		CostPrice: req.CostPrice,
		SellPrice: req.SellPrice,
		Stock:     req.Stock,
		ImageURL:  req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.LogInfo(ctx, "Item created successfully", slog.String("item_id", item.ItemID), slog.String("name", item.Name))
	return &item, nil
}

// GetItemByID retrieves a specific item.
func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find item by ID", slog.String("item_id", itemID))
		}
		return nil, fmt.Errorf("failed to find item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems retrieves a name-ascending page of items.
func (s *itemService) ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.Item, error) {
	page, limit := pagination.Clamp(params.Page, params.Limit)
	items, err := s.itemRepo.ListItems(ctx, params.Name, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// UpdateItem applies a partial update to an existing item. Stock is not
// updatable through this path.
func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, updaterUserID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item %s for update: %w", itemID, err)
	}

	updated := false
	if req.Name != nil {
		item.Name = *req.Name
		updated = true
	}
	if req.CostPrice != nil {
		if *req.CostPrice < 0 {
			return nil, fmt.Errorf("%w: costPrice must not be negative", apperrors.ErrValidation)
		}
		item.CostPrice = *req.CostPrice
		updated = true
	}
	if req.SellPrice != nil {
		if *req.SellPrice < 0 {
			return nil, fmt.Errorf("%w: sellPrice must not be negative", apperrors.ErrValidation)
		}
		item.SellPrice = *req.SellPrice
		updated = true
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No fields provided for item update", slog.String("item_id", itemID))
		return item, nil
	}

	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = updaterUserID

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to save item update", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to save item update: %w", err)
	}

	s.LogInfo(ctx, "Item updated successfully", slog.String("item_id", itemID))
	return item, nil
}

// DeleteItem removes an item. Historical transaction lines keep the raw ID.
func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete item", slog.String("item_id", itemID))
		}
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	s.LogInfo(ctx, "Item deleted successfully", slog.String("item_id", itemID))
	return nil
}
