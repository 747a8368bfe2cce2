package dto

import (
	"time"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
)

// CreateItemRequest defines the data needed to create a new item.
type CreateItemRequest struct {
	Name      string `json:"name" binding:"required"`
	CostPrice int64  `json:"costPrice" binding:"min=0"`
	SellPrice int64  `json:"sellPrice" binding:"min=0"`
	Stock     int64  `json:"stock" binding:"min=0"` // Optional opening stock
	ImageURL  string `json:"imageUrl"`              // Optional
}

// UpdateItemRequest defines the data allowed for updating an item.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Stock is absent on purpose; it only moves through transactions.
type UpdateItemRequest struct {
	Name      *string `json:"name"`
	CostPrice *int64  `json:"costPrice" binding:"omitempty,min=0"`
	SellPrice *int64  `json:"sellPrice" binding:"omitempty,min=0"`
	ImageURL  *string `json:"imageUrl"`
}

// ListItemsParams defines query parameters for listing items.
type ListItemsParams struct {
	Name  string `form:"name"` // Optional substring filter
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=20"`
}

// ItemResponse defines the data returned for an item.
// Mirrors domain.Item.
type ItemResponse struct {
	ItemID        string    `json:"itemID"`
	Name          string    `json:"name"`
	CostPrice     int64     `json:"costPrice"`
	SellPrice     int64     `json:"sellPrice"`
	Stock         int64     `json:"stock"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO
func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:        item.ItemID,
		Name:          item.Name,
		CostPrice:     item.CostPrice,
		SellPrice:     item.SellPrice,
		Stock:         item.Stock,
		ImageURL:      item.ImageURL,
		CreatedAt:     item.CreatedAt,
		CreatedBy:     item.CreatedBy,
		LastUpdatedAt: item.LastUpdatedAt,
		LastUpdatedBy: item.LastUpdatedBy,
	}
}

// ToListItemResponse converts a slice of domain.Item to a slice of ItemResponse DTOs
func ToListItemResponse(items []domain.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, item := range items {
		res[i] = ToItemResponse(&item)
	}
	return res
}
