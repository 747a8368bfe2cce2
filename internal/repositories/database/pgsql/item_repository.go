package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adiwira-dev/stockledger/internal/apperrors"
	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portsrepo "github.com/adiwira-dev/stockledger/internal/core/ports/repositories"
	"github.com/adiwira-dev/stockledger/internal/models"
	"github.com/adiwira-dev/stockledger/internal/utils/mapping"
)

const foreignKeyViolation = "23503"

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for item catalogue data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

// SaveItem persists a new item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)
	query := `
		INSERT INTO items (item_id, name, cost_price, sell_price, stock, image_url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID,
		modelItem.Name,
		modelItem.CostPrice,
		modelItem.SellPrice,
		modelItem.Stock,
		modelItem.ImageURL,
		modelItem.CreatedAt,
		modelItem.CreatedBy,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert item "+modelItem.ItemID, err)
	}
	return nil
}

// FindItemByID retrieves a specific item.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `
		SELECT item_id, name, cost_price, sell_price, stock, image_url, created_at, created_by, last_updated_at, last_updated_by
		FROM items
		WHERE item_id = $1;
	`
	var m models.Item
	err := r.Pool.QueryRow(ctx, query, itemID).Scan(
		&m.ItemID,
		&m.Name,
		&m.CostPrice,
		&m.SellPrice,
		&m.Stock,
		&m.ImageURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find item "+itemID, err)
	}
	item := mapping.ToDomainItem(m)
	return &item, nil
}

// ListItems retrieves a name-ascending page of items, optionally filtered by
// a case-insensitive name substring.
func (r *PgxItemRepository) ListItems(ctx context.Context, nameQuery string, limit, offset int) ([]domain.Item, error) {
	query := `
		SELECT item_id, name, cost_price, sell_price, stock, image_url, created_at, created_by, last_updated_at, last_updated_by
		FROM items
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, escapeLike(nameQuery), limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var m models.Item
		if err := rows.Scan(
			&m.ItemID,
			&m.Name,
			&m.CostPrice,
			&m.SellPrice,
			&m.Stock,
			&m.ImageURL,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating item rows", err)
	}

	return mapping.ToDomainItemSlice(items), nil
}

// UpdateItem updates an item's catalogue fields. Stock changes only flow
// through SaveTransaction.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)
	query := `
		UPDATE items
		SET name = $2,
		    cost_price = $3,
		    sell_price = $4,
		    image_url = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID,
		modelItem.Name,
		modelItem.CostPrice,
		modelItem.SellPrice,
		modelItem.ImageURL,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update item "+modelItem.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + modelItem.ItemID + " not found for update")
	}
	return nil
}

// DeleteItem removes an item. Items referenced by transaction history hit
// the transaction_lines foreign key and surface as a conflict.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("%w: item %s is referenced by transaction history", apperrors.ErrConflict, itemID)
		}
		return apperrors.NewAppError(500, "failed to delete item "+itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + itemID + " not found for delete")
	}
	return nil
}
