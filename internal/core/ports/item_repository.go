package ports

import (
	"context"

	"kitchen/internal/core/domain/model/catalog"
)

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	// Add persists a new item and assigns the store-generated id.
	Add(ctx context.Context, item *catalog.Item) error

	// Update overwrites name and price of an existing item.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Update(ctx context.Context, item *catalog.Item) error

	// Delete removes the item. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id int64) error
}
