package queries

import (
	"context"

	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListItemsQueryHandler reads the catalog.
type ListItemsQueryHandler struct {
	db *gorm.DB
}

// NewListItemsQueryHandler creates a handler for catalog listing.
func NewListItemsQueryHandler(db *gorm.DB) ListItemsQueryHandler {
	return ListItemsQueryHandler{db: db}
}

// Handle returns every item sorted by id.
func (h ListItemsQueryHandler) Handle(ctx context.Context, query ListItemsQuery) ([]ListItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]ListItemsQueryResponse, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM items
		ORDER BY id
	`).Scan(&items).Error
	if err != nil {
		return nil, errs.NewStoreFailureError("list items", err)
	}

	return items, nil
}
