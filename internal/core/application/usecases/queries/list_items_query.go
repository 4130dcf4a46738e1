package queries

import (
	"errors"

	"kitchen/internal/pkg/guard"
)

var (
	ErrListItemsQueryIsNotConstructed = errors.New(
		"ListItemsQuery must be created via NewListItemsQuery constructor",
	)
)

// ListItemsQuery retrieves the whole catalog in ascending id order.
type ListItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewListItemsQuery creates a catalog listing query.
func NewListItemsQuery() ListItemsQuery {
	return ListItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

// ListItemsQueryResponse is one catalog row.
type ListItemsQueryResponse struct {
	ID    int64
	Name  string
	Price float64
}
