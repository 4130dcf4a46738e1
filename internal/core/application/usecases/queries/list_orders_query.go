// Package queries contains read-only operations over the order and catalog stores.
// Queries bypass the aggregates and read rows with raw SQL through GORM.
package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves every order together with its line items,
// newest order first.
//
// Example:
//
//	query := NewListOrdersQuery()
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("#%d %s [%s] %d items\n", o.ID, o.CustomerName, o.Status, len(o.LineItems))
//	}
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the order board.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one order with its line items in insertion order.
// LineItems is never nil: an order without stored lines has an empty slice.
type ListOrdersQueryResponse struct {
	ID           int64
	CustomerName string
	Status       order.Status
	LineItems    []ListOrdersLineItem
}

// ListOrdersLineItem is the snapshot of one purchased product.
type ListOrdersLineItem struct {
	ProductName string
	Price       float64
}
