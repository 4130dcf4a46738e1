package queries

import (
	"context"
	"database/sql"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads orders and their line items in one round trip.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes a LEFT JOIN of orders with their line items and folds the
// rows into one response per order. Orders are sorted by id descending, line
// items by id ascending. Store errors are reported as errs.StoreFailureError.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_name,
			o.status,
			li.product_name,
			li.price
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
		ORDER BY o.id DESC, li.id ASC
	`).Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("list orders", err)
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id           int64
			customerName string
			statusName   string
			productName  sql.NullString
			price        sql.NullFloat64
		)
		if err = rows.Scan(&id, &customerName, &statusName, &productName, &price); err != nil {
			return nil, errs.NewStoreFailureError("scan order row", err)
		}

		if len(orders) == 0 || orders[len(orders)-1].ID != id {
			status, parseErr := order.ParseStatus(statusName)
			if parseErr != nil {
				return nil, errs.NewStoreFailureError("read order status", parseErr)
			}
			orders = append(orders, ListOrdersQueryResponse{
				ID:           id,
				CustomerName: customerName,
				Status:       status,
				LineItems:    make([]ListOrdersLineItem, 0),
			})
		}

		if productName.Valid {
			current := &orders[len(orders)-1]
			current.LineItems = append(current.LineItems, ListOrdersLineItem{
				ProductName: productName.String,
				Price:       price.Float64,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("list orders", err)
	}

	return orders, nil
}
