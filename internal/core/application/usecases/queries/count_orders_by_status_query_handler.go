package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// CountOrdersByStatusQueryHandler groups orders by status.
type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByStatusQueryHandler creates a handler for backlog summaries.
func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle returns a count for every status of the vocabulary, zero included.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[order.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Total  int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS total
		FROM orders
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStoreFailureError("count orders by status", err)
	}

	counts := make(map[order.Status]int64, len(order.Statuses()))
	for _, s := range order.Statuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		status, parseErr := order.ParseStatus(row.Status)
		if parseErr != nil {
			return nil, errs.NewStoreFailureError("read order status", parseErr)
		}
		counts[status] = row.Total
	}

	return counts, nil
}
