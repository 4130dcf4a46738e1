package ports

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other systems.
// Implementations are called after commit; a failure to publish never undoes
// the change that was already stored.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, event order.CreatedEvent) error
	PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error
}
