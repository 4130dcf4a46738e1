package commands

import (
	"context"
	"log/slog"
	"time"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// CreateOrderCommandHandler records a new order and its line items atomically.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// publisher receives a CreatedEvent after each successful commit.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_handler"),
		now:        time.Now,
	}
}

// Handle builds the aggregate, then writes the header and every line item in
// one transaction and returns the store-assigned id.
//
// Validation happens before the transaction is opened, so an invalid command
// never touches the store. Any failure after Begin rolls back the header
// together with the line items already written.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerName(), cmd.LineItems())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, errs.NewStoreFailureError("begin transaction", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errs.NewStoreFailureError("commit order", err)
	}

	if pubErr := h.publisher.PublishOrderCreated(ctx, order.NewCreatedEvent(aggregate, h.now())); pubErr != nil {
		h.logger.WarnContext(ctx, "order created but event was not published",
			"order_id", aggregate.ID(), "error", pubErr)
	}

	return aggregate.ID(), nil
}
