package commands

import (
	"context"
	"log/slog"
	"time"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies status changes through the order's state machine.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// publisher receives a StatusChangedEvent after each successful commit.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change_order_status_handler"),
		now:        time.Now,
	}
}

// Handle locks the order row, applies the transition and stores the new status.
// An unknown order id yields errs.ObjectNotFoundError and nothing is written.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewStoreFailureError("begin transaction", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewStoreFailureError("commit status change", err)
	}

	event := order.StatusChangedEvent{
		OrderID:    aggregate.ID(),
		From:       previous,
		To:         aggregate.Status(),
		OccurredAt: h.now(),
	}
	if pubErr := h.publisher.PublishStatusChanged(ctx, event); pubErr != nil {
		h.logger.WarnContext(ctx, "status changed but event was not published",
			"order_id", aggregate.ID(), "error", pubErr)
	}

	return nil
}
