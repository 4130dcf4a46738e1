package commands

import (
	"context"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/pkg/errs"
)

// CreateItemCommandHandler adds products to the catalog.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for catalog inserts.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{uowFactory: uowFactory}
}

// Handle stores the item and returns its new id.
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	item, err := catalog.NewItem(cmd.Name(), cmd.Price())
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

	if err = uow.ItemRepository().Add(ctx, item); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errs.NewStoreFailureError("commit item", err)
	}

	return item.ID(), nil
}
