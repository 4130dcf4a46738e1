package commands

import (
	"context"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/pkg/errs"
)

// UpdateItemCommandHandler edits catalog items.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for catalog updates.
func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{uowFactory: uowFactory}
}

// Handle overwrites the item. An unknown id yields errs.ObjectNotFoundError.
func (h UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.RestoreItem(cmd.ItemID(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return errs.NewStoreFailureError("begin transaction", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewStoreFailureError("commit item", err)
	}

	return nil
}
