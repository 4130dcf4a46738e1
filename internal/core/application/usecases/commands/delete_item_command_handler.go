package commands

import (
	"context"
)

// DeleteItemCommandHandler removes catalog items. Deletion is idempotent.
type DeleteItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for catalog deletes.
func NewDeleteItemCommandHandler(uowFactory ItemUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the item without opening a transaction: it is a single statement.
func (h DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.uowFactory.Create().ItemRepository().Delete(ctx, cmd.ItemID())
}
