package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrDeleteItemCommandIsNotConstructed = errors.New(
		"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
	)
)

// DeleteItemCommand removes a product from the catalog.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand validates the id.
func NewDeleteItemCommand(itemID int64) (DeleteItemCommand, error) {
	if itemID <= 0 {
		return DeleteItemCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"item id", fmt.Errorf("%d is not greater than 0", itemID))
	}

	return DeleteItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// ItemID returns the item to delete.
func (c DeleteItemCommand) ItemID() int64 {
	return c.itemID
}
