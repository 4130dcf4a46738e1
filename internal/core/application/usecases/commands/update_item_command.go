package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrUpdateItemCommandIsNotConstructed = errors.New(
		"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
	)
)

// UpdateItemCommand replaces name and price of a catalog item.
// Orders already placed keep their own snapshots and are not affected.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64
	name   string
	price  kernel.Price

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand validates id, name and price.
func NewUpdateItemCommand(itemID int64, name string, price float64) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the item to update.
func (c UpdateItemCommand) ItemID() int64 {
	return c.itemID
}

// Name returns the new name.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Price returns the new price.
func (c UpdateItemCommand) Price() kernel.Price {
	return c.price
}

func (c *UpdateItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", itemID))
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if name == "" {
		return catalog.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateItemCommand) setPrice(amount float64) error {
	price, err := kernel.NewPrice(amount)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}
