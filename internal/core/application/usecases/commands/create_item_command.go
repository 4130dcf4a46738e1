package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
)

// CreateItemCommand adds a product to the catalog.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateItemCommand validates name and price.
func NewCreateItemCommand(name string, price float64) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// Name returns the item name.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Price returns the item price.
func (c CreateItemCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateItemCommand) setName(name string) error {
	if name == "" {
		return catalog.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateItemCommand) setPrice(amount float64) error {
	price, err := kernel.NewPrice(amount)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}
