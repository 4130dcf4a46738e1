package commands

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is one purchased product as submitted by the client.
type OrderLine struct {
	Name  string
	Price float64
}

// CreateOrderCommand represents a customer's order submission.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Ana", []OrderLine{
//	    {Name: "Coffee", Price: 3.5},
//	    {Name: "Muffin", Price: 2.0},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	lineItems    []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the submission and converts every line into
// a line item snapshot. All problems found are returned together.
func NewCreateOrderCommand(customerName string, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setLineItems(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the name as submitted.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// LineItems returns a copy of the validated line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	items := make([]order.LineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return order.ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setLineItems(lines []OrderLine) error {
	if len(lines) == 0 {
		return order.ErrLineItemsAreRequired
	}

	items := make([]order.LineItem, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		price, err := kernel.NewPrice(line.Price)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		item, err := order.NewLineItem(line.Name, price)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if len(lineErrs) > 0 {
		return errors.Join(lineErrs...)
	}

	c.lineItems = items
	return nil
}
