package order

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCustomerNameIsRequired is returned for a blank customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrLineItemsAreRequired is returned when an order is created without line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")
	// ErrIDIsAlreadyAssigned is returned when the store tries to number an order twice.
	ErrIDIsAlreadyAssigned = errs.NewValueIsInvalidErrorWithCause("order id", errors.New("id is already assigned"))
)

// Order is the aggregate root for a customer's purchase.
//
// Order follows these invariants:
//   - The customer name is non-blank (stored trimmed)
//   - A new order has at least one line item and starts in Pending
//   - The status is always a member of the vocabulary
//   - The id is assigned once, by the store, when the order is first persisted
//   - Line items never change after construction
type Order struct {
	// id is the store-assigned identifier (0 until persisted)
	id int64
	// customerName is the name the order is called out with
	customerName string
	// status is the current fulfillment state
	status Status
	// lineItems are the purchased product snapshots
	lineItems []LineItem
	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a Pending order for customerName with the given line items.
// Every violated rule is reported, joined with errors.Join.
//
// Example:
//
//	coffee, _ := order.NewLineItem("Coffee", kernel.MustNewPrice(3.5))
//	muffin, _ := order.NewLineItem("Muffin", kernel.MustNewPrice(2.0))
//	o, err := order.NewOrder("Ana", []order.LineItem{coffee, muffin})
//	if err != nil {
//	    // blank name, no items or an unconstructed item
//	}
func NewOrder(customerName string, lineItems []LineItem) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerName(customerName),
		order.setLineItems(lineItems, true),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order read back from the store.
// Unlike NewOrder it accepts an empty line item list, so that an order whose
// items were removed outside the application can still be listed.
func RestoreOrder(id int64, customerName string, status Status, lineItems []LineItem) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setStatus(status),
		order.setLineItems(lineItems, false),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or 0 for an order not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// IsPersisted reports whether the store has numbered the order.
func (o *Order) IsPersisted() bool {
	return o.id > 0
}

// CustomerName returns the trimmed customer name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the line items in submission order.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// AssignID records the identifier allocated by the store on insert.
// It may be called once, with a positive id.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDIsAlreadyAssigned
	}
	return o.setID(id)
}

// ChangeStatus moves the order to target. An invalid target leaves the
// current status in place and returns a ValueIsInvalidError.
//
// Example:
//
//	if err := o.ChangeStatus(order.Ready); err != nil {
//	    // target outside the vocabulary
//	}
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// setID validates and sets the identifier. Ids are positive.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = trimmed
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem, required bool) error {
	if required && len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	items := make([]LineItem, 0, len(lineItems))
	for i, li := range lineItems {
		if err := li.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("line item %d", i), err)
		}
		items = append(items, li)
	}

	o.lineItems = items
	return nil
}
