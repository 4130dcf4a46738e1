package order

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a zero-value LineItem is used.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
	// ErrProductNameIsRequired is returned for a blank product name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
)

// LineItem is a snapshot of one purchased product. It carries no reference to
// the catalog: name and price are copied at ordering time.
type LineItem struct {
	productName string
	price       kernel.Price
	guard       guard.ConstructorGuard
}

// NewLineItem validates and builds a line item. The product name is kept
// verbatim; it only has to contain something other than whitespace.
func NewLineItem(productName string, price kernel.Price) (LineItem, error) {
	if strings.TrimSpace(productName) == "" {
		return LineItem{}, ErrProductNameIsRequired
	}
	if err := price.Validate(); err != nil {
		return LineItem{}, err
	}
	return LineItem{
		productName: productName,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was built through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductName returns the snapshotted product name.
func (li LineItem) ProductName() string {
	return li.productName
}

// Price returns the snapshotted price.
func (li LineItem) Price() kernel.Price {
	return li.price
}
