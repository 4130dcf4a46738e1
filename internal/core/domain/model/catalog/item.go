package catalog

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrNameIsRequired is returned for a blank item name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Item is a catalog entry.
type Item struct {
	id            int64
	name          string
	price         kernel.Price
	isConstructed bool
}

// NewItem creates an item that has not been stored yet.
//
// Example:
//
//	item, err := catalog.NewItem("Muffin", kernel.MustNewPrice(2))
func NewItem(name string, price kernel.Price) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a stored item, or an item addressed by id for an update.
func RestoreItem(id int64, name string, price kernel.Price) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or 0 before the first insert.
func (i *Item) ID() int64 {
	return i.id
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current catalog price.
func (i *Item) Price() kernel.Price {
	return i.price
}

// AssignID records the identifier allocated by the store on insert.
func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", errors.New("id is already assigned"))
	}
	return i.setID(id)
}

// Rename replaces the item name.
func (i *Item) Rename(name string) error {
	return i.setName(name)
}

// Reprice replaces the item price.
func (i *Item) Reprice(price kernel.Price) error {
	return i.setPrice(price)
}

func (i *Item) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
