// Package item provides the bookable garment catalog entity. Customers pick
// quantities of these items when assembling an order; unit prices on an order
// are always taken from this catalog, never from the client.
package item

import (
	"errors"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructors")

// Item is a bookable garment type with its unit price.
type Item struct {
	// id is the unique identifier for the catalog item
	id kernel.UUID

	// name is the display name shown to the customer
	name string

	// unitPrice is the price per garment
	unitPrice kernel.Money

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a validated catalog item.
func NewItem(id kernel.UUID, name string, unitPrice kernel.Money) (*Item, error) {
	i := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setName(name),
		i.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreItem reconstructs a catalog item from persistence.
func RestoreItem(id kernel.UUID, name string, unitPrice kernel.Money) (*Item, error) {
	return NewItem(id, name, unitPrice)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// UnitPrice returns the price per garment.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
