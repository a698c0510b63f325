package order

import (
	"errors"
	"fmt"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/errs"
	"ironweb/internal/pkg/guard"
)

// ErrItemLineIsNotConstructed is returned when validating a zero-value ItemLine.
var ErrItemLineIsNotConstructed = errors.New("ItemLine must be created via NewItemLine constructor")

// ItemLine is an immutable value object representing one garment type and its
// count within an order. Lines with zero quantity never enter an order: the
// caller drops them before construction, and the constructor rejects them.
type ItemLine struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewItemLine creates a validated ItemLine.
// Requires a valid item ID, a non-empty name, a constructed unit price,
// and a quantity of at least 1.
func NewItemLine(itemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (ItemLine, error) {
	line := ItemLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return ItemLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l ItemLine) Validate() error {
	return l.guard.Validate(ErrItemLineIsNotConstructed)
}

// ItemID returns the identifier of the bookable item.
func (l ItemLine) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the item's display name.
func (l ItemLine) Name() string {
	return l.name
}

// UnitPrice returns the price per garment.
func (l ItemLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the garment count for this line.
func (l ItemLine) Quantity() int {
	return l.quantity
}

// LineTotal returns unit price multiplied by quantity.
func (l ItemLine) LineTotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func (l *ItemLine) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *ItemLine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	l.name = name
	return nil
}

func (l *ItemLine) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *ItemLine) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
