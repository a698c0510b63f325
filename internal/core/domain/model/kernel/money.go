package kernel

import (
	"fmt"

	"ironweb/internal/pkg/errs"
	"ironweb/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney or NewMoneyFromInt.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewMoneyFromInt constructors")

// Money is an immutable value object representing a non-negative monetary amount.
// It wraps github.com/shopspring/decimal to keep pricing arithmetic exact;
// floating point must never touch order totals.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromInt(12)
//	total := price.MulInt(3) // exact 36
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromInt creates a Money from whole currency units.
// Returns an error if units is negative.
func NewMoneyFromInt(units int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(units))
}

// ZeroMoney returns a constructed Money with zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Used to price an item line from unit price and quantity.
func (m Money) MulInt(factor int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(factor))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Validate ensures the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
