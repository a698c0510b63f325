package order

import (
	"fmt"

	"ironweb/internal/pkg/errs"
)

// PaymentType represents how the customer chose to pay for an order.
// Payment capture itself happens outside this system; the workflow only
// records the choice and gates the terminal fulfillment step on it.
//
// PaymentType is a closed enum so the terminal-step gate can be checked
// exhaustively at compile time.
type PaymentType int

const (
	// PaymentUnknown represents an invalid or undefined payment type.
	// This value (0) helps catch uninitialized PaymentType values.
	PaymentUnknown PaymentType = iota

	// CashOnDelivery means the agent collects payment at hand-off.
	// Orders paid this way never require delivery verification.
	CashOnDelivery

	// Online means payment was made through an external provider.
	// The terminal fulfillment step of an online order requires a
	// verification signal before it can complete.
	Online
)

// getPaymentTypeStrings returns a map of PaymentType values to their string representations.
func getPaymentTypeStrings() map[PaymentType]string {
	return map[PaymentType]string{
		PaymentUnknown: "Unknown",
		CashOnDelivery: "CashOnDelivery",
		Online:         "Online",
	}
}

// getValidPaymentTypeStrings returns a map of only valid PaymentType values.
func getValidPaymentTypeStrings() map[PaymentType]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentType]string{
		CashOnDelivery: "CashOnDelivery",
		Online:         "Online",
	}
}

// Validate checks if the PaymentType value is valid.
// Valid types are CashOnDelivery and Online.
func (p PaymentType) Validate() error {
	if _, ok := getValidPaymentTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment type is invalid", fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

// String returns the name of the payment type.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (p PaymentType) String() string {
	if str, ok := getPaymentTypeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PaymentTypeFromString parses a payment type from its string name.
func PaymentTypeFromString(s string) (PaymentType, error) {
	for p, name := range getValidPaymentTypeStrings() {
		if name == s {
			return p, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment type is invalid", fmt.Errorf("%q is not a valid payment type name", s))
}
