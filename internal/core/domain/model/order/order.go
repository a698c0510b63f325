package order

import (
	"errors"
	"time"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/core/domain/model/tier"
	"ironweb/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrOrderHasNoItems is returned when constructing an order with an empty cart.
	// Zero-quantity lines are dropped before construction, so an empty slice means
	// the customer selected nothing.
	ErrOrderHasNoItems = errors.New("order must contain at least one item line")
)

// VerificationGate is the external capability consulted before the terminal
// fulfillment step of an online-payment order may complete. The production
// implementation is a QR-code scan at hand-off, but the aggregate only cares
// about the boolean outcome, so other mechanisms can be substituted.
//
// Gate state is per interaction and never persisted: reopening an order before
// its terminal step forces re-verification at the point of delivery.
type VerificationGate interface {
	IsSatisfied() bool
}

// Order represents a garment pickup-and-delivery booking. It is the aggregate
// root that owns the priced item lines, the booked time slot, and the
// fulfillment flow from pickup through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and at least one item line
//   - Slot, tier, payment type, and pricing are fixed at creation
//   - The fulfillment flow only moves forward, one step at a time
//   - The terminal step of an online-payment order requires verification
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// agentID is the assigned fulfillment agent's ID (nil if unassigned)
	agentID *kernel.UUID

	// items are the priced garment lines, every line with quantity >= 1
	items []ItemLine

	// serviceTier is the delivery tier the slot and fees were derived from
	serviceTier tier.Tier

	// window is the booked pickup/delivery window
	window tier.TimeWindow

	// windowDate is the calendar day the window was booked for
	windowDate kernel.DayDate

	// paymentType records how the customer chose to pay
	paymentType PaymentType

	// pricing is the immutable priced breakdown computed at creation
	pricing Pricing

	// flow is the fulfillment state machine
	flow Flow

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with a fresh, all-pending fulfillment flow.
// All parameters are validated; the items slice must be non-empty.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), lines, tier.Normal, window, date, order.Online, pricing)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	items []ItemLine,
	serviceTier tier.Tier,
	window tier.TimeWindow,
	windowDate kernel.DayDate,
	paymentType PaymentType,
	pricing Pricing,
) (*Order, error) {
	o := &Order{
		flow:          NewFlow(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setTier(serviceTier),
		o.setWindow(window),
		o.setWindowDate(windowDate),
		o.setPaymentType(paymentType),
		o.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// fulfillment flow state and optional agent assignment.
func RestoreOrder(
	id kernel.UUID,
	items []ItemLine,
	serviceTier tier.Tier,
	window tier.TimeWindow,
	windowDate kernel.DayDate,
	paymentType PaymentType,
	pricing Pricing,
	flow Flow,
	agentID *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, items, serviceTier, window, windowDate, paymentType, pricing)
	if err != nil {
		return nil, err
	}

	if err = flow.Validate(); err != nil {
		return nil, err
	}
	o.flow = flow

	if agentID != nil {
		if err = agentID.Validate(); err != nil {
			return nil, err
		}
		restored := *agentID
		o.agentID = &restored
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Agent returns the assigned agent's ID, or nil if unassigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// Items returns a copy of the order's item lines.
func (o *Order) Items() []ItemLine {
	out := make([]ItemLine, len(o.items))
	copy(out, o.items)
	return out
}

// Tier returns the delivery tier the order was booked with.
func (o *Order) Tier() tier.Tier {
	return o.serviceTier
}

// Window returns the booked pickup/delivery window.
func (o *Order) Window() tier.TimeWindow {
	return o.window
}

// WindowDate returns the calendar day the window was booked for.
func (o *Order) WindowDate() kernel.DayDate {
	return o.windowDate
}

// PaymentType returns how the customer chose to pay.
func (o *Order) PaymentType() PaymentType {
	return o.paymentType
}

// Pricing returns the priced breakdown computed when the order was created.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Flow returns the order's fulfillment flow.
func (o *Order) Flow() Flow {
	return o.flow
}

// NextStep returns the first pending fulfillment step.
// The second return value is false when the order is fully delivered.
func (o *Order) NextStep() (Step, bool) {
	return o.flow.NextStep()
}

// IsTerminal reports whether every fulfillment step is completed.
func (o *Order) IsTerminal() bool {
	return o.flow.IsTerminal()
}

// AssignAgent assigns or reassigns the order to a fulfillment agent.
// Assignment is a manual admin action and is allowed until the order is
// fully delivered.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if o.flow.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("order", ErrFlowAlreadyTerminal)
	}

	assigned := agentID
	o.agentID = &assigned
	return nil
}

// CanAdvance reports whether AdvanceStep would be permitted with the given gate.
// Every transition is unconditional except the terminal step of an
// online-payment order, which requires the gate to be satisfied.
// Returns false when the order is already terminal.
func (o *Order) CanAdvance(gate VerificationGate) bool {
	if o.flow.IsTerminal() {
		return false
	}
	if o.requiresVerification() {
		return gate != nil && gate.IsSatisfied()
	}
	return true
}

// AdvanceStep marks the next pending fulfillment step completed at the given time.
// This is the only mutation permitted on the flow.
//
// Returns ErrFlowAlreadyTerminal if no step is pending, and
// ErrVerificationRequired if the next step is terminal, the order was paid
// online, and the gate is not satisfied. On error the flow is left untouched.
func (o *Order) AdvanceStep(now time.Time, gate VerificationGate) (Step, error) {
	if _, ok := o.flow.NextStep(); !ok {
		return Step{}, ErrFlowAlreadyTerminal
	}

	if o.requiresVerification() && (gate == nil || !gate.IsSatisfied()) {
		return Step{}, ErrVerificationRequired
	}

	return o.flow.advance(now)
}

// requiresVerification reports whether the pending transition is the gated one:
// the terminal step of an online-payment order.
func (o *Order) requiresVerification() bool {
	return o.paymentType == Online && o.flow.nextIsLast()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []ItemLine) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, line := range items {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]ItemLine, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTier(t tier.Tier) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.serviceTier = t
	return nil
}

func (o *Order) setWindow(w tier.TimeWindow) error {
	if err := w.Validate(); err != nil {
		return err
	}
	o.window = w
	return nil
}

func (o *Order) setWindowDate(d kernel.DayDate) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.windowDate = d
	return nil
}

func (o *Order) setPaymentType(p PaymentType) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.paymentType = p
	return nil
}

func (o *Order) setPricing(p Pricing) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.pricing = p
	return nil
}
