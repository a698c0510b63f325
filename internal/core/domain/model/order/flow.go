package order

import (
	"errors"
	"fmt"
	"time"

	"ironweb/internal/pkg/errs"
	"ironweb/internal/pkg/guard"
)

var (
	// ErrFlowIsNotConstructed is returned when validating a zero-value Flow.
	ErrFlowIsNotConstructed = errors.New("Flow must be created via NewFlow or RestoreFlow constructors")

	// ErrFlowAlreadyTerminal is returned when advancing a flow whose steps
	// are all completed.
	ErrFlowAlreadyTerminal = errors.New("order flow is already terminal")

	// ErrVerificationRequired is returned when the terminal step of an
	// online-payment order is advanced without a satisfied verification gate.
	ErrVerificationRequired = errors.New("delivery verification is required to complete the order")
)

// StepName identifies a fulfillment step. The set of steps and their order is
// fixed for every order at creation time; StepName is a closed enum so step
// handling is exhaustive at compile time.
type StepName int

const (
	// StepUnknown represents an invalid or undefined step.
	StepUnknown StepName = iota

	// StepPickedUp means the agent collected the garments from the customer.
	StepPickedUp

	// StepInProcess means the garments are being cleaned and pressed.
	StepInProcess

	// StepOutForDelivery means the agent is returning the garments.
	StepOutForDelivery

	// StepDelivered means the garments were handed back to the customer.
	// This is the terminal step and the only gated one.
	StepDelivered
)

// getStepNameStrings returns a map of StepName values to their display names.
func getStepNameStrings() map[StepName]string {
	return map[StepName]string{
		StepUnknown:        "Unknown",
		StepPickedUp:       "Picked up",
		StepInProcess:      "In process",
		StepOutForDelivery: "Out for delivery",
		StepDelivered:      "Delivered",
	}
}

// getValidStepNameStrings returns a map of only valid StepName values.
func getValidStepNameStrings() map[StepName]string {
	//nolint:exhaustive // StepUnknown is intentionally excluded as it's invalid
	return map[StepName]string{
		StepPickedUp:       "Picked up",
		StepInProcess:      "In process",
		StepOutForDelivery: "Out for delivery",
		StepDelivered:      "Delivered",
	}
}

// flowSequence is the fixed fulfillment sequence assigned to every new order.
func flowSequence() []StepName {
	return []StepName{StepPickedUp, StepInProcess, StepOutForDelivery, StepDelivered}
}

// Validate checks if the StepName value is valid.
func (n StepName) Validate() error {
	if _, ok := getValidStepNameStrings()[n]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"step name is invalid", fmt.Errorf("%d is not a valid step name", n))
	}
	return nil
}

// String returns the display name of the step.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (n StepName) String() string {
	if str, ok := getStepNameStrings()[n]; ok {
		return str
	}
	return "Unknown"
}

// StepNameFromString parses a step name from its display form.
func StepNameFromString(s string) (StepName, error) {
	for n, name := range getValidStepNameStrings() {
		if name == s {
			return n, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidErrorWithCause(
		"step name is invalid", fmt.Errorf("%q is not a valid step name", s))
}

// Step is one entry in an order's fulfillment flow: a name, whether it has
// been completed, and when. Steps are immutable from outside the package;
// only Flow.advance marks completion.
type Step struct {
	name        StepName
	completed   bool
	completedAt *time.Time
}

// RestoreStep reconstructs a Step from persistence.
// A completed step must carry its completion timestamp; a pending one must not.
func RestoreStep(name StepName, completed bool, completedAt *time.Time) (Step, error) {
	if err := name.Validate(); err != nil {
		return Step{}, err
	}
	if completed && completedAt == nil {
		return Step{}, errs.NewValueIsRequiredError("completedAt for a completed step")
	}
	if !completed && completedAt != nil {
		return Step{}, errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("pending step %q has a completion timestamp", name))
	}

	return Step{name: name, completed: completed, completedAt: completedAt}, nil
}

// Name returns the step's name.
func (s Step) Name() StepName {
	return s.name
}

// IsCompleted reports whether the step was completed.
func (s Step) IsCompleted() bool {
	return s.completed
}

// CompletedAt returns when the step was completed, or nil for a pending step.
func (s Step) CompletedAt() *time.Time {
	return s.completedAt
}

// Flow is the ordered fulfillment state machine of a single order.
//
// Flow maintains these invariants:
//   - The step sequence is fixed at creation and never reordered or resized
//   - Completed steps always form a prefix of the sequence
//   - Completion is the only permitted mutation, one step at a time, in order
//
// The terminal-step payment gate is enforced by the owning Order, which knows
// the payment type; Flow itself only knows sequence and completion.
type Flow struct { //nolint:recvcheck //using for validation
	steps []Step

	guard guard.ConstructorGuard
}

// NewFlow creates the fixed fulfillment flow for a new order, all steps pending.
func NewFlow() Flow {
	names := flowSequence()
	steps := make([]Step, 0, len(names))
	for _, n := range names {
		steps = append(steps, Step{name: n})
	}

	return Flow{
		steps: steps,
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreFlow reconstructs a Flow from persisted steps.
// The steps must match the fixed sequence exactly and completed steps must
// form a prefix; stored state violating either is corrupt and rejected.
func RestoreFlow(steps []Step) (Flow, error) {
	names := flowSequence()
	if len(steps) != len(names) {
		return Flow{}, errs.NewValueIsInvalidErrorWithCause("order flow",
			fmt.Errorf("expected %d steps, got %d", len(names), len(steps)))
	}

	seenPending := false
	for i, s := range steps {
		if s.name != names[i] {
			return Flow{}, errs.NewValueIsInvalidErrorWithCause("order flow",
				fmt.Errorf("step %d is %q, expected %q", i, s.name, names[i]))
		}
		if s.completed && seenPending {
			return Flow{}, errs.NewValueIsInvalidErrorWithCause("order flow",
				fmt.Errorf("completed step %q follows a pending step", s.name))
		}
		if !s.completed {
			seenPending = true
		}
	}

	restored := make([]Step, len(steps))
	copy(restored, steps)

	return Flow{
		steps: restored,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Flow was created through a constructor.
func (f Flow) Validate() error {
	return f.guard.Validate(ErrFlowIsNotConstructed)
}

// Steps returns a copy of the flow's steps in sequence order.
func (f Flow) Steps() []Step {
	out := make([]Step, len(f.steps))
	copy(out, f.steps)
	return out
}

// NextStep returns the first pending step in sequence order.
// The second return value is false when the flow is terminal.
func (f Flow) NextStep() (Step, bool) {
	for _, s := range f.steps {
		if !s.completed {
			return s, true
		}
	}
	return Step{}, false
}

// IsTerminal reports whether every step is completed.
func (f Flow) IsTerminal() bool {
	_, ok := f.NextStep()
	return !ok
}

// nextIsLast reports whether the next pending step is the final step.
func (f Flow) nextIsLast() bool {
	next, ok := f.NextStep()
	return ok && next.name == f.steps[len(f.steps)-1].name
}

// advance marks the next pending step completed at the given time.
// Returns ErrFlowAlreadyTerminal when nothing is pending.
func (f *Flow) advance(now time.Time) (Step, error) {
	for i := range f.steps {
		if !f.steps[i].completed {
			completedAt := now
			f.steps[i].completed = true
			f.steps[i].completedAt = &completedAt
			return f.steps[i], nil
		}
	}
	return Step{}, ErrFlowAlreadyTerminal
}
