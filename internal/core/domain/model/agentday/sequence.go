package agentday

import (
	"errors"
	"fmt"
	"sort"

	"ironweb/internal/core/domain/model/kernel"
	"ironweb/internal/pkg/errs"
)

var (
	// ErrSequenceIsNotConstructed is returned when a Sequence instance was not
	// created through the NewSequence or RestoreSequence factory methods.
	ErrSequenceIsNotConstructed = errors.New(
		"Sequence must be created via NewSequence or RestoreSequence constructors")

	// ErrSequenceLocked is returned when swapping or locking an already locked
	// sequence. A sequence can be reordered and locked once per day; after that
	// only an explicit unlock reopens it.
	ErrSequenceLocked = errors.New("sequence is locked for the day")

	// ErrSelectionTooSmall is returned when a swap selection holds fewer than
	// two orders; rotating a single position is a no-op and rejected.
	ErrSelectionTooSmall = errors.New("swap requires at least two selected orders")
)

// Sequence is the per-agent, per-day ordered work queue of delivery orders.
// It is an aggregate root with swap-then-lock semantics: while unlocked, the
// agent may rotate the contents of any set of positions; locking freezes the
// ordering for the remainder of the calendar day.
//
// A sequence is only meaningful on the day it was created for. Reading code
// must check IsExpiredOn(today) and discard stale sequences: state from a
// previous day must never shape a new day's work.
type Sequence struct {
	// agentID is the agent whose day this sequence orders
	agentID kernel.UUID

	// date is the calendar day the sequence belongs to
	date kernel.DayDate

	// orderIDs is the ordered work queue, no duplicates
	orderIDs []kernel.UUID

	// locked freezes the ordering once the agent confirms it
	locked bool

	// isConstructed ensures the sequence was created via a constructor
	isConstructed bool
}

// NewSequence creates an unlocked sequence for an agent and day.
// The order list may be empty (an agent with no assignments yet) but must not
// contain duplicates or invalid IDs.
func NewSequence(agentID kernel.UUID, date kernel.DayDate, orderIDs []kernel.UUID) (*Sequence, error) {
	s := &Sequence{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setAgentID(agentID),
		s.setDate(date),
		s.setOrderIDs(orderIDs),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSequence reconstructs a sequence from persistence, including its lock state.
func RestoreSequence(agentID kernel.UUID, date kernel.DayDate, orderIDs []kernel.UUID, locked bool) (*Sequence, error) {
	s, err := NewSequence(agentID, date, orderIDs)
	if err != nil {
		return nil, err
	}

	s.locked = locked
	return s, nil
}

// Validate ensures the Sequence instance was properly constructed.
func (s *Sequence) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSequenceIsNotConstructed
	}
	return nil
}

// AgentID returns the agent whose day this sequence orders.
func (s *Sequence) AgentID() kernel.UUID {
	return s.agentID
}

// Date returns the calendar day the sequence belongs to.
func (s *Sequence) Date() kernel.DayDate {
	return s.date
}

// OrderIDs returns a copy of the ordered work queue.
func (s *Sequence) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(s.orderIDs))
	copy(out, s.orderIDs)
	return out
}

// IsLocked reports whether the ordering is frozen for the day.
func (s *Sequence) IsLocked() bool {
	return s.locked
}

// IsExpiredOn reports whether the sequence belongs to a day other than the
// given one. An expired sequence, together with its lock, must be discarded.
func (s *Sequence) IsExpiredOn(today kernel.DayDate) bool {
	return !s.date.IsEqual(today)
}

// Swap rotates the contents of the selected positions one position forward
// cyclically: with selected positions p_0 < p_1 < ... < p_{k-1}, the order at
// p_i moves to p_{(i+1) mod k}. Unselected positions are untouched; this is a
// content rotation over a fixed set of index positions, not a reindexing of
// the whole list.
//
// Requires at least two selected orders, all of which must be present in the
// sequence. Rejected with ErrSequenceLocked once the sequence is locked.
func (s *Sequence) Swap(selection []kernel.UUID) error {
	if s.locked {
		return ErrSequenceLocked
	}
	if len(selection) < 2 {
		return ErrSelectionTooSmall
	}

	positions, err := s.selectionPositions(selection)
	if err != nil {
		return err
	}

	contents := make([]kernel.UUID, len(positions))
	for i, p := range positions {
		contents[i] = s.orderIDs[p]
	}

	for i := range positions {
		target := positions[(i+1)%len(positions)]
		s.orderIDs[target] = contents[i]
	}

	return nil
}

// Lock freezes the current ordering for the remainder of the day.
// Locking an already locked sequence returns ErrSequenceLocked: the agent
// gets exactly one reorder-and-confirm per day unless they explicitly unlock.
func (s *Sequence) Lock() error {
	if s.locked {
		return ErrSequenceLocked
	}

	s.locked = true
	return nil
}

// Unlock reopens the sequence unconditionally (the agent-initiated "re-swap").
func (s *Sequence) Unlock() {
	s.locked = false
}

// selectionPositions resolves the selected order IDs to their positions in the
// sequence, ascending. Duplicate or unknown selections are rejected.
func (s *Sequence) selectionPositions(selection []kernel.UUID) ([]int, error) {
	positions := make([]int, 0, len(selection))
	seen := make(map[int]bool, len(selection))

	for _, id := range selection {
		if err := id.Validate(); err != nil {
			return nil, err
		}

		pos := -1
		for i, existing := range s.orderIDs {
			if existing.IsEqual(id) {
				pos = i
				break
			}
		}
		if pos == -1 {
			return nil, errs.NewObjectNotFoundError("order in sequence", id.String())
		}
		if seen[pos] {
			return nil, errs.NewValueIsInvalidErrorWithCause("selection",
				fmt.Errorf("order %s selected more than once", id))
		}

		seen[pos] = true
		positions = append(positions, pos)
	}

	sort.Ints(positions)
	return positions, nil
}

func (s *Sequence) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	s.agentID = agentID
	return nil
}

func (s *Sequence) setDate(date kernel.DayDate) error {
	if err := date.Validate(); err != nil {
		return err
	}
	s.date = date
	return nil
}

func (s *Sequence) setOrderIDs(orderIDs []kernel.UUID) error {
	seen := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if seen[id.String()] {
			return errs.NewValueIsInvalidErrorWithCause("order IDs",
				fmt.Errorf("order %s appears more than once", id))
		}
		seen[id.String()] = true
	}

	s.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(s.orderIDs, orderIDs)
	return nil
}
