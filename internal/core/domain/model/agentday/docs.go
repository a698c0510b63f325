// Package agentday provides the per-agent daily work queue for delivery agents.
// It implements the Sequence aggregate root with swap-then-lock semantics.
//
// Key business rules:
//   - A sequence is scoped to one agent and one calendar day
//   - While unlocked, the agent may rotate the contents of any selected set of
//     positions (at least two); unselected positions never move
//   - Locking freezes the ordering for the remainder of the day; a locked
//     sequence rejects further swaps and locks
//   - Unlock reopens the sequence unconditionally
//   - A sequence whose stored date differs from the current day is expired and
//     must be discarded together with its lock
package agentday
