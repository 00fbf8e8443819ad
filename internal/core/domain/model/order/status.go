package order

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a strictly linear state machine:
//
//	Cleaning ──> Ready ──> Completed
//
// A transition is legal only between adjacent steps, in either
// direction. The symmetric rule deliberately permits a one-step
// rollback (Ready -> Cleaning, Completed -> Ready) so a mistaken
// advance can be undone, while jumps such as Cleaning -> Completed
// are always rejected. The primary workflow only ever advances via
// Next; rollback is available to callers that choose to expose it.
//
// Status is a value object that validates state transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Cleaning is the initial status when an order is taken in.
	// Items are being washed, dry-cleaned, or treated.
	Cleaning

	// Ready indicates the order has been processed and is awaiting
	// customer pickup.
	Ready

	// Completed indicates the order has been handed over to the
	// customer. This is the terminal state of the primary workflow.
	Completed
)

// ErrInvalidTransition is the sentinel for illegal status transitions.
// Use errors.Is to classify an *InvalidTransitionError.
var ErrInvalidTransition = errors.New("status transition is not allowed")

// InvalidTransitionError reports a rejected status transition,
// naming the attempted current/target pair.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition is not allowed: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Cleaning:  "Cleaning",
		Ready:     "Ready",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cleaning:  "Cleaning",
		Ready:     "Ready",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Cleaning, Ready, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Cleaning", "Ready", or "Completed" for valid statuses and
// "Unknown" for anything else. Implements fmt.Stringer and is safe to
// call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a persisted or request-supplied status name.
// Matching is exact on the canonical names returned by String.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// CanTransitionTo reports whether moving from the current status to
// target is legal. The move is legal iff both statuses are valid and
// target is an adjacent neighbor of the current status (one step
// forward or one step back). This is a pure predicate with no side
// effects; it never mutates an order.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}

	distance := int(target) - int(s)
	return distance == 1 || distance == -1
}

// Next returns the forward neighbor of the current status.
// ok is false when the status is terminal (Completed) or invalid.
func (s Status) Next() (next Status, ok bool) {
	if s.Validate() != nil || s == Completed {
		return Unknown, false
	}

	return s + 1, true
}

// TransitionTo validates a transition and returns the new status.
//
// Returns:
//   - (target, nil) when target is an adjacent neighbor
//   - (Unknown, *InvalidTransitionError) otherwise, naming the
//     attempted current/target pair
//
// This method is used by Order.ChangeStatus to enforce the workflow;
// it judges legality only and performs no mutation itself.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}

	return target, nil
}
