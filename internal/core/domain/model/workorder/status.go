package workorder

import (
	"errors"
	"fmt"

	"fieldservice/internal/pkg/errs"
)

// ErrInvalidTransition is the unwrap target for every rejected status
// transition. Callers classify state-machine violations with
// errors.Is(err, ErrInvalidTransition).
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected work-order status transition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// Error formats the rejected transition.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap returns the sentinel ErrInvalidTransition for errors.Is support.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a work order.
// It implements a state machine with defined transitions so work orders
// follow the field-service workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──> Completed
//	    │           │  ▲         │  ▲
//	    │           │  └─────────┼──┼──── OnHold
//	    │           └────────────┼──┘       │
//	    └────────────────────────┴──────────┴───> Cancelled
//
// Forward jumps along Pending -> Assigned -> InProgress -> Completed are
// permitted (the explicit status operation does not force intermediate
// states). Completed and Cancelled are terminal. Pending is only re-entered
// through unassignment, never through the explicit status operation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: created, awaiting assignment.
	StatusPending

	// StatusAssigned indicates a technician has been assigned.
	StatusAssigned

	// StatusInProgress indicates the assigned technician is on the job.
	StatusInProgress

	// StatusOnHold indicates work has been paused after assignment.
	StatusOnHold

	// StatusCompleted indicates the work was finished. Terminal.
	StatusCompleted

	// StatusCancelled indicates the work order was called off. Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusAssigned:   "ASSIGNED",
		StatusInProgress: "IN_PROGRESS",
		StatusOnHold:     "ON_HOLD",
		StatusCompleted:  "COMPLETED",
		StatusCancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "PENDING",
		StatusAssigned:   "ASSIGNED",
		StatusInProgress: "IN_PROGRESS",
		StatusOnHold:     "ON_HOLD",
		StatusCompleted:  "COMPLETED",
		StatusCancelled:  "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsActive reports whether a work order in this status occupies its assigned
// technician. Active statuses count toward a technician's concurrent workload.
func (s Status) IsActive() bool {
	return s == StatusAssigned || s == StatusInProgress || s == StatusOnHold
}

// ValidateAssign checks whether a technician may be assigned from this status.
// Assignment is rejected only from terminal statuses; reassignment of an
// already assigned or in-progress work order is permitted.
func (s Status) ValidateAssign() error {
	if s.IsTerminal() {
		return &InvalidTransitionError{From: s, To: StatusAssigned}
	}
	return nil
}

// TransitionTo validates an explicit transition and returns the target status.
//
// Rules:
//   - same target as current: returned unchanged (idempotent no-op)
//   - terminal source: rejected
//   - Cancelled: reachable from every non-terminal status
//   - OnHold: reachable from Assigned and InProgress
//   - forward jumps along Pending -> Assigned -> InProgress -> Completed: permitted
//   - OnHold resumes to Assigned or InProgress, or moves forward to Completed
//   - Pending as a target: rejected (re-entered only through unassignment)
//
// Returns (target, nil) on success and (0, *InvalidTransitionError) otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target == s {
		return s, nil
	}

	if s.IsTerminal() {
		return 0, &InvalidTransitionError{From: s, To: target}
	}

	switch target {
	case StatusCancelled:
		return target, nil
	case StatusOnHold:
		if s == StatusAssigned || s == StatusInProgress {
			return target, nil
		}
	case StatusAssigned:
		if s == StatusPending || s == StatusOnHold {
			return target, nil
		}
	case StatusInProgress:
		if s == StatusPending || s == StatusAssigned || s == StatusOnHold {
			return target, nil
		}
	case StatusCompleted:
		return target, nil
	case StatusPending, StatusUnknown:
		// fall through to rejection
	}

	return 0, &InvalidTransitionError{From: s, To: target}
}
