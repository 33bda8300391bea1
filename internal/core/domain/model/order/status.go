package order

import (
	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders only
// advance through handler-invoked business rules, never by infrastructure.
//
// State transitions:
//
//	New ──────> Approved ──────> Completed
//	 │              │
//	 ├──────────────┼─────> Canceled
//	 │              │           │
//	 └──────────────┴───────────┴─────> Deleted
//
// Completed and Deleted are final states with no further transitions.
// Parcels, vehicle, and delivery date may only change while the order is
// modifiable (New or Approved).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	New

	// Approved indicates the order has been accepted for delivery.
	Approved

	// Canceled indicates the order was canceled before completion.
	Canceled

	// Completed indicates the order was successfully delivered.
	// This is a final state.
	Completed

	// Deleted indicates the order was soft-deleted.
	// This is a final state.
	Deleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Approved:  "Approved",
		Canceled:  "Canceled",
		Completed: "Completed",
		Deleted:   "Deleted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Approved:  "Approved",
		Canceled:  "Canceled",
		Completed: "Completed",
		Deleted:   "Deleted",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from persistence or parsing statuses from external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(New), int(Deleted)))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsModifiable reports whether the order's contents (parcels, vehicle,
// delivery date) may still change. Only New and Approved orders are
// modifiable.
func (s Status) IsModifiable() bool {
	return s == New || s == Approved
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - New -> Approved
//
// Returns (0, InvalidStateTransitionError) for every other current status.
func (s Status) Approve() (Status, error) {
	if s != New {
		return 0, errs.NewInvalidStateTransitionError("approve", s.String())
	}
	return Approved, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - New -> Canceled
//   - Approved -> Canceled
//
// Returns (0, InvalidStateTransitionError) for every other current status.
func (s Status) Cancel() (Status, error) {
	if s != New && s != Approved {
		return 0, errs.NewInvalidStateTransitionError("cancel", s.String())
	}
	return Canceled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Approved -> Completed
//
// Completing an already-Completed order is rejected, which makes redelivered
// delivery-completion events a no-op from the caller's perspective.
func (s Status) Complete() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidStateTransitionError("complete", s.String())
	}
	return Completed, nil
}

// Delete transitions the status to Deleted.
//
// Valid transitions:
//   - New -> Deleted
//   - Approved -> Deleted
//   - Canceled -> Deleted
//
// Completed orders are kept for audit and cannot be deleted.
func (s Status) Delete() (Status, error) {
	if s != New && s != Approved && s != Canceled {
		return 0, errs.NewInvalidStateTransitionError("delete", s.String())
	}
	return Deleted, nil
}
