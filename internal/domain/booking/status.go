package booking

import "barber-booking/internal/httperr"

// ===============================
// Booking State
// ===============================

type State string

const (
	StateOnGoing   State = "ongoing"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

// IsValidState reports whether s belongs to the closed state set.
// Unknown values are rejected at every transition site.
func IsValidState(s State) bool {
	switch s {
	case StateOnGoing, StateCompleted, StateCancelled:
		return true
	}
	return false
}

// ===============================
// Transition rules
// ===============================

// CanCancel allows ongoing → cancelled only. Cancelled is terminal and
// re-cancelling reports the exact message the API contract promises.
func CanCancel(current State) error {
	switch current {
	case StateOnGoing:
		return nil
	case StateCancelled:
		return httperr.ErrConflict("already_cancelled", "Booking is already cancelled.")
	case StateCompleted:
		return httperr.ErrConflict("already_completed", "Booking is already completed.")
	default:
		return httperr.ErrConflict("unknown_state", "Booking is in an unknown state.")
	}
}

// CanComplete allows ongoing → completed only.
func CanComplete(current State) error {
	switch current {
	case StateOnGoing:
		return nil
	case StateCompleted:
		return httperr.ErrConflict("already_completed", "Booking is already completed.")
	case StateCancelled:
		return httperr.ErrConflict("already_cancelled", "Booking is already cancelled.")
	default:
		return httperr.ErrConflict("unknown_state", "Booking is in an unknown state.")
	}
}

func InitialState() State {
	return StateOnGoing
}
