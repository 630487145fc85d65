package booking

import (
	"time"

	"barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, reason string, now time.Time) error {
	if err := CanCancel(State(b.State)); err != nil {
		return err
	}

	b.State = string(StateCancelled)
	b.Reason = reason
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(State(b.State)); err != nil {
		return err
	}

	b.State = string(StateCompleted)
	b.CompletedAt = &now
	return nil
}
