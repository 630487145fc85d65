package booking

import (
	"context"
	"time"

	"barber-booking/internal/audit"
	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/httperr"
	"barber-booking/internal/models"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the slot's booking completed. Only the barber who owns
// the slot, or an admin, may complete it.
func (uc *CompleteBooking) Execute(
	ctx context.Context,
	slotID uint,
	actorID uint,
	actorRole string,
) (*models.Booking, error) {

	slot, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if actorRole != models.RoleAdmin && slot.BarberProfile.UserID != actorID {
		return nil, httperr.ErrForbidden("not_slot_barber", "Only the slot's barber can complete this booking.")
	}

	b, err := uc.repo.GetBookingBySlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(b, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
