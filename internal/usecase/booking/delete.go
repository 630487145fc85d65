package booking

import (
	"context"

	"barber-booking/internal/audit"
	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute permanently removes the booking, freeing the slot. Only the
// customer who owns the booking may delete it.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	slotID uint,
	customerID uint,
) error {

	b, err := uc.repo.GetBookingBySlot(ctx, slotID)
	if err != nil {
		return err
	}

	if b.CustomerID != customerID {
		return httperr.ErrForbidden("not_booking_owner", "You can only delete your own booking.")
	}

	bookingID := b.ID
	if err := uc.repo.DeleteBooking(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
