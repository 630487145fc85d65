package booking

import (
	"context"
	"time"

	"barber-booking/internal/audit"
	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	slotID uint,
	actorID uint,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingBySlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(b, reason, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"reason": reason},
	})

	return b, nil
}
