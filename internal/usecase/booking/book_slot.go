package booking

import (
	"context"

	"barber-booking/internal/audit"
	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/httperr"
	"barber-booking/internal/models"
)

type BookSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookSlot {
	return &BookSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookSlot) Execute(
	ctx context.Context,
	slotID uint,
	customerID uint,
) (*models.Booking, error) {

	slot, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	// Cheap pre-check; the unique index on slot_id is the real
	// arbiter when two requests race.
	booked, err := uc.repo.SlotHasBooking(ctx, slot.ID)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, httperr.ErrConflict("slot_already_booked", "Slot already booked")
	}

	b := &models.Booking{
		SlotID:     slot.ID,
		CustomerID: customerID,
		State:      string(domain.InitialState()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
