package booking

import (
	"context"

	"barber-booking/internal/models"
)

type Repository interface {
	// -------- Slot --------
	GetSlot(
		ctx context.Context,
		slotID uint,
	) (*models.Slot, error)

	// -------- Booking (create / conflict) --------
	SlotHasBooking(
		ctx context.Context,
		slotID uint,
	) (bool, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingBySlot(
		ctx context.Context,
		slotID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
