package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/httperr"
	"barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Slot
// --------------------------------------------------

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	slotID uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Preload("BarberProfile.User").
		First(&slot, slotID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("slot_not_found", "Slot not found.")
		}
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) SlotHasBooking(
	ctx context.Context,
	slotID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("slot_id = ?", slotID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateBooking translates the unique-index violation on slot_id into
// the same conflict the pre-check reports, so a lost race and a stale
// read are indistinguishable to callers.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrConflict("slot_already_booked", "Slot already booked")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingBySlot(
	ctx context.Context,
	slotID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("slot_id = ?", slotID).
		First(&b).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("booking_not_found", "No booking exists for this slot.")
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Delete(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
