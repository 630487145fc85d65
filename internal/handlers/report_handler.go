package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/httperr"
	"barber-booking/internal/models"
	"barber-booking/internal/validators"
)

// reportTimeLayout matches "yyyy-mm-dd hour:minuteAM/PM",
// e.g. "2026-09-01 9:30AM".
const reportTimeLayout = "2006-01-02 3:04PM"

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type AllCancelledRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CancelledInRangeRequest struct {
	Email     string `json:"email" binding:"required,email"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func (h *ReportHandler) barberProfileByEmail(email string) (*models.BarberProfile, error) {
	var profile models.BarberProfile
	err := h.db.
		Joins("JOIN users ON users.id = barber_profiles.user_id").
		Where("users.email = ?", email).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *ReportHandler) cancelledQuery(profileID uint) *gorm.DB {
	return h.db.
		Model(&models.Booking{}).
		Select("bookings.*").
		Joins("JOIN slots ON slots.id = bookings.slot_id").
		Where("bookings.state = ? AND slots.barber_profile_id = ?",
			string(domain.StateCancelled), profileID).
		Preload("Slot").
		Preload("Customer")
}

// ======================================================
// ALL CANCELLED
// ======================================================

func (h *ReportHandler) AllCancelled(c *gin.Context) {
	var req AllCancelledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.SanitizeBindingError(err))
		return
	}

	profile, err := h.barberProfileByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "No barber with this email.")
			return
		}
		httperr.Internal(c, "failed_to_load_barber", "Could not load barber.")
		return
	}

	var bookings []models.Booking
	if err := h.cancelledQuery(profile.ID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bookings", "Could not list cancelled bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}

// ======================================================
// CANCELLED IN RANGE
// ======================================================

// CancelledInRange restricts cancelled bookings to slots whose start
// time falls inside the requested window.
func (h *ReportHandler) CancelledInRange(c *gin.Context) {
	var req CancelledInRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.SanitizeBindingError(err))
		return
	}

	start, err := time.Parse(reportTimeLayout, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "Expected format yyyy-mm-dd hour:minuteAM/PM.")
		return
	}

	end, err := time.Parse(reportTimeLayout, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "Expected format yyyy-mm-dd hour:minuteAM/PM.")
		return
	}

	if !start.Before(end) {
		httperr.BadRequest(c, "invalid_range", "Start time must be before end time.")
		return
	}

	profile, err := h.barberProfileByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "No barber with this email.")
			return
		}
		httperr.Internal(c, "failed_to_load_barber", "Could not load barber.")
		return
	}

	var bookings []models.Booking
	if err := h.cancelledQuery(profile.ID).
		Where("slots.start_time >= ? AND slots.start_time < ?", start, end).
		Order("bookings.created_at DESC").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bookings", "Could not list cancelled bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}
