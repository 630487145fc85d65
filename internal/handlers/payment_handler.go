package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barber-booking/internal/httperr"
	"barber-booking/internal/httpresp"
	"barber-booking/internal/middleware"
	"barber-booking/internal/models"
	"barber-booking/internal/validators"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type PayRequest struct {
	Amount uint `json:"amount" binding:"required,gt=0"`
}

// Pay records a payment for a slot. Only the customer holding the
// slot's booking may pay; money is recorded, never processed.
func (h *PaymentHandler) Pay(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	userEmail := c.MustGet(middleware.ContextUserEmail).(string)

	slotID, err := parseIDParam(c, "slot_id")
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.SanitizeBindingError(err))
		return
	}

	var slot models.Slot
	if err := h.db.Preload("BarberProfile.User").First(&slot, slotID).Error; err != nil {
		httperr.NotFound(c, "slot_not_found", "Slot Not Found")
		return
	}

	var booking models.Booking
	err = h.db.Where("slot_id = ?", slot.ID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && booking.CustomerID != userID) {
		httperr.Forbidden(c, "unauthorized_payment", "Unauthorized payment.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_booking", "Could not verify booking.")
		return
	}

	payment := models.Payment{
		Amount:          req.Amount,
		BarberProfileID: slot.BarberProfileID,
		SlotID:          slot.ID,
		CustomerID:      userID,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Could not record payment.")
		return
	}

	httpresp.Created(c, gin.H{
		"Message": "Payment Successful",
		"Amount":  payment.Amount,
		"Paid by": userEmail,
		"Paid To": slot.BarberProfile.User.Email,
	})
}
