package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barber-booking/internal/httperr"
	"barber-booking/internal/httpresp"
	"barber-booking/internal/middleware"
	"barber-booking/internal/models"
	"barber-booking/internal/validators"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type WriteReviewRequest struct {
	Review string `json:"review" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

// Create attaches an immutable review to the slot's barber. Multiple
// reviews per slot are allowed.
func (h *ReviewHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	slotID, err := parseIDParam(c, "slot_id")
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	var req WriteReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.SanitizeBindingError(err))
		return
	}

	var slot models.Slot
	if err := h.db.Preload("BarberProfile").First(&slot, slotID).Error; err != nil {
		httperr.NotFound(c, "slot_or_barber_not_found", "Slot or Barber does not exist")
		return
	}

	review := models.Review{
		BarberProfileID: slot.BarberProfileID,
		SlotID:          slot.ID,
		CustomerID:      &customerID,
		Review:          req.Review,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Could not create review.")
		return
	}

	httpresp.Created(c, gin.H{
		"Status":  "Success",
		"Message": "Review created.",
	})
}
