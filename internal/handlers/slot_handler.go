package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barber-booking/internal/httperr"
	"barber-booking/internal/httpresp"
	"barber-booking/internal/models"
)

type SlotHandler struct {
	db *gorm.DB
}

func NewSlotHandler(db *gorm.DB) *SlotHandler {
	return &SlotHandler{db: db}
}

// List returns unbooked slots by default; ?all=true includes booked
// ones.
func (h *SlotHandler) List(c *gin.Context) {
	q := h.db.
		Preload("BarberProfile.User").
		Order("start_time ASC")

	if c.Query("all") != "true" {
		q = q.Where(
			"id NOT IN (?)",
			h.db.Model(&models.Booking{}).Select("slot_id"),
		)
	}

	var slots []models.Slot
	if err := q.Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Could not list slots.")
		return
	}

	httpresp.List(c, slots)
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
