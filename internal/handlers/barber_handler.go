package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barber-booking/internal/audit"
	domain "barber-booking/internal/domain/booking"
	"barber-booking/internal/httperr"
	"barber-booking/internal/httpresp"
	"barber-booking/internal/middleware"
	"barber-booking/internal/models"
)

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: dispatcher}
}

// ======================================================
// SIGNUP
// ======================================================

// Signup promotes the caller to barber, creates the profile and
// provisions the day's slot batch in one transaction. Any failure
// rolls the whole signup back.
func (h *BarberHandler) Signup(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var existing models.BarberProfile
	err := h.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		httperr.BadRequest(c, "barber_profile_exists", "Profile Already Exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "failed_to_check_profile", "Could not check profile.")
		return
	}

	var profile models.BarberProfile

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("role", models.RoleBarber).Error; err != nil {
			return err
		}

		// A fresh profile has its slot batch, so the barber is bookable.
		profile = models.BarberProfile{UserID: userID, IsAvailable: true}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		slots := domain.GenerateDaySlots(profile.ID, time.Now().UTC())
		return tx.Create(&slots).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_create_barber_profile", "Could not create barber profile.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "barber_signed_up",
		Entity:   "barber_profile",
		EntityID: &profile.ID,
	})

	httpresp.Created(c, gin.H{
		"Message":       "Barber Profile Created.",
		"slots_created": domain.SlotsPerDay,
	})
}

// ======================================================
// ADMIN: LIST / GET / DELETE
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var profiles []models.BarberProfile
	if err := h.db.
		Preload("User").
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, profiles)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var profile models.BarberProfile
	if err := h.db.Preload("User").First(&profile, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	httpresp.OK(c, profile)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var profile models.BarberProfile
	if err := h.db.First(&profile, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	if err := h.db.Delete(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Barber profile deleted.")
}
