package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barber-booking/internal/httperr"
	"barber-booking/internal/middleware"
	"barber-booking/internal/models"
	"barber-booking/internal/storage"
)

type ProfileHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
}

func NewProfileHandler(db *gorm.DB, uploader storage.Uploader) *ProfileHandler {
	return &ProfileHandler{db: db, uploader: uploader}
}

// barberProfileFor loads the caller's optional barber relation once;
// handlers pass the result down instead of re-deriving it.
func (h *ProfileHandler) barberProfileFor(userID uint) (*models.BarberProfile, error) {
	var profile models.BarberProfile
	err := h.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *ProfileHandler) Profile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	profile, err := h.barberProfileFor(userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_profile", "Could not load profile.")
		return
	}

	resp := gin.H{
		"id":           user.ID,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"email":        user.Email,
		"phone_number": user.PhoneNumber,
		"role":         user.Role,
	}

	if profile != nil {
		resp["barber_profile"] = gin.H{
			"id":           profile.ID,
			"is_available": profile.IsAvailable,
			"avatar_url":   profile.AvatarURL,
		}
	}

	c.JSON(http.StatusOK, gin.H{"User Profile": resp})
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	profile, err := h.barberProfileFor(userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_profile", "Could not load profile.")
		return
	}
	if profile == nil {
		httperr.NotFound(c, "barber_profile_not_found", "Only barbers have an avatar.")
		return
	}

	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_not_configured", "Avatar storage is not configured.")
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "An 'avatar' file field is required.")
		return
	}

	if fh.Size > storage.MaxAvatarSize {
		httperr.BadRequest(c, "avatar_too_large", "Avatar must be at most 5MB.")
		return
	}
	if !storage.ValidAvatarContentType(fh.Header.Get("Content-Type")) {
		httperr.BadRequest(c, "invalid_avatar_type", "Avatar must be a jpeg, png, gif or webp image.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_avatar", "Could not read uploaded file.")
		return
	}
	defer f.Close()

	encoded, err := storage.EncodeAvatarWebP(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Uploaded file is not a valid image.")
		return
	}

	key := fmt.Sprintf("avatars/%d-%s.webp", profile.ID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Could not store avatar.")
		return
	}

	profile.AvatarURL = url
	if err := h.db.Save(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Could not save profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
