package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"barber-booking/internal/config"
	"barber-booking/internal/httperr"
	"barber-booking/internal/httpresp"
	"barber-booking/internal/middleware"
	"barber-booking/internal/models"
	"barber-booking/internal/tokens"
	"barber-booking/internal/validators"
)

const tokenLifetime = 24 * time.Hour

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	denylist tokens.Denylist
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, denylist tokens.Denylist) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, denylist: denylist}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Password2   string  `json:"password2" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.SanitizeBindingError(err))
		return
	}

	if req.Password != req.Password2 {
		httperr.BadRequest(c, "password_mismatch", "passwords must match")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_check_user", "Could not check existing users.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "A user with this email already exists.")
		return
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		if err := h.db.Model(&models.User{}).
			Where("phone_number = ?", *req.PhoneNumber).
			Count(&count).Error; err != nil {
			httperr.Internal(c, "failed_to_check_user", "Could not check existing users.")
			return
		}
		if count > 0 {
			httperr.BadRequest(c, "phone_already_registered", "A user with this phone number already exists.")
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create user.")
		return
	}

	httpresp.Created(c, gin.H{"Registered": user.Email})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", validators.SanitizeBindingError(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"Message": "Invalid email or password"})
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Message": "Invalid email or password"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"Token": token})
}

// Logout denylists the token's jti for its remaining lifetime; the
// same token is rejected by the auth middleware from then on.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.MustGet(middleware.ContextTokenJTI).(string)
	exp := c.MustGet(middleware.ContextTokenExp).(time.Time)

	if jti == "" {
		httperr.BadRequest(c, "token_not_revocable", "Token carries no id.")
		return
	}

	ttl := time.Until(exp)
	if exp.IsZero() {
		ttl = tokenLifetime
	}

	if err := h.denylist.Revoke(c.Request.Context(), jti, ttl); err != nil {
		httperr.Internal(c, "failed_to_revoke_token", "Could not log out.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Successfully logged out."})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(tokenLifetime).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
