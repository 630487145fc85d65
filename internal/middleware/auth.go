package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"barber-booking/internal/config"
	"barber-booking/internal/httperr"
	"barber-booking/internal/models"
	"barber-booking/internal/tokens"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
	ContextTokenJTI  = "tokenJTI"
	ContextTokenExp  = "tokenExp"
)

func AuthMiddleware(cfg *config.Config, denylist tokens.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token carries no usable claims.")
			c.Abort()
			return
		}

		userID, ok1 := claims["sub"].(float64)
		role, ok2 := claims["role"].(string)
		email, _ := claims["email"].(string)
		jti, _ := claims["jti"].(string)
		if !ok1 || !ok2 || !models.IsValidRole(role) {
			httperr.Unauthorized(c, "invalid_token_payload", "Token payload is malformed.")
			c.Abort()
			return
		}

		if jti != "" {
			revoked, err := denylist.IsRevoked(c.Request.Context(), jti)
			if err != nil {
				httperr.Internal(c, "denylist_unavailable", "Could not verify token.")
				c.Abort()
				return
			}
			if revoked {
				httperr.Unauthorized(c, "token_revoked", "Token has been revoked.")
				c.Abort()
				return
			}
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserEmail, email)
		c.Set(ContextUserRole, role)
		c.Set(ContextTokenJTI, jti)
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			c.Set(ContextTokenExp, exp.Time)
		} else {
			c.Set(ContextTokenExp, time.Time{})
		}

		c.Next()
	}
}
