package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond maps a business error to its HTTP status. Conflicts map to
// 400: the API contract reports "already booked" and "already
// cancelled" as bad requests.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch be.Kind {
	case KindValidation, KindConflict:
		Write(c, http.StatusBadRequest, be.Code, be.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, be.Code, be.Message)
	case KindForbidden:
		Write(c, http.StatusForbidden, be.Code, be.Message)
	case KindUnauthorized:
		Write(c, http.StatusUnauthorized, be.Code, be.Message)
	default:
		Internal(c, be.Code, be.Message)
	}
}
