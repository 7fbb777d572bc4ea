package api

import (
	"log/slog"
	"net/http"

	"library-backend/internal/domain/auth"
	"library-backend/internal/handler/httperr"
	"library-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	if errs.Is(err, auth.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}

	switch errs.Kind(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrInvalidState, errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrCapacityViolation:
		return http.StatusUnprocessableEntity
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithKind writes the kind-mapped status. Internal errors never leak their message.
func abortWithKind(c *gin.Context, err error, op string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error(op+" failed", "error", err)
		httperr.AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	httperr.AbortWithError(c, status, err, err.Error(), nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
