// Package handlers contains HTTP request handlers for the EHR backend.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
)

// ErrorResponse is the JSON error body: a machine-distinguishable code plus
// a human-readable message. Internal details never leak to the caller.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "invalid_request"})
}

// respondError maps the error taxonomy to HTTP. Anything outside the
// taxonomy is a transport-level failure: it is logged with full detail and
// surfaced as a generic internal error.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateIdentity):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "duplicate_identity"})
	case errors.Is(err, apperrors.ErrProfileExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "profile_exists"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error(), Code: "invalid_credentials"})
	case apperrors.IsTokenError(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated", Code: "unauthenticated"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error(), Code: "forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "internal_error"})
	}
}
