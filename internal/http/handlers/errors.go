// Package handlers defines the HTTP-layer error codes used across all API
// endpoints and the translation from service errors to HTTP responses.
//
// Codes are lowercase snake_case and stable: clients branch on them for
// programmatic error handling, while the message remains free-form. Every
// error response carries both an HTTP status and one of these codes.

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/services"
)

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

// failService translates a service-layer error into the matching HTTP
// response: validation failures map to 400, disabled features to 403,
// missing resources to 404, constraint violations to 409, and everything
// else to 500.
func failService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFeedbackDisabled):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "feedback is disabled")
	case errors.Is(err, services.ErrArticleNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "article not found")
	case errors.Is(err, services.ErrCategoryNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "category not found")
	case errors.Is(err, services.ErrValidation):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrConstraint):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
