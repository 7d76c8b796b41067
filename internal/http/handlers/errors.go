// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP responses
// (via the `fail()` helper in this package). These codes provide clients with a stable,
// machine-readable error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., bad_request, conflict) mirror common HTTP status
//     semantics to aid interoperability.
//   - Domain-specific codes (validation_failed, generation_failed) are reserved for
//     business logic errors that cannot be conveyed by status alone.
//   - All error responses must include both an HTTP status and one of these codes.
//
// Usage:
//   - Handlers select the most specific matching code and pass it to `fail()` along
//     with the corresponding HTTP status and message; `failService()` performs that
//     selection for service-layer sentinel errors.
//   - Clients are expected to branch on these codes for programmatic error handling.
//
// Example response:
//   {
//     "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//     "code": "conflict",
//     "message": "approval request already decided"
//   }

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexcraft/go-legal-backend/internal/services"
)

const (
	ErrCodeBadRequest  = "bad_request"
	ErrCodeNotFound    = "not_found"
	ErrCodeConflict    = "conflict"
	ErrCodeRateLimited = "too_many_requests"
	ErrCodeInternal    = "internal_error"

	// Domain-specific:
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeGenerationFailed = "generation_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

// failService translates a service-layer sentinel error into the standard
// error envelope. Unrecognized errors fall through to 500/internal_error.
//
// Mapping:
//   - entity not found            → 404 not_found
//   - invalid input / bad rating  → 400 validation_failed
//   - duplicates, decided twice   → 409 conflict
//   - model call failed           → 502 generation_failed
//   - anything else               → 500 internal_error
func failService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLawyerNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "lawyer not found")
	case errors.Is(err, services.ErrCaseNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "case not found")
	case errors.Is(err, services.ErrDocumentNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "document not found")
	case errors.Is(err, services.ErrPrecedentNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "precedent not found")
	case errors.Is(err, services.ErrApprovalNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "approval request not found")
	case errors.Is(err, services.ErrFeedbackNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "feedback not found")
	case errors.Is(err, services.ErrAlreadyDecided):
		fail(c, http.StatusConflict, ErrCodeConflict, "approval request already decided")
	case errors.Is(err, services.ErrDuplicateLawyer):
		fail(c, http.StatusConflict, ErrCodeConflict, "lawyer already registered")
	case errors.Is(err, services.ErrDuplicateCase):
		fail(c, http.StatusConflict, ErrCodeConflict, "case number already exists")
	case errors.Is(err, services.ErrInvalidRating):
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, "rating must be between 1 and 5")
	case errors.Is(err, services.ErrUnsupportedDocumentType):
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
	case errors.Is(err, services.ErrValidation):
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
	case errors.Is(err, services.ErrGeneration):
		fail(c, http.StatusBadGateway, ErrCodeGenerationFailed, "text generation failed")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
