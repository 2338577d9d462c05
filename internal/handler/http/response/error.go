package response

import (
	"errors"
	"net/http"

	"github.com/flosclinic/attendance-bot/internal/domain/booking"
	"github.com/flosclinic/attendance-bot/internal/domain/organization"
	"github.com/flosclinic/attendance-bot/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, booking.ErrDeliveryFailed):
		BadGateway(w, "Failed to deliver booking confirmation")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
