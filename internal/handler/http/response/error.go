package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
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
	case errors.Is(err, report.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, report.ErrInvalidMonth), errors.Is(err, report.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrPDFRenderFailed):
		InternalServerError(w, "Failed to render report PDF")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
