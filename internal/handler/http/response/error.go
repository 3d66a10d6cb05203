package response

import (
	"errors"
	"net/http"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/auth"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/employee"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/regularization"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/user"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrReviewPrivilegeRequired):
		Forbidden(w, err.Error())

	// Punch domain errors
	case errors.Is(err, punch.ErrUnknownDevice):
		BadRequest(w, "Device is not in the monitored device list", nil)
	case errors.Is(err, punch.ErrDuplicateEvent):
		Conflict(w, "Punch event already recorded")
	case errors.Is(err, punch.ErrEmptyBatch):
		BadRequest(w, "Punch batch contains no events", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Regularization domain errors
	case errors.Is(err, regularization.ErrNotFound):
		NotFound(w, "Regularization not found")
	case errors.Is(err, regularization.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, regularization.ErrAlreadyExists):
		Conflict(w, "A regularization already exists for this employee and date")
	case errors.Is(err, regularization.ErrAlreadyReviewed):
		Conflict(w, "Regularization has already been reviewed")
	case errors.Is(err, regularization.ErrNotPending):
		Conflict(w, "Only pending regularizations can be updated")
	case errors.Is(err, regularization.ErrSelfReview):
		Forbidden(w, "A regularization cannot be reviewed by its requester")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
