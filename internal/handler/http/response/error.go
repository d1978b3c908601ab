package response

import (
	"errors"
	"net/http"

	"github.com/caretrack/agency-backend-go/internal/domain/assignment"
	"github.com/caretrack/agency-backend-go/internal/domain/auth"
	"github.com/caretrack/agency-backend-go/internal/domain/client"
	"github.com/caretrack/agency-backend-go/internal/domain/employee"
	"github.com/caretrack/agency-backend-go/internal/domain/user"
	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")

	// Access errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrSchedulerAccessRequired),
		errors.Is(err, user.ErrCareStaffAccessRequired),
		errors.Is(err, user.ErrClientAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrMissingEmployeeIdentity),
		errors.Is(err, user.ErrMissingClientIdentity):
		Forbidden(w, err.Error())
	case errors.Is(err, assignment.ErrNotAssigned):
		Forbidden(w, "You are not assigned to this visit")
	case errors.Is(err, assignment.ErrNoActiveAssignment):
		Forbidden(w, "No active assignment to this client")
	case errors.Is(err, assignment.ErrNotVisitClient):
		Forbidden(w, "This visit does not belong to you")

	// Not found
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, visit.ErrVisitNotFound):
		NotFound(w, "Visit not found")
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Visit state conflicts
	case errors.Is(err, visit.ErrAlreadyClockedIn):
		Conflict(w, "Visit is already clocked in")
	case errors.Is(err, visit.ErrNotClockedIn):
		Conflict(w, "Visit has not been clocked in")
	case errors.Is(err, visit.ErrAlreadyClockedOut):
		Conflict(w, "Visit is already clocked out")
	case errors.Is(err, visit.ErrNotClockable):
		Conflict(w, "Visit cannot be clocked in its current state")
	case errors.Is(err, visit.ErrIllegalTransition):
		Conflict(w, "Visit cannot change to that status from its current state")
	case errors.Is(err, assignment.ErrAssignmentAlreadyEnded):
		Conflict(w, "Assignment has already ended")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
