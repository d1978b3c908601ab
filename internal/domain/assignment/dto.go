package assignment

import (
	"time"

	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	EmployeeID string `json:"employee_id"`
	ClientID   string `json:"client_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	IsPrimary  bool   `json:"is_primary"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ClientID     string  `json:"client_id"`
	ClientName   *string `json:"client_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	IsPrimary    bool    `json:"is_primary"`
}

// MapToResponse converts an Assignment entity to its API projection.
func MapToResponse(a Assignment) AssignmentResponse {
	var endDate *string
	if a.EndDate != nil {
		s := a.EndDate.Format("2006-01-02")
		endDate = &s
	}
	return AssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		ClientID:     a.ClientID,
		ClientName:   a.ClientName,
		StartDate:    a.StartDate.Format("2006-01-02"),
		EndDate:      endDate,
		IsPrimary:    a.IsPrimary,
	}
}

type AssignmentFilter struct {
	EmployeeID *string
	ClientID   *string
	ActiveOn   *time.Time
}
