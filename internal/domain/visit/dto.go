package visit

import (
	"time"

	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
)

// ========================================
// VISIT DTOs
// ========================================

type CreateVisitRequest struct {
	ClientID       string  `json:"client_id"`
	EmployeeID     *string `json:"employee_id,omitempty"`
	ScheduledDate  string  `json:"scheduled_date"`  // YYYY-MM-DD
	ScheduledStart string  `json:"scheduled_start"` // RFC3339
	ScheduledEnd   string  `json:"scheduled_end"`   // RFC3339
	ServiceType    string  `json:"service_type"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *CreateVisitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if validator.IsEmpty(r.ScheduledDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_date",
			Message: "scheduled_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ScheduledDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_date",
			Message: "scheduled_date must be in YYYY-MM-DD format",
		})
	}

	start, startOK := validator.IsValidDateTime(r.ScheduledStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_start",
			Message: "scheduled_start must be an RFC3339 timestamp",
		})
	}

	end, endOK := validator.IsValidDateTime(r.ScheduledEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_end",
			Message: "scheduled_end must be an RFC3339 timestamp",
		})
	}

	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_end",
			Message: "scheduled_end must be after scheduled_start",
		})
	}

	if validator.IsEmpty(r.ServiceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_type",
			Message: "service_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockInRequest struct {
	VisitID   string   `json:"visit_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Method    string   `json:"method,omitempty"` // defaults to GPS
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VisitID) {
		errs = append(errs, validator.ValidationError{
			Field:   "visit_id",
			Message: "visit_id is required",
		})
	}

	errs = append(errs, validateCoordinates(r.Latitude, r.Longitude)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	VisitID        string   `json:"visit_id"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Notes          *string  `json:"notes,omitempty"`
	CompletedTasks []string `json:"completed_tasks,omitempty"`
	Method         string   `json:"method,omitempty"` // defaults to GPS
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VisitID) {
		errs = append(errs, validator.ValidationError{
			Field:   "visit_id",
			Message: "visit_id is required",
		})
	}

	errs = append(errs, validateCoordinates(r.Latitude, r.Longitude)...)

	for _, task := range r.CompletedTasks {
		if validator.IsEmpty(task) {
			errs = append(errs, validator.ValidationError{
				Field:   "completed_tasks",
				Message: "completed task names must not be empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateCoordinates enforces the EVV requirement that clock events carry a
// geolocation: both coordinates present and inside GPS range.
func validateCoordinates(lat, lng *float64) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if lat == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if lng == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if !validator.IsValidLongitude(*lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	return errs
}

type SubmitDocumentationRequest struct {
	VisitID        string  `json:"visit_id"`
	CareNotes      string  `json:"care_notes"`
	TasksPerformed *string `json:"tasks_performed,omitempty"`
}

func (r *SubmitDocumentationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VisitID) {
		errs = append(errs, validator.ValidationError{
			Field:   "visit_id",
			Message: "visit_id is required",
		})
	}

	if validator.IsEmpty(r.CareNotes) {
		errs = append(errs, validator.ValidationError{
			Field:   "care_notes",
			Message: "care_notes is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VisitResponse struct {
	ID                string   `json:"id"`
	ClientID          string   `json:"client_id"`
	ClientName        *string  `json:"client_name,omitempty"`
	EmployeeID        *string  `json:"employee_id,omitempty"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	ScheduledDate     string   `json:"scheduled_date"`
	ScheduledStart    string   `json:"scheduled_start"`
	ScheduledEnd      string   `json:"scheduled_end"`
	ActualStart       *string  `json:"actual_start,omitempty"`
	ActualEnd         *string  `json:"actual_end,omitempty"`
	ClockInLatitude   *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64 `json:"clock_in_longitude,omitempty"`
	ClockInMethod     *string  `json:"clock_in_method,omitempty"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64 `json:"clock_out_longitude,omitempty"`
	ClockOutMethod    *string  `json:"clock_out_method,omitempty"`
	Status            string   `json:"status"`
	ServiceType       string   `json:"service_type"`
	Notes             *string  `json:"notes,omitempty"`
	CaregiverNotes    *string  `json:"caregiver_notes,omitempty"`
	EVVVerified       bool     `json:"evv_verified"`
	Documented        bool     `json:"documented"`

	// DistanceFromClientMeters is the haversine distance between the most
	// recent clock event and the client's home coordinates, when both known.
	DistanceFromClientMeters *float64 `json:"distance_from_client_meters,omitempty"`

	CompletedTasks []VisitTaskResponse `json:"completed_tasks,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type VisitTaskResponse struct {
	TaskName    string `json:"task_name"`
	CompletedAt string `json:"completed_at"`
}

type DocumentationResponse struct {
	Pending   []VisitResponse `json:"pending"`
	Completed []VisitResponse `json:"completed"`
}

type VisitFilter struct {
	StartDate  *string // YYYY-MM-DD, inclusive
	EndDate    *string // YYYY-MM-DD, inclusive
	Status     *string
	EmployeeID *string
	ClientID   *string
}

func (f *VisitFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil {
		valid := []string{
			string(StatusScheduled), string(StatusConfirmed), string(StatusInProgress),
			string(StatusCompleted), string(StatusCancelled), string(StatusNoShow),
			string(StatusRescheduled),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status is not a recognized visit status",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

// MapToResponse converts a Visit entity to its API projection.
// EVVVerified is computed here from the two actual timestamps.
func MapToResponse(v Visit) VisitResponse {
	return VisitResponse{
		ID:                v.ID,
		ClientID:          v.ClientID,
		ClientName:        v.ClientName,
		EmployeeID:        v.EmployeeID,
		EmployeeName:      v.EmployeeName,
		ScheduledDate:     v.ScheduledDate.Format("2006-01-02"),
		ScheduledStart:    v.ScheduledStart.Format(time.RFC3339),
		ScheduledEnd:      v.ScheduledEnd.Format(time.RFC3339),
		ActualStart:       timePtrToString(v.ActualStart),
		ActualEnd:         timePtrToString(v.ActualEnd),
		ClockInLatitude:   v.ClockInLatitude,
		ClockInLongitude:  v.ClockInLongitude,
		ClockInMethod:     v.ClockInMethod,
		ClockOutLatitude:  v.ClockOutLatitude,
		ClockOutLongitude: v.ClockOutLongitude,
		ClockOutMethod:    v.ClockOutMethod,
		Status:            string(v.Status),
		ServiceType:       v.ServiceType,
		Notes:             v.Notes,
		CaregiverNotes:    v.CaregiverNotes,
		EVVVerified:       v.EVVVerified(),
		Documented:        v.Documented(),
		CreatedAt:         v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         v.UpdatedAt.Format(time.RFC3339),
	}
}
