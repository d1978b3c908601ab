package visit

import "time"

type Status string

const (
	StatusScheduled   Status = "SCHEDULED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
	StatusNoShow      Status = "NO_SHOW"
	StatusRescheduled Status = "RESCHEDULED"
)

// MethodGPS is the default capture method for clock events.
const MethodGPS = "GPS"

// Visit is one scheduled care encounter between a client and an employee.
type Visit struct {
	ID         string
	ClientID   string
	EmployeeID *string

	ScheduledDate  time.Time // calendar day of the visit
	ScheduledStart time.Time
	ScheduledEnd   time.Time

	ActualStart *time.Time
	ActualEnd   *time.Time

	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockInMethod     *string
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	ClockOutMethod    *string

	Status         Status
	ServiceType    string
	Notes          *string
	CaregiverNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	ClientName   *string
	EmployeeName *string
}

// EVVVerified is derived, never stored: a visit is verified once both clock
// events have been recorded.
func (v Visit) EVVVerified() bool {
	return v.ActualStart != nil && v.ActualEnd != nil
}

// Clockable reports whether a clock-in may start this visit.
func (v Visit) Clockable() bool {
	return v.Status == StatusScheduled || v.Status == StatusConfirmed
}

// Documented reports whether caregiver clinical notes are attached.
func (v Visit) Documented() bool {
	return v.CaregiverNotes != nil && *v.CaregiverNotes != ""
}

// VisitTask is one append-only task-completion record captured at clock-out.
type VisitTask struct {
	ID          string
	VisitID     string
	EmployeeID  string
	TaskName    string
	CompletedAt time.Time
}
