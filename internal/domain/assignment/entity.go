package assignment

import "time"

// Assignment links an employee to a client they are authorized to serve.
// EndDate nil means the assignment is still active.
type Assignment struct {
	ID         string
	EmployeeID string
	ClientID   string
	StartDate  time.Time
	EndDate    *time.Time
	IsPrimary  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
	ClientName   *string
}

// ActiveOn reports whether the assignment covers the given calendar day.
func (a Assignment) ActiveOn(day time.Time) bool {
	if day.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && day.After(*a.EndDate) {
		return false
	}
	return true
}
