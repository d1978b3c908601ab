package employee

import "time"

// Employee is a field caregiver or nurse employed by the agency.
type Employee struct {
	ID        string
	FullName  string
	Title     *string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
