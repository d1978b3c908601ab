package assignment

import (
	"context"
	"time"
)

// AssignmentRepository defines data access methods for caregiver assignments.
type AssignmentRepository interface {
	// Create creates a new assignment
	Create(ctx context.Context, a Assignment) (Assignment, error)

	// GetByID retrieves an assignment by ID
	GetByID(ctx context.Context, id string) (Assignment, error)

	// List retrieves assignments matching the filter, newest first
	List(ctx context.Context, filter AssignmentFilter) ([]Assignment, error)

	// End closes an assignment by setting its end date.
	// Returns ErrAssignmentAlreadyEnded when the end date is already set.
	End(ctx context.Context, id string, endDate time.Time) (Assignment, error)

	// HasActiveAssignment reports whether the employee holds an assignment
	// to the client that covers the given day
	HasActiveAssignment(ctx context.Context, employeeID, clientID string, day time.Time) (bool, error)
}
