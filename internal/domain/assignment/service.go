package assignment

import (
	"context"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/visit"
)

// Resolver is the authorization gate between an acting identity and a visit.
// Predicates are pure reads; callers must consult them before any mutating
// clock or documentation operation.
type Resolver interface {
	// EmployeeOwnsVisit returns the visit iff its assigned employee is
	// employeeID. Returns ErrNotAssigned otherwise.
	EmployeeOwnsVisit(ctx context.Context, employeeID, visitID string) (visit.Visit, error)

	// ClientOwnsVisit returns the visit iff it belongs to clientID.
	// Returns ErrNotVisitClient otherwise.
	ClientOwnsVisit(ctx context.Context, clientID, visitID string) (visit.Visit, error)

	// EmployeeMayServeClient reports whether the employee holds an active
	// assignment to the client on the given day
	EmployeeMayServeClient(ctx context.Context, employeeID, clientID string, day time.Time) (bool, error)
}

// AssignmentService defines scheduling-side assignment management.
type AssignmentService interface {
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, filter AssignmentFilter) ([]AssignmentResponse, error)
	EndAssignment(ctx context.Context, id string, endDate string) (AssignmentResponse, error)
}
