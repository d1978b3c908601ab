package visit

import (
	"context"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/user"
)

// Actor is the authenticated identity acting on a visit. Handlers build it
// from token claims; services never read claims from the context themselves.
type Actor struct {
	UserID     string
	EmployeeID *string
	ClientID   *string
	Role       user.Role
}

// VisitService defines business logic for the visit lifecycle and EVV
// clock events.
type VisitService interface {
	// CreateVisit schedules a new visit (scheduler/admin)
	CreateVisit(ctx context.Context, req CreateVisitRequest) (VisitResponse, error)

	// GetVisit retrieves a single visit, scoped to the actor's role
	GetVisit(ctx context.Context, actor Actor, id string) (VisitResponse, error)

	// ListVisits retrieves visits matching the filter, scoped to the
	// actor's role: care staff see their own, clients see their own
	ListVisits(ctx context.Context, actor Actor, filter VisitFilter) ([]VisitResponse, error)

	// ClockIn records the visit start event with its geolocation
	ClockIn(ctx context.Context, actingEmployeeID string, req ClockInRequest) (VisitResponse, error)

	// ClockOut records the visit end event with its geolocation and
	// appends any task completions
	ClockOut(ctx context.Context, actingEmployeeID string, req ClockOutRequest) (VisitResponse, error)

	// SubmitDocumentation attaches caregiver clinical notes to a visit
	SubmitDocumentation(ctx context.Context, actingEmployeeID string, req SubmitDocumentationRequest) (VisitResponse, error)

	// Documentation lists the employee's pending and completed
	// documentation since the given date
	Documentation(ctx context.Context, actingEmployeeID string, since time.Time, limit int) (DocumentationResponse, error)

	// Administrative transitions, legal only before the visit starts
	ConfirmVisit(ctx context.Context, id string) (VisitResponse, error)
	CancelVisit(ctx context.Context, id string) (VisitResponse, error)
	MarkNoShow(ctx context.Context, id string) (VisitResponse, error)
	RescheduleVisit(ctx context.Context, id string) (VisitResponse, error)
}
