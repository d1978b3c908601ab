package visit

import (
	"context"
	"time"
)

// VisitRepository defines data access methods for visit records.
//
// StartVisit and CompleteVisit are single conditional updates: the WHERE
// clause carries the state guard so that concurrent requests are serialized
// by the database and exactly one wins. Both return pgx.ErrNoRows (wrapped)
// when the guard does not match; the service re-reads the row to classify
// the conflict.
type VisitRepository interface {
	// Create creates a new visit record with status SCHEDULED
	Create(ctx context.Context, v Visit) (Visit, error)

	// GetByID retrieves a visit by ID
	GetByID(ctx context.Context, id string) (Visit, error)

	// List retrieves visits matching the filter, ascending by scheduled
	// date then scheduled start
	List(ctx context.Context, filter VisitFilter) ([]Visit, error)

	// StartVisit records the clock-in event. Guard: actual_start IS NULL
	// AND status in (SCHEDULED, CONFIRMED).
	StartVisit(ctx context.Context, id string, at time.Time, lat, lng float64, method string) (Visit, error)

	// CompleteVisit records the clock-out event. Guard: actual_start IS NOT
	// NULL AND actual_end IS NULL.
	CompleteVisit(ctx context.Context, id string, at time.Time, lat, lng float64, method string, notes *string) (Visit, error)

	// SetStatus applies an administrative transition. Guard: current status
	// must be one of from.
	SetStatus(ctx context.Context, id string, to Status, from []Status) (Visit, error)

	// SetDocumentation overwrites caregiver_notes and notes. Guard: the
	// visit must belong to employeeID; a non-match is indistinguishable
	// from a missing visit.
	SetDocumentation(ctx context.Context, id, employeeID string, careNotes string, tasksPerformed *string) (Visit, error)

	// ListUndocumented retrieves COMPLETED or IN_PROGRESS visits without
	// caregiver notes for the employee, scheduled on/after since, most
	// recent first
	ListUndocumented(ctx context.Context, employeeID string, since time.Time) ([]Visit, error)

	// ListDocumented retrieves documented visits for the employee on/after
	// since, most recent first, bounded by limit
	ListDocumented(ctx context.Context, employeeID string, since time.Time, limit int) ([]Visit, error)
}

// VisitTaskRepository is the append-only log of task completions per visit.
type VisitTaskRepository interface {
	// Append inserts one row per task; existing rows are never touched
	Append(ctx context.Context, visitID, employeeID string, tasks []string, completedAt time.Time) ([]VisitTask, error)

	// ListByVisit retrieves task completions for a visit in insertion order
	ListByVisit(ctx context.Context, visitID string) ([]VisitTask, error)
}
