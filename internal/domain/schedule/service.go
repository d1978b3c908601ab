package schedule

import (
	"context"
	"time"
)

// ScheduleService provides read-only calendar projections over visits.
type ScheduleService interface {
	// VisitsInWeek returns the visits whose scheduled date falls in the
	// Sunday-to-Saturday week containing referenceDate, with weekly stats
	// and the EVV compliance rate for that window
	VisitsInWeek(ctx context.Context, referenceDate time.Time, employeeID *string) (WeekResponse, error)
}
