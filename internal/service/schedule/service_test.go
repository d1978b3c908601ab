package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVisitRepo struct {
	visit.VisitRepository

	lastFilter visit.VisitFilter
	visits     []visit.Visit
}

func (s *stubVisitRepo) List(ctx context.Context, filter visit.VisitFilter) ([]visit.Visit, error) {
	s.lastFilter = filter
	return s.visits, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func makeVisit(clientID string, status visit.Status, verified bool) visit.Visit {
	v := visit.Visit{
		ClientID: clientID,
		Status:   status,
	}
	if verified {
		v.ActualStart = timePtr(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
		v.ActualEnd = timePtr(time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC))
	}
	return v
}

func TestWeekWindow_MidWeek(t *testing.T) {
	t.Parallel()

	// 2026-01-07 is a Wednesday
	start, end := WeekWindow(time.Date(2026, 1, 7, 15, 30, 0, 0, time.UTC))

	assert.Equal(t, "2026-01-04", start.Format("2006-01-02"))
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, "2026-01-10", end.Format("2006-01-02"))
	assert.Equal(t, time.Saturday, end.Weekday())
}

func TestWeekWindow_OnSunday(t *testing.T) {
	t.Parallel()

	start, end := WeekWindow(time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-01-04", start.Format("2006-01-02"))
	assert.Equal(t, "2026-01-10", end.Format("2006-01-02"))
}

func TestWeekWindow_OnSaturday(t *testing.T) {
	t.Parallel()

	start, end := WeekWindow(time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, "2026-01-04", start.Format("2006-01-02"))
	assert.Equal(t, "2026-01-10", end.Format("2006-01-02"))
}

func TestComputeWeeklyStats(t *testing.T) {
	t.Parallel()

	visits := []visit.Visit{
		makeVisit("client-a", visit.StatusCompleted, true),
		makeVisit("client-a", visit.StatusScheduled, false),
		makeVisit("client-b", visit.StatusConfirmed, false),
		makeVisit("client-c", visit.StatusCancelled, false),
		makeVisit("client-c", visit.StatusNoShow, false),
	}

	stats := ComputeWeeklyStats(visits)

	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Upcoming)
	assert.Equal(t, 3, stats.UniqueClients)
}

func TestComputeWeeklyStats_Empty(t *testing.T) {
	t.Parallel()

	stats := ComputeWeeklyStats(nil)

	assert.Equal(t, 0, stats.Completed)
	assert.Equal(t, 0, stats.Upcoming)
	assert.Equal(t, 0, stats.UniqueClients)
}

func TestEVVComplianceRate_EmptySet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(0), EVVComplianceRate(nil))
	assert.Equal(t, float64(0), EVVComplianceRate([]visit.Visit{}))
}

func TestEVVComplianceRate_AllVerified(t *testing.T) {
	t.Parallel()

	visits := []visit.Visit{
		makeVisit("client-a", visit.StatusCompleted, true),
		makeVisit("client-b", visit.StatusCompleted, true),
	}

	assert.Equal(t, float64(100), EVVComplianceRate(visits))
}

func TestEVVComplianceRate_UnverifiedVisitsCountInDenominator(t *testing.T) {
	t.Parallel()

	// One verified completed visit, one scheduled visit without clock
	// events: half the week is compliant, not all of it
	visits := []visit.Visit{
		makeVisit("client-a", visit.StatusCompleted, true),
		makeVisit("client-b", visit.StatusScheduled, false),
	}

	assert.InDelta(t, 50, EVVComplianceRate(visits), 0.001)
}

func TestEVVComplianceRate_StatusDoesNotMatter(t *testing.T) {
	t.Parallel()

	// The rate keys on the clock events alone: a visit with both
	// timestamps counts as verified whatever its status says
	visits := []visit.Visit{
		makeVisit("client-a", visit.StatusCompleted, true),
		makeVisit("client-b", visit.StatusInProgress, true),
	}

	assert.Equal(t, float64(100), EVVComplianceRate(visits))
}

func TestEVVComplianceRate_Partial(t *testing.T) {
	t.Parallel()

	visits := []visit.Visit{
		makeVisit("client-a", visit.StatusCompleted, true),
		makeVisit("client-b", visit.StatusCompleted, false),
	}

	assert.InDelta(t, 50, EVVComplianceRate(visits), 0.001)
}

func TestScheduleService_VisitsInWeek_FiltersByWindow(t *testing.T) {
	t.Parallel()

	repo := &stubVisitRepo{visits: []visit.Visit{
		makeVisit("client-a", visit.StatusCompleted, true),
	}}
	service := NewScheduleService(repo)

	employeeID := "emp-1"
	result, err := service.VisitsInWeek(context.Background(), time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC), &employeeID)

	require.NoError(t, err)
	assert.Equal(t, "2026-01-04", result.WeekStart)
	assert.Equal(t, "2026-01-10", result.WeekEnd)
	assert.Len(t, result.Visits, 1)
	assert.Equal(t, 1, result.Stats.Completed)
	assert.Equal(t, float64(100), result.EVVComplianceRate)

	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, "2026-01-04", *repo.lastFilter.StartDate)
	require.NotNil(t, repo.lastFilter.EndDate)
	assert.Equal(t, "2026-01-10", *repo.lastFilter.EndDate)
	require.NotNil(t, repo.lastFilter.EmployeeID)
	assert.Equal(t, "emp-1", *repo.lastFilter.EmployeeID)
}
