package visit

import (
	"testing"

	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestClockInRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		req := ClockInRequest{
			VisitID:   "visit-1",
			Latitude:  f64(41.8781),
			Longitude: f64(-87.6298),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing coordinates", func(t *testing.T) {
		req := ClockInRequest{VisitID: "visit-1"}

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		details := errs.ToMap()
		assert.Contains(t, details, "latitude")
		assert.Contains(t, details, "longitude")
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		req := ClockInRequest{
			VisitID:   "visit-1",
			Latitude:  f64(91),
			Longitude: f64(-181),
		}

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		details := errs.ToMap()
		assert.Contains(t, details["latitude"], "between -90 and 90")
		assert.Contains(t, details["longitude"], "between -180 and 180")
	})

	t.Run("zero coordinates are valid", func(t *testing.T) {
		// Null Island is a legal GPS fix, distinct from an absent one
		req := ClockInRequest{
			VisitID:   "visit-1",
			Latitude:  f64(0),
			Longitude: f64(0),
		}
		assert.NoError(t, req.Validate())
	})
}

func TestClockOutRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("empty task name rejected", func(t *testing.T) {
		req := ClockOutRequest{
			VisitID:        "visit-1",
			Latitude:       f64(41.8781),
			Longitude:      f64(-87.6298),
			CompletedTasks: []string{"bathing", "  "},
		}

		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "completed_tasks")
	})

	t.Run("no tasks is valid", func(t *testing.T) {
		req := ClockOutRequest{
			VisitID:   "visit-1",
			Latitude:  f64(41.8781),
			Longitude: f64(-87.6298),
		}
		assert.NoError(t, req.Validate())
	})
}

func TestCreateVisitRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("end must be after start", func(t *testing.T) {
		req := CreateVisitRequest{
			ClientID:       "client-1",
			ScheduledDate:  "2026-01-05",
			ScheduledStart: "2026-01-05T11:00:00Z",
			ScheduledEnd:   "2026-01-05T09:00:00Z",
			ServiceType:    "personal_care",
		}

		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheduled_end must be after scheduled_start")
	})

	t.Run("bad date format", func(t *testing.T) {
		req := CreateVisitRequest{
			ClientID:       "client-1",
			ScheduledDate:  "01/05/2026",
			ScheduledStart: "2026-01-05T09:00:00Z",
			ScheduledEnd:   "2026-01-05T11:00:00Z",
			ServiceType:    "personal_care",
		}

		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})
}

func TestVisit_EVVVerified(t *testing.T) {
	t.Parallel()

	v := Visit{}
	assert.False(t, v.EVVVerified())

	start := v.CreatedAt
	v.ActualStart = &start
	assert.False(t, v.EVVVerified())

	v.ActualEnd = &start
	assert.True(t, v.EVVVerified())
}

func TestVisitFilter_Validate(t *testing.T) {
	t.Parallel()

	bad := "NOT_A_STATUS"
	filter := VisitFilter{Status: &bad}
	assert.Error(t, filter.Validate())

	good := string(StatusInProgress)
	filter = VisitFilter{Status: &good}
	assert.NoError(t, filter.Validate())
}
