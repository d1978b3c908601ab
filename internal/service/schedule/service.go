package schedule

import (
	"context"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/schedule"
	"github.com/caretrack/agency-backend-go/internal/domain/visit"
)

type scheduleService struct {
	visitRepo visit.VisitRepository
}

// WeekWindow returns the Sunday and Saturday bounding the week that contains
// referenceDate. Both bounds are midnight of their calendar day.
func WeekWindow(referenceDate time.Time) (time.Time, time.Time) {
	day := time.Date(referenceDate.Year(), referenceDate.Month(), referenceDate.Day(), 0, 0, 0, 0, referenceDate.Location())
	weekStart := day.AddDate(0, 0, -int(day.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart, weekEnd
}

// ComputeWeeklyStats aggregates one week of visits: completed count, upcoming
// count, and the number of distinct clients on the calendar.
func ComputeWeeklyStats(visits []visit.Visit) schedule.WeeklyStats {
	stats := schedule.WeeklyStats{}
	clients := make(map[string]struct{})

	for _, v := range visits {
		clients[v.ClientID] = struct{}{}
		switch v.Status {
		case visit.StatusCompleted:
			stats.Completed++
		case visit.StatusScheduled, visit.StatusConfirmed:
			stats.Upcoming++
		}
	}

	stats.UniqueClients = len(clients)
	return stats
}

// EVVComplianceRate is the share of visits in the set that carry both clock
// events, as a percentage. The denominator is the whole set, so scheduled
// visits that have not happened yet drag the rate down. An empty set rates 0.
func EVVComplianceRate(visits []visit.Visit) float64 {
	if len(visits) == 0 {
		return 0
	}

	verified := 0
	for _, v := range visits {
		if v.EVVVerified() {
			verified++
		}
	}

	return float64(verified) / float64(len(visits)) * 100
}

// VisitsInWeek implements schedule.ScheduleService.
func (s *scheduleService) VisitsInWeek(ctx context.Context, referenceDate time.Time, employeeID *string) (schedule.WeekResponse, error) {
	weekStart, weekEnd := WeekWindow(referenceDate)

	startDate := weekStart.Format("2006-01-02")
	endDate := weekEnd.Format("2006-01-02")

	visits, err := s.visitRepo.List(ctx, visit.VisitFilter{
		StartDate:  &startDate,
		EndDate:    &endDate,
		EmployeeID: employeeID,
	})
	if err != nil {
		return schedule.WeekResponse{}, err
	}

	responses := make([]visit.VisitResponse, 0, len(visits))
	for _, v := range visits {
		responses = append(responses, visit.MapToResponse(v))
	}

	return schedule.WeekResponse{
		WeekStart:         startDate,
		WeekEnd:           endDate,
		Visits:            responses,
		Stats:             ComputeWeeklyStats(visits),
		EVVComplianceRate: EVVComplianceRate(visits),
	}, nil
}

func NewScheduleService(visitRepo visit.VisitRepository) schedule.ScheduleService {
	return &scheduleService{visitRepo: visitRepo}
}
