package schedule

import "github.com/caretrack/agency-backend-go/internal/domain/visit"

// WeeklyStats is a pure aggregation over one week of visits.
type WeeklyStats struct {
	Completed     int `json:"completed"`
	Upcoming      int `json:"upcoming"`
	UniqueClients int `json:"unique_clients"`
}

// WeekResponse is the calendar projection for one Sunday-to-Saturday week.
type WeekResponse struct {
	WeekStart         string                `json:"week_start"` // YYYY-MM-DD, Sunday
	WeekEnd           string                `json:"week_end"`   // YYYY-MM-DD, Saturday
	Visits            []visit.VisitResponse `json:"visits"`
	Stats             WeeklyStats           `json:"stats"`
	EVVComplianceRate float64               `json:"evv_compliance_rate"`
}
