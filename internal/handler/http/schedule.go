package http

import (
	"net/http"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/schedule"
	"github.com/caretrack/agency-backend-go/internal/domain/user"
	"github.com/caretrack/agency-backend-go/internal/handler/http/response"
	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	Week(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Week implements ScheduleHandler. Care staff always get their own week;
// scheduling roles may ask for any employee's or the whole agency's.
func (h *scheduleHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	referenceDate := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, ok := validator.IsValidDate(dateParam)
		if !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		referenceDate = parsed
	}

	var employeeID *string
	switch {
	case user.IsCareStaffRole(actor.Role):
		if actor.EmployeeID == nil {
			response.HandleError(w, user.ErrMissingEmployeeIdentity)
			return
		}
		employeeID = actor.EmployeeID
	default:
		if param := r.URL.Query().Get("employee_id"); param != "" {
			employeeID = &param
		}
	}

	result, err := h.scheduleService.VisitsInWeek(r.Context(), referenceDate, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
