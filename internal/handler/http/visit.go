package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/caretrack/agency-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type VisitHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	NoShow(w http.ResponseWriter, r *http.Request)
	Reschedule(w http.ResponseWriter, r *http.Request)
}

type visitHandlerImpl struct {
	visitService visit.VisitService
}

func NewVisitHandler(visitService visit.VisitService) VisitHandler {
	return &visitHandlerImpl{
		visitService: visitService,
	}
}

// Create implements VisitHandler.
func (h *visitHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req visit.CreateVisitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create visit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.visitService.CreateVisit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Visit scheduled successfully", result)
}

// Get implements VisitHandler.
func (h *visitHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.visitService.GetVisit(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements VisitHandler.
func (h *visitHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := visit.VisitFilter{}
	query := r.URL.Query()

	if startDate := query.Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := query.Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}
	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if clientID := query.Get("client_id"); clientID != "" {
		filter.ClientID = &clientID
	}

	result, err := h.visitService.ListVisits(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ClockIn implements VisitHandler.
func (h *visitHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req visit.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.visitService.ClockIn(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock in successful", result)
}

// ClockOut implements VisitHandler.
func (h *visitHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req visit.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.visitService.ClockOut(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// Confirm implements VisitHandler.
func (h *visitHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	result, err := h.visitService.ConfirmVisit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Visit confirmed", result)
}

// Cancel implements VisitHandler.
func (h *visitHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	result, err := h.visitService.CancelVisit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Visit cancelled", result)
}

// NoShow implements VisitHandler.
func (h *visitHandlerImpl) NoShow(w http.ResponseWriter, r *http.Request) {
	result, err := h.visitService.MarkNoShow(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Visit marked as no-show", result)
}

// Reschedule implements VisitHandler.
func (h *visitHandlerImpl) Reschedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.visitService.RescheduleVisit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Visit marked for rescheduling", result)
}
