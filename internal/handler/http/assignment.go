package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/caretrack/agency-backend-go/internal/domain/assignment"
	"github.com/caretrack/agency-backend-go/internal/handler/http/response"
	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &assignmentHandlerImpl{
		assignmentService: assignmentService,
	}
}

// Create implements AssignmentHandler.
func (h *assignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create assignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assignmentService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment created successfully", result)
}

// List implements AssignmentHandler.
func (h *assignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := assignment.AssignmentFilter{}
	query := r.URL.Query()

	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if clientID := query.Get("client_id"); clientID != "" {
		filter.ClientID = &clientID
	}
	if activeOn := query.Get("active_on"); activeOn != "" {
		day, ok := validator.IsValidDate(activeOn)
		if !ok {
			response.BadRequest(w, "active_on must be in YYYY-MM-DD format", nil)
			return
		}
		filter.ActiveOn = &day
	}

	result, err := h.assignmentService.ListAssignments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type endAssignmentRequest struct {
	EndDate string `json:"end_date"`
}

// End implements AssignmentHandler.
func (h *assignmentHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	var req endAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("End assignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assignmentService.EndAssignment(r.Context(), chi.URLParam(r, "id"), req.EndDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment ended", result)
}
