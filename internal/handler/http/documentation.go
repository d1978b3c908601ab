package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/caretrack/agency-backend-go/internal/handler/http/response"
	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
)

// documentationWindowDays bounds how far back the documentation list reaches
// when the caller does not say.
const documentationWindowDays = 30

type DocumentationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type documentationHandlerImpl struct {
	visitService visit.VisitService
}

func NewDocumentationHandler(visitService visit.VisitService) DocumentationHandler {
	return &documentationHandlerImpl{
		visitService: visitService,
	}
}

// List implements DocumentationHandler.
func (h *documentationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	since := time.Now().AddDate(0, 0, -documentationWindowDays)
	if sinceParam := r.URL.Query().Get("since"); sinceParam != "" {
		parsed, ok := validator.IsValidDate(sinceParam)
		if !ok {
			response.BadRequest(w, "since must be in YYYY-MM-DD format", nil)
			return
		}
		since = parsed
	}

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "limit must be a non-negative integer", nil)
			return
		}
		limit = parsed
	}

	result, err := h.visitService.Documentation(r.Context(), employeeID, since, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Submit implements DocumentationHandler.
func (h *documentationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req visit.SubmitDocumentationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit documentation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.visitService.SubmitDocumentation(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Documentation submitted", result)
}
