package visit

import (
	"context"
	"errors"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/assignment"
	"github.com/caretrack/agency-backend-go/internal/domain/client"
	"github.com/caretrack/agency-backend-go/internal/domain/employee"
	"github.com/caretrack/agency-backend-go/internal/domain/user"
	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/caretrack/agency-backend-go/internal/pkg/utils"
	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type visitService struct {
	visitRepo    visit.VisitRepository
	taskRepo     visit.VisitTaskRepository
	clientRepo   client.ClientRepository
	employeeRepo employee.EmployeeRepository
	resolver     assignment.Resolver
}

// CreateVisit implements visit.VisitService.
func (s *visitService) CreateVisit(ctx context.Context, req visit.CreateVisitRequest) (visit.VisitResponse, error) {
	if err := req.Validate(); err != nil {
		return visit.VisitResponse{}, err
	}

	var errs validator.ValidationErrors

	exists, err := s.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		return visit.VisitResponse{}, err
	}
	if !exists {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client does not exist",
		})
	}

	if req.EmployeeID != nil && *req.EmployeeID != "" {
		exists, err := s.employeeRepo.Exists(ctx, *req.EmployeeID)
		if err != nil {
			return visit.VisitResponse{}, err
		}
		if !exists {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee does not exist",
			})
		}
	}

	if len(errs) > 0 {
		return visit.VisitResponse{}, errs
	}

	scheduledDate, _ := time.Parse("2006-01-02", req.ScheduledDate)
	scheduledStart, _ := time.Parse(time.RFC3339, req.ScheduledStart)
	scheduledEnd, _ := time.Parse(time.RFC3339, req.ScheduledEnd)

	created, err := s.visitRepo.Create(ctx, visit.Visit{
		ClientID:       req.ClientID,
		EmployeeID:     req.EmployeeID,
		ScheduledDate:  scheduledDate,
		ScheduledStart: scheduledStart,
		ScheduledEnd:   scheduledEnd,
		Status:         visit.StatusScheduled,
		ServiceType:    req.ServiceType,
		Notes:          req.Notes,
	})
	if err != nil {
		return visit.VisitResponse{}, err
	}

	return visit.MapToResponse(created), nil
}

// GetVisit implements visit.VisitService. Care staff and clients only see
// their own visits; a visit outside the actor's scope reads as not found.
func (s *visitService) GetVisit(ctx context.Context, actor visit.Actor, id string) (visit.VisitResponse, error) {
	var v visit.Visit
	var err error

	switch {
	case user.IsCareStaffRole(actor.Role):
		if actor.EmployeeID == nil {
			return visit.VisitResponse{}, user.ErrMissingEmployeeIdentity
		}
		v, err = s.resolver.EmployeeOwnsVisit(ctx, *actor.EmployeeID, id)
		if errors.Is(err, assignment.ErrNotAssigned) {
			err = visit.ErrVisitNotFound
		}
	case actor.Role == user.RoleClient:
		if actor.ClientID == nil {
			return visit.VisitResponse{}, user.ErrMissingClientIdentity
		}
		v, err = s.resolver.ClientOwnsVisit(ctx, *actor.ClientID, id)
		if errors.Is(err, assignment.ErrNotVisitClient) {
			err = visit.ErrVisitNotFound
		}
	default:
		v, err = s.visitRepo.GetByID(ctx, id)
	}
	if err != nil {
		return visit.VisitResponse{}, err
	}

	resp := visit.MapToResponse(v)
	if err := s.attachTasks(ctx, &resp); err != nil {
		return visit.VisitResponse{}, err
	}

	return resp, nil
}

// ListVisits implements visit.VisitService.
func (s *visitService) ListVisits(ctx context.Context, actor visit.Actor, filter visit.VisitFilter) ([]visit.VisitResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// Role scoping overrides whatever identity filters the caller supplied
	switch {
	case user.IsCareStaffRole(actor.Role):
		if actor.EmployeeID == nil {
			return nil, user.ErrMissingEmployeeIdentity
		}
		filter.EmployeeID = actor.EmployeeID
	case actor.Role == user.RoleClient:
		if actor.ClientID == nil {
			return nil, user.ErrMissingClientIdentity
		}
		filter.ClientID = actor.ClientID
	}

	visits, err := s.visitRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]visit.VisitResponse, 0, len(visits))
	for _, v := range visits {
		responses = append(responses, visit.MapToResponse(v))
	}

	return responses, nil
}

// ClockIn implements visit.VisitService.
func (s *visitService) ClockIn(ctx context.Context, actingEmployeeID string, req visit.ClockInRequest) (visit.VisitResponse, error) {
	if err := req.Validate(); err != nil {
		return visit.VisitResponse{}, err
	}

	v, err := s.resolver.EmployeeOwnsVisit(ctx, actingEmployeeID, req.VisitID)
	if err != nil {
		return visit.VisitResponse{}, err
	}

	active, err := s.resolver.EmployeeMayServeClient(ctx, actingEmployeeID, v.ClientID, v.ScheduledDate)
	if err != nil {
		return visit.VisitResponse{}, err
	}
	if !active {
		return visit.VisitResponse{}, assignment.ErrNoActiveAssignment
	}

	method := req.Method
	if method == "" {
		method = visit.MethodGPS
	}

	updated, err := s.visitRepo.StartVisit(ctx, req.VisitID, time.Now().UTC(), *req.Latitude, *req.Longitude, method)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return visit.VisitResponse{}, s.classifyClockInConflict(ctx, req.VisitID)
		}
		return visit.VisitResponse{}, err
	}

	resp := visit.MapToResponse(updated)
	s.attachDistance(ctx, updated, &resp)

	return resp, nil
}

// classifyClockInConflict re-reads the row after a compare-and-set miss to
// report why the clock-in was rejected.
func (s *visitService) classifyClockInConflict(ctx context.Context, visitID string) error {
	v, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return err
	}

	if v.ActualStart != nil {
		return visit.ErrAlreadyClockedIn
	}

	return visit.ErrNotClockable
}

// ClockOut implements visit.VisitService.
func (s *visitService) ClockOut(ctx context.Context, actingEmployeeID string, req visit.ClockOutRequest) (visit.VisitResponse, error) {
	if err := req.Validate(); err != nil {
		return visit.VisitResponse{}, err
	}

	if _, err := s.resolver.EmployeeOwnsVisit(ctx, actingEmployeeID, req.VisitID); err != nil {
		return visit.VisitResponse{}, err
	}

	method := req.Method
	if method == "" {
		method = visit.MethodGPS
	}

	now := time.Now().UTC()

	updated, err := s.visitRepo.CompleteVisit(ctx, req.VisitID, now, *req.Latitude, *req.Longitude, method, req.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return visit.VisitResponse{}, s.classifyClockOutConflict(ctx, req.VisitID)
		}
		return visit.VisitResponse{}, err
	}

	if len(req.CompletedTasks) > 0 {
		if _, err := s.taskRepo.Append(ctx, req.VisitID, actingEmployeeID, req.CompletedTasks, now); err != nil {
			return visit.VisitResponse{}, err
		}
	}

	resp := visit.MapToResponse(updated)
	s.attachDistance(ctx, updated, &resp)
	if err := s.attachTasks(ctx, &resp); err != nil {
		return visit.VisitResponse{}, err
	}

	return resp, nil
}

func (s *visitService) classifyClockOutConflict(ctx context.Context, visitID string) error {
	v, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return err
	}

	if v.ActualStart == nil {
		return visit.ErrNotClockedIn
	}
	if v.ActualEnd != nil {
		return visit.ErrAlreadyClockedOut
	}

	return visit.ErrNotClockable
}

// SubmitDocumentation implements visit.VisitService. The repository guards
// on employee_id, so a visit owned by someone else reads as not found.
func (s *visitService) SubmitDocumentation(ctx context.Context, actingEmployeeID string, req visit.SubmitDocumentationRequest) (visit.VisitResponse, error) {
	if err := req.Validate(); err != nil {
		return visit.VisitResponse{}, err
	}

	updated, err := s.visitRepo.SetDocumentation(ctx, req.VisitID, actingEmployeeID, req.CareNotes, req.TasksPerformed)
	if err != nil {
		return visit.VisitResponse{}, err
	}

	resp := visit.MapToResponse(updated)
	if err := s.attachTasks(ctx, &resp); err != nil {
		return visit.VisitResponse{}, err
	}

	return resp, nil
}

// Documentation implements visit.VisitService.
func (s *visitService) Documentation(ctx context.Context, actingEmployeeID string, since time.Time, limit int) (visit.DocumentationResponse, error) {
	pending, err := s.visitRepo.ListUndocumented(ctx, actingEmployeeID, since)
	if err != nil {
		return visit.DocumentationResponse{}, err
	}

	completed, err := s.visitRepo.ListDocumented(ctx, actingEmployeeID, since, limit)
	if err != nil {
		return visit.DocumentationResponse{}, err
	}

	resp := visit.DocumentationResponse{
		Pending:   make([]visit.VisitResponse, 0, len(pending)),
		Completed: make([]visit.VisitResponse, 0, len(completed)),
	}
	for _, v := range pending {
		resp.Pending = append(resp.Pending, visit.MapToResponse(v))
	}
	for _, v := range completed {
		resp.Completed = append(resp.Completed, visit.MapToResponse(v))
	}

	return resp, nil
}

// ConfirmVisit implements visit.VisitService.
func (s *visitService) ConfirmVisit(ctx context.Context, id string) (visit.VisitResponse, error) {
	return s.transition(ctx, id, visit.StatusConfirmed, []visit.Status{visit.StatusScheduled})
}

// CancelVisit implements visit.VisitService.
func (s *visitService) CancelVisit(ctx context.Context, id string) (visit.VisitResponse, error) {
	return s.transition(ctx, id, visit.StatusCancelled, []visit.Status{visit.StatusScheduled, visit.StatusConfirmed})
}

// MarkNoShow implements visit.VisitService.
func (s *visitService) MarkNoShow(ctx context.Context, id string) (visit.VisitResponse, error) {
	return s.transition(ctx, id, visit.StatusNoShow, []visit.Status{visit.StatusScheduled, visit.StatusConfirmed})
}

// RescheduleVisit implements visit.VisitService.
func (s *visitService) RescheduleVisit(ctx context.Context, id string) (visit.VisitResponse, error) {
	return s.transition(ctx, id, visit.StatusRescheduled, []visit.Status{visit.StatusScheduled, visit.StatusConfirmed})
}

// transition applies an administrative status change, legal only before the
// visit has started.
func (s *visitService) transition(ctx context.Context, id string, to visit.Status, from []visit.Status) (visit.VisitResponse, error) {
	updated, err := s.visitRepo.SetStatus(ctx, id, to, from)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := s.visitRepo.GetByID(ctx, id); getErr != nil {
				return visit.VisitResponse{}, getErr
			}
			return visit.VisitResponse{}, visit.ErrIllegalTransition
		}
		return visit.VisitResponse{}, err
	}

	return visit.MapToResponse(updated), nil
}

// attachDistance fills DistanceFromClientMeters from the most recent clock
// event and the client's home coordinates. Distance is informational; a
// lookup failure never fails the clock event itself.
func (s *visitService) attachDistance(ctx context.Context, v visit.Visit, resp *visit.VisitResponse) {
	c, err := s.clientRepo.GetByID(ctx, v.ClientID)
	if err != nil || c.HomeLatitude == nil || c.HomeLongitude == nil {
		return
	}

	lat, lng := v.ClockInLatitude, v.ClockInLongitude
	if v.ClockOutLatitude != nil && v.ClockOutLongitude != nil {
		lat, lng = v.ClockOutLatitude, v.ClockOutLongitude
	}
	if lat == nil || lng == nil {
		return
	}

	distance := utils.HaversineDistanceMeters(*lat, *lng, *c.HomeLatitude, *c.HomeLongitude)
	resp.DistanceFromClientMeters = &distance
}

func (s *visitService) attachTasks(ctx context.Context, resp *visit.VisitResponse) error {
	tasks, err := s.taskRepo.ListByVisit(ctx, resp.ID)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		resp.CompletedTasks = append(resp.CompletedTasks, visit.VisitTaskResponse{
			TaskName:    t.TaskName,
			CompletedAt: t.CompletedAt.Format(time.RFC3339),
		})
	}

	return nil
}

func NewVisitService(
	visitRepo visit.VisitRepository,
	taskRepo visit.VisitTaskRepository,
	clientRepo client.ClientRepository,
	employeeRepo employee.EmployeeRepository,
	resolver assignment.Resolver,
) visit.VisitService {
	return &visitService{
		visitRepo:    visitRepo,
		taskRepo:     taskRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
	}
}
