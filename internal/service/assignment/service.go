package assignment

import (
	"context"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/assignment"
	"github.com/caretrack/agency-backend-go/internal/domain/client"
	"github.com/caretrack/agency-backend-go/internal/domain/employee"
	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/caretrack/agency-backend-go/internal/pkg/validator"
)

type assignmentService struct {
	assignmentRepo assignment.AssignmentRepository
	employeeRepo   employee.EmployeeRepository
	clientRepo     client.ClientRepository
}

// CreateAssignment implements assignment.AssignmentService.
func (s *assignmentService) CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	var errs validator.ValidationErrors

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if !exists {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee does not exist",
		})
	}

	exists, err = s.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if !exists {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client does not exist",
		})
	}

	if len(errs) > 0 {
		return assignment.AssignmentResponse{}, errs
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	created, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		EmployeeID: req.EmployeeID,
		ClientID:   req.ClientID,
		StartDate:  startDate,
		IsPrimary:  req.IsPrimary,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return assignment.MapToResponse(created), nil
}

// ListAssignments implements assignment.AssignmentService.
func (s *assignmentService) ListAssignments(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, assignment.MapToResponse(a))
	}

	return responses, nil
}

// EndAssignment implements assignment.AssignmentService.
func (s *assignmentService) EndAssignment(ctx context.Context, id string, endDate string) (assignment.AssignmentResponse, error) {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(id) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	day, ok := validator.IsValidDate(endDate)
	if validator.IsEmpty(endDate) || !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return assignment.AssignmentResponse{}, errs
	}

	ended, err := s.assignmentRepo.End(ctx, id, day)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return assignment.MapToResponse(ended), nil
}

func NewAssignmentService(
	assignmentRepo assignment.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	clientRepo client.ClientRepository,
) assignment.AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		clientRepo:     clientRepo,
	}
}

type resolver struct {
	visitRepo      visit.VisitRepository
	assignmentRepo assignment.AssignmentRepository
}

// EmployeeOwnsVisit implements assignment.Resolver.
func (r *resolver) EmployeeOwnsVisit(ctx context.Context, employeeID, visitID string) (visit.Visit, error) {
	v, err := r.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return visit.Visit{}, err
	}

	if v.EmployeeID == nil || *v.EmployeeID != employeeID {
		return visit.Visit{}, assignment.ErrNotAssigned
	}

	return v, nil
}

// ClientOwnsVisit implements assignment.Resolver.
func (r *resolver) ClientOwnsVisit(ctx context.Context, clientID, visitID string) (visit.Visit, error) {
	v, err := r.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return visit.Visit{}, err
	}

	if v.ClientID != clientID {
		return visit.Visit{}, assignment.ErrNotVisitClient
	}

	return v, nil
}

// EmployeeMayServeClient implements assignment.Resolver.
func (r *resolver) EmployeeMayServeClient(ctx context.Context, employeeID, clientID string, day time.Time) (bool, error) {
	return r.assignmentRepo.HasActiveAssignment(ctx, employeeID, clientID, day)
}

func NewResolver(visitRepo visit.VisitRepository, assignmentRepo assignment.AssignmentRepository) assignment.Resolver {
	return &resolver{
		visitRepo:      visitRepo,
		assignmentRepo: assignmentRepo,
	}
}
