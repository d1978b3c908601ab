package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/assignment"
	"github.com/caretrack/agency-backend-go/internal/domain/client"
	"github.com/caretrack/agency-backend-go/internal/domain/employee"
	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAssignmentRepo struct {
	assignments map[string]assignment.Assignment
}

func newMemAssignmentRepo() *memAssignmentRepo {
	return &memAssignmentRepo{assignments: make(map[string]assignment.Assignment)}
}

func (r *memAssignmentRepo) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	a.ID = uuid.NewString()
	r.assignments[a.ID] = a
	return a, nil
}

func (r *memAssignmentRepo) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return assignment.Assignment{}, assignment.ErrAssignmentNotFound
	}
	return a, nil
}

func (r *memAssignmentRepo) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, error) {
	var result []assignment.Assignment
	for _, a := range r.assignments {
		if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.ClientID != nil && a.ClientID != *filter.ClientID {
			continue
		}
		if filter.ActiveOn != nil && !a.ActiveOn(*filter.ActiveOn) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *memAssignmentRepo) End(ctx context.Context, id string, endDate time.Time) (assignment.Assignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return assignment.Assignment{}, assignment.ErrAssignmentNotFound
	}
	if a.EndDate != nil {
		return assignment.Assignment{}, assignment.ErrAssignmentAlreadyEnded
	}
	a.EndDate = &endDate
	r.assignments[id] = a
	return a, nil
}

func (r *memAssignmentRepo) HasActiveAssignment(ctx context.Context, employeeID, clientID string, day time.Time) (bool, error) {
	for _, a := range r.assignments {
		if a.EmployeeID == employeeID && a.ClientID == clientID && a.ActiveOn(day) {
			return true, nil
		}
	}
	return false, nil
}

type memEmployeeRepo struct{ ids map[string]bool }

func (r *memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !r.ids[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

func (r *memEmployeeRepo) Exists(ctx context.Context, id string) (bool, error) {
	return r.ids[id], nil
}

type memClientRepo struct{ ids map[string]bool }

func (r *memClientRepo) GetByID(ctx context.Context, id string) (client.Client, error) {
	if !r.ids[id] {
		return client.Client{}, client.ErrClientNotFound
	}
	return client.Client{ID: id}, nil
}

func (r *memClientRepo) Exists(ctx context.Context, id string) (bool, error) {
	return r.ids[id], nil
}

type memVisitRepo struct {
	visit.VisitRepository

	visits map[string]visit.Visit
}

func (r *memVisitRepo) GetByID(ctx context.Context, id string) (visit.Visit, error) {
	v, ok := r.visits[id]
	if !ok {
		return visit.Visit{}, visit.ErrVisitNotFound
	}
	return v, nil
}

const (
	empID    = "emp-1"
	clientID = "client-1"
)

func newServiceUnderTest() (assignment.AssignmentService, *memAssignmentRepo) {
	repo := newMemAssignmentRepo()
	service := NewAssignmentService(
		repo,
		&memEmployeeRepo{ids: map[string]bool{empID: true}},
		&memClientRepo{ids: map[string]bool{clientID: true}},
	)
	return service, repo
}

func TestAssignmentService_CreateAssignment_Success(t *testing.T) {
	t.Parallel()
	service, _ := newServiceUnderTest()

	result, err := service.CreateAssignment(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: empID,
		ClientID:   clientID,
		StartDate:  "2026-01-01",
		IsPrimary:  true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "2026-01-01", result.StartDate)
	assert.Nil(t, result.EndDate)
	assert.True(t, result.IsPrimary)
}

func TestAssignmentService_CreateAssignment_UnknownEmployee(t *testing.T) {
	t.Parallel()
	service, _ := newServiceUnderTest()

	_, err := service.CreateAssignment(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: "emp-missing",
		ClientID:   clientID,
		StartDate:  "2026-01-01",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee does not exist")
}

func TestAssignmentService_EndAssignment_Success(t *testing.T) {
	t.Parallel()
	service, _ := newServiceUnderTest()
	ctx := context.Background()

	created, err := service.CreateAssignment(ctx, assignment.CreateAssignmentRequest{
		EmployeeID: empID,
		ClientID:   clientID,
		StartDate:  "2026-01-01",
	})
	require.NoError(t, err)

	result, err := service.EndAssignment(ctx, created.ID, "2026-03-31")

	require.NoError(t, err)
	require.NotNil(t, result.EndDate)
	assert.Equal(t, "2026-03-31", *result.EndDate)
}

func TestAssignmentService_EndAssignment_AlreadyEnded(t *testing.T) {
	t.Parallel()
	service, _ := newServiceUnderTest()
	ctx := context.Background()

	created, err := service.CreateAssignment(ctx, assignment.CreateAssignmentRequest{
		EmployeeID: empID,
		ClientID:   clientID,
		StartDate:  "2026-01-01",
	})
	require.NoError(t, err)

	_, err = service.EndAssignment(ctx, created.ID, "2026-03-31")
	require.NoError(t, err)

	_, err = service.EndAssignment(ctx, created.ID, "2026-04-30")
	assert.ErrorIs(t, err, assignment.ErrAssignmentAlreadyEnded)
}

func TestAssignmentService_EndAssignment_BadDate(t *testing.T) {
	t.Parallel()
	service, _ := newServiceUnderTest()

	_, err := service.EndAssignment(context.Background(), uuid.NewString(), "31-03-2026")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestResolver_EmployeeOwnsVisit(t *testing.T) {
	t.Parallel()

	owner := empID
	visitID := uuid.NewString()
	visitRepo := &memVisitRepo{visits: map[string]visit.Visit{
		visitID: {ID: visitID, ClientID: clientID, EmployeeID: &owner},
	}}
	resolver := NewResolver(visitRepo, newMemAssignmentRepo())
	ctx := context.Background()

	v, err := resolver.EmployeeOwnsVisit(ctx, empID, visitID)
	require.NoError(t, err)
	assert.Equal(t, visitID, v.ID)

	_, err = resolver.EmployeeOwnsVisit(ctx, "emp-2", visitID)
	assert.ErrorIs(t, err, assignment.ErrNotAssigned)

	_, err = resolver.EmployeeOwnsVisit(ctx, empID, uuid.NewString())
	assert.ErrorIs(t, err, visit.ErrVisitNotFound)
}

func TestResolver_EmployeeMayServeClient_RespectsWindow(t *testing.T) {
	t.Parallel()

	repo := newMemAssignmentRepo()
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	repo.assignments["a1"] = assignment.Assignment{
		ID:         "a1",
		EmployeeID: empID,
		ClientID:   clientID,
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    &end,
	}
	resolver := NewResolver(&memVisitRepo{}, repo)
	ctx := context.Background()

	active, err := resolver.EmployeeMayServeClient(ctx, empID, clientID, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, active)

	active, err = resolver.EmployeeMayServeClient(ctx, empID, clientID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, active)

	active, err = resolver.EmployeeMayServeClient(ctx, empID, clientID, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, active)
}
