package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/assignment"
	"github.com/caretrack/agency-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepository struct {
	db *database.DB
}

const assignmentColumns = `
	a.id, a.employee_id, a.client_id, a.start_date, a.end_date, a.is_primary,
	a.created_at, a.updated_at,
	e.full_name AS employee_name,
	c.full_name AS client_name
`

func scanAssignment(row pgx.Row) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.ClientID, &a.StartDate, &a.EndDate, &a.IsPrimary,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.ClientName,
	)
	return a, err
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepository) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO caregiver_assignments (employee_id, client_id, start_date, is_primary)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID,
		a.ClientID,
		a.StartDate,
		a.IsPrimary,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a, nil
}

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepository) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM caregiver_assignments a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN clients c ON c.id = a.client_id
		WHERE a.id = $1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment by ID: %w", err)
	}

	return a, nil
}

// List implements assignment.AssignmentRepository.
func (r *assignmentRepository) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.ClientID != nil && *filter.ClientID != "" {
		baseWhere += fmt.Sprintf(" AND a.client_id = $%d", argIdx)
		args = append(args, *filter.ClientID)
		argIdx++
	}
	if filter.ActiveOn != nil {
		baseWhere += fmt.Sprintf(" AND a.start_date <= $%d AND (a.end_date IS NULL OR a.end_date >= $%d)", argIdx, argIdx)
		args = append(args, *filter.ActiveOn)
		argIdx++
	}

	query := `
		SELECT ` + assignmentColumns + `
		FROM caregiver_assignments a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN clients c ON c.id = a.client_id
		WHERE ` + baseWhere + `
		ORDER BY a.start_date DESC, a.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// End implements assignment.AssignmentRepository.
// The end_date IS NULL guard makes ending idempotent-by-rejection.
func (r *assignmentRepository) End(ctx context.Context, id string, endDate time.Time) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE caregiver_assignments a
		SET end_date = $2, updated_at = NOW()
		WHERE a.id = $1
		  AND a.end_date IS NULL
		RETURNING a.id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, endDate).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish missing from already ended
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return assignment.Assignment{}, getErr
			}
			return assignment.Assignment{}, assignment.ErrAssignmentAlreadyEnded
		}
		return assignment.Assignment{}, fmt.Errorf("failed to end assignment: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// HasActiveAssignment implements assignment.AssignmentRepository.
func (r *assignmentRepository) HasActiveAssignment(ctx context.Context, employeeID, clientID string, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM caregiver_assignments
			WHERE employee_id = $1
			  AND client_id = $2
			  AND start_date <= $3
			  AND (end_date IS NULL OR end_date >= $3)
		)
	`

	var active bool
	if err := q.QueryRow(ctx, query, employeeID, clientID, day).Scan(&active); err != nil {
		return false, fmt.Errorf("failed to check active assignment: %w", err)
	}

	return active, nil
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepository{db: db}
}
