package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/caretrack/agency-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type visitRepository struct {
	db *database.DB
}

const visitColumns = `
	v.id, v.client_id, v.employee_id,
	v.scheduled_date, v.scheduled_start, v.scheduled_end,
	v.actual_start, v.actual_end,
	v.clock_in_latitude, v.clock_in_longitude, v.clock_in_method,
	v.clock_out_latitude, v.clock_out_longitude, v.clock_out_method,
	v.status, v.service_type, v.notes, v.caregiver_notes,
	v.created_at, v.updated_at,
	c.full_name AS client_name,
	e.full_name AS employee_name
`

const visitJoins = `
	FROM visits v
	LEFT JOIN clients c ON c.id = v.client_id
	LEFT JOIN employees e ON e.id = v.employee_id
`

func scanVisit(row pgx.Row) (visit.Visit, error) {
	var v visit.Visit
	err := row.Scan(
		&v.ID, &v.ClientID, &v.EmployeeID,
		&v.ScheduledDate, &v.ScheduledStart, &v.ScheduledEnd,
		&v.ActualStart, &v.ActualEnd,
		&v.ClockInLatitude, &v.ClockInLongitude, &v.ClockInMethod,
		&v.ClockOutLatitude, &v.ClockOutLongitude, &v.ClockOutMethod,
		&v.Status, &v.ServiceType, &v.Notes, &v.CaregiverNotes,
		&v.CreatedAt, &v.UpdatedAt,
		&v.ClientName, &v.EmployeeName,
	)
	return v, err
}

// Create implements visit.VisitRepository.
func (r *visitRepository) Create(ctx context.Context, v visit.Visit) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO visits (
			client_id, employee_id, scheduled_date, scheduled_start, scheduled_end,
			status, service_type, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		v.ClientID,
		v.EmployeeID,
		v.ScheduledDate,
		v.ScheduledStart,
		v.ScheduledEnd,
		v.Status,
		v.ServiceType,
		v.Notes,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)

	if err != nil {
		return visit.Visit{}, fmt.Errorf("failed to create visit: %w", err)
	}

	return v, nil
}

// GetByID implements visit.VisitRepository.
func (r *visitRepository) GetByID(ctx context.Context, id string) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + visitColumns + visitJoins + `WHERE v.id = $1`

	v, err := scanVisit(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return visit.Visit{}, visit.ErrVisitNotFound
		}
		return visit.Visit{}, fmt.Errorf("failed to get visit by ID: %w", err)
	}

	return v, nil
}

// List implements visit.VisitRepository.
func (r *visitRepository) List(ctx context.Context, filter visit.VisitFilter) ([]visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND v.scheduled_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND v.scheduled_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND v.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND v.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.ClientID != nil && *filter.ClientID != "" {
		baseWhere += fmt.Sprintf(" AND v.client_id = $%d", argIdx)
		args = append(args, *filter.ClientID)
		argIdx++
	}

	query := `SELECT ` + visitColumns + visitJoins +
		`WHERE ` + baseWhere + `
		ORDER BY v.scheduled_date ASC, v.scheduled_start ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []visit.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}

	return visits, nil
}

// StartVisit implements visit.VisitRepository.
// The WHERE clause is the compare-and-set: only one of two racing clock-in
// requests observes actual_start IS NULL, the other sees zero rows.
func (r *visitRepository) StartVisit(ctx context.Context, id string, at time.Time, lat, lng float64, method string) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE visits v
		SET actual_start = $2,
			clock_in_latitude = $3,
			clock_in_longitude = $4,
			clock_in_method = $5,
			status = 'IN_PROGRESS',
			updated_at = NOW()
		FROM clients c, employees e
		WHERE v.id = $1
		  AND v.actual_start IS NULL
		  AND v.status IN ('SCHEDULED', 'CONFIRMED')
		  AND c.id = v.client_id
		  AND e.id = v.employee_id
		RETURNING ` + visitColumns

	v, err := scanVisit(q.QueryRow(ctx, query, id, at, lat, lng, method))
	if err != nil {
		if err == pgx.ErrNoRows {
			return visit.Visit{}, fmt.Errorf("clock-in guard did not match: %w", err)
		}
		return visit.Visit{}, fmt.Errorf("failed to start visit: %w", err)
	}

	return v, nil
}

// CompleteVisit implements visit.VisitRepository.
// Same compare-and-set pattern on actual_end.
func (r *visitRepository) CompleteVisit(ctx context.Context, id string, at time.Time, lat, lng float64, method string, notes *string) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE visits v
		SET actual_end = $2,
			clock_out_latitude = $3,
			clock_out_longitude = $4,
			clock_out_method = $5,
			notes = COALESCE($6, v.notes),
			status = 'COMPLETED',
			updated_at = NOW()
		FROM clients c, employees e
		WHERE v.id = $1
		  AND v.actual_start IS NOT NULL
		  AND v.actual_end IS NULL
		  AND c.id = v.client_id
		  AND e.id = v.employee_id
		RETURNING ` + visitColumns

	v, err := scanVisit(q.QueryRow(ctx, query, id, at, lat, lng, method, notes))
	if err != nil {
		if err == pgx.ErrNoRows {
			return visit.Visit{}, fmt.Errorf("clock-out guard did not match: %w", err)
		}
		return visit.Visit{}, fmt.Errorf("failed to complete visit: %w", err)
	}

	return v, nil
}

// SetStatus implements visit.VisitRepository.
func (r *visitRepository) SetStatus(ctx context.Context, id string, to visit.Status, from []visit.Status) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	fromStates := make([]string, 0, len(from))
	for _, s := range from {
		fromStates = append(fromStates, string(s))
	}

	query := `
		UPDATE visits v
		SET status = $2, updated_at = NOW()
		WHERE v.id = $1
		  AND v.status = ANY($3)
		RETURNING v.id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, string(to), fromStates).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return visit.Visit{}, fmt.Errorf("status guard did not match: %w", err)
		}
		return visit.Visit{}, fmt.Errorf("failed to set visit status: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// SetDocumentation implements visit.VisitRepository.
// The employee_id guard makes a visit owned by someone else look exactly
// like a missing visit.
func (r *visitRepository) SetDocumentation(ctx context.Context, id, employeeID string, careNotes string, tasksPerformed *string) (visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE visits v
		SET caregiver_notes = $3,
			notes = COALESCE($4, v.notes),
			updated_at = NOW()
		WHERE v.id = $1
		  AND v.employee_id = $2
		RETURNING v.id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, employeeID, careNotes, tasksPerformed).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return visit.Visit{}, visit.ErrVisitNotFound
		}
		return visit.Visit{}, fmt.Errorf("failed to set documentation: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// ListUndocumented implements visit.VisitRepository.
func (r *visitRepository) ListUndocumented(ctx context.Context, employeeID string, since time.Time) ([]visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + visitColumns + visitJoins + `
		WHERE v.employee_id = $1
		  AND v.status IN ('COMPLETED', 'IN_PROGRESS')
		  AND (v.caregiver_notes IS NULL OR v.caregiver_notes = '')
		  AND v.scheduled_date >= $2
		ORDER BY v.scheduled_date DESC, v.scheduled_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query undocumented visits: %w", err)
	}
	defer rows.Close()

	var visits []visit.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}

	return visits, nil
}

// ListDocumented implements visit.VisitRepository.
func (r *visitRepository) ListDocumented(ctx context.Context, employeeID string, since time.Time, limit int) ([]visit.Visit, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + visitColumns + visitJoins + `
		WHERE v.employee_id = $1
		  AND v.caregiver_notes IS NOT NULL
		  AND v.caregiver_notes <> ''
		  AND v.scheduled_date >= $2
		ORDER BY v.scheduled_date DESC, v.scheduled_start DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, employeeID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query documented visits: %w", err)
	}
	defer rows.Close()

	var visits []visit.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}

	return visits, nil
}

func NewVisitRepository(db *database.DB) visit.VisitRepository {
	return &visitRepository{db: db}
}
