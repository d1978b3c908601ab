package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/caretrack/agency-backend-go/internal/domain/visit"
	"github.com/caretrack/agency-backend-go/internal/pkg/database"
)

type visitTaskRepository struct {
	db *database.DB
}

// Append implements visit.VisitTaskRepository.
// Rows are insert-only; a retried clock-out appends a fresh batch instead
// of rewriting a shared array field on the visit row.
func (r *visitTaskRepository) Append(ctx context.Context, visitID, employeeID string, tasks []string, completedAt time.Time) ([]visit.VisitTask, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO visit_tasks (visit_id, employee_id, task_name, completed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	appended := make([]visit.VisitTask, 0, len(tasks))
	for _, task := range tasks {
		record := visit.VisitTask{
			VisitID:     visitID,
			EmployeeID:  employeeID,
			TaskName:    task,
			CompletedAt: completedAt,
		}
		if err := q.QueryRow(ctx, query, visitID, employeeID, task, completedAt).Scan(&record.ID); err != nil {
			return nil, fmt.Errorf("failed to append visit task: %w", err)
		}
		appended = append(appended, record)
	}

	return appended, nil
}

// ListByVisit implements visit.VisitTaskRepository.
func (r *visitTaskRepository) ListByVisit(ctx context.Context, visitID string) ([]visit.VisitTask, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, visit_id, employee_id, task_name, completed_at
		FROM visit_tasks
		WHERE visit_id = $1
		ORDER BY completed_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query visit tasks: %w", err)
	}
	defer rows.Close()

	var tasks []visit.VisitTask
	for rows.Next() {
		var t visit.VisitTask
		if err := rows.Scan(&t.ID, &t.VisitID, &t.EmployeeID, &t.TaskName, &t.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan visit task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

func NewVisitTaskRepository(db *database.DB) visit.VisitTaskRepository {
	return &visitTaskRepository{db: db}
}
