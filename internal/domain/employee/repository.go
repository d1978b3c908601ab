package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// Exists reports whether an employee with the given ID exists
	Exists(ctx context.Context, id string) (bool, error)
}
