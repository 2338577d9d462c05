package employee

import "context"

type EmployeeRepository interface {
	// GetActiveByLineUserID looks up the active employee bound to a LINE
	// user id. Returns ErrEmployeeNotFound when no active binding exists.
	GetActiveByLineUserID(ctx context.Context, lineUserID string) (Employee, error)

	// Create inserts a new active employee binding and returns the stored
	// row.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
