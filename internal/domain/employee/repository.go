package employee

import (
	"context"
)

// EmployeeRepository defines read access to the employee directory.
type EmployeeRepository interface {
	// GetByID retrieves a single directory entry by badge id.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns all active employees, ordered by full name.
	ListActive(ctx context.Context) ([]Employee, error)

	// ListByIDs returns directory entries for the given badge ids. Ids with
	// no directory row are simply missing from the result.
	ListByIDs(ctx context.Context, ids []string) ([]Employee, error)
}
