package regularization

import (
	"context"
)

// Repository defines data access for manual attendance corrections.
type Repository interface {
	// Create inserts a new regularization. Returns ErrAlreadyExists when one
	// is already stored for the same (employee, date).
	Create(ctx context.Context, reg Regularization) (Regularization, error)

	// GetByID retrieves a regularization by id.
	GetByID(ctx context.Context, id string) (Regularization, error)

	// Update replaces the editable fields of a pending regularization.
	Update(ctx context.Context, reg Regularization) error

	// List retrieves regularizations matching the filter with pagination.
	List(ctx context.Context, filter ListFilter) ([]Regularization, int64, error)

	// ListDayKeysInRange returns the (employee, date) pairs that already
	// have a saved regularization inside the date range, so the attendance
	// table can suppress duplicate edits.
	ListDayKeysInRange(ctx context.Context, startDate, endDate string) ([]DayKey, error)
}
