package punch

import (
	"context"
	"time"
)

// EventRepository defines data access for the append-only punch log.
type EventRepository interface {
	// Insert appends a single punch event from the hardware feed.
	Insert(ctx context.Context, event Event) (Event, error)

	// InsertBatch appends a batch of punch events, returning how many rows
	// were written. Duplicate (employee, device, timestamp) rows are skipped.
	InsertBatch(ctx context.Context, events []Event) (int, error)

	// ListByDateRange returns events with from <= timestamp < to, restricted
	// to the given device allowlist, ordered by timestamp ascending.
	ListByDateRange(ctx context.Context, from, to time.Time, deviceIDs []string) ([]Event, error)

	// CountByDevice returns per-device event counts for a range, used by the
	// device health view.
	CountByDevice(ctx context.Context, from, to time.Time) (map[string]int64, error)
}
