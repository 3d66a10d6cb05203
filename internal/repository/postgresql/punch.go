package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.EventRepository {
	return &punchRepository{db: db}
}

// Insert implements punch.EventRepository.
func (r *punchRepository) Insert(ctx context.Context, event punch.Event) (punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (employee_id, device_id, punched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, device_id, punched_at) DO NOTHING
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		event.EmployeeID,
		event.DeviceID,
		event.Timestamp,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return punch.Event{}, punch.ErrDuplicateEvent
		}
		return punch.Event{}, fmt.Errorf("failed to insert punch event: %w", err)
	}

	return event, nil
}

// InsertBatch implements punch.EventRepository. The whole batch commits or
// rolls back together; duplicate rows are skipped, not errors.
func (r *punchRepository) InsertBatch(ctx context.Context, events []punch.Event) (int, error) {
	if len(events) == 0 {
		return 0, punch.ErrEmptyBatch
	}

	inserted := 0
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		for _, event := range events {
			tag, err := q.Exec(txCtx, `
				INSERT INTO punch_events (employee_id, device_id, punched_at)
				VALUES ($1, $2, $3)
				ON CONFLICT (employee_id, device_id, punched_at) DO NOTHING
			`, event.EmployeeID, event.DeviceID, event.Timestamp)
			if err != nil {
				return fmt.Errorf("failed to insert punch event batch row: %w", err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// ListByDateRange implements punch.EventRepository.
func (r *punchRepository) ListByDateRange(ctx context.Context, from, to time.Time, deviceIDs []string) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, device_id, punched_at, created_at
		FROM punch_events
		WHERE punched_at >= $1
		  AND punched_at < $2
		  AND device_id = ANY($3)
		ORDER BY punched_at ASC
	`

	rows, err := q.Query(ctx, query, from, to, deviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var e punch.Event
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.DeviceID, &e.Timestamp, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// CountByDevice implements punch.EventRepository.
func (r *punchRepository) CountByDevice(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT device_id, COUNT(*)
		FROM punch_events
		WHERE punched_at >= $1
		  AND punched_at < $2
		GROUP BY device_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count punch events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var deviceID string
		var count int64
		if err := rows.Scan(&deviceID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan device count: %w", err)
		}
		counts[deviceID] = count
	}

	return counts, rows.Err()
}
