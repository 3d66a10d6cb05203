package punch

import (
	"time"
)

// Event is a single badge scan at a door device. Events arrive from the
// access-control hardware feed, are append-only and never mutated.
// Timestamps are local wall-clock values as reported by the device.
type Event struct {
	ID         string
	EmployeeID string
	DeviceID   string
	Timestamp  time.Time
	CreatedAt  time.Time
}

// Date returns the local calendar date of the event in YYYY-MM-DD form.
func (e Event) Date() string {
	return e.Timestamp.Format("2006-01-02")
}
