package punch

import (
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/validator"
)

// TimestampLayout is the wall-clock format used by the door controllers.
// Device feeds carry no timezone; values are taken as already-local.
const TimestampLayout = "2006-01-02 15:04:05"

// ========================================
// PUNCH INGEST DTOs
// ========================================

type IngestRequest struct {
	EmployeeID string `json:"employee_id"`
	DeviceID   string `json:"device_id"`
	Timestamp  string `json:"timestamp"`
}

func (r *IngestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}

	if _, ok := validator.IsValidWallClock(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be in YYYY-MM-DD HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEvent converts a validated request into an Event. Call Validate first;
// an unparseable timestamp yields a zero time here.
func (r *IngestRequest) ToEvent() Event {
	ts, _ := time.Parse(TimestampLayout, r.Timestamp)
	return Event{
		EmployeeID: r.EmployeeID,
		DeviceID:   r.DeviceID,
		Timestamp:  ts,
	}
}

type BatchIngestRequest struct {
	Events []IngestRequest `json:"events"`
}

// BatchIngestResult reports per-row outcomes of a batch ingest. Malformed
// rows are rejected individually; the batch itself never fails on them.
type BatchIngestResult struct {
	Accepted int               `json:"accepted"`
	Rejected int               `json:"rejected"`
	Errors   map[string]string `json:"errors,omitempty"`
}

type EventResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	DeviceID   string `json:"device_id"`
	Timestamp  string `json:"timestamp"`
}

func ToEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		DeviceID:   e.DeviceID,
		Timestamp:  e.Timestamp.Format(TimestampLayout),
	}
}
