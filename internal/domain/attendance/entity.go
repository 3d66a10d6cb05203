package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent     Status = "PRESENT"
	StatusPresentLate Status = "PRESENT_LATE"
	StatusHalfDay     Status = "HALF_DAY"
	StatusAbsent      Status = "ABSENT"
	StatusMisPunch    Status = "MIS_PUNCH"
)

// IsException reports whether a status belongs in the exceptions report.
// PRESENT and PRESENT_LATE are normal days; everything else needs a look.
func (s Status) IsException() bool {
	return s != StatusPresent && s != StatusPresentLate
}

// Record is one derived attendance row for an (employee, date) pair.
// Records are a pure projection of the punch log: recomputed on every
// query, never persisted. Manual corrections live in the regularization
// store and are merged at presentation time.
type Record struct {
	EmployeeID string
	Date       string // YYYY-MM-DD, local wall clock

	FirstIn *time.Time
	LastOut *time.Time

	// Durations in whole seconds. TotalOutSeconds is span minus worked time
	// and may be negative when the punch log is inconsistent; the raw value
	// is kept rather than clamped.
	TotalInSeconds   int64
	TotalOutSeconds  int64
	TotalSpanSeconds int64

	// Clock-style renderings of the three durations (HH:MM:SS, unclamped).
	WorkedTime string
	OutTime    string
	SpanTime   string

	Status Status

	// Mispunch flags days where exactly one of FirstIn/LastOut is missing,
	// independent of the status the classification rules settled on.
	Mispunch bool

	// Directory enrichment, filled by the attendance service.
	EmployeeName      *string
	Department        *string
	Title             *string
	HasRegularization bool
}
