package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrRangeTooWide     = errors.New("date range exceeds the maximum reporting period")
)
