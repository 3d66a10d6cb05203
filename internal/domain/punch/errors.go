package punch

import "errors"

// Punch domain errors
var (
	ErrUnknownDevice  = errors.New("device is not in the monitored device list")
	ErrDuplicateEvent = errors.New("punch event already recorded for this device and timestamp")
	ErrEmptyBatch     = errors.New("punch batch contains no events")
)
