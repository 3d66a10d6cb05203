package derivation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/attendance"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
)

// ErrInvalidDeviceConfig is returned when the in/out device partition is
// unusable. Callers should treat it as a startup failure, not a per-request
// error; the engine performs no I/O so nothing else can fail.
var ErrInvalidDeviceConfig = errors.New("in and out device sets must be non-empty and disjoint")

// Classification cutoffs, as time-of-day offsets from midnight.
const (
	lateAfter    = 9*time.Hour + 35*time.Minute // strictly after -> late
	halfDayAfter = 10 * time.Hour               // late up to and including, half day after
	halfDayMin   = 4 * time.Hour                // span in [halfDayMin, halfDayMax) -> half day
	halfDayMax   = 7 * time.Hour
)

// Config partitions the monitored device ids into entry and exit readers.
// A device in neither set is ignored; a device in both is a config error.
type Config struct {
	InDevices  []string
	OutDevices []string
}

// Engine derives daily attendance records from raw punch events. It is a
// pure function of its inputs: no I/O, no mutation, safe for concurrent use.
type Engine struct {
	in  map[string]bool
	out map[string]bool
}

func NewEngine(cfg Config) (*Engine, error) {
	if len(cfg.InDevices) == 0 || len(cfg.OutDevices) == 0 {
		return nil, ErrInvalidDeviceConfig
	}

	in := make(map[string]bool, len(cfg.InDevices))
	for _, id := range cfg.InDevices {
		in[id] = true
	}
	out := make(map[string]bool, len(cfg.OutDevices))
	for _, id := range cfg.OutDevices {
		if in[id] {
			return nil, fmt.Errorf("%w: device %q is in both sets", ErrInvalidDeviceConfig, id)
		}
		out[id] = true
	}

	return &Engine{in: in, out: out}, nil
}

// Monitored reports whether the device participates in derivation.
func (e *Engine) Monitored(deviceID string) bool {
	return e.in[deviceID] || e.out[deviceID]
}

// MonitoredDevices returns the full allowlist, sorted, for punch-store
// queries.
func (e *Engine) MonitoredDevices() []string {
	ids := make([]string, 0, len(e.in)+len(e.out))
	for id := range e.in {
		ids = append(ids, id)
	}
	for id := range e.out {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type dayKey struct {
	employeeID string
	date       string
}

// Derive turns an unordered batch of punch events into one attendance
// record per (employee, local calendar date). Punches on unmonitored
// devices and punches with a missing timestamp are dropped; an empty batch
// yields an empty result.
func (e *Engine) Derive(punches []punch.Event) []attendance.Record {
	groups := make(map[dayKey][]punch.Event)
	var order []dayKey

	for _, p := range punches {
		if !e.Monitored(p.DeviceID) {
			continue
		}
		if p.Timestamp.IsZero() {
			// Malformed punch: skip the row, never the group.
			continue
		}
		key := dayKey{employeeID: p.EmployeeID, date: p.Date()}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], p)
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].employeeID != order[j].employeeID {
			return order[i].employeeID < order[j].employeeID
		}
		return order[i].date < order[j].date
	})

	records := make([]attendance.Record, 0, len(order))
	for _, key := range order {
		records = append(records, e.deriveDay(key, groups[key]))
	}
	return records
}

// DeriveExceptions is Derive restricted to records whose status is neither
// PRESENT nor PRESENT_LATE. Same derivation, pure post-filter.
func (e *Engine) DeriveExceptions(punches []punch.Event) []attendance.Record {
	all := e.Derive(punches)
	exceptions := make([]attendance.Record, 0, len(all))
	for _, rec := range all {
		if rec.Status.IsException() {
			exceptions = append(exceptions, rec)
		}
	}
	return exceptions
}

func (e *Engine) deriveDay(key dayKey, day []punch.Event) attendance.Record {
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Timestamp.Before(day[j].Timestamp)
	})

	var firstIn, lastOut *time.Time
	for i := range day {
		p := day[i]
		if e.in[p.DeviceID] && firstIn == nil {
			firstIn = &day[i].Timestamp
		}
		if e.out[p.DeviceID] {
			lastOut = &day[i].Timestamp
		}
	}

	// Innings pairing: ranks (1,2), (3,4), ... over ALL monitored punches
	// regardless of device role. Ordinal parity approximates in/out toggling
	// even when badge readers are used inconsistently; device role is only
	// consulted for first-in/last-out, never re-checked per pair. A trailing
	// unpaired punch contributes nothing.
	var totalIn int64
	for i := 0; i+1 < len(day); i += 2 {
		totalIn += int64(day[i+1].Timestamp.Sub(day[i].Timestamp) / time.Second)
	}
	// A day with no in-punch has no worked time; the pairing sum over
	// out-only punches is discarded.
	if firstIn == nil {
		totalIn = 0
	}

	var span int64
	if firstIn != nil && lastOut != nil {
		span = int64(lastOut.Sub(*firstIn) / time.Second)
	}
	// span - totalIn can go negative on inconsistent logs; keep the raw value.
	totalOut := span - totalIn

	rec := attendance.Record{
		EmployeeID:       key.employeeID,
		Date:             key.date,
		FirstIn:          firstIn,
		LastOut:          lastOut,
		TotalInSeconds:   totalIn,
		TotalOutSeconds:  totalOut,
		TotalSpanSeconds: span,
		WorkedTime:       FormatClock(totalIn),
		OutTime:          FormatClock(totalOut),
		SpanTime:         FormatClock(span),
		Mispunch:         (firstIn == nil) != (lastOut == nil),
	}
	rec.Status = classify(firstIn, span, rec.Mispunch)
	return rec
}

// classify applies the status rules in priority order, first match wins.
// MIS_PUNCH ranks below the span and late rules: a day with only an
// in-punch after 10:00 reads HALF_DAY, and a day with no in-punch at all
// reads ABSENT even when out-punches exist.
func classify(firstIn *time.Time, spanSeconds int64, mispunch bool) attendance.Status {
	if firstIn == nil {
		return attendance.StatusAbsent
	}

	span := time.Duration(spanSeconds) * time.Second
	if span >= halfDayMin && span < halfDayMax {
		return attendance.StatusHalfDay
	}

	tod := timeOfDay(*firstIn)
	switch {
	case tod > halfDayAfter:
		return attendance.StatusHalfDay
	case tod > lateAfter:
		return attendance.StatusPresentLate
	case mispunch:
		return attendance.StatusMisPunch
	default:
		return attendance.StatusPresent
	}
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// FormatClock renders a seconds count as HH:MM:SS by floor division. Values
// beyond 24:00:00 are legal and rendered as-is; negative values keep a
// leading minus sign.
func FormatClock(seconds int64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, seconds/3600, (seconds%3600)/60, seconds%60)
}
