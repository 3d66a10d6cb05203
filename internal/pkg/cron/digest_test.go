package cron

import (
	"context"
	"testing"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/employee"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/service/derivation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPunchRepo struct {
	events []punch.Event
}

func (f *fixedPunchRepo) Insert(ctx context.Context, event punch.Event) (punch.Event, error) {
	return event, nil
}

func (f *fixedPunchRepo) InsertBatch(ctx context.Context, events []punch.Event) (int, error) {
	return len(events), nil
}

func (f *fixedPunchRepo) ListByDateRange(ctx context.Context, from, to time.Time, deviceIDs []string) ([]punch.Event, error) {
	var out []punch.Event
	for _, ev := range f.events {
		if !ev.Timestamp.Before(from) && ev.Timestamp.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fixedPunchRepo) CountByDevice(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	return nil, nil
}

type fixedEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fixedEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fixedEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Active {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fixedEmployeeRepo) ListByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		for _, emp := range f.employees {
			if emp.ID == id {
				out = append(out, emp)
			}
		}
	}
	return out, nil
}

func digestEvent(t *testing.T, employeeID, deviceID, value string) punch.Event {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return punch.Event{EmployeeID: employeeID, DeviceID: deviceID, Timestamp: ts}
}

func TestDigestJobs_Summarize(t *testing.T) {
	ctx := context.Background()

	engine, err := derivation.NewEngine(derivation.Config{
		InDevices:  []string{"IN-1"},
		OutDevices: []string{"OUT-1"},
	})
	require.NoError(t, err)

	// E001 works a full day (no exception). E002 punches in only
	// (MIS_PUNCH). E003 is active but never badges; the directory side
	// must count the absence. E004 is inactive and stays out entirely.
	punchRepo := &fixedPunchRepo{events: []punch.Event{
		digestEvent(t, "E001", "IN-1", "2026-03-02 08:00:00"),
		digestEvent(t, "E001", "OUT-1", "2026-03-02 17:00:00"),
		digestEvent(t, "E002", "IN-1", "2026-03-02 08:05:00"),
	}}
	employeeRepo := &fixedEmployeeRepo{employees: []employee.Employee{
		{ID: "E001", FullName: "Asha Verma", Department: "Engineering", Active: true},
		{ID: "E002", FullName: "Ravi Nair", Department: "Finance", Active: true},
		{ID: "E003", FullName: "Meera Iyer", Department: "Finance", Active: true},
		{ID: "E004", FullName: "Former Employee", Department: "Finance", Active: false},
	}}

	jobs := NewDigestJobs(punchRepo, employeeRepo, engine, engine.MonitoredDevices())

	day, err := time.Parse("2006-01-02", "2026-03-02")
	require.NoError(t, err)
	summary, err := jobs.Summarize(ctx, day)

	require.NoError(t, err)
	assert.NotContains(t, summary, "Engineering")
	require.Contains(t, summary, "Finance")
	assert.Equal(t, ExceptionCounts{Absent: 1, Mispunch: 1}, summary["Finance"])
}

func TestDigestJobs_Summarize_QuietDay(t *testing.T) {
	ctx := context.Background()

	engine, err := derivation.NewEngine(derivation.Config{
		InDevices:  []string{"IN-1"},
		OutDevices: []string{"OUT-1"},
	})
	require.NoError(t, err)

	punchRepo := &fixedPunchRepo{events: []punch.Event{
		digestEvent(t, "E001", "IN-1", "2026-03-02 08:00:00"),
		digestEvent(t, "E001", "OUT-1", "2026-03-02 17:00:00"),
	}}
	employeeRepo := &fixedEmployeeRepo{employees: []employee.Employee{
		{ID: "E001", FullName: "Asha Verma", Department: "Engineering", Active: true},
	}}

	jobs := NewDigestJobs(punchRepo, employeeRepo, engine, engine.MonitoredDevices())

	day, err := time.Parse("2006-01-02", "2026-03-02")
	require.NoError(t, err)
	summary, err := jobs.Summarize(ctx, day)

	require.NoError(t, err)
	assert.Empty(t, summary)
}
