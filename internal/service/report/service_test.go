package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/employee"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/report"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/validator"
	"github.com/neeraj5696/magnum-attendance-go/internal/service/derivation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubPunchRepo struct {
	events []punch.Event
}

func (s *stubPunchRepo) Insert(ctx context.Context, event punch.Event) (punch.Event, error) {
	return event, nil
}

func (s *stubPunchRepo) InsertBatch(ctx context.Context, events []punch.Event) (int, error) {
	return len(events), nil
}

func (s *stubPunchRepo) ListByDateRange(ctx context.Context, from, to time.Time, deviceIDs []string) ([]punch.Event, error) {
	var out []punch.Event
	for _, ev := range s.events {
		if !ev.Timestamp.Before(from) && ev.Timestamp.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *stubPunchRepo) CountByDevice(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	return nil, nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) ListByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		if emp, ok := s.employees[id]; ok {
			out = append(out, emp)
		}
	}
	return out, nil
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return ts
}

func monthFixture(t *testing.T) (*stubPunchRepo, *stubEmployeeRepo, *derivation.Engine) {
	t.Helper()

	engine, err := derivation.NewEngine(derivation.Config{
		InDevices:  []string{"IN-1"},
		OutDevices: []string{"OUT-1"},
	})
	require.NoError(t, err)

	// E001: a normal day, a late day, a half day (by span) and an in-only
	// mispunch. E002: one normal day. GHOST has no directory row.
	events := []punch.Event{
		{EmployeeID: "E001", DeviceID: "IN-1", Timestamp: mustTime(t, "2026-03-02 08:00:00")},
		{EmployeeID: "E001", DeviceID: "OUT-1", Timestamp: mustTime(t, "2026-03-02 17:00:00")},

		{EmployeeID: "E001", DeviceID: "IN-1", Timestamp: mustTime(t, "2026-03-03 09:45:00")},
		{EmployeeID: "E001", DeviceID: "OUT-1", Timestamp: mustTime(t, "2026-03-03 18:00:00")},

		{EmployeeID: "E001", DeviceID: "IN-1", Timestamp: mustTime(t, "2026-03-04 08:00:00")},
		{EmployeeID: "E001", DeviceID: "OUT-1", Timestamp: mustTime(t, "2026-03-04 13:00:00")},

		{EmployeeID: "E001", DeviceID: "IN-1", Timestamp: mustTime(t, "2026-03-05 08:10:00")},

		{EmployeeID: "E002", DeviceID: "IN-1", Timestamp: mustTime(t, "2026-03-02 08:30:00")},
		{EmployeeID: "E002", DeviceID: "OUT-1", Timestamp: mustTime(t, "2026-03-02 17:30:00")},

		{EmployeeID: "GHOST", DeviceID: "IN-1", Timestamp: mustTime(t, "2026-03-02 08:00:00")},
		{EmployeeID: "GHOST", DeviceID: "OUT-1", Timestamp: mustTime(t, "2026-03-02 16:00:00")},
	}

	punchRepo := &stubPunchRepo{events: events}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"E001": {ID: "E001", FullName: "Asha Verma", Department: "Engineering", Title: "Engineer"},
		"E002": {ID: "E002", FullName: "Ravi Nair", Department: "Finance", Title: "Analyst"},
	}}
	return punchRepo, employeeRepo, engine
}

func TestReportService_Monthly_Aggregates(t *testing.T) {
	ctx := context.Background()
	punchRepo, employeeRepo, engine := monthFixture(t)
	svc := NewReportService(punchRepo, employeeRepo, engine)

	monthly, err := svc.Monthly(ctx, report.MonthlyRequest{Month: 3, Year: 2026})

	require.NoError(t, err)
	assert.Equal(t, 3, monthly.PeriodMonth)
	assert.Equal(t, 2026, monthly.PeriodYear)
	assert.Equal(t, "2026-03-01", monthly.PeriodStart)
	assert.Equal(t, "2026-03-31", monthly.PeriodEnd)

	// GHOST has no directory row and is excluded. Sorted by name.
	require.Len(t, monthly.Employees, 2)
	asha := monthly.Employees[0]
	ravi := monthly.Employees[1]

	assert.Equal(t, "Asha Verma", asha.EmployeeName)
	assert.Equal(t, 2, asha.PresentDays) // normal + late
	assert.Equal(t, 1, asha.LateDays)
	assert.Equal(t, 1, asha.HalfDays)
	assert.Equal(t, 1, asha.MispunchDays)
	assert.Equal(t, 0, asha.AbsentDays)
	// 9h + 8h15m + 5h, the in-only day contributes no worked time.
	assert.Equal(t, "22:15:00", asha.TotalWorked)

	assert.Equal(t, "Ravi Nair", ravi.EmployeeName)
	assert.Equal(t, 1, ravi.PresentDays)
	assert.Equal(t, "09:00:00", ravi.TotalWorked)
}

func TestReportService_Monthly_RejectsBadPeriod(t *testing.T) {
	ctx := context.Background()
	punchRepo, employeeRepo, engine := monthFixture(t)
	svc := NewReportService(punchRepo, employeeRepo, engine)

	_, err := svc.Monthly(ctx, report.MonthlyRequest{Month: 13, Year: 2026})

	require.Error(t, err)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestReportService_MonthlyXLSX_RoundTrip(t *testing.T) {
	ctx := context.Background()
	punchRepo, employeeRepo, engine := monthFixture(t)
	svc := NewReportService(punchRepo, employeeRepo, engine)

	data, err := svc.MonthlyXLSX(ctx, report.MonthlyRequest{Month: 3, Year: 2026})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	title, err := f.GetCellValue("Attendance", "A1")
	require.NoError(t, err)
	assert.Contains(t, title, "2026-03")

	header, err := f.GetCellValue("Attendance", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Employee ID", header)

	name, err := f.GetCellValue("Attendance", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", name)

	worked, err := f.GetCellValue("Attendance", "J3")
	require.NoError(t, err)
	assert.Equal(t, "22:15:00", worked)

	name2, err := f.GetCellValue("Attendance", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Nair", name2)
}
