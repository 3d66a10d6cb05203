package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/attendance"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/employee"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/service/derivation"
)

// DigestJobs derives yesterday's attendance once a day and logs an
// exceptions summary per department. Derived records are never persisted;
// the digest is log output only.
type DigestJobs struct {
	punchRepo    punch.EventRepository
	employeeRepo employee.EmployeeRepository
	engine       *derivation.Engine
	deviceIDs    []string
}

func NewDigestJobs(
	punchRepo punch.EventRepository,
	employeeRepo employee.EmployeeRepository,
	engine *derivation.Engine,
	deviceIDs []string,
) *DigestJobs {
	return &DigestJobs{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		engine:       engine,
		deviceIDs:    deviceIDs,
	}
}

func (j *DigestJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_exceptions_digest", 1*time.Hour, j.DailyExceptionsDigest)
}

// ExceptionCounts is one department's tally for a digest day.
type ExceptionCounts struct {
	Absent   int
	HalfDay  int
	Mispunch int
}

func (j *DigestJobs) DailyExceptionsDigest(ctx context.Context) error {
	// Only run in the first hour after midnight
	if time.Now().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	from := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())

	slog.Info("Cron: Starting daily exceptions digest", "date", from.Format("2006-01-02"))

	perDepartment, err := j.Summarize(ctx, from)
	if err != nil {
		return err
	}
	if len(perDepartment) == 0 {
		slog.Info("Cron: No attendance exceptions yesterday")
		return nil
	}

	for dept, c := range perDepartment {
		slog.Info("Cron: Attendance exceptions",
			"date", from.Format("2006-01-02"),
			"department", dept,
			"absent", c.Absent,
			"half_day", c.HalfDay,
			"mispunch", c.Mispunch,
		)
	}

	return nil
}

// Summarize derives one day's exceptions and tallies them per department.
// Active employees with no punches at all that day produce no derived
// record, so they are folded in as absences from the directory side.
func (j *DigestJobs) Summarize(ctx context.Context, day time.Time) (map[string]ExceptionCounts, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	events, err := j.punchRepo.ListByDateRange(ctx, from, to, j.deviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}

	punched := make(map[string]bool, len(events))
	for _, ev := range events {
		punched[ev.EmployeeID] = true
	}

	exceptions := j.engine.DeriveExceptions(events)

	ids := make([]string, 0, len(exceptions))
	for _, rec := range exceptions {
		ids = append(ids, rec.EmployeeID)
	}
	directory, err := j.employeeRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee directory: %w", err)
	}
	departments := make(map[string]string, len(directory))
	for _, emp := range directory {
		departments[emp.ID] = emp.Department
	}

	perDepartment := make(map[string]ExceptionCounts)
	for _, rec := range exceptions {
		dept, known := departments[rec.EmployeeID]
		if !known {
			// Badge with no directory row, excluded like everywhere else.
			continue
		}
		c := perDepartment[dept]
		switch rec.Status {
		case attendance.StatusAbsent:
			c.Absent++
		case attendance.StatusHalfDay:
			c.HalfDay++
		case attendance.StatusMisPunch:
			c.Mispunch++
		}
		perDepartment[dept] = c
	}

	active, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	for _, emp := range active {
		if punched[emp.ID] {
			continue
		}
		c := perDepartment[emp.Department]
		c.Absent++
		perDepartment[emp.Department] = c
	}

	return perDepartment, nil
}
