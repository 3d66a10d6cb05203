package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/attendance"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/employee"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/report"
	"github.com/neeraj5696/magnum-attendance-go/internal/service/derivation"
)

type ReportServiceImpl struct {
	punchRepo    punch.EventRepository
	employeeRepo employee.EmployeeRepository
	engine       *derivation.Engine
}

func NewReportService(
	punchRepo punch.EventRepository,
	employeeRepo employee.EmployeeRepository,
	engine *derivation.Engine,
) report.Service {
	return &ReportServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		engine:       engine,
	}
}

// Monthly implements report.Service.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.Local)
	periodEnd := periodStart.AddDate(0, 1, 0)

	events, err := s.punchRepo.ListByDateRange(ctx, periodStart, periodEnd, s.engine.MonitoredDevices())
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to query punch events: %w", err)
	}

	records := s.engine.Derive(events)

	summaries, err := s.aggregate(ctx, records)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	return report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.AddDate(0, 0, -1).Format("2006-01-02"),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Employees:   summaries,
	}, nil
}

func (s *ReportServiceImpl) aggregate(ctx context.Context, records []attendance.Record) ([]report.EmployeeSummary, error) {
	ids := make([]string, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if !seen[rec.EmployeeID] {
			seen[rec.EmployeeID] = true
			ids = append(ids, rec.EmployeeID)
		}
	}

	employees, err := s.employeeRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee directory: %w", err)
	}
	directory := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		directory[emp.ID] = emp
	}

	type tally struct {
		summary       report.EmployeeSummary
		workedSeconds int64
	}
	tallies := make(map[string]*tally)

	for _, rec := range records {
		emp, ok := directory[rec.EmployeeID]
		if !ok {
			// Badge with no directory row, excluded from reports too.
			continue
		}
		t := tallies[rec.EmployeeID]
		if t == nil {
			t = &tally{summary: report.EmployeeSummary{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				Department:   emp.Department,
				Title:        emp.Title,
			}}
			tallies[rec.EmployeeID] = t
		}

		switch rec.Status {
		case attendance.StatusPresent:
			t.summary.PresentDays++
		case attendance.StatusPresentLate:
			t.summary.PresentDays++
			t.summary.LateDays++
		case attendance.StatusHalfDay:
			t.summary.HalfDays++
		case attendance.StatusAbsent:
			t.summary.AbsentDays++
		case attendance.StatusMisPunch:
			t.summary.MispunchDays++
		}
		if rec.Mispunch && rec.Status != attendance.StatusMisPunch {
			t.summary.MispunchDays++
		}
		t.workedSeconds += rec.TotalInSeconds
	}

	summaries := make([]report.EmployeeSummary, 0, len(tallies))
	for _, t := range tallies {
		t.summary.TotalWorked = derivation.FormatClock(t.workedSeconds)
		summaries = append(summaries, t.summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EmployeeName < summaries[j].EmployeeName
	})
	return summaries, nil
}
