package attendance

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/attendance"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/employee"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/regularization"
	"github.com/neeraj5696/magnum-attendance-go/internal/service/derivation"
)

type AttendanceServiceImpl struct {
	punchRepo    punch.EventRepository
	employeeRepo employee.EmployeeRepository
	regRepo      regularization.Repository
	engine       *derivation.Engine
}

func NewAttendanceService(
	punchRepo punch.EventRepository,
	employeeRepo employee.EmployeeRepository,
	regRepo regularization.Repository,
	engine *derivation.Engine,
) attendance.Service {
	return &AttendanceServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		regRepo:      regRepo,
		engine:       engine,
	}
}

// List implements attendance.Service.
func (s *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListRequest) ([]attendance.RecordResponse, int64, error) {
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	// Half-open range: punches on the end date itself are included.
	events, err := s.punchRepo.ListByDateRange(ctx, start, end.AddDate(0, 0, 1), s.engine.MonitoredDevices())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query punch events: %w", err)
	}

	var records []attendance.Record
	if req.ExceptionsOnly {
		records = s.engine.DeriveExceptions(events)
	} else {
		records = s.engine.Derive(events)
	}

	records, err = s.enrich(ctx, records)
	if err != nil {
		return nil, 0, err
	}

	records = filterRecords(records, req)

	if err := s.annotateRegularized(ctx, records, req.StartDate, req.EndDate); err != nil {
		return nil, 0, err
	}

	sortRecords(records, req.SortBy, req.SortOrder)

	total := int64(len(records))
	records = paginate(records, req.Page, req.Limit)

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToRecordResponse(rec))
	}
	return responses, total, nil
}

// enrich joins derived records against the employee directory. Records for
// badges with no directory row are dropped, mirroring the inner join the
// reporting tables expect.
func (s *AttendanceServiceImpl) enrich(ctx context.Context, records []attendance.Record) ([]attendance.Record, error) {
	if len(records) == 0 {
		return records, nil
	}

	idSet := make(map[string]bool, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if !idSet[rec.EmployeeID] {
			idSet[rec.EmployeeID] = true
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

	enriched := records[:0]
	for _, rec := range records {
		emp, ok := directory[rec.EmployeeID]
		if !ok {
			continue
		}
		name, dept, title := emp.FullName, emp.Department, emp.Title
		rec.EmployeeName = &name
		rec.Department = &dept
		rec.Title = &title
		enriched = append(enriched, rec)
	}
	return enriched, nil
}

func (s *AttendanceServiceImpl) annotateRegularized(ctx context.Context, records []attendance.Record, startDate, endDate string) error {
	if len(records) == 0 {
		return nil
	}

	keys, err := s.regRepo.ListDayKeysInRange(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("failed to load regularized days: %w", err)
	}
	regularized := make(map[regularization.DayKey]bool, len(keys))
	for _, key := range keys {
		regularized[key] = true
	}

	for i := range records {
		records[i].HasRegularization = regularized[regularization.DayKey{
			EmployeeID: records[i].EmployeeID,
			Date:       records[i].Date,
		}]
	}
	return nil
}

func filterRecords(records []attendance.Record, req attendance.ListRequest) []attendance.Record {
	if req.EmployeeID == nil && req.Department == nil {
		return records
	}
	filtered := records[:0]
	for _, rec := range records {
		if req.EmployeeID != nil && rec.EmployeeID != *req.EmployeeID {
			continue
		}
		if req.Department != nil && (rec.Department == nil || !strings.EqualFold(*rec.Department, *req.Department)) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func sortRecords(records []attendance.Record, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")

	less := func(i, j int) bool {
		a, b := records[i], records[j]
		switch sortBy {
		case "employee_name":
			if an, bn := deref(a.EmployeeName), deref(b.EmployeeName); an != bn {
				return an < bn
			}
		case "status":
			if a.Status != b.Status {
				return a.Status < b.Status
			}
		case "first_in":
			at, bt := a.FirstIn, b.FirstIn
			if (at == nil) != (bt == nil) {
				return bt == nil
			}
			if at != nil && !at.Equal(*bt) {
				return at.Before(*bt)
			}
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return deref(a.EmployeeName) < deref(b.EmployeeName)
	}

	if desc {
		sort.SliceStable(records, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.SliceStable(records, less)
}

func paginate(records []attendance.Record, page, limit int) []attendance.Record {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset >= len(records) {
		return nil
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
