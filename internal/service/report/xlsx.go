package report

import (
	"context"
	"fmt"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

var xlsxHeaders = []string{
	"Employee ID", "Name", "Department", "Title",
	"Present", "Late", "Half Day", "Absent", "Mispunch", "Total Worked",
}

// MonthlyXLSX implements report.Service.
func (s *ReportServiceImpl) MonthlyXLSX(ctx context.Context, req report.MonthlyRequest) ([]byte, error) {
	monthly, err := s.Monthly(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Attendance"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := f.SetCellValue(sheet, "A1",
		fmt.Sprintf("Monthly Attendance %04d-%02d (%s to %s)",
			monthly.PeriodYear, monthly.PeriodMonth, monthly.PeriodStart, monthly.PeriodEnd)); err != nil {
		return nil, err
	}

	for col, header := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, emp := range monthly.Employees {
		row := i + 3
		values := []interface{}{
			emp.EmployeeID, emp.EmployeeName, emp.Department, emp.Title,
			emp.PresentDays, emp.LateDays, emp.HalfDays, emp.AbsentDays,
			emp.MispunchDays, emp.TotalWorked,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
