package report

import (
	"fmt"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees []EmployeeSummary `json:"employees"`
}

type EmployeeSummary struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Title        string `json:"title"`

	PresentDays  int `json:"present_days"`
	LateDays     int `json:"late_days"`
	HalfDays     int `json:"half_days"`
	AbsentDays   int `json:"absent_days"`
	MispunchDays int `json:"mispunch_days"`

	TotalWorked string `json:"total_worked"` // HH:MM:SS across the month
}
