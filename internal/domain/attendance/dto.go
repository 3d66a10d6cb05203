package attendance

import (
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE QUERY DTOs
// ========================================

type ListRequest struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	EmployeeID     *string `json:"employee_id"`
	Department     *string `json:"department"`
	ExceptionsOnly bool    `json:"exceptions_only"`
	Page           int     `json:"page"`
	Limit          int     `json:"limit"`
	SortBy         string  `json:"sort_by"`
	SortOrder      string  `json:"sort_order"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.SortBy != "" && !validator.IsInSlice(r.SortBy, []string{"date", "employee_name", "status", "first_in"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: date, employee_name, status, first_in",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	Title        *string `json:"title,omitempty"`
	Date         string  `json:"date"`
	FirstIn      *string `json:"first_in"`
	LastOut      *string `json:"last_out"`
	WorkedTime   string  `json:"worked_time"`
	OutTime      string  `json:"out_time"`
	SpanTime     string  `json:"span_time"`
	Status       Status  `json:"status"`
	Mispunch     bool    `json:"mispunch"`
	Regularized  bool    `json:"regularized"`
}

func ToRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Department:   rec.Department,
		Title:        rec.Title,
		Date:         rec.Date,
		WorkedTime:   rec.WorkedTime,
		OutTime:      rec.OutTime,
		SpanTime:     rec.SpanTime,
		Status:       rec.Status,
		Mispunch:     rec.Mispunch,
		Regularized:  rec.HasRegularization,
	}
	if rec.FirstIn != nil {
		s := rec.FirstIn.Format("2006-01-02 15:04:05")
		resp.FirstIn = &s
	}
	if rec.LastOut != nil {
		s := rec.LastOut.Format("2006-01-02 15:04:05")
		resp.LastOut = &s
	}
	return resp
}
