package regularization

import (
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/validator"
)

// ========================================
// REGULARIZATION DTOs
// ========================================

type CreateRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	InTime     string `json:"in_time"`
	OutTime    string `json:"out_time"`
	Reason     string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	inTime, inOK := validator.IsValidClock(r.InTime)
	if r.InTime != "" && !inOK {
		errs = append(errs, validator.ValidationError{
			Field:   "in_time",
			Message: "in_time must be in HH:MM:SS format",
		})
	}

	outTime, outOK := validator.IsValidClock(r.OutTime)
	if r.OutTime != "" && !outOK {
		errs = append(errs, validator.ValidationError{
			Field:   "out_time",
			Message: "out_time must be in HH:MM:SS format",
		})
	}

	if r.InTime == "" && r.OutTime == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "in_time",
			Message: "at least one of in_time or out_time is required",
		})
	}

	if inOK && outOK && r.InTime != "" && r.OutTime != "" && !outTime.After(inTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "out_time",
			Message: "out_time must be after in_time",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Times resolves the request's clock strings onto the request date.
// Call Validate first.
func (r *CreateRequest) Times() (in *time.Time, out *time.Time) {
	return clockTimes(r.Date, r.InTime, r.OutTime)
}

func clockTimes(dateStr, inStr, outStr string) (in *time.Time, out *time.Time) {
	date, _ := time.Parse("2006-01-02", dateStr)
	if inStr != "" {
		if clock, ok := validator.IsValidClock(inStr); ok {
			t := onDate(date, clock)
			in = &t
		}
	}
	if outStr != "" {
		if clock, ok := validator.IsValidClock(outStr); ok {
			t := onDate(date, clock)
			out = &t
		}
	}
	return in, out
}

func onDate(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location())
}

type UpdateRequest struct {
	InTime  string `json:"in_time"`
	OutTime string `json:"out_time"`
	Reason  string `json:"reason"`
}

func (r *UpdateRequest) Validate() error {
	create := CreateRequest{
		EmployeeID: "-", // not updatable, satisfy the shared checks
		Date:       "0001-01-01",
		InTime:     r.InTime,
		OutTime:    r.OutTime,
		Reason:     r.Reason,
	}
	return create.Validate()
}

// Times resolves the update's clock strings onto the stored record's date.
// Call Validate first.
func (r *UpdateRequest) Times(date string) (in *time.Time, out *time.Time) {
	return clockTimes(date, r.InTime, r.OutTime)
}

type ReviewRequest struct {
	Note string `json:"note"`
}

type ListFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *ReviewStatus
	Page       int
	Limit      int
}

type Response struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	InTime       *string `json:"in_time"`
	OutTime      *string `json:"out_time"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	RequestedBy  string  `json:"requested_by"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(r Regularization) Response {
	resp := Response{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		Reason:       r.Reason,
		Status:       string(r.Status),
		RequestedBy:  r.RequestedBy,
		ReviewedBy:   r.ReviewedBy,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
	if r.InTime != nil {
		s := r.InTime.Format("15:04:05")
		resp.InTime = &s
	}
	if r.OutTime != nil {
		s := r.OutTime.Format("15:04:05")
		resp.OutTime = &s
	}
	if r.ReviewedAt != nil {
		s := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	return resp
}
