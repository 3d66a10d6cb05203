package regularization

import (
	"time"
)

type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// Regularization is a manager's manual correction of a derived attendance
// day. At most one exists per (employee, date). It is stored separately
// from the derived projection and merged at presentation time.
type Regularization struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	InTime     *time.Time
	OutTime    *time.Time
	Reason     string
	Status     ReviewStatus

	RequestedBy string
	ReviewedBy  *string
	ReviewedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// DayKey identifies one regularized (employee, date) pair. Used to suppress
// duplicate edits in the attendance table.
type DayKey struct {
	EmployeeID string
	Date       string
}
