package user

import (
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// User is a web login for the attendance console. Employees do not log in;
// they only badge at the door devices.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanReview reports whether the role may approve or reject regularizations.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleManager
}
