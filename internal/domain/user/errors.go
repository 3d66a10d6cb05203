package user

import "errors"

// User domain errors
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrReviewPrivilegeRequired = errors.New("manager or admin privilege required")
)
