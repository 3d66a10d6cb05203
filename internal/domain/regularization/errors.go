package regularization

import "errors"

// Regularization domain errors
var (
	ErrNotFound         = errors.New("regularization not found")
	ErrAlreadyExists    = errors.New("a regularization already exists for this employee and date")
	ErrAlreadyReviewed  = errors.New("regularization has already been approved or rejected")
	ErrNotPending       = errors.New("only pending regularizations can be updated")
	ErrSelfReview       = errors.New("a regularization cannot be reviewed by its requester")
	ErrEmployeeNotFound = errors.New("employee referenced by regularization not found")
)
