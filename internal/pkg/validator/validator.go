package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Badge ids as reported by the door controllers: 3-20 alphanumerics.
var badgeIDRegex = regexp.MustCompile(`^[A-Za-z0-9]{3,20}$`)

func IsValidBadgeID(id string) bool {
	return badgeIDRegex.MatchString(id)
}

// Date validation (YYYY-MM-DD)
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Clock validation (HH:MM:SS time-of-day)
func IsValidClock(clockStr string) (time.Time, bool) {
	t, err := time.Parse("15:04:05", clockStr)
	return t, err == nil
}

// Wall-clock timestamp validation, the format the device feed uses
// ("YYYY-MM-DD HH:MM:SS", no timezone).
func IsValidWallClock(tsStr string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02 15:04:05", tsStr)
	return t, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
