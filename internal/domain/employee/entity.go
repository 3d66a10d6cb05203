package employee

import (
	"time"
)

// Employee is a directory entry keyed by the badge id the door devices
// report. The directory is enrichment only; derivation correctness does
// not depend on it, but employees without a directory row are excluded
// from derived output.
type Employee struct {
	ID         string
	FullName   string
	Department string
	Title      string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
