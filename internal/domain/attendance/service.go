package attendance

import (
	"context"
)

// Service exposes the derived attendance table to the presentation layer.
type Service interface {
	// List derives attendance for the requested date range, enriched from
	// the employee directory and annotated with saved regularizations.
	List(ctx context.Context, req ListRequest) ([]RecordResponse, int64, error)
}
