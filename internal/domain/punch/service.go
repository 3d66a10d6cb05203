package punch

import (
	"context"
)

// Service accepts punch events from the access-control feed.
type Service interface {
	Ingest(ctx context.Context, req IngestRequest) (EventResponse, error)
	IngestBatch(ctx context.Context, req BatchIngestRequest) (BatchIngestResult, error)

	// DeviceCounts reports per-device event counts for one calendar date.
	DeviceCounts(ctx context.Context, date string) (map[string]int64, error)
}
