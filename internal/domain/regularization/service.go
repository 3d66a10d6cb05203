package regularization

import (
	"context"
)

// Service is the manual-correction workflow: managers file a correction
// for a derived attendance day, and another reviewer approves or rejects it.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Response, error)
	Approve(ctx context.Context, id string, req ReviewRequest) (Response, error)
	Reject(ctx context.Context, id string, req ReviewRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, int64, error)
}
