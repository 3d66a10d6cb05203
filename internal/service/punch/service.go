package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/validator"
	"github.com/neeraj5696/magnum-attendance-go/internal/service/derivation"
)

type PunchServiceImpl struct {
	punchRepo punch.EventRepository
	engine    *derivation.Engine
}

func NewPunchService(punchRepo punch.EventRepository, engine *derivation.Engine) punch.Service {
	return &PunchServiceImpl{
		punchRepo: punchRepo,
		engine:    engine,
	}
}

// Ingest implements punch.Service.
func (s *PunchServiceImpl) Ingest(ctx context.Context, req punch.IngestRequest) (punch.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.EventResponse{}, err
	}

	if !s.engine.Monitored(req.DeviceID) {
		return punch.EventResponse{}, punch.ErrUnknownDevice
	}

	event, err := s.punchRepo.Insert(ctx, req.ToEvent())
	if err != nil {
		if err == punch.ErrDuplicateEvent {
			return punch.EventResponse{}, err
		}
		return punch.EventResponse{}, fmt.Errorf("failed to store punch event: %w", err)
	}

	return punch.ToEventResponse(event), nil
}

// IngestBatch implements punch.Service. Rows are validated individually;
// malformed rows are reported back, valid rows are kept.
func (s *PunchServiceImpl) IngestBatch(ctx context.Context, req punch.BatchIngestRequest) (punch.BatchIngestResult, error) {
	if len(req.Events) == 0 {
		return punch.BatchIngestResult{}, punch.ErrEmptyBatch
	}

	result := punch.BatchIngestResult{Errors: make(map[string]string)}
	valid := make([]punch.Event, 0, len(req.Events))

	for i := range req.Events {
		row := &req.Events[i]
		if err := row.Validate(); err != nil {
			result.Rejected++
			result.Errors[fmt.Sprintf("events[%d]", i)] = err.Error()
			continue
		}
		if !s.engine.Monitored(row.DeviceID) {
			result.Rejected++
			result.Errors[fmt.Sprintf("events[%d]", i)] = punch.ErrUnknownDevice.Error()
			continue
		}
		valid = append(valid, row.ToEvent())
	}

	if len(valid) > 0 {
		inserted, err := s.punchRepo.InsertBatch(ctx, valid)
		if err != nil {
			return punch.BatchIngestResult{}, fmt.Errorf("failed to store punch batch: %w", err)
		}
		result.Accepted = inserted
		// Rows skipped by the duplicate guard count as rejected.
		result.Rejected += len(valid) - inserted
	}

	if len(result.Errors) == 0 {
		result.Errors = nil
	}
	return result, nil
}

// DeviceCounts implements punch.Service.
func (s *PunchServiceImpl) DeviceCounts(ctx context.Context, date string) (map[string]int64, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	counts, err := s.punchRepo.CountByDevice(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to count punch events: %w", err)
	}
	return counts, nil
}
