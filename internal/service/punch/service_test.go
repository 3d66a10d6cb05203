package punch

import (
	"context"
	"testing"
	"time"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/validator"
	"github.com/neeraj5696/magnum-attendance-go/internal/service/derivation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryEventRepo mirrors the duplicate handling of the postgres
// repository: single inserts error on a duplicate key, batch inserts
// silently skip them.
type memoryEventRepo struct {
	events []punch.Event
}

func (m *memoryEventRepo) key(e punch.Event) string {
	return e.EmployeeID + "|" + e.DeviceID + "|" + e.Timestamp.Format(punch.TimestampLayout)
}

func (m *memoryEventRepo) has(e punch.Event) bool {
	for _, existing := range m.events {
		if m.key(existing) == m.key(e) {
			return true
		}
	}
	return false
}

func (m *memoryEventRepo) Insert(ctx context.Context, event punch.Event) (punch.Event, error) {
	if m.has(event) {
		return punch.Event{}, punch.ErrDuplicateEvent
	}
	m.events = append(m.events, event)
	return event, nil
}

func (m *memoryEventRepo) InsertBatch(ctx context.Context, events []punch.Event) (int, error) {
	inserted := 0
	for _, ev := range events {
		if m.has(ev) {
			continue
		}
		m.events = append(m.events, ev)
		inserted++
	}
	return inserted, nil
}

func (m *memoryEventRepo) ListByDateRange(ctx context.Context, from, to time.Time, deviceIDs []string) ([]punch.Event, error) {
	return m.events, nil
}

func (m *memoryEventRepo) CountByDevice(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, ev := range m.events {
		if !ev.Timestamp.Before(from) && ev.Timestamp.Before(to) {
			counts[ev.DeviceID]++
		}
	}
	return counts, nil
}

func newTestPunchService(t *testing.T) (punch.Service, *memoryEventRepo) {
	t.Helper()
	engine, err := derivation.NewEngine(derivation.Config{
		InDevices:  []string{"IN-1"},
		OutDevices: []string{"OUT-1"},
	})
	require.NoError(t, err)
	repo := &memoryEventRepo{}
	return NewPunchService(repo, engine), repo
}

func TestPunchService_Ingest_Success(t *testing.T) {
	svc, repo := newTestPunchService(t)

	resp, err := svc.Ingest(context.Background(), punch.IngestRequest{
		EmployeeID: "E001",
		DeviceID:   "IN-1",
		Timestamp:  "2026-03-02 08:00:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "E001", resp.EmployeeID)
	assert.Equal(t, "2026-03-02 08:00:00", resp.Timestamp)
	assert.Len(t, repo.events, 1)
}

func TestPunchService_Ingest_UnknownDevice(t *testing.T) {
	svc, repo := newTestPunchService(t)

	_, err := svc.Ingest(context.Background(), punch.IngestRequest{
		EmployeeID: "E001",
		DeviceID:   "LOBBY-CAM",
		Timestamp:  "2026-03-02 08:00:00",
	})

	assert.ErrorIs(t, err, punch.ErrUnknownDevice)
	assert.Empty(t, repo.events)
}

func TestPunchService_Ingest_Duplicate(t *testing.T) {
	svc, _ := newTestPunchService(t)

	req := punch.IngestRequest{
		EmployeeID: "E001",
		DeviceID:   "IN-1",
		Timestamp:  "2026-03-02 08:00:00",
	}
	_, err := svc.Ingest(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Ingest(context.Background(), req)
	assert.ErrorIs(t, err, punch.ErrDuplicateEvent)
}

func TestPunchService_Ingest_InvalidTimestamp(t *testing.T) {
	svc, _ := newTestPunchService(t)

	_, err := svc.Ingest(context.Background(), punch.IngestRequest{
		EmployeeID: "E001",
		DeviceID:   "IN-1",
		Timestamp:  "02-03-2026 08:00",
	})

	require.Error(t, err)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestPunchService_IngestBatch_MixedRows(t *testing.T) {
	svc, repo := newTestPunchService(t)

	result, err := svc.IngestBatch(context.Background(), punch.BatchIngestRequest{
		Events: []punch.IngestRequest{
			{EmployeeID: "E001", DeviceID: "IN-1", Timestamp: "2026-03-02 08:00:00"},
			{EmployeeID: "E001", DeviceID: "OUT-1", Timestamp: "2026-03-02 17:00:00"},
			{EmployeeID: "", DeviceID: "IN-1", Timestamp: "2026-03-02 08:05:00"},
			{EmployeeID: "E002", DeviceID: "UNKNOWN", Timestamp: "2026-03-02 08:05:00"},
			{EmployeeID: "E001", DeviceID: "IN-1", Timestamp: "2026-03-02 08:00:00"}, // duplicate
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 3, result.Rejected)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors, "events[2]")
	assert.Contains(t, result.Errors, "events[3]")
	assert.Len(t, repo.events, 2)
}

func TestPunchService_IngestBatch_Empty(t *testing.T) {
	svc, _ := newTestPunchService(t)

	_, err := svc.IngestBatch(context.Background(), punch.BatchIngestRequest{})

	assert.ErrorIs(t, err, punch.ErrEmptyBatch)
}

func TestPunchService_DeviceCounts(t *testing.T) {
	svc, _ := newTestPunchService(t)

	for _, ts := range []string{"08:00:00", "08:30:00", "17:00:00"} {
		_, err := svc.Ingest(context.Background(), punch.IngestRequest{
			EmployeeID: "E001",
			DeviceID:   "IN-1",
			Timestamp:  "2026-03-02 " + ts,
		})
		require.NoError(t, err)
	}
	_, err := svc.Ingest(context.Background(), punch.IngestRequest{
		EmployeeID: "E001",
		DeviceID:   "OUT-1",
		Timestamp:  "2026-03-02 17:05:00",
	})
	require.NoError(t, err)

	counts, err := svc.DeviceCounts(context.Background(), "2026-03-02")

	require.NoError(t, err)
	assert.Equal(t, int64(3), counts["IN-1"])
	assert.Equal(t, int64(1), counts["OUT-1"])
}

func TestPunchService_DeviceCounts_BadDate(t *testing.T) {
	svc, _ := newTestPunchService(t)

	_, err := svc.DeviceCounts(context.Background(), "03/02/2026")

	assert.Error(t, err)
}
