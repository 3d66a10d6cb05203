package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/punch"
	"github.com/neeraj5696/magnum-attendance-go/internal/handler/http/response"
)

type PunchHandler interface {
	Ingest(w http.ResponseWriter, r *http.Request)
	IngestBatch(w http.ResponseWriter, r *http.Request)
	DeviceCounts(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.Service
}

func NewPunchHandler(punchService punch.Service) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Ingest implements PunchHandler.
func (h *punchHandlerImpl) Ingest(w http.ResponseWriter, r *http.Request) {
	var req punch.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode punch event", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.Ingest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch event recorded", result)
}

// IngestBatch implements PunchHandler.
func (h *punchHandlerImpl) IngestBatch(w http.ResponseWriter, r *http.Request) {
	var req punch.BatchIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode punch batch", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.IngestBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch batch processed", result)
}

// DeviceCounts implements PunchHandler.
func (h *punchHandlerImpl) DeviceCounts(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.punchService.DeviceCounts(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
