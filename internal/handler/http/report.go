package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/report"
	"github.com/neeraj5696/magnum-attendance-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly implements ReportHandler. With format=xlsx the report is streamed
// as a workbook download instead of JSON.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := report.MonthlyRequest{}
	if month, err := strconv.Atoi(query.Get("month")); err == nil {
		req.Month = month
	}
	if year, err := strconv.Atoi(query.Get("year")); err == nil {
		req.Year = year
	}

	if query.Get("format") == "xlsx" {
		data, err := h.reportService.MonthlyXLSX(r.Context(), req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", req.Year, req.Month)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, _ = w.Write(data)
		return
	}

	result, err := h.reportService.Monthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
