package http

import (
	"net/http"
	"strconv"

	"github.com/neeraj5696/magnum-attendance-go/internal/domain/attendance"
	"github.com/neeraj5696/magnum-attendance-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := attendance.ListRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}

	if employeeID := query.Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}
	if department := query.Get("department"); department != "" {
		req.Department = &department
	}
	if exceptions := query.Get("exceptions_only"); exceptions != "" {
		req.ExceptionsOnly = exceptions == "true" || exceptions == "1"
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		req.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		req.Limit = limit
	}

	records, total, err := h.attendanceService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	response.SuccessWithMeta(w, records, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}
