package http

import (
	"net/http"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/report"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceSummary(w http.ResponseWriter, r *http.Request)
	LeaveSummary(w http.ResponseWriter, r *http.Request)
	PayrollSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func periodFromQuery(r *http.Request) report.PeriodRequest {
	q := r.URL.Query()
	return report.PeriodRequest{
		EmployeeID: q.Get("employee_id"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}
}

// AttendanceSummary implements ReportHandler.
func (h *reportHandlerImpl) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AttendanceSummary(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// LeaveSummary implements ReportHandler.
func (h *reportHandlerImpl) LeaveSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.LeaveSummary(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// PayrollSummary implements ReportHandler.
func (h *reportHandlerImpl) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.PayrollSummary(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
