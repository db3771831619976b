package report

import (
	"context"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/report"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/validator"
)

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{ReportRepository: reportRepo}
}

// AttendanceSummary implements report.ReportService.
func (r *ReportServiceImpl) AttendanceSummary(ctx context.Context, req report.PeriodRequest) (report.AttendanceSummary, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceSummary{}, err
	}
	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)
	return r.ReportRepository.AttendanceSummary(ctx, req.EmployeeID, from, to)
}

// LeaveSummary implements report.ReportService.
func (r *ReportServiceImpl) LeaveSummary(ctx context.Context, req report.PeriodRequest) (report.LeaveSummary, error) {
	if err := req.Validate(); err != nil {
		return report.LeaveSummary{}, err
	}
	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)
	return r.ReportRepository.LeaveSummary(ctx, req.EmployeeID, from, to)
}

// PayrollSummary implements report.ReportService.
func (r *ReportServiceImpl) PayrollSummary(ctx context.Context, req report.PeriodRequest) (report.PayrollSummary, error) {
	if err := req.Validate(); err != nil {
		return report.PayrollSummary{}, err
	}
	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)
	return r.ReportRepository.PayrollSummary(ctx, req.EmployeeID, from, to)
}
