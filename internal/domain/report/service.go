package report

import "context"

type ReportService interface {
	AttendanceSummary(ctx context.Context, req PeriodRequest) (AttendanceSummary, error)
	LeaveSummary(ctx context.Context, req PeriodRequest) (LeaveSummary, error)
	PayrollSummary(ctx context.Context, req PeriodRequest) (PayrollSummary, error)
}
