package report

import (
	"context"
	"time"
)

// ReportRepository aggregates summary figures straight from the database.
// employeeID is optional; empty aggregates across all employees.
type ReportRepository interface {
	AttendanceSummary(ctx context.Context, employeeID string, from, to time.Time) (AttendanceSummary, error)
	LeaveSummary(ctx context.Context, employeeID string, from, to time.Time) (LeaveSummary, error)
	PayrollSummary(ctx context.Context, employeeID string, from, to time.Time) (PayrollSummary, error)
}
