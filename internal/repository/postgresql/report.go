package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/report"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// AttendanceSummary implements report.ReportRepository.
func (r *reportRepository) AttendanceSummary(ctx context.Context, employeeID string, from, to time.Time) (report.AttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PRESENT'),
			COUNT(*) FILTER (WHERE status = 'LATE'),
			COUNT(*) FILTER (WHERE status = 'ABSENT'),
			COUNT(*) FILTER (WHERE work_from_home),
			COALESCE(SUM(hours_worked), 0),
			COALESCE(AVG(hours_worked), 0)
		FROM attendances
		WHERE date BETWEEN $1 AND $2
		  AND ($3 = '' OR employee_id = $3::uuid)
	`

	var s report.AttendanceSummary
	err := q.QueryRow(ctx, query, from, to, employeeID).Scan(
		&s.PresentDays, &s.LateDays, &s.AbsentDays, &s.WorkFromHomeDays,
		&s.TotalHours, &s.AverageHours,
	)
	if err != nil {
		return report.AttendanceSummary{}, fmt.Errorf("failed to build attendance summary: %w", err)
	}

	return s, nil
}

// LeaveSummary implements report.ReportRepository.
func (r *reportRepository) LeaveSummary(ctx context.Context, employeeID string, from, to time.Time) (report.LeaveSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'APPLIED'),
			COUNT(*) FILTER (WHERE status = 'APPROVED'),
			COUNT(*) FILTER (WHERE status = 'REJECTED'),
			COUNT(*) FILTER (WHERE status = 'CANCELLED'),
			COALESCE(SUM(leave_days) FILTER (WHERE status = 'APPROVED'), 0)
		FROM leave_requests
		WHERE start_date <= $2
		  AND end_date >= $1
		  AND ($3 = '' OR employee_id = $3::uuid)
	`

	var s report.LeaveSummary
	err := q.QueryRow(ctx, query, from, to, employeeID).Scan(
		&s.Applied, &s.Approved, &s.Rejected, &s.Cancelled, &s.DaysTaken,
	)
	if err != nil {
		return report.LeaveSummary{}, fmt.Errorf("failed to build leave summary: %w", err)
	}

	return s, nil
}

// PayrollSummary implements report.ReportRepository.
func (r *reportRepository) PayrollSummary(ctx context.Context, employeeID string, from, to time.Time) (report.PayrollSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(gross_salary), 0),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(net_salary) FILTER (WHERE status = 'PAID'), 0)
		FROM payroll_records
		WHERE period_start <= $2
		  AND period_end >= $1
		  AND ($3 = '' OR employee_id = $3::uuid)
	`

	var s report.PayrollSummary
	err := q.QueryRow(ctx, query, from, to, employeeID).Scan(
		&s.Records, &s.TotalGross, &s.TotalNet, &s.TotalPaid,
	)
	if err != nil {
		return report.PayrollSummary{}, fmt.Errorf("failed to build payroll summary: %w", err)
	}

	return s, nil
}
