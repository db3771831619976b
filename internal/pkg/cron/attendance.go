package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.RegisterJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees sweeps the previous working day and records ABSENT
// for every active employee without an attendance record. The repository
// statement is idempotent, so an hourly trigger with the midnight guard
// cannot double-mark.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	now := time.Now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1)
	if wd := yesterday.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job", "date", yesterday.Format("2006-01-02"))

	count, err := j.attendanceService.MarkAbsentees(ctx, yesterday)
	if err != nil {
		return err
	}

	slog.Info("Cron: Marked absent employees", "count", count)
	return nil
}
