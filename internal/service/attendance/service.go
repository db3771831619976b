package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/attendance"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

// roundHours rounds a duration in hours to 2 decimal places.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	at := req.At()
	record := attendance.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         timeutil.DateOnly(at),
		ClockIn:      &at,
		Status:       attendance.StatusPresent,
		WorkFromHome: req.WorkFromHome,
		Notes:        req.Notes,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. Closing the record
// derives hours worked and the presence status in one step.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := req.At()
	open, err := a.AttendanceRepository.GetOpenByEmployeeAndDate(ctx, req.EmployeeID, timeutil.DateOnly(at))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if open.ClockIn == nil || at.Before(*open.ClockIn) {
		return attendance.AttendanceResponse{}, attendance.ErrClockOutBeforeIn
	}

	hours := roundHours(at.Sub(*open.ClockIn).Hours())
	status := attendance.StatusLate
	if hours >= attendance.PresenceThresholdHours {
		status = attendance.StatusPresent
	}

	open.ClockOut = &at
	open.HoursWorked = &hours
	open.Status = status
	if req.Notes != nil {
		open.Notes = req.Notes
	}

	if err := a.AttendanceRepository.Close(ctx, open); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(open), nil
}

// GetRecordsForPeriod implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetRecordsForPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.GetByEmployeeAndPeriod(ctx, employeeID, timeutil.DateOnly(start), timeutil.DateOnly(end))
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toAttendanceResponse(rec))
	}

	return responses, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toAttendanceResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

// MarkAbsentees implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkAbsentees(ctx context.Context, date time.Time) (int64, error) {
	return a.AttendanceRepository.MarkAbsentees(ctx, timeutil.DateOnly(date))
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		ClockInTime:  timePtrToString(att.ClockIn),
		ClockOutTime: timePtrToString(att.ClockOut),
		HoursWorked:  att.HoursWorked,
		Status:       string(att.Status),
		WorkFromHome: att.WorkFromHome,
		Notes:        att.Notes,
	}
}
