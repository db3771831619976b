package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. The insert is conditional on
	// the (employee_id, date) uniqueness constraint and returns
	// ErrAlreadyClockedIn when a record for that day already exists.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetOpenByEmployeeAndDate retrieves the open record (clock_out IS NULL)
	// for an employee on a given date; returns ErrNoOpenClockIn when absent.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// Close sets clock_out, hours_worked and status on an open record.
	// Records that already have a clock-out are never modified again.
	Close(ctx context.Context, att Attendance) error

	// GetByEmployeeAndPeriod returns the employee's records with
	// date in [start, end], ordered by date ascending.
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// List retrieves attendance records with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// MarkAbsentees inserts ABSENT records for every active employee
	// without an attendance record on the given date. Existing records are
	// left untouched. Returns the number of records created.
	MarkAbsentees(ctx context.Context, date time.Time) (int64, error)
}
