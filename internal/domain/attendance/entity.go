package attendance

import (
	"time"
)

// Status is the derived presence status of a daily attendance record.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
)

// PresenceThresholdHours is the single threshold separating PRESENT from
// LATE: a closed record with fewer worked hours is LATE regardless of
// whether the shortfall came from a late arrival or an early departure.
const PresenceThresholdHours = 8.0

type Attendance struct {
	ID         string
	EmployeeID string

	// Date is the working day the record belongs to, truncated to a UTC
	// calendar date. At most one record may exist per employee per date.
	Date time.Time

	// ClockIn is nil only on swept ABSENT records.
	ClockIn  *time.Time
	ClockOut *time.Time

	// HoursWorked is (ClockOut - ClockIn) in hours rounded to 2 decimal
	// places; nil while the record is still open.
	HoursWorked *float64

	Status       Status
	WorkFromHome bool
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
