package attendance

import "errors"

// Attendance domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn = errors.New("an attendance record already exists for this employee today")
	ErrNoOpenClockIn    = errors.New("no open clock-in found for this employee today")
	ErrClockOutBeforeIn = errors.New("clock-out time must be after clock-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
