package attendance

import (
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Timestamp    string  `json:"timestamp,omitempty"` // RFC3339; defaults to now
	WorkFromHome bool    `json:"work_from_home,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// At returns the parsed timestamp, defaulting to the current time.
func (r *ClockInRequest) At() time.Time {
	if r.Timestamp == "" {
		return time.Now().UTC()
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t.UTC()
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  string  `json:"timestamp,omitempty"` // RFC3339; defaults to now
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *ClockOutRequest) At() time.Time {
	if r.Timestamp == "" {
		return time.Now().UTC()
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t.UTC()
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
	SortOrder  string
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`
	ClockInTime  *string  `json:"clock_in_time"`
	ClockOutTime *string  `json:"clock_out_time"`
	HoursWorked  *float64 `json:"hours_worked"`
	Status       string   `json:"status"`
	WorkFromHome bool     `json:"work_from_home"`
	Notes        *string  `json:"notes,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}
