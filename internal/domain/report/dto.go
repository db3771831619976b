package report

import (
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// REPORT DTOs
// ========================================

type PeriodRequest struct {
	EmployeeID string // optional; empty means company-wide
	From       string // YYYY-MM-DD
	To         string // YYYY-MM-DD, inclusive
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a valid date (YYYY-MM-DD)",
		})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a valid date (YYYY-MM-DD)",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceSummary struct {
	PresentDays      int64   `json:"present_days"`
	LateDays         int64   `json:"late_days"`
	AbsentDays       int64   `json:"absent_days"`
	WorkFromHomeDays int64   `json:"work_from_home_days"`
	TotalHours       float64 `json:"total_hours"`
	AverageHours     float64 `json:"average_hours"`
}

type LeaveSummary struct {
	Applied   int64 `json:"applied"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Cancelled int64 `json:"cancelled"`
	DaysTaken int64 `json:"days_taken"`
}

type PayrollSummary struct {
	Records    int64           `json:"records"`
	TotalGross decimal.Decimal `json:"total_gross"`
	TotalNet   decimal.Decimal `json:"total_net"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}
