package payroll

import (
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PAYROLL DTOs
// ========================================

type GeneratePayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"` // YYYY-MM-DD
	PeriodEnd   string `json:"period_end"`   // YYYY-MM-DD, inclusive

	// Bonus is a discretionary amount added on top of the computed pay.
	Bonus decimal.Decimal `json:"bonus"`

	// Config overrides the default salary configuration when non-nil.
	Config *SalaryConfig `json:"-"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must not be before period_start",
		})
	}

	if r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus",
			Message: "bonus must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	RecordID string `json:"-"`
	PaidAt   string `json:"paid_at,omitempty"` // RFC3339; defaults to now
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}
	if r.PaidAt != "" {
		if _, ok := validator.IsValidDateTime(r.PaidAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "paid_at",
				Message: "paid_at must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PaidAtTime returns the parsed paid-at timestamp, defaulting to now.
func (r *MarkPaidRequest) PaidAtTime() time.Time {
	if r.PaidAt == "" {
		return time.Now().UTC()
	}
	t, _ := validator.IsValidDateTime(r.PaidAt)
	return t.UTC()
}

type AdjustPayrollRequest struct {
	OriginalID string          `json:"-"`
	Bonus      decimal.Decimal `json:"bonus"`
	Notes      *string         `json:"notes,omitempty"`
}

type Filter struct {
	EmployeeID *string
	Status     *string
	From       *string // period start lower bound, YYYY-MM-DD
	To         *string // period end upper bound, YYYY-MM-DD
	Page       int
	Limit      int
}

type AllowancesResponse struct {
	Housing   decimal.Decimal `json:"housing"`
	Transport decimal.Decimal `json:"transport"`
	Medical   decimal.Decimal `json:"medical"`
}

type DeductionsResponse struct {
	IncomeTax       decimal.Decimal `json:"income_tax"`
	SocialSecurity  decimal.Decimal `json:"social_security"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`
}

type PayrollRecordResponse struct {
	ID              string             `json:"id"`
	EmployeeID      string             `json:"employee_id"`
	PeriodStart     string             `json:"period_start"`
	PeriodEnd       string             `json:"period_end"`
	BasicSalary     decimal.Decimal    `json:"basic_salary"`
	Allowances      AllowancesResponse `json:"allowances"`
	GrossSalary     decimal.Decimal    `json:"gross_salary"`
	Deductions      DeductionsResponse `json:"deductions"`
	TotalDeductions decimal.Decimal    `json:"total_deductions"`
	WorkedHours     decimal.Decimal    `json:"worked_hours"`
	OvertimeHours   decimal.Decimal    `json:"overtime_hours"`
	OvertimePay     decimal.Decimal    `json:"overtime_pay"`
	Bonus           decimal.Decimal    `json:"bonus"`
	UnpaidLeaveDays int                `json:"unpaid_leave_days"`
	NetSalary       decimal.Decimal    `json:"net_salary"`
	Status          string             `json:"status"`
	AdjustmentOf    *string            `json:"adjustment_of,omitempty"`
	PaidAt          *string            `json:"paid_at,omitempty"`
}

type ListPayrollRecordResponse struct {
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	Records    []PayrollRecordResponse `json:"records"`
}
