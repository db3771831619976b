package leave

import (
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/validator"
)

// ========================================
// LEAVE TYPE DTOs
// ========================================

type CreateLeaveTypeRequest struct {
	Name               string `json:"name"`
	DaysAllowedPerYear int    `json:"days_allowed_per_year"`
	IsPaid             bool   `json:"is_paid"`
	RequiresApproval   bool   `json:"requires_approval"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.DaysAllowedPerYear < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_allowed_per_year",
			Message: "days_allowed_per_year must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID                 string `json:"-"` // from the URL
	Name               string `json:"name"`
	DaysAllowedPerYear int    `json:"days_allowed_per_year"`
	IsPaid             bool   `json:"is_paid"`
	RequiresApproval   bool   `json:"requires_approval"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.DaysAllowedPerYear < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_allowed_per_year",
			Message: "days_allowed_per_year must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveTypeResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	DaysAllowedPerYear int    `json:"days_allowed_per_year"`
	IsPaid             bool   `json:"is_paid"`
	RequiresApproval   bool   `json:"requires_approval"`
}

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type SubmitLeaveRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD, inclusive
	Reason      string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	RequestID string  `json:"-"`
	Decision  string  `json:"decision"` // APPROVED or REJECTED
	DeciderID string  `json:"-"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}
	if !validator.IsInSlice(r.Decision, []string{string(RequestStatusApproved), string(RequestStatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be APPROVED or REJECTED",
		})
	}
	if validator.IsEmpty(r.DeciderID) {
		errs = append(errs, validator.ValidationError{
			Field:   "decider_id",
			Message: "decider_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestFilter struct {
	EmployeeID  *string
	LeaveTypeID *string
	Status      *string
	Year        *int
	Page        int
	Limit       int
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	LeaveDays     int     `json:"leave_days"`
	Status        string  `json:"status"`
	Reason        string  `json:"reason"`
	AppliedAt     string  `json:"applied_at"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	DecisionNotes *string `json:"decision_notes,omitempty"`
}

type ListLeaveRequestResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Requests   []LeaveRequestResponse `json:"requests"`
}

// ========================================
// LEAVE BALANCE DTOs
// ========================================

type BalanceResponse struct {
	EmployeeID   string `json:"employee_id"`
	LeaveTypeID  string `json:"leave_type_id"`
	Year         int    `json:"year"`
	EntitledDays int    `json:"entitled_days"`
	ConsumedDays int    `json:"consumed_days"`
	Remaining    int    `json:"remaining"`
}
