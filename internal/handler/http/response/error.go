package response

import (
	"errors"
	"net/http"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/attendance"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/leave"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/payroll"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Attendance errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this date")
	case errors.Is(err, attendance.ErrNoOpenClockIn):
		Conflict(w, "No open clock-in for this date")
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out must not be before clock-in", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeNameExists):
		Conflict(w, "Leave type name already exists")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An active leave request already covers part of this range")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Leave request status does not permit this action")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)

	// Payroll errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrDuplicatePeriod):
		Conflict(w, "A payroll record already exists for an overlapping period")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Payroll record status does not permit this action")
	case errors.Is(err, payroll.ErrRecordNotPaid):
		Conflict(w, "Only a paid payroll record can be adjusted")
	case errors.Is(err, payroll.ErrEmployeeHasNoBaseSalary):
		BadRequest(w, "Employee has no base salary configured", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Payroll period contains no business days", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
