package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")

	// ErrDuplicatePeriod: a record already exists for an overlapping pay
	// period for this employee.
	ErrDuplicatePeriod = errors.New("payroll record already exists for an overlapping period")

	// ErrInvalidTransition: status transitions are forward-only
	// (DRAFT -> APPROVED -> PAID).
	ErrInvalidTransition = errors.New("payroll record status does not permit this transition")

	// ErrRecordNotPaid: adjustments supersede PAID records only; a DRAFT
	// or APPROVED record is corrected in place or regenerated.
	ErrRecordNotPaid = errors.New("only a paid payroll record can be adjusted")

	ErrEmployeeHasNoBaseSalary = errors.New("employee has no base salary configured")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
)
