package leave

import (
	"time"
)

// LeaveType is administrator-managed reference data.
type LeaveType struct {
	ID   string
	Name string

	// DaysAllowedPerYear is the annual entitlement for the type.
	DaysAllowedPerYear int

	// IsPaid controls both payroll treatment (unpaid leave reduces basic
	// salary pro-rata) and whether the entitlement cap is enforced.
	IsPaid bool

	// RequiresApproval is false for emergency types, which transition
	// straight to APPROVED on submission.
	RequiresApproval bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type RequestStatus string

const (
	RequestStatusApplied   RequestStatus = "APPLIED"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// CanTransitionTo enumerates the request state machine:
// APPLIED -> APPROVED | REJECTED | CANCELLED, APPROVED -> CANCELLED.
// REJECTED and CANCELLED are terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusApplied:
		return next == RequestStatusApproved || next == RequestStatusRejected || next == RequestStatusCancelled
	case RequestStatusApproved:
		return next == RequestStatusCancelled
	default:
		return false
	}
}

// LeaveRequest entity. Requests are never physically deleted;
// cancellation is a status, not a removal.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time

	// LeaveDays is the business-day count of [StartDate, EndDate]
	// (weekends excluded), fixed at submission time.
	LeaveDays int

	Status RequestStatus
	Reason string

	AppliedAt     time.Time
	DecidedBy     *string
	DecidedAt     *time.Time
	DecisionNotes *string
	CancelledBy   *string
	CancelledAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	LeaveTypeName *string
}

// LeaveBalance is one ledger row per (employee, leave type, year).
// Invariant: 0 <= ConsumedDays <= EntitledDays at all times.
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int

	EntitledDays int
	ConsumedDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remaining is entitled minus consumed.
func (b LeaveBalance) Remaining() int {
	return b.EntitledDays - b.ConsumedDays
}
