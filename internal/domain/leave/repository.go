package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	// CreateIfNoOverlap inserts the request only when no APPLIED/APPROVED
	// request for the same employee intersects [StartDate, EndDate]. The
	// guard and the insert are a single atomic statement; returns
	// ErrOverlappingRequest when blocked.
	CreateIfNoOverlap(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// TransitionStatus updates the status conditionally on the current
	// status matching from; returns ErrInvalidTransition when the request
	// is no longer in the expected state.
	TransitionStatus(ctx context.Context, id string, from, to RequestStatus, update StatusUpdate) error

	List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, int64, error)

	// ListApprovedInPeriod returns APPROVED requests for the employee whose
	// date range intersects [start, end], with the leave type's paid flag.
	ListApprovedInPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]ApprovedLeave, error)
}

// StatusUpdate carries the audit fields written alongside a transition.
type StatusUpdate struct {
	DecidedBy     *string
	DecidedAt     *time.Time
	DecisionNotes *string
	CancelledBy   *string
	CancelledAt   *time.Time
}

// ApprovedLeave is the payroll engine's view of an approved request.
type ApprovedLeave struct {
	RequestID string
	StartDate time.Time
	EndDate   time.Time
	LeaveDays int
	IsPaid    bool
}

// LeaveBalanceRepository - interface for leave_balances table
type LeaveBalanceRepository interface {
	// Ensure creates the balance row with the given entitlement when it
	// does not exist yet; an existing row is left untouched.
	Ensure(ctx context.Context, employeeID, leaveTypeID string, year, entitledDays int) error

	Get(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)

	// Debit atomically raises consumed_days by days, guarded by
	// consumed + days <= entitled; returns ErrInsufficientBalance when the
	// guard fails. Safe under concurrent debits for the same key.
	Debit(ctx context.Context, employeeID, leaveTypeID string, year, days int) error

	// Credit atomically lowers consumed_days by days, floored at zero.
	Credit(ctx context.Context, employeeID, leaveTypeID string, year, days int) error
}
