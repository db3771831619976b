package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeNameExists  = errors.New("leave type name already exists")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveBalanceNotFound = errors.New("leave balance not found")

	// ErrOverlappingRequest: an APPLIED or APPROVED request for the same
	// employee already intersects the date range.
	ErrOverlappingRequest = errors.New("an active leave request already covers part of this period")

	// ErrInsufficientBalance: the debit would drive consumed above entitled.
	ErrInsufficientBalance = errors.New("insufficient leave balance for this request")

	// ErrInvalidTransition: the request is not in a state that permits the
	// attempted operation.
	ErrInvalidTransition = errors.New("leave request status does not permit this transition")
)
