package leave

import "context"

type LeaveService interface {
	// Leave types (admin reference data)
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateType(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)

	// Request workflow
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, requestID, actorID string) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter RequestFilter) (ListLeaveRequestResponse, error)

	// Balance ledger
	GetBalance(ctx context.Context, employeeID, leaveTypeID string, year int) (BalanceResponse, error)
}
