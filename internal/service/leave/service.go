package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/leave"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/database"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/timeutil"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	employee.EmployeeRepository
	tx database.TxManager
}

func NewLeaveService(
	typeRepo leave.LeaveTypeRepository,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.EmployeeRepository,
	tx database.TxManager,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveTypeRepository:    typeRepo,
		LeaveRequestRepository: requestRepo,
		LeaveBalanceRepository: balanceRepo,
		EmployeeRepository:     employeeRepo,
		tx:                     tx,
	}
}

// CreateType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := l.LeaveTypeRepository.Create(ctx, leave.LeaveType{
		Name:               req.Name,
		DaysAllowedPerYear: req.DaysAllowedPerYear,
		IsPaid:             req.IsPaid,
		RequiresApproval:   req.RequiresApproval,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return toLeaveTypeResponse(created), nil
}

// UpdateType implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	lt := leave.LeaveType{
		ID:                 req.ID,
		Name:               req.Name,
		DaysAllowedPerYear: req.DaysAllowedPerYear,
		IsPaid:             req.IsPaid,
		RequiresApproval:   req.RequiresApproval,
	}
	if err := l.LeaveTypeRepository.Update(ctx, lt); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return toLeaveTypeResponse(lt), nil
}

// ListTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := l.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, toLeaveTypeResponse(lt))
	}
	return responses, nil
}

// entitlementForYear pro-rates the annual entitlement for employees hired
// during the year: full allowance when hired earlier, zero when hired
// later, otherwise allowance scaled by the months remaining from the hire
// month (inclusive) and rounded to the nearest day.
func entitlementForYear(daysAllowed int, hireDate time.Time, year int) int {
	switch {
	case hireDate.Year() < year:
		return daysAllowed
	case hireDate.Year() > year:
		return 0
	}
	monthsRemaining := 12 - int(hireDate.Month()) + 1
	return int(math.Round(float64(daysAllowed) * float64(monthsRemaining) / 12))
}

// Submit implements leave.LeaveService. Emergency types (requires_approval
// false) transition straight to APPROVED, debiting the balance in the same
// transaction as the insert.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !emp.IsActive {
		return leave.LeaveRequestResponse{}, employee.ErrEmployeeInactive
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	leaveDays := timeutil.BusinessDays(start, end)
	if leaveDays == 0 {
		return leave.LeaveRequestResponse{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "requested range contains no business days",
		}}
	}

	year := start.Year()

	if leaveType.IsPaid {
		entitled := entitlementForYear(leaveType.DaysAllowedPerYear, emp.HireDate, year)
		if err := l.LeaveBalanceRepository.Ensure(ctx, req.EmployeeID, req.LeaveTypeID, year, entitled); err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		balance, err := l.LeaveBalanceRepository.Get(ctx, req.EmployeeID, req.LeaveTypeID, year)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if balance.Remaining() < leaveDays {
			return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	request := leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		LeaveDays:   leaveDays,
		Status:      leave.RequestStatusApplied,
		Reason:      req.Reason,
	}

	var created leave.LeaveRequest
	err = l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = l.LeaveRequestRepository.CreateIfNoOverlap(ctx, request)
		if err != nil {
			return err
		}

		if leaveType.RequiresApproval {
			return nil
		}

		// Auto-approval: the debit's entitlement guard is the real
		// balance check; a failure rolls back the insert too.
		now := time.Now().UTC()
		notes := "auto-approved"
		if leaveType.IsPaid {
			if err := l.LeaveBalanceRepository.Debit(ctx, req.EmployeeID, req.LeaveTypeID, year, leaveDays); err != nil {
				return err
			}
		}
		if err := l.LeaveRequestRepository.TransitionStatus(ctx, created.ID,
			leave.RequestStatusApplied, leave.RequestStatusApproved,
			leave.StatusUpdate{DecidedAt: &now, DecisionNotes: &notes},
		); err != nil {
			return err
		}
		created.Status = leave.RequestStatusApproved
		created.DecidedAt = &now
		created.DecisionNotes = &notes
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created.LeaveTypeName = &leaveType.Name
	return toLeaveRequestResponse(created), nil
}

// Decide implements leave.LeaveService. The balance debit and the status
// transition commit or roll back together.
func (l *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	to := leave.RequestStatus(req.Decision)
	if !request.Status.CanTransitionTo(to) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidTransition
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, request.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	now := time.Now().UTC()
	update := leave.StatusUpdate{
		DecidedBy:     &req.DeciderID,
		DecidedAt:     &now,
		DecisionNotes: req.Notes,
	}

	err = l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if to == leave.RequestStatusApproved && leaveType.IsPaid {
			year := request.StartDate.Year()
			emp, err := l.EmployeeRepository.GetByID(ctx, request.EmployeeID)
			if err != nil {
				return err
			}
			entitled := entitlementForYear(leaveType.DaysAllowedPerYear, emp.HireDate, year)
			if err := l.LeaveBalanceRepository.Ensure(ctx, request.EmployeeID, request.LeaveTypeID, year, entitled); err != nil {
				return err
			}
			if err := l.LeaveBalanceRepository.Debit(ctx, request.EmployeeID, request.LeaveTypeID, year, request.LeaveDays); err != nil {
				return err
			}
		}
		return l.LeaveRequestRepository.TransitionStatus(ctx, req.RequestID,
			leave.RequestStatusApplied, to, update)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request.Status = to
	request.DecidedBy = update.DecidedBy
	request.DecidedAt = update.DecidedAt
	request.DecisionNotes = update.DecisionNotes
	return toLeaveRequestResponse(request), nil
}

// Cancel implements leave.LeaveService. Cancelling an APPROVED request
// credits the consumed days back in the same transaction.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, requestID, actorID string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Employees cancel their own requests only. A non-owner gets the same
	// not-found as a missing ID, so the lookup does not leak other
	// employees' request IDs.
	if request.EmployeeID != actorID {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}

	from := request.Status
	if !from.CanTransitionTo(leave.RequestStatusCancelled) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidTransition
	}

	leaveType, err := l.LeaveTypeRepository.GetByID(ctx, request.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	now := time.Now().UTC()
	update := leave.StatusUpdate{
		CancelledBy: &actorID,
		CancelledAt: &now,
	}

	err = l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := l.LeaveRequestRepository.TransitionStatus(ctx, requestID,
			from, leave.RequestStatusCancelled, update); err != nil {
			return err
		}
		if from == leave.RequestStatusApproved && leaveType.IsPaid {
			return l.LeaveBalanceRepository.Credit(ctx,
				request.EmployeeID, request.LeaveTypeID, request.StartDate.Year(), request.LeaveDays)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request.Status = leave.RequestStatusCancelled
	request.CancelledBy = update.CancelledBy
	request.CancelledAt = update.CancelledAt
	return toLeaveRequestResponse(request), nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.RequestFilter) (leave.ListLeaveRequestResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toLeaveRequestResponse(req))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

// GetBalance implements leave.LeaveService. A missing ledger row is lazily
// created with the pro-rated entitlement so first-time reads never 404.
func (l *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.BalanceResponse, error) {
	balance, err := l.LeaveBalanceRepository.Get(ctx, employeeID, leaveTypeID, year)
	if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
		leaveType, typeErr := l.LeaveTypeRepository.GetByID(ctx, leaveTypeID)
		if typeErr != nil {
			return leave.BalanceResponse{}, typeErr
		}
		emp, empErr := l.EmployeeRepository.GetByID(ctx, employeeID)
		if empErr != nil {
			return leave.BalanceResponse{}, empErr
		}
		entitled := entitlementForYear(leaveType.DaysAllowedPerYear, emp.HireDate, year)
		if err := l.LeaveBalanceRepository.Ensure(ctx, employeeID, leaveTypeID, year, entitled); err != nil {
			return leave.BalanceResponse{}, err
		}
		balance, err = l.LeaveBalanceRepository.Get(ctx, employeeID, leaveTypeID, year)
	}
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		EmployeeID:   balance.EmployeeID,
		LeaveTypeID:  balance.LeaveTypeID,
		Year:         balance.Year,
		EntitledDays: balance.EntitledDays,
		ConsumedDays: balance.ConsumedDays,
		Remaining:    balance.Remaining(),
	}, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

func toLeaveTypeResponse(lt leave.LeaveType) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:                 lt.ID,
		Name:               lt.Name,
		DaysAllowedPerYear: lt.DaysAllowedPerYear,
		IsPaid:             lt.IsPaid,
		RequiresApproval:   lt.RequiresApproval,
	}
}

func toLeaveRequestResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		LeaveTypeID:   req.LeaveTypeID,
		LeaveTypeName: req.LeaveTypeName,
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		LeaveDays:     req.LeaveDays,
		Status:        string(req.Status),
		Reason:        req.Reason,
		AppliedAt:     req.AppliedAt.UTC().Format(time.RFC3339),
		DecidedBy:     req.DecidedBy,
		DecidedAt:     timePtrToString(req.DecidedAt),
		DecisionNotes: req.DecisionNotes,
	}
}
