package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/leave"
	"github.com/google/uuid"
)

// noopTxManager runs the function directly. The mock repositories apply
// their guards atomically per call, which is what the transactional wiring
// guarantees in production.
type noopTxManager struct{}

func (noopTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLeaveTypeRepo struct {
	types map[string]leave.LeaveType
}

func newMockLeaveTypeRepo(types ...leave.LeaveType) *mockLeaveTypeRepo {
	m := &mockLeaveTypeRepo{types: make(map[string]leave.LeaveType)}
	for _, lt := range types {
		m.types[lt.ID] = lt
	}
	return m
}

func (m *mockLeaveTypeRepo) Create(_ context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	for _, existing := range m.types {
		if existing.Name == lt.Name {
			return leave.LeaveType{}, leave.ErrLeaveTypeNameExists
		}
	}
	lt.ID = uuid.NewString()
	m.types[lt.ID] = lt
	return lt, nil
}

func (m *mockLeaveTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	lt, ok := m.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (m *mockLeaveTypeRepo) List(_ context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, lt := range m.types {
		out = append(out, lt)
	}
	return out, nil
}

func (m *mockLeaveTypeRepo) Update(_ context.Context, lt leave.LeaveType) error {
	if _, ok := m.types[lt.ID]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	m.types[lt.ID] = lt
	return nil
}

type mockLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
}

func newMockLeaveRequestRepo() *mockLeaveRequestRepo {
	return &mockLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (m *mockLeaveRequestRepo) CreateIfNoOverlap(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	for _, existing := range m.requests {
		if existing.EmployeeID != req.EmployeeID {
			continue
		}
		if existing.Status != leave.RequestStatusApplied && existing.Status != leave.RequestStatusApproved {
			continue
		}
		if !existing.StartDate.After(req.EndDate) && !existing.EndDate.Before(req.StartDate) {
			return leave.LeaveRequest{}, leave.ErrOverlappingRequest
		}
	}
	req.ID = uuid.NewString()
	req.AppliedAt = time.Now().UTC()
	m.requests[req.ID] = req
	return req, nil
}

func (m *mockLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (m *mockLeaveRequestRepo) TransitionStatus(_ context.Context, id string, from, to leave.RequestStatus, update leave.StatusUpdate) error {
	req, ok := m.requests[id]
	if !ok || req.Status != from {
		return leave.ErrInvalidTransition
	}
	req.Status = to
	if update.DecidedBy != nil {
		req.DecidedBy = update.DecidedBy
	}
	if update.DecidedAt != nil {
		req.DecidedAt = update.DecidedAt
	}
	if update.DecisionNotes != nil {
		req.DecisionNotes = update.DecisionNotes
	}
	if update.CancelledBy != nil {
		req.CancelledBy = update.CancelledBy
	}
	if update.CancelledAt != nil {
		req.CancelledAt = update.CancelledAt
	}
	m.requests[id] = req
	return nil
}

func (m *mockLeaveRequestRepo) List(_ context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range m.requests {
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(req.Status) != *filter.Status {
			continue
		}
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (m *mockLeaveRequestRepo) ListApprovedInPeriod(_ context.Context, employeeID string, start, end time.Time) ([]leave.ApprovedLeave, error) {
	var out []leave.ApprovedLeave
	for _, req := range m.requests {
		if req.EmployeeID != employeeID || req.Status != leave.RequestStatusApproved {
			continue
		}
		if req.StartDate.After(end) || req.EndDate.Before(start) {
			continue
		}
		out = append(out, leave.ApprovedLeave{
			RequestID: req.ID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			LeaveDays: req.LeaveDays,
		})
	}
	return out, nil
}

type mockLeaveBalanceRepo struct {
	balances map[string]leave.LeaveBalance
}

func newMockLeaveBalanceRepo() *mockLeaveBalanceRepo {
	return &mockLeaveBalanceRepo{balances: make(map[string]leave.LeaveBalance)}
}

func balanceKey(employeeID, leaveTypeID string, year int) string {
	return fmt.Sprintf("%s|%s|%d", employeeID, leaveTypeID, year)
}

func (m *mockLeaveBalanceRepo) Ensure(_ context.Context, employeeID, leaveTypeID string, year, entitledDays int) error {
	key := balanceKey(employeeID, leaveTypeID, year)
	if _, ok := m.balances[key]; ok {
		return nil
	}
	m.balances[key] = leave.LeaveBalance{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		LeaveTypeID:  leaveTypeID,
		Year:         year,
		EntitledDays: entitledDays,
	}
	return nil
}

func (m *mockLeaveBalanceRepo) Get(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	b, ok := m.balances[balanceKey(employeeID, leaveTypeID, year)]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	return b, nil
}

func (m *mockLeaveBalanceRepo) Debit(_ context.Context, employeeID, leaveTypeID string, year, days int) error {
	key := balanceKey(employeeID, leaveTypeID, year)
	b, ok := m.balances[key]
	if !ok || b.ConsumedDays+days > b.EntitledDays {
		return leave.ErrInsufficientBalance
	}
	b.ConsumedDays += days
	m.balances[key] = b
	return nil
}

func (m *mockLeaveBalanceRepo) Credit(_ context.Context, employeeID, leaveTypeID string, year, days int) error {
	key := balanceKey(employeeID, leaveTypeID, year)
	b, ok := m.balances[key]
	if !ok {
		return leave.ErrLeaveBalanceNotFound
	}
	b.ConsumedDays -= days
	if b.ConsumedDays < 0 {
		b.ConsumedDays = 0
	}
	m.balances[key] = b
	return nil
}

type mockEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newMockEmployeeRepo(emps ...employee.Employee) *mockEmployeeRepo {
	m := &mockEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		m.employees[e.ID] = e
	}
	return m
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}
