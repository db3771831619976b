package payroll

import (
	"context"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/attendance"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/leave"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/payroll"
	"github.com/google/uuid"
)

// mockPayrollRepo enforces the same non-adjustment overlap guard as the
// SQL layer.
type mockPayrollRepo struct {
	records map[string]payroll.PayrollRecord
}

func newMockPayrollRepo() *mockPayrollRepo {
	return &mockPayrollRepo{records: make(map[string]payroll.PayrollRecord)}
}

func (m *mockPayrollRepo) CreateIfNoOverlap(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	for _, existing := range m.records {
		if existing.EmployeeID != record.EmployeeID || existing.AdjustmentOf != nil {
			continue
		}
		if !existing.PeriodStart.After(record.PeriodEnd) && !existing.PeriodEnd.Before(record.PeriodStart) {
			return payroll.PayrollRecord{}, payroll.ErrDuplicatePeriod
		}
	}
	record.ID = uuid.NewString()
	m.records[record.ID] = record
	return record, nil
}

func (m *mockPayrollRepo) CreateAdjustment(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	record.ID = uuid.NewString()
	m.records[record.ID] = record
	return record, nil
}

func (m *mockPayrollRepo) GetByID(_ context.Context, id string) (payroll.PayrollRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (m *mockPayrollRepo) TransitionStatus(_ context.Context, id string, from, to payroll.Status, update payroll.StatusUpdate) error {
	rec, ok := m.records[id]
	if !ok || rec.Status != from {
		return payroll.ErrInvalidTransition
	}
	rec.Status = to
	if update.ApprovedBy != nil {
		rec.ApprovedBy = update.ApprovedBy
	}
	if update.ApprovedAt != nil {
		rec.ApprovedAt = update.ApprovedAt
	}
	if update.PaidAt != nil {
		rec.PaidAt = update.PaidAt
	}
	m.records[id] = rec
	return nil
}

func (m *mockPayrollRepo) List(_ context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, int64, error) {
	var out []payroll.PayrollRecord
	for _, rec := range m.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(rec.Status) != *filter.Status {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

// mockAttendanceRepo serves fixed closed records for a period.
type mockAttendanceRepo struct {
	records []attendance.Attendance
}

func (m *mockAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.records = append(m.records, att)
	return att, nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (m *mockAttendanceRepo) GetOpenByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrNoOpenClockIn
}

func (m *mockAttendanceRepo) Close(_ context.Context, att attendance.Attendance) error {
	return nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndPeriod(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range m.records {
		if att.EmployeeID == employeeID && !att.Date.Before(start) && !att.Date.After(end) {
			out = append(out, att)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) List(_ context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return m.records, int64(len(m.records)), nil
}

func (m *mockAttendanceRepo) MarkAbsentees(_ context.Context, date time.Time) (int64, error) {
	return 0, nil
}

// mockLeaveRequestRepo serves approved leave for a period; the remaining
// workflow methods are unused by the payroll engine.
type mockLeaveRequestRepo struct {
	approved []leave.ApprovedLeave
}

func (m *mockLeaveRequestRepo) CreateIfNoOverlap(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return req, nil
}

func (m *mockLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (m *mockLeaveRequestRepo) TransitionStatus(_ context.Context, id string, from, to leave.RequestStatus, update leave.StatusUpdate) error {
	return nil
}

func (m *mockLeaveRequestRepo) List(_ context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (m *mockLeaveRequestRepo) ListApprovedInPeriod(_ context.Context, employeeID string, start, end time.Time) ([]leave.ApprovedLeave, error) {
	var out []leave.ApprovedLeave
	for _, al := range m.approved {
		if al.StartDate.After(end) || al.EndDate.Before(start) {
			continue
		}
		out = append(out, al)
	}
	return out, nil
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
