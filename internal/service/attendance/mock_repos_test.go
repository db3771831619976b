package attendance

import (
	"context"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/attendance"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/google/uuid"
)

// mockAttendanceRepo is an in-memory attendance.AttendanceRepository that
// enforces the same per-(employee, date) uniqueness as the SQL layer.
type mockAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range m.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
	}
	att.ID = uuid.NewString()
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	m.records[att.ID] = att
	return att, nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := m.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (m *mockAttendanceRepo) GetOpenByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	for _, att := range m.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) && att.ClockOut == nil {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNoOpenClockIn
}

func (m *mockAttendanceRepo) Close(_ context.Context, att attendance.Attendance) error {
	existing, ok := m.records[att.ID]
	if !ok || existing.ClockOut != nil {
		return attendance.ErrNoOpenClockIn
	}
	m.records[att.ID] = att
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
	var out []attendance.Attendance
	for _, att := range m.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(att.Status) != *filter.Status {
			continue
		}
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (m *mockAttendanceRepo) MarkAbsentees(_ context.Context, date time.Time) (int64, error) {
	// Employee scope comes from the service's employee repo in production;
	// the mock only counts already-known employees without a record.
	return 0, nil
}

// mockEmployeeRepo is an in-memory employee.EmployeeRepository.
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
