package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/attendance"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:         id,
		BaseSalary: decimal.NewFromInt(52000),
		HireDate:   time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
}

func newTestService(emps ...employee.Employee) (attendance.AttendanceService, *mockAttendanceRepo) {
	attRepo := newMockAttendanceRepo()
	return NewAttendanceService(attRepo, newMockEmployeeRepo(emps...)), attRepo
}

func TestClockIn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T09:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2024-01-02", resp.Date)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.ClockInTime)
	assert.Equal(t, "2024-01-02T09:00:00Z", *resp.ClockInTime)
	assert.Nil(t, resp.ClockOutTime)
	assert.Nil(t, resp.HoursWorked)
}

func TestClockInTwiceSameDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T09:00:00Z",
	})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T13:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockInInactiveEmployee(t *testing.T) {
	ctx := context.Background()
	emp := activeEmployee("emp-1")
	emp.IsActive = false
	svc, _ := newTestService(emp)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestClockInUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockOutFullDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T09:00:00Z",
	})
	require.NoError(t, err)

	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T17:30:00Z",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.HoursWorked)
	assert.Equal(t, 8.5, *resp.HoursWorked)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestClockOutShortDayIsLate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T09:00:00Z",
	})
	require.NoError(t, err)

	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T16:45:00Z",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.HoursWorked)
	assert.Equal(t, 7.75, *resp.HoursWorked)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestClockOutRoundsToTwoDecimals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T09:00:00Z",
	})
	require.NoError(t, err)

	// 7h59m30s = 7.9916... hours, rounds to 7.99: still LATE.
	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T16:59:30Z",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.HoursWorked)
	assert.Equal(t, 7.99, *resp.HoursWorked)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestClockOutExactlyAtThreshold(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T09:00:00Z",
	})
	require.NoError(t, err)

	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T17:00:00Z",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.HoursWorked)
	assert.Equal(t, 8.0, *resp.HoursWorked)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestClockOutWithoutOpenRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T17:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrNoOpenClockIn)
}

func TestClockOutBeforeClockIn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T09:00:00Z",
	})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T08:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrClockOutBeforeIn)
}

func TestClockOutTwice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T09:00:00Z",
	})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T17:00:00Z",
	})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2024-01-02T18:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrNoOpenClockIn)
}

func TestGetRecordsForPeriod(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(activeEmployee("emp-1"))

	for _, day := range []string{"2024-01-02", "2024-01-03", "2024-01-10"} {
		_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
			EmployeeID: "emp-1",
			Timestamp:  day + "T09:00:00Z",
		})
		require.NoError(t, err)
	}

	records, err := svc.GetRecordsForPeriod(ctx, "emp-1",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestClockInValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{})
	assert.Error(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: "emp-1",
		Timestamp:  "not-a-time",
	})
	assert.Error(t, err)
}
