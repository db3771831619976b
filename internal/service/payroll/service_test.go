package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/attendance"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/leave"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/payroll"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc        payroll.PayrollService
	payrolls   *mockPayrollRepo
	attendance *mockAttendanceRepo
	leaves     *mockLeaveRequestRepo
}

// salariedEmployee earns 52000 a year: with an 80% basic share over 260
// working days the daily basic is exactly 160 and the hourly rate 20.
func salariedEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:         id,
		BaseSalary: decimal.NewFromInt(52000),
		HireDate:   time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
}

func newTestEnv(emps ...employee.Employee) testEnv {
	payrollRepo := newMockPayrollRepo()
	attRepo := &mockAttendanceRepo{}
	leaveRepo := &mockLeaveRequestRepo{}
	svc := NewPayrollService(payrollRepo, attRepo, leaveRepo, newMockEmployeeRepo(emps...))
	return testEnv{svc: svc, payrolls: payrollRepo, attendance: attRepo, leaves: leaveRepo}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func closedRecord(employeeID, date string, hours float64) attendance.Attendance {
	d := day(date)
	out := d.Add(time.Duration(float64(time.Hour) * hours))
	return attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        timeutil.DateOnly(d),
		ClockIn:     &d,
		ClockOut:    &out,
		HoursWorked: &hours,
		Status:      attendance.StatusPresent,
	}
}

func TestGenerateWorkedExample(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	// Mon 2024-01-01 .. Fri 2024-01-05, hours 8 + 8 + 8 + 9.5 + 9 = 42.5
	// with 2.5 overtime hours above the 8-hour standard day.
	hours := []float64{8, 8, 8, 9.5, 9}
	days := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i, d := range days {
		env.attendance.records = append(env.attendance.records, closedRecord("emp-1", d, hours[i]))
	}

	resp, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-05",
	})
	require.NoError(t, err)

	// dailyBasic 160 x 5 payable days.
	assert.True(t, resp.BasicSalary.Equal(decimal.NewFromInt(800)), "basic = %s", resp.BasicSalary)
	assert.True(t, resp.Allowances.Housing.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Allowances.Transport.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.Allowances.Medical.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.GrossSalary.Equal(decimal.NewFromInt(1000)), "gross = %s", resp.GrossSalary)

	assert.True(t, resp.Deductions.IncomeTax.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Deductions.SocialSecurity.Equal(decimal.NewFromInt(60)))
	assert.True(t, resp.Deductions.HealthInsurance.Equal(decimal.NewFromInt(30)))
	assert.True(t, resp.TotalDeductions.Equal(decimal.NewFromInt(190)))

	assert.True(t, resp.WorkedHours.Equal(decimal.NewFromFloat(42.5)), "worked = %s", resp.WorkedHours)
	assert.True(t, resp.OvertimeHours.Equal(decimal.NewFromFloat(2.5)), "overtime = %s", resp.OvertimeHours)
	// 2.5h x 20/h x 1.5
	assert.True(t, resp.OvertimePay.Equal(decimal.NewFromFloat(75)), "overtime pay = %s", resp.OvertimePay)

	// 1000 + 75 + 0 - 190
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(885)), "net = %s", resp.NetSalary)
	assert.Equal(t, string(payroll.StatusDraft), resp.Status)
}

func TestGenerateNetIdentity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	env.attendance.records = append(env.attendance.records,
		closedRecord("emp-1", "2024-02-05", 8.25),
		closedRecord("emp-1", "2024-02-06", 7.5),
		closedRecord("emp-1", "2024-02-07", 10.33),
	)

	resp, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-02-05",
		PeriodEnd:   "2024-02-09",
		Bonus:       decimal.NewFromFloat(123.45),
	})
	require.NoError(t, err)

	want := resp.GrossSalary.Add(resp.OvertimePay).Add(resp.Bonus).Sub(resp.TotalDeductions)
	assert.True(t, resp.NetSalary.Equal(want), "net %s != %s", resp.NetSalary, want)

	wantGross := resp.BasicSalary.
		Add(resp.Allowances.Housing).
		Add(resp.Allowances.Transport).
		Add(resp.Allowances.Medical)
	assert.True(t, resp.GrossSalary.Equal(wantGross))

	wantDeductions := resp.Deductions.IncomeTax.
		Add(resp.Deductions.SocialSecurity).
		Add(resp.Deductions.HealthInsurance)
	assert.True(t, resp.TotalDeductions.Equal(wantDeductions))
}

func TestGenerateUnpaidLeaveReducesBasic(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	env.leaves.approved = append(env.leaves.approved, leave.ApprovedLeave{
		RequestID: "req-1",
		StartDate: day("2024-01-04"),
		EndDate:   day("2024-01-05"),
		LeaveDays: 2,
		IsPaid:    false,
	})
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		env.attendance.records = append(env.attendance.records, closedRecord("emp-1", d, 8))
	}

	resp, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.UnpaidLeaveDays)
	// 3 payable days x 160.
	assert.True(t, resp.BasicSalary.Equal(decimal.NewFromInt(480)), "basic = %s", resp.BasicSalary)
}

func TestGeneratePaidLeaveDoesNotReduceBasic(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	env.leaves.approved = append(env.leaves.approved, leave.ApprovedLeave{
		RequestID: "req-1",
		StartDate: day("2024-01-04"),
		EndDate:   day("2024-01-05"),
		LeaveDays: 2,
		IsPaid:    true,
	})

	resp, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.UnpaidLeaveDays)
	assert.True(t, resp.BasicSalary.Equal(decimal.NewFromInt(800)))
}

func TestGenerateDuplicatePeriod(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	_, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-31",
	})
	require.NoError(t, err)

	// Intersecting period for the same employee.
	_, err = env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-15",
		PeriodEnd:   "2024-02-15",
	})
	assert.ErrorIs(t, err, payroll.ErrDuplicatePeriod)
}

func TestGenerateWeekendOnlyPeriod(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	_, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-06",
		PeriodEnd:   "2024-01-07",
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestGenerateNoBaseSalary(t *testing.T) {
	ctx := context.Background()
	emp := salariedEmployee("emp-1")
	emp.BaseSalary = decimal.Zero
	env := newTestEnv(emp)

	_, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-05",
	})
	assert.ErrorIs(t, err, payroll.ErrEmployeeHasNoBaseSalary)
}

func TestStatusLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	generated, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-05",
	})
	require.NoError(t, err)

	// PAID before APPROVED must fail.
	_, err = env.svc.MarkPaid(ctx, payroll.MarkPaidRequest{RecordID: generated.ID})
	assert.ErrorIs(t, err, payroll.ErrInvalidTransition)

	approved, err := env.svc.Approve(ctx, generated.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusApproved), approved.Status)

	// Approving twice must fail.
	_, err = env.svc.Approve(ctx, generated.ID, "admin-1")
	assert.ErrorIs(t, err, payroll.ErrInvalidTransition)

	paid, err := env.svc.MarkPaid(ctx, payroll.MarkPaidRequest{RecordID: generated.ID})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusPaid), paid.Status)
	assert.NotNil(t, paid.PaidAt)
}

func TestApproveMissingRecord(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	_, err := env.svc.Approve(ctx, "missing", "admin-1")
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestAdjustmentRequiresPaid(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	generated, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-05",
	})
	require.NoError(t, err)

	_, err = env.svc.CreateAdjustment(ctx, payroll.AdjustPayrollRequest{OriginalID: generated.ID})
	assert.ErrorIs(t, err, payroll.ErrRecordNotPaid)
}

func TestAdjustmentSharesPeriod(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(salariedEmployee("emp-1"))

	generated, err := env.svc.Generate(ctx, payroll.GeneratePayrollRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-05",
	})
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, generated.ID, "admin-1")
	require.NoError(t, err)
	_, err = env.svc.MarkPaid(ctx, payroll.MarkPaidRequest{RecordID: generated.ID})
	require.NoError(t, err)

	adjusted, err := env.svc.CreateAdjustment(ctx, payroll.AdjustPayrollRequest{
		OriginalID: generated.ID,
		Bonus:      decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	require.NotNil(t, adjusted.AdjustmentOf)
	assert.Equal(t, generated.ID, *adjusted.AdjustmentOf)
	assert.Equal(t, generated.PeriodStart, adjusted.PeriodStart)
	assert.Equal(t, string(payroll.StatusDraft), adjusted.Status)
	assert.True(t, adjusted.Bonus.Equal(decimal.NewFromInt(200)))
}
