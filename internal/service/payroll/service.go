package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/attendance"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/employee"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/leave"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/payroll"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/timeutil"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:      payrollRepo,
		AttendanceRepository:   attendanceRepo,
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// computeRecord derives every monetary figure for an employee's pay
// period. All components are rounded to 2 decimal places first and the
// net is derived from the rounded components, so
// net = gross + overtime pay + bonus - total deductions holds exactly.
func (p *PayrollServiceImpl) computeRecord(ctx context.Context, emp employee.Employee, start, end time.Time, bonus decimal.Decimal, cfg payroll.SalaryConfig) (payroll.PayrollRecord, error) {
	businessDays := timeutil.BusinessDays(start, end)
	if businessDays == 0 {
		return payroll.PayrollRecord{}, payroll.ErrInvalidPeriod
	}

	records, err := p.AttendanceRepository.GetByEmployeeAndPeriod(ctx, emp.ID, start, end)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	standardDaily, _ := cfg.StandardDailyHours.Float64()
	var workedHours, overtimeHours float64
	for _, rec := range records {
		if rec.HoursWorked == nil {
			continue
		}
		workedHours += *rec.HoursWorked
		if extra := *rec.HoursWorked - standardDaily; extra > 0 {
			overtimeHours += extra
		}
	}

	approved, err := p.LeaveRequestRepository.ListApprovedInPeriod(ctx, emp.ID, start, end)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	unpaidDays := 0
	for _, al := range approved {
		if al.IsPaid {
			continue
		}
		unpaidDays += timeutil.OverlapBusinessDays(al.StartDate, al.EndDate, start, end)
	}

	payableDays := businessDays - unpaidDays
	if payableDays < 0 {
		payableDays = 0
	}

	dailyBasic := emp.BaseSalary.Mul(cfg.BasicShare).Div(decimal.NewFromInt(int64(cfg.WorkingDaysPerYear)))
	basic := dailyBasic.Mul(decimal.NewFromInt(int64(payableDays))).Round(2)

	allowances := payroll.AllowanceBreakdown{
		Housing:   basic.Mul(cfg.HousingRate).Round(2),
		Transport: basic.Mul(cfg.TransportRate).Round(2),
		Medical:   basic.Mul(cfg.MedicalRate).Round(2),
	}
	gross := basic.Add(allowances.Total())

	deductions := payroll.DeductionBreakdown{
		IncomeTax:       gross.Mul(cfg.IncomeTaxRate).Round(2),
		SocialSecurity:  gross.Mul(cfg.SocialSecurityRate).Round(2),
		HealthInsurance: gross.Mul(cfg.HealthInsuranceRate).Round(2),
	}
	totalDeductions := deductions.Total()

	hourlyRate := dailyBasic.Div(cfg.StandardDailyHours)
	overtimePay := decimal.NewFromFloat(overtimeHours).Mul(hourlyRate).Mul(cfg.OvertimeMultiplier).Round(2)

	bonus = bonus.Round(2)
	net := gross.Add(overtimePay).Add(bonus).Sub(totalDeductions)

	return payroll.PayrollRecord{
		EmployeeID:      emp.ID,
		PeriodStart:     start,
		PeriodEnd:       end,
		BasicSalary:     basic,
		Allowances:      allowances,
		GrossSalary:     gross,
		Deductions:      deductions,
		TotalDeductions: totalDeductions,
		WorkedHours:     decimal.NewFromFloat(workedHours).Round(2),
		OvertimeHours:   decimal.NewFromFloat(overtimeHours).Round(2),
		OvertimePay:     overtimePay,
		Bonus:           bonus,
		UnpaidLeaveDays: unpaidDays,
		NetSalary:       net,
		Status:          payroll.StatusDraft,
	}, nil
}

// Generate implements payroll.PayrollService.
func (p *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if emp.BaseSalary.IsZero() {
		return payroll.PayrollRecordResponse{}, payroll.ErrEmployeeHasNoBaseSalary
	}

	cfg := payroll.DefaultSalaryConfig()
	if req.Config != nil {
		cfg = *req.Config
	}

	start, _ := validator.IsValidDate(req.PeriodStart)
	end, _ := validator.IsValidDate(req.PeriodEnd)

	record, err := p.computeRecord(ctx, emp, start, end, req.Bonus, cfg)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	created, err := p.PayrollRepository.CreateIfNoOverlap(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return toPayrollRecordResponse(created), nil
}

// Approve implements payroll.PayrollService.
func (p *PayrollServiceImpl) Approve(ctx context.Context, recordID, approverID string) (payroll.PayrollRecordResponse, error) {
	now := time.Now().UTC()
	err := p.PayrollRepository.TransitionStatus(ctx, recordID,
		payroll.StatusDraft, payroll.StatusApproved,
		payroll.StatusUpdate{ApprovedBy: &approverID, ApprovedAt: &now},
	)
	if err != nil {
		return payroll.PayrollRecordResponse{}, p.disambiguateTransitionErr(ctx, recordID, err)
	}

	return p.Get(ctx, recordID)
}

// MarkPaid implements payroll.PayrollService.
func (p *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	paidAt := req.PaidAtTime()
	err := p.PayrollRepository.TransitionStatus(ctx, req.RecordID,
		payroll.StatusApproved, payroll.StatusPaid,
		payroll.StatusUpdate{PaidAt: &paidAt},
	)
	if err != nil {
		return payroll.PayrollRecordResponse{}, p.disambiguateTransitionErr(ctx, req.RecordID, err)
	}

	return p.Get(ctx, req.RecordID)
}

// disambiguateTransitionErr separates "record does not exist" from
// "record exists in the wrong state": the conditional UPDATE reports both
// as zero rows affected.
func (p *PayrollServiceImpl) disambiguateTransitionErr(ctx context.Context, recordID string, err error) error {
	if !errors.Is(err, payroll.ErrInvalidTransition) {
		return err
	}
	if _, getErr := p.PayrollRepository.GetByID(ctx, recordID); getErr != nil {
		return getErr
	}
	return err
}

// CreateAdjustment implements payroll.PayrollService. The adjustment
// recomputes the original period from current attendance and leave data,
// starts over in DRAFT, and references the superseded record.
func (p *PayrollServiceImpl) CreateAdjustment(ctx context.Context, req payroll.AdjustPayrollRequest) (payroll.PayrollRecordResponse, error) {
	original, err := p.PayrollRepository.GetByID(ctx, req.OriginalID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if original.Status != payroll.StatusPaid {
		return payroll.PayrollRecordResponse{}, payroll.ErrRecordNotPaid
	}
	if req.Bonus.IsNegative() {
		return payroll.PayrollRecordResponse{}, validator.ValidationErrors{{
			Field:   "bonus",
			Message: "bonus must not be negative",
		}}
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, original.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := p.computeRecord(ctx, emp, original.PeriodStart, original.PeriodEnd, req.Bonus, payroll.DefaultSalaryConfig())
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	record.AdjustmentOf = &original.ID

	created, err := p.PayrollRepository.CreateAdjustment(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return toPayrollRecordResponse(created), nil
}

// Get implements payroll.PayrollService.
func (p *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := p.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toPayrollRecordResponse(record), nil
}

// List implements payroll.PayrollService.
func (p *PayrollServiceImpl) List(ctx context.Context, filter payroll.Filter) (payroll.ListPayrollRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := p.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toPayrollRecordResponse(rec))
	}

	return payroll.ListPayrollRecordResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func toPayrollRecordResponse(rec payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paidAt *string
	if rec.PaidAt != nil {
		s := rec.PaidAt.UTC().Format(time.RFC3339)
		paidAt = &s
	}

	return payroll.PayrollRecordResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		PeriodStart: rec.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   rec.PeriodEnd.Format("2006-01-02"),
		BasicSalary: rec.BasicSalary,
		Allowances: payroll.AllowancesResponse{
			Housing:   rec.Allowances.Housing,
			Transport: rec.Allowances.Transport,
			Medical:   rec.Allowances.Medical,
		},
		GrossSalary: rec.GrossSalary,
		Deductions: payroll.DeductionsResponse{
			IncomeTax:       rec.Deductions.IncomeTax,
			SocialSecurity:  rec.Deductions.SocialSecurity,
			HealthInsurance: rec.Deductions.HealthInsurance,
		},
		TotalDeductions: rec.TotalDeductions,
		WorkedHours:     rec.WorkedHours,
		OvertimeHours:   rec.OvertimeHours,
		OvertimePay:     rec.OvertimePay,
		Bonus:           rec.Bonus,
		UnpaidLeaveDays: rec.UnpaidLeaveDays,
		NetSalary:       rec.NetSalary,
		Status:          string(rec.Status),
		AdjustmentOf:    rec.AdjustmentOf,
		PaidAt:          paidAt,
	}
}
