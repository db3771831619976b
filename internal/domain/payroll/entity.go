package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. Transitions are forward-only: DRAFT -> APPROVED -> PAID.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusApproved Status = "APPROVED"
	StatusPaid     Status = "PAID"
)

// CanTransitionTo enumerates the payroll record state machine.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusApproved
	case StatusApproved:
		return next == StatusPaid
	default:
		return false
	}
}

// AllowanceBreakdown - fixed allowance components computed from basic salary.
type AllowanceBreakdown struct {
	Housing   decimal.Decimal
	Transport decimal.Decimal
	Medical   decimal.Decimal
}

func (a AllowanceBreakdown) Total() decimal.Decimal {
	return a.Housing.Add(a.Transport).Add(a.Medical)
}

// DeductionBreakdown - statutory deduction components computed from gross.
type DeductionBreakdown struct {
	IncomeTax       decimal.Decimal
	SocialSecurity  decimal.Decimal
	HealthInsurance decimal.Decimal
}

func (d DeductionBreakdown) Total() decimal.Decimal {
	return d.IncomeTax.Add(d.SocialSecurity).Add(d.HealthInsurance)
}

// PayrollRecord - one payslip per employee per pay period. At most one
// non-adjustment record may exist per employee per overlapping period.
// Invariant: NetSalary = GrossSalary + OvertimePay + Bonus - TotalDeductions.
type PayrollRecord struct {
	ID         string
	EmployeeID string

	PeriodStart time.Time
	PeriodEnd   time.Time

	BasicSalary decimal.Decimal
	Allowances  AllowanceBreakdown
	GrossSalary decimal.Decimal

	Deductions      DeductionBreakdown
	TotalDeductions decimal.Decimal

	WorkedHours   decimal.Decimal
	OvertimeHours decimal.Decimal
	OvertimePay   decimal.Decimal
	Bonus         decimal.Decimal

	UnpaidLeaveDays int

	NetSalary decimal.Decimal

	Status Status

	// AdjustmentOf references the superseded record when this record was
	// created to correct an already-PAID period.
	AdjustmentOf *string

	ApprovedBy *string
	ApprovedAt *time.Time
	PaidAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SalaryConfig - admin-managed computation rates. Rates are configuration
// inputs; no jurisdiction-specific tax logic is derived here.
type SalaryConfig struct {
	// BasicShare is the fraction of gross-equivalent pay that is basic
	// salary (the remainder is covered by allowances).
	BasicShare decimal.Decimal

	// Allowance rates applied to the period's basic salary.
	HousingRate   decimal.Decimal
	TransportRate decimal.Decimal
	MedicalRate   decimal.Decimal

	// Deduction rates applied to the period's gross salary.
	IncomeTaxRate       decimal.Decimal
	SocialSecurityRate  decimal.Decimal
	HealthInsuranceRate decimal.Decimal

	OvertimeMultiplier decimal.Decimal
	StandardDailyHours decimal.Decimal
	WorkingDaysPerYear int
}

// DefaultSalaryConfig mirrors the rates the payroll data was seeded with:
// basic is 80% of gross, allowances 10/5/5% of gross (12.5/6.25/6.25% of
// basic), deductions 10/6/3% of gross, overtime at 1.5x over an 8-hour day.
func DefaultSalaryConfig() SalaryConfig {
	return SalaryConfig{
		BasicShare:          decimal.NewFromFloat(0.8),
		HousingRate:         decimal.NewFromFloat(0.125),
		TransportRate:       decimal.NewFromFloat(0.0625),
		MedicalRate:         decimal.NewFromFloat(0.0625),
		IncomeTaxRate:       decimal.NewFromFloat(0.10),
		SocialSecurityRate:  decimal.NewFromFloat(0.06),
		HealthInsuranceRate: decimal.NewFromFloat(0.03),
		OvertimeMultiplier:  decimal.NewFromFloat(1.5),
		StandardDailyHours:  decimal.NewFromInt(8),
		WorkingDaysPerYear:  260,
	}
}
