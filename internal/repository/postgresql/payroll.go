package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/payroll"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollInsertColumns = `
	id, employee_id, period_start, period_end,
	basic_salary, housing_allowance, transport_allowance, medical_allowance,
	gross_salary,
	income_tax, social_security, health_insurance, total_deductions,
	worked_hours, overtime_hours, overtime_pay, bonus, unpaid_leave_days,
	net_salary, status, adjustment_of, created_at, updated_at
`

const payrollSelectColumns = `
	id, employee_id, period_start, period_end,
	basic_salary, housing_allowance, transport_allowance, medical_allowance,
	gross_salary,
	income_tax, social_security, health_insurance, total_deductions,
	worked_hours, overtime_hours, overtime_pay, bonus, unpaid_leave_days,
	net_salary, status, adjustment_of, approved_by, approved_at, paid_at,
	created_at, updated_at
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.BasicSalary, &rec.Allowances.Housing, &rec.Allowances.Transport, &rec.Allowances.Medical,
		&rec.GrossSalary,
		&rec.Deductions.IncomeTax, &rec.Deductions.SocialSecurity, &rec.Deductions.HealthInsurance, &rec.TotalDeductions,
		&rec.WorkedHours, &rec.OvertimeHours, &rec.OvertimePay, &rec.Bonus, &rec.UnpaidLeaveDays,
		&rec.NetSalary, &rec.Status, &rec.AdjustmentOf, &rec.ApprovedBy, &rec.ApprovedAt, &rec.PaidAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// CreateIfNoOverlap implements payroll.PayrollRepository. The period guard
// only considers non-adjustment records; the insert and the guard run as
// one statement so concurrent generations for intersecting periods cannot
// both land.
func (p *payrollRepository) CreateIfNoOverlap(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := fmt.Sprintf(`
		INSERT INTO payroll_records (%s)
		SELECT uuidv7(), $1, $2, $3,
			   $4, $5, $6, $7,
			   $8,
			   $9, $10, $11, $12,
			   $13, $14, $15, $16, $17,
			   $18, $19, NULL, NOW(), NOW()
		WHERE NOT EXISTS (
			SELECT 1 FROM payroll_records pr
			WHERE pr.employee_id = $1
			  AND pr.adjustment_of IS NULL
			  AND pr.period_start <= $3
			  AND pr.period_end >= $2
		)
		RETURNING id, created_at, updated_at
	`, payrollInsertColumns)

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodStart, record.PeriodEnd,
		record.BasicSalary, record.Allowances.Housing, record.Allowances.Transport, record.Allowances.Medical,
		record.GrossSalary,
		record.Deductions.IncomeTax, record.Deductions.SocialSecurity, record.Deductions.HealthInsurance, record.TotalDeductions,
		record.WorkedHours, record.OvertimeHours, record.OvertimePay, record.Bonus, record.UnpaidLeaveDays,
		record.NetSalary, record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrDuplicatePeriod
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return payroll.PayrollRecord{}, payroll.ErrDuplicatePeriod
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// CreateAdjustment implements payroll.PayrollRepository.
func (p *payrollRepository) CreateAdjustment(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := fmt.Sprintf(`
		INSERT INTO payroll_records (%s)
		VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			$8,
			$9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`, payrollInsertColumns)

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodStart, record.PeriodEnd,
		record.BasicSalary, record.Allowances.Housing, record.Allowances.Transport, record.Allowances.Medical,
		record.GrossSalary,
		record.Deductions.IncomeTax, record.Deductions.SocialSecurity, record.Deductions.HealthInsurance, record.TotalDeductions,
		record.WorkedHours, record.OvertimeHours, record.OvertimePay, record.Bonus, record.UnpaidLeaveDays,
		record.NetSalary, record.Status, record.AdjustmentOf,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll adjustment: %w", err)
	}

	return record, nil
}

// GetByID implements payroll.PayrollRepository.
func (p *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := fmt.Sprintf(`SELECT %s FROM payroll_records WHERE id = $1`, payrollSelectColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// TransitionStatus implements payroll.PayrollRepository.
func (p *payrollRepository) TransitionStatus(ctx context.Context, id string, from, to payroll.Status, update payroll.StatusUpdate) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_records
		SET status = $3,
			approved_by = COALESCE($4, approved_by),
			approved_at = COALESCE($5, approved_at),
			paid_at = COALESCE($6, paid_at),
			updated_at = NOW()
		WHERE id = $1
		  AND status = $2
	`

	commandTag, err := q.Exec(ctx, query, id, from, to, update.ApprovedBy, update.ApprovedAt, update.PaidAt)
	if err != nil {
		return fmt.Errorf("failed to transition payroll record: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return payroll.ErrInvalidTransition
	}

	return nil
}

// List implements payroll.PayrollRepository.
func (p *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, p.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("period_end >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("period_start <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payroll_records %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records
		%s
		ORDER BY period_start DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, payrollSelectColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}
