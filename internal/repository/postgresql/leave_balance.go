package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/leave"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

// Ensure implements leave.LeaveBalanceRepository. ON CONFLICT DO NOTHING
// keeps an existing row's consumed_days intact.
func (l *leaveBalanceRepository) Ensure(ctx context.Context, employeeID, leaveTypeID string, year, entitledDays int) error {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, leave_type_id, year, entitled_days, consumed_days,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, 0, NOW(), NOW()
		)
		ON CONFLICT (employee_id, leave_type_id, year) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, employeeID, leaveTypeID, year, entitledDays); err != nil {
		return fmt.Errorf("failed to ensure leave balance: %w", err)
	}

	return nil
}

// Get implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type_id, year, entitled_days, consumed_days,
			   created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.EntitledDays, &b.ConsumedDays,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

// Debit implements leave.LeaveBalanceRepository. The entitlement guard is
// part of the UPDATE's WHERE clause, so two concurrent debits racing for
// the last remaining days cannot both succeed.
func (l *leaveBalanceRepository) Debit(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_balances
		SET consumed_days = consumed_days + $4, updated_at = NOW()
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
		  AND consumed_days + $4 <= entitled_days
	`

	commandTag, err := q.Exec(ctx, query, employeeID, leaveTypeID, year, days)
	if err != nil {
		return fmt.Errorf("failed to debit leave balance: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrInsufficientBalance
	}

	return nil
}

// Credit implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) Credit(ctx context.Context, employeeID, leaveTypeID string, year, days int) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_balances
		SET consumed_days = GREATEST(consumed_days - $4, 0), updated_at = NOW()
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
	`

	commandTag, err := q.Exec(ctx, query, employeeID, leaveTypeID, year, days)
	if err != nil {
		return fmt.Errorf("failed to credit leave balance: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveBalanceNotFound
	}

	return nil
}
