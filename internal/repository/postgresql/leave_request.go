package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/domain/leave"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// CreateIfNoOverlap implements leave.LeaveRequestRepository. The overlap
// guard lives in the same INSERT ... SELECT statement; a racing writer
// that slips past it is caught by the exclusion constraint on
// (employee_id, daterange(start_date, end_date, '[]')) over APPLIED and
// APPROVED rows, which surfaces here as a 23P01.
func (l *leaveRequestRepository) CreateIfNoOverlap(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, start_date, end_date, leave_days,
			status, reason, applied_at, created_at, updated_at
		)
		SELECT uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW(), NOW()
		WHERE NOT EXISTS (
			SELECT 1 FROM leave_requests lr
			WHERE lr.employee_id = $1
			  AND lr.status IN ('APPLIED', 'APPROVED')
			  AND lr.start_date <= $4
			  AND lr.end_date >= $3
		)
		RETURNING id, applied_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID, request.StartDate, request.EndDate,
		request.LeaveDays, request.Status, request.Reason,
	).Scan(&request.ID, &request.AppliedAt, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrOverlappingRequest
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return leave.LeaveRequest{}, leave.ErrOverlappingRequest
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.leave_days, lr.status, lr.reason, lr.applied_at,
			   lr.decided_by, lr.decided_at, lr.decision_notes,
			   lr.cancelled_by, lr.cancelled_at,
			   lr.created_at, lr.updated_at, lt.name
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
		&req.LeaveDays, &req.Status, &req.Reason, &req.AppliedAt,
		&req.DecidedBy, &req.DecidedAt, &req.DecisionNotes,
		&req.CancelledBy, &req.CancelledAt,
		&req.CreatedAt, &req.UpdatedAt, &req.LeaveTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// TransitionStatus implements leave.LeaveRequestRepository. The expected
// current status is part of the WHERE clause; a lost race surfaces as zero
// rows affected rather than a silently overwritten decision.
func (l *leaveRequestRepository) TransitionStatus(ctx context.Context, id string, from, to leave.RequestStatus, update leave.StatusUpdate) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $3,
			decided_by = COALESCE($4, decided_by),
			decided_at = COALESCE($5, decided_at),
			decision_notes = COALESCE($6, decision_notes),
			cancelled_by = COALESCE($7, cancelled_by),
			cancelled_at = COALESCE($8, cancelled_at),
			updated_at = NOW()
		WHERE id = $1
		  AND status = $2
	`

	commandTag, err := q.Exec(ctx, query, id, from, to,
		update.DecidedBy, update.DecidedAt, update.DecisionNotes,
		update.CancelledBy, update.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to transition leave request: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrInvalidTransition
	}

	return nil
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, l.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.LeaveTypeID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.leave_type_id = $%d", argIdx))
		args = append(args, *filter.LeaveTypeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM lr.start_date) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leave_requests lr %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.leave_days, lr.status, lr.reason, lr.applied_at,
			   lr.decided_by, lr.decided_at, lr.decision_notes,
			   lr.cancelled_by, lr.cancelled_at,
			   lr.created_at, lr.updated_at, lt.name
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		%s
		ORDER BY lr.applied_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
			&req.LeaveDays, &req.Status, &req.Reason, &req.AppliedAt,
			&req.DecidedBy, &req.DecidedAt, &req.DecisionNotes,
			&req.CancelledBy, &req.CancelledAt,
			&req.CreatedAt, &req.UpdatedAt, &req.LeaveTypeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

// ListApprovedInPeriod implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListApprovedInPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]leave.ApprovedLeave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.start_date, lr.end_date, lr.leave_days, lt.is_paid
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.employee_id = $1
		  AND lr.status = 'APPROVED'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	defer rows.Close()

	var approved []leave.ApprovedLeave
	for rows.Next() {
		var al leave.ApprovedLeave
		if err := rows.Scan(&al.RequestID, &al.StartDate, &al.EndDate, &al.LeaveDays, &al.IsPaid); err != nil {
			return nil, fmt.Errorf("failed to scan approved leave: %w", err)
		}
		approved = append(approved, al)
	}

	return approved, rows.Err()
}
