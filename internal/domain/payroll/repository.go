package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// CreateIfNoOverlap inserts the record only when no existing
	// non-adjustment record for the employee overlaps
	// [PeriodStart, PeriodEnd]. The guard and the insert are one atomic
	// statement; returns ErrDuplicatePeriod when blocked.
	CreateIfNoOverlap(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// CreateAdjustment inserts a superseding record without the overlap
	// guard (adjustments deliberately share the original's period).
	CreateAdjustment(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	GetByID(ctx context.Context, id string) (PayrollRecord, error)

	// TransitionStatus updates the status conditionally on the current
	// status matching from; returns ErrInvalidTransition when the record
	// is not in the expected state.
	TransitionStatus(ctx context.Context, id string, from, to Status, update StatusUpdate) error

	List(ctx context.Context, filter Filter) ([]PayrollRecord, int64, error)
}

// StatusUpdate carries the audit fields written alongside a transition.
type StatusUpdate struct {
	ApprovedBy *string
	ApprovedAt *time.Time
	PaidAt     *time.Time
}
