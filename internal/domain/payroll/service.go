package payroll

import "context"

type PayrollService interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollRecordResponse, error)
	Approve(ctx context.Context, recordID, approverID string) (PayrollRecordResponse, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) (PayrollRecordResponse, error)
	CreateAdjustment(ctx context.Context, req AdjustPayrollRequest) (PayrollRecordResponse, error)
	Get(ctx context.Context, id string) (PayrollRecordResponse, error)
	List(ctx context.Context, filter Filter) (ListPayrollRecordResponse, error)
}
