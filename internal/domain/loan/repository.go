package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type LoanRepository interface {
	Create(ctx context.Context, l Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	List(ctx context.Context, filter LoanFilter) ([]Loan, error)
	ListApprovedByEmployee(ctx context.Context, employeeID string) ([]Loan, error)
	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) error

	// RecordPayment adds amount to total_paid and subtracts it from
	// remaining_balance, marking the loan paid when the balance hits zero.
	RecordPayment(ctx context.Context, id string, amount decimal.Decimal) error
}

type LoanService interface {
	Apply(ctx context.Context, req ApplyLoanRequest) (LoanResponse, error)
	Get(ctx context.Context, id string) (LoanResponse, error)
	List(ctx context.Context, filter LoanFilter) ([]LoanResponse, error)
	ListMyLoans(ctx context.Context) ([]LoanResponse, error)
	Approve(ctx context.Context, id string) (LoanResponse, error)
	Reject(ctx context.Context, req RejectLoanRequest) (LoanResponse, error)
}
