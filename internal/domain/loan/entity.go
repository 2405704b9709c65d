package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

type Variant string

const (
	VariantCompany    Variant = "company"
	VariantGovernment Variant = "government"
)

// Loan is a company cash advance or a government loan (SSS/Pag-IBIG salary
// loan). Government loans carry a MonthlySchedule deciding which payroll half
// the amortization is deducted on; company loans amortize every half.
type Loan struct {
	ID         string
	EmployeeID string
	Variant    Variant

	Amount       decimal.Decimal
	Amortization decimal.Decimal
	TotalAmount  decimal.Decimal

	Status          Status
	RejectionReason *string

	MonthlySchedule *contribution.HalfMonth

	TotalPaid        decimal.Decimal
	RemainingBalance decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// AmortizationDue returns the deduction for the given payroll half: zero when
// the loan is not approved, fully paid, or scheduled for the other half.
func (l *Loan) AmortizationDue(half contribution.HalfMonth) decimal.Decimal {
	if l.Status != StatusApproved {
		return decimal.Zero
	}
	if l.RemainingBalance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if l.Variant == VariantGovernment && l.MonthlySchedule != nil && *l.MonthlySchedule != half {
		return decimal.Zero
	}
	if l.RemainingBalance.LessThan(l.Amortization) {
		return l.RemainingBalance
	}
	return l.Amortization
}
