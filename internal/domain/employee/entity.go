package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

type Employee struct {
	ID          string
	UserID      *string
	FullName    string
	Position    string
	PhoneNumber *string

	// RatePerDay is the daily rate for an 8-hour day.
	RatePerDay decimal.Decimal

	// Fixed statutory contribution amounts deducted per payroll half.
	SSSContribution        decimal.Decimal
	PhilHealthContribution decimal.Decimal
	PagIbigContribution    decimal.Decimal
	IncomeTax              decimal.Decimal

	// Which half of the month each deduction applies to. Independent per
	// program: an employee may have SSS on the 1st half and Pag-IBIG on
	// the 2nd half at the same time.
	SSSSchedule        contribution.HalfMonth
	PhilHealthSchedule contribution.HalfMonth
	PagIbigSchedule    contribution.HalfMonth
	IncomeTaxSchedule  contribution.HalfMonth

	Status    EmploymentStatus
	HireDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContributionAmounts folds the four fixed amounts into a kind-keyed map so
// payroll gating is a single loop instead of four if-blocks.
func (e *Employee) ContributionAmounts() map[contribution.Kind]decimal.Decimal {
	return map[contribution.Kind]decimal.Decimal{
		contribution.KindSSS:        e.SSSContribution,
		contribution.KindPhilHealth: e.PhilHealthContribution,
		contribution.KindPagIbig:    e.PagIbigContribution,
		contribution.KindTax:        e.IncomeTax,
	}
}

// DeductionSchedules folds the four schedule flags into a kind-keyed map.
func (e *Employee) DeductionSchedules() map[contribution.Kind]contribution.HalfMonth {
	return map[contribution.Kind]contribution.HalfMonth{
		contribution.KindSSS:        e.SSSSchedule,
		contribution.KindPhilHealth: e.PhilHealthSchedule,
		contribution.KindPagIbig:    e.PagIbigSchedule,
		contribution.KindTax:        e.IncomeTaxSchedule,
	}
}
