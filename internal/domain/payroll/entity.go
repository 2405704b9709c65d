package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
)

type PeriodStatus string

const (
	PeriodStatusDraft      PeriodStatus = "draft"
	PeriodStatusProcessing PeriodStatus = "processing"
	PeriodStatusCompleted  PeriodStatus = "completed"
)

// Period is a payroll date range, inclusive on both ends. Periods must not
// overlap; creating an overlapping period is a silent no-op.
type Period struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Status    PeriodStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Half returns which semi-monthly bucket the period covers, keyed off the
// period's own start date. Gating always uses the period, never the clock, so
// recomputing a historical period is deterministic.
func (p *Period) Half() contribution.HalfMonth {
	if p.StartDate.Day() <= 15 {
		return contribution.FirstHalf
	}
	return contribution.SecondHalf
}

// GovernmentContributions is the statutory deduction snapshot stored on a
// salary component.
type GovernmentContributions struct {
	SSS        decimal.Decimal `json:"sss"`
	PhilHealth decimal.Decimal `json:"philhealth"`
	PagIbig    decimal.Decimal `json:"pagibig"`
	Tax        decimal.Decimal `json:"tax"`
}

func (g GovernmentContributions) Total() decimal.Decimal {
	return g.SSS.Add(g.PhilHealth).Add(g.PagIbig).Add(g.Tax)
}

// DeductionLine is a generic named deduction (late/undertime penalty, etc.),
// applied unconditionally regardless of cutoff schedule.
type DeductionLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SalaryComponent is the computed payroll line for one employee in one
// period. Generated once per (employee, period); regeneration overwrites.
type SalaryComponent struct {
	ID         string
	EmployeeID string
	PeriodID   string

	BasicPay               decimal.Decimal
	Overtime               decimal.Decimal
	HolidayPay             decimal.Decimal
	Allowance              decimal.Decimal
	AdditionalCompensation decimal.Decimal

	Contributions    GovernmentContributions
	LoanAmortization decimal.Decimal
	Deductions       []DeductionLine

	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	Position     *string
}
