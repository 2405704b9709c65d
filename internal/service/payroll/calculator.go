package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/domain/employee"
	"github.com/tala-hr/payroll-backend-go/internal/domain/loan"
	"github.com/tala-hr/payroll-backend-go/internal/domain/payroll"
)

// ComputeNetPay fills in the contribution snapshot, loan amortization and
// totals on a salary component. Gating is keyed off the period's own half,
// never the wall clock, so historical periods recompute identically.
//
// Each statutory line is included only when the employee's schedule flag for
// that program matches the period's half. Loan amortizations follow the same
// rule through AmortizationDue. Generic deduction lines apply unconditionally.
func ComputeNetPay(emp *employee.Employee, sc payroll.SalaryComponent, loans []loan.Loan, period payroll.Period) payroll.SalaryComponent {
	half := period.Half()

	amounts := emp.ContributionAmounts()
	schedules := emp.DeductionSchedules()

	gated := make(map[contribution.Kind]decimal.Decimal, len(contribution.Kinds))
	for _, kind := range contribution.Kinds {
		if schedules[kind] == half {
			gated[kind] = amounts[kind]
		} else {
			gated[kind] = decimal.Zero
		}
	}
	sc.Contributions = payroll.GovernmentContributions{
		SSS:        gated[contribution.KindSSS],
		PhilHealth: gated[contribution.KindPhilHealth],
		PagIbig:    gated[contribution.KindPagIbig],
		Tax:        gated[contribution.KindTax],
	}

	sc.LoanAmortization = decimal.Zero
	for i := range loans {
		sc.LoanAmortization = sc.LoanAmortization.Add(loans[i].AmortizationDue(half))
	}

	var otherDeductions decimal.Decimal
	for _, line := range sc.Deductions {
		otherDeductions = otherDeductions.Add(line.Amount)
	}

	sc.GrossPay = sc.BasicPay.
		Add(sc.Overtime).
		Add(sc.HolidayPay).
		Add(sc.Allowance).
		Add(sc.AdditionalCompensation)
	sc.TotalDeductions = sc.Contributions.Total().
		Add(sc.LoanAmortization).
		Add(otherDeductions)
	sc.NetPay = sc.GrossPay.Sub(sc.TotalDeductions)

	return sc
}
