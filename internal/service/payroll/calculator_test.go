package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/domain/employee"
	"github.com/tala-hr/payroll-backend-go/internal/domain/loan"
	"github.com/tala-hr/payroll-backend-go/internal/domain/payroll"
)

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:                     "emp-1",
		FullName:               "Maria Santos",
		RatePerDay:             dec("1000"),
		SSSContribution:        dec("900"),
		PhilHealthContribution: dec("500"),
		PagIbigContribution:    dec("200"),
		IncomeTax:              dec("1200"),
		SSSSchedule:            contribution.FirstHalf,
		PhilHealthSchedule:     contribution.FirstHalf,
		PagIbigSchedule:        contribution.SecondHalf,
		IncomeTaxSchedule:      contribution.SecondHalf,
	}
}

func firstHalfPeriod() payroll.Period {
	return payroll.Period{
		ID:        "per-1",
		StartDate: date(2024, time.June, 1),
		EndDate:   date(2024, time.June, 15),
	}
}

func secondHalfPeriod() payroll.Period {
	return payroll.Period{
		ID:        "per-2",
		StartDate: date(2024, time.June, 16),
		EndDate:   date(2024, time.June, 30),
	}
}

func baseComponent() payroll.SalaryComponent {
	return payroll.SalaryComponent{
		EmployeeID: "emp-1",
		BasicPay:   dec("11000"),
		Overtime:   dec("500"),
		HolidayPay: dec("1000"),
	}
}

func TestComputeNetPayScheduleGating(t *testing.T) {
	emp := testEmployee()

	t.Run("first half includes sss and philhealth only", func(t *testing.T) {
		sc := ComputeNetPay(emp, baseComponent(), nil, firstHalfPeriod())

		assert.True(t, sc.Contributions.SSS.Equal(dec("900")))
		assert.True(t, sc.Contributions.PhilHealth.Equal(dec("500")))
		assert.True(t, sc.Contributions.PagIbig.IsZero(), "pagibig is a 2nd-half deduction")
		assert.True(t, sc.Contributions.Tax.IsZero())

		assert.True(t, sc.GrossPay.Equal(dec("12500")))
		assert.True(t, sc.TotalDeductions.Equal(dec("1400")))
		assert.True(t, sc.NetPay.Equal(dec("11100")))
	})

	t.Run("second half includes pagibig and tax only", func(t *testing.T) {
		sc := ComputeNetPay(emp, baseComponent(), nil, secondHalfPeriod())

		assert.True(t, sc.Contributions.SSS.IsZero())
		assert.True(t, sc.Contributions.PhilHealth.IsZero())
		assert.True(t, sc.Contributions.PagIbig.Equal(dec("200")))
		assert.True(t, sc.Contributions.Tax.Equal(dec("1200")))

		assert.True(t, sc.NetPay.Equal(dec("11100")))
	})
}

func TestComputeNetPayLoans(t *testing.T) {
	emp := testEmployee()
	secondHalf := contribution.SecondHalf

	loans := []loan.Loan{
		{
			// Company loans amortize every half.
			Variant:          loan.VariantCompany,
			Status:           loan.StatusApproved,
			Amortization:     dec("500"),
			RemainingBalance: dec("3000"),
		},
		{
			// Government loan scheduled for the other half.
			Variant:          loan.VariantGovernment,
			Status:           loan.StatusApproved,
			Amortization:     dec("750"),
			RemainingBalance: dec("7500"),
			MonthlySchedule:  &secondHalf,
		},
		{
			// Pending loans never deduct.
			Variant:          loan.VariantCompany,
			Status:           loan.StatusPending,
			Amortization:     dec("999"),
			RemainingBalance: dec("999"),
		},
	}

	sc := ComputeNetPay(emp, baseComponent(), loans, firstHalfPeriod())
	assert.True(t, sc.LoanAmortization.Equal(dec("500")), "amortization = %s", sc.LoanAmortization)

	sc = ComputeNetPay(emp, baseComponent(), loans, secondHalfPeriod())
	assert.True(t, sc.LoanAmortization.Equal(dec("1250")), "amortization = %s", sc.LoanAmortization)
}

func TestComputeNetPayFinalAmortizationClamped(t *testing.T) {
	emp := testEmployee()
	loans := []loan.Loan{{
		Variant:          loan.VariantCompany,
		Status:           loan.StatusApproved,
		Amortization:     dec("500"),
		RemainingBalance: dec("120"),
	}}

	sc := ComputeNetPay(emp, baseComponent(), loans, firstHalfPeriod())
	assert.True(t, sc.LoanAmortization.Equal(dec("120")))
}

func TestComputeNetPayGenericDeductionsUnconditional(t *testing.T) {
	emp := testEmployee()
	sc := baseComponent()
	sc.Deductions = []payroll.DeductionLine{
		{Name: "late penalty", Amount: dec("150")},
		{Name: "undertime", Amount: dec("75")},
	}

	first := ComputeNetPay(emp, sc, nil, firstHalfPeriod())
	second := ComputeNetPay(emp, sc, nil, secondHalfPeriod())

	// The generic lines apply in both halves regardless of schedules.
	assert.True(t, first.TotalDeductions.Sub(first.Contributions.Total()).Equal(dec("225")))
	assert.True(t, second.TotalDeductions.Sub(second.Contributions.Total()).Equal(dec("225")))
}

func TestComputeNetPayIdempotent(t *testing.T) {
	emp := testEmployee()
	loans := []loan.Loan{{
		Variant:          loan.VariantCompany,
		Status:           loan.StatusApproved,
		Amortization:     dec("500"),
		RemainingBalance: dec("3000"),
	}}

	first := ComputeNetPay(emp, baseComponent(), loans, firstHalfPeriod())
	second := ComputeNetPay(emp, baseComponent(), loans, firstHalfPeriod())

	assert.True(t, first.NetPay.Equal(second.NetPay))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.Equal(t, first.Contributions, second.Contributions)
}

func TestComputeNetPayAllowanceInGross(t *testing.T) {
	emp := testEmployee()
	sc := baseComponent()
	sc.Allowance = dec("800")
	sc.AdditionalCompensation = dec("200")

	out := ComputeNetPay(emp, sc, nil, firstHalfPeriod())
	assert.True(t, out.GrossPay.Equal(dec("13500")), "gross = %s", out.GrossPay)
}
