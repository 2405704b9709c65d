package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/domain/loan"
	"github.com/tala-hr/payroll-backend-go/internal/domain/payroll"
)

type stubSalaryRepo struct {
	payroll.SalaryComponentRepository
	saved map[string]payroll.SalaryComponent
}

func (r *stubSalaryRepo) GetByEmployeeAndPeriod(_ context.Context, employeeID, _ string) (payroll.SalaryComponent, error) {
	sc, ok := r.saved[employeeID]
	if !ok {
		return payroll.SalaryComponent{}, payroll.ErrSalaryComponentNotFound
	}
	return sc, nil
}

type stubLoanRepo struct {
	loan.LoanRepository
	payments map[string]decimal.Decimal
}

func (r *stubLoanRepo) RecordPayment(_ context.Context, id string, amount decimal.Decimal) error {
	r.payments[id] = r.payments[id].Add(amount)
	return nil
}

func companyLoan(id string) []loan.Loan {
	return []loan.Loan{{
		ID:               id,
		Variant:          loan.VariantCompany,
		Status:           loan.StatusApproved,
		Amortization:     dec("500"),
		RemainingBalance: dec("3000"),
	}}
}

func TestSettleLoanPaymentsOncePerEmployeePeriod(t *testing.T) {
	ctx := context.Background()
	period := firstHalfPeriod()

	salaryRepo := &stubSalaryRepo{saved: map[string]payroll.SalaryComponent{}}
	loanRepo := &stubLoanRepo{payments: map[string]decimal.Decimal{}}
	svc := &PayrollServiceImpl{salaryRepo: salaryRepo, loanRepo: loanRepo}

	// First run covers only employee A.
	require.NoError(t, svc.settleLoanPayments(ctx, "emp-a", companyLoan("loan-a"), period))
	salaryRepo.saved["emp-a"] = payroll.SalaryComponent{EmployeeID: "emp-a", PeriodID: period.ID}
	assert.True(t, loanRepo.payments["loan-a"].Equal(dec("500")))

	// Regenerating A leaves the balance alone.
	require.NoError(t, svc.settleLoanPayments(ctx, "emp-a", companyLoan("loan-a"), period))
	assert.True(t, loanRepo.payments["loan-a"].Equal(dec("500")))

	// A later run that reaches B for the first time still posts B's payment,
	// even though A's run already happened.
	require.NoError(t, svc.settleLoanPayments(ctx, "emp-b", companyLoan("loan-b"), period))
	salaryRepo.saved["emp-b"] = payroll.SalaryComponent{EmployeeID: "emp-b", PeriodID: period.ID}
	assert.True(t, loanRepo.payments["loan-b"].Equal(dec("500")))

	// And B settles only once too.
	require.NoError(t, svc.settleLoanPayments(ctx, "emp-b", companyLoan("loan-b"), period))
	assert.True(t, loanRepo.payments["loan-b"].Equal(dec("500")))
}

func TestSettleLoanPaymentsSkipsOffScheduleLoans(t *testing.T) {
	ctx := context.Background()
	secondHalf := contribution.SecondHalf

	salaryRepo := &stubSalaryRepo{saved: map[string]payroll.SalaryComponent{}}
	loanRepo := &stubLoanRepo{payments: map[string]decimal.Decimal{}}
	svc := &PayrollServiceImpl{salaryRepo: salaryRepo, loanRepo: loanRepo}

	loans := []loan.Loan{{
		ID:               "loan-gov",
		Variant:          loan.VariantGovernment,
		Status:           loan.StatusApproved,
		Amortization:     dec("750"),
		RemainingBalance: dec("7500"),
		MonthlySchedule:  &secondHalf,
	}}

	require.NoError(t, svc.settleLoanPayments(ctx, "emp-a", loans, firstHalfPeriod()))
	assert.Empty(t, loanRepo.payments)

	require.NoError(t, svc.settleLoanPayments(ctx, "emp-a", loans, secondHalfPeriod()))
	assert.True(t, loanRepo.payments["loan-gov"].Equal(dec("750")))
}
