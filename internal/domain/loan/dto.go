package loan

import (
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/validator"
)

type ApplyLoanRequest struct {
	EmployeeID      string          `json:"employee_id,omitempty"`
	Variant         string          `json:"variant"`
	Amount          decimal.Decimal `json:"amount"`
	Amortization    decimal.Decimal `json:"amortization"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	MonthlySchedule *string         `json:"monthly_schedule,omitempty"`
}

func (r *ApplyLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Variant != string(VariantCompany) && r.Variant != string(VariantGovernment) {
		errs = append(errs, validator.ValidationError{Field: "variant", Message: "must be 'company' or 'government'"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !r.Amortization.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amortization", Message: "must be positive"})
	}
	if r.TotalAmount.LessThan(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must not be less than amount"})
	}
	if r.Variant == string(VariantGovernment) {
		if r.MonthlySchedule == nil {
			errs = append(errs, validator.ValidationError{Field: "monthly_schedule", Message: "is required for government loans"})
		} else if !contribution.HalfMonth(*r.MonthlySchedule).Valid() {
			errs = append(errs, validator.ValidationError{Field: "monthly_schedule", Message: "must be '1st half' or '2nd half'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLoanRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectLoanRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{Field: "reason", Message: "is required"}}
	}
	return nil
}

type LoanResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	Variant          string          `json:"variant"`
	Amount           decimal.Decimal `json:"amount"`
	Amortization     decimal.Decimal `json:"amortization"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           string          `json:"status"`
	RejectionReason  *string         `json:"rejection_reason,omitempty"`
	MonthlySchedule  *string         `json:"monthly_schedule,omitempty"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

type LoanFilter struct {
	EmployeeID string
	Status     string
	Variant    string
}
