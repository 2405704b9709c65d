package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePeriodStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdatePeriodStatusRequest) Validate() error {
	switch PeriodStatus(r.Status) {
	case PeriodStatusDraft, PeriodStatusProcessing, PeriodStatusCompleted:
		return nil
	}
	return validator.ValidationErrors{{Field: "status", Message: "must be 'draft', 'processing' or 'completed'"}}
}

type PeriodResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Half      string `json:"half"`
}

type GeneratePayrollRequest struct {
	PeriodID    string   `json:"period_id"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	if validator.IsEmpty(r.PeriodID) {
		return validator.ValidationErrors{{Field: "period_id", Message: "is required"}}
	}
	return nil
}

type SalaryComponentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Position     string `json:"position,omitempty"`
	PeriodID     string `json:"period_id"`

	BasicPay               decimal.Decimal `json:"basic_pay"`
	Overtime               decimal.Decimal `json:"overtime"`
	HolidayPay             decimal.Decimal `json:"holiday_pay"`
	Allowance              decimal.Decimal `json:"allowance"`
	AdditionalCompensation decimal.Decimal `json:"additional_compensation"`

	Contributions    GovernmentContributions `json:"government_contributions"`
	LoanAmortization decimal.Decimal         `json:"loan_amortization"`
	Deductions       []DeductionLine         `json:"deductions"`

	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

type PayslipResponse struct {
	Period PeriodResponse          `json:"period"`
	Salary SalaryComponentResponse `json:"salary"`
}
