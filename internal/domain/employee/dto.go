package employee

import (
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName    string          `json:"full_name"`
	Position    string          `json:"position"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	RatePerDay  decimal.Decimal `json:"rate_per_day"`
	HireDate    string          `json:"hire_date"`

	SSSContribution        decimal.Decimal `json:"sss_contribution"`
	PhilHealthContribution decimal.Decimal `json:"philhealth_contribution"`
	PagIbigContribution    decimal.Decimal `json:"pagibig_contribution"`
	IncomeTax              decimal.Decimal `json:"income_tax"`

	SSSSchedule        string `json:"sss_schedule"`
	PhilHealthSchedule string `json:"philhealth_schedule"`
	PagIbigSchedule    string `json:"pagibig_schedule"`
	IncomeTaxSchedule  string `json:"income_tax_schedule"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.RatePerDay.IsNegative() || r.RatePerDay.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "rate_per_day", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must be a valid PH mobile number"})
	}
	for field, schedule := range map[string]string{
		"sss_schedule":        r.SSSSchedule,
		"philhealth_schedule": r.PhilHealthSchedule,
		"pagibig_schedule":    r.PagIbigSchedule,
		"income_tax_schedule": r.IncomeTaxSchedule,
	} {
		if !contribution.HalfMonth(schedule).Valid() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be '1st half' or '2nd half'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	FullName    *string          `json:"full_name,omitempty"`
	Position    *string          `json:"position,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	RatePerDay  *decimal.Decimal `json:"rate_per_day,omitempty"`
	Status      *string          `json:"status,omitempty"`

	SSSContribution        *decimal.Decimal `json:"sss_contribution,omitempty"`
	PhilHealthContribution *decimal.Decimal `json:"philhealth_contribution,omitempty"`
	PagIbigContribution    *decimal.Decimal `json:"pagibig_contribution,omitempty"`
	IncomeTax              *decimal.Decimal `json:"income_tax,omitempty"`

	SSSSchedule        *string `json:"sss_schedule,omitempty"`
	PhilHealthSchedule *string `json:"philhealth_schedule,omitempty"`
	PagIbigSchedule    *string `json:"pagibig_schedule,omitempty"`
	IncomeTaxSchedule  *string `json:"income_tax_schedule,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RatePerDay != nil && !r.RatePerDay.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "rate_per_day", Message: "must be positive"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must be a valid PH mobile number"})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}
	for field, schedule := range map[string]*string{
		"sss_schedule":        r.SSSSchedule,
		"philhealth_schedule": r.PhilHealthSchedule,
		"pagibig_schedule":    r.PagIbigSchedule,
		"income_tax_schedule": r.IncomeTaxSchedule,
	} {
		if schedule != nil && !contribution.HalfMonth(*schedule).Valid() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be '1st half' or '2nd half'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Position    string          `json:"position"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	RatePerDay  decimal.Decimal `json:"rate_per_day"`
	Status      string          `json:"status"`
	HireDate    string          `json:"hire_date"`

	SSSContribution        decimal.Decimal `json:"sss_contribution"`
	PhilHealthContribution decimal.Decimal `json:"philhealth_contribution"`
	PagIbigContribution    decimal.Decimal `json:"pagibig_contribution"`
	IncomeTax              decimal.Decimal `json:"income_tax"`

	SSSSchedule        string `json:"sss_schedule"`
	PhilHealthSchedule string `json:"philhealth_schedule"`
	PagIbigSchedule    string `json:"pagibig_schedule"`
	IncomeTaxSchedule  string `json:"income_tax_schedule"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}

type EmployeeFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}
