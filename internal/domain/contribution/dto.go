package contribution

import (
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/pkg/validator"
)

type BracketRequest struct {
	RangeStart   decimal.Decimal `json:"range_start"`
	RangeEnd     decimal.Decimal `json:"range_end"`
	RegularSSEE  decimal.Decimal `json:"regular_ss_ee"`
	RegularSSER  decimal.Decimal `json:"regular_ss_er"`
	ECER         decimal.Decimal `json:"ec_er"`
	WISPEE       decimal.Decimal `json:"wisp_ee"`
	WISPER       decimal.Decimal `json:"wisp_er"`
	EmployeeRate decimal.Decimal `json:"employee_rate"`
	EmployerRate decimal.Decimal `json:"employer_rate"`
}

type CreateTableRequest struct {
	Type          string           `json:"type"`
	Name          string           `json:"name"`
	EffectiveDate string           `json:"effective_date"`
	PremiumRate   decimal.Decimal  `json:"premium_rate"`
	Brackets      []BracketRequest `json:"brackets"`
}

func (r *CreateTableRequest) Validate() error {
	var errs validator.ValidationErrors

	if !TableType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of SSS, PAGIBIG, PHILHEALTH"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
	}
	if r.PremiumRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "premium_rate", Message: "must be non-negative"})
	}
	for i, b := range r.Brackets {
		if b.RangeEnd.LessThan(b.RangeStart) {
			errs = append(errs, validator.ValidationError{
				Field:   "brackets[" + validator.Itoa(i) + "]",
				Message: "range_end must not be less than range_start",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BracketResponse struct {
	RangeStart   decimal.Decimal `json:"range_start"`
	RangeEnd     decimal.Decimal `json:"range_end"`
	RegularSSEE  decimal.Decimal `json:"regular_ss_ee"`
	RegularSSER  decimal.Decimal `json:"regular_ss_er"`
	ECER         decimal.Decimal `json:"ec_er"`
	WISPEE       decimal.Decimal `json:"wisp_ee"`
	WISPER       decimal.Decimal `json:"wisp_er"`
	EmployeeRate decimal.Decimal `json:"employee_rate"`
	EmployerRate decimal.Decimal `json:"employer_rate"`
}

type TableResponse struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Name          string            `json:"name"`
	EffectiveDate string            `json:"effective_date"`
	IsActive      bool              `json:"is_active"`
	PremiumRate   decimal.Decimal   `json:"premium_rate"`
	Brackets      []BracketResponse `json:"brackets"`
}
