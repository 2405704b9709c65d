package attendance

import (
	"github.com/tala-hr/payroll-backend-go/internal/pkg/validator"
)

type TimeInRequest struct {
	Type string `json:"type,omitempty"`
}

func (r *TimeInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != "" && r.Type != string(TypeRegular) && r.Type != string(TypeHoliday) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'regular' or 'holiday'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CorrectAttendanceRequest struct {
	ID      string  `json:"-"`
	TimeIn  *string `json:"time_in,omitempty"`
	TimeOut *string `json:"time_out,omitempty"`
	Status  *string `json:"status,omitempty"`
}

func (r *CorrectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TimeIn != nil {
		if _, ok := validator.IsValidDateTime(*r.TimeIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.TimeOut != nil {
		if _, ok := validator.IsValidDateTime(*r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  string   `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	TimeIn        string   `json:"time_in"`
	TimeOut       *string  `json:"time_out,omitempty"`
	Type          string   `json:"type"`
	Status        string   `json:"status"`
	WorkedHours   *float64 `json:"worked_hours,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	IsLate        *bool    `json:"is_late,omitempty"`
	IsUndertime   *bool    `json:"is_undertime,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
	Page       int
	Limit      int
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}
