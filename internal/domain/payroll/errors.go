package payroll

import "errors"

var (
	ErrPeriodNotFound         = errors.New("payroll period not found")
	ErrPeriodOverlap          = errors.New("payroll period overlaps an existing period")
	ErrPeriodCompleted        = errors.New("payroll period is already completed")
	ErrInvalidPeriodRange     = errors.New("invalid payroll period range")
	ErrSalaryComponentNotFound = errors.New("salary component not found")
	ErrInvalidStatusTransition = errors.New("invalid period status transition")
)
