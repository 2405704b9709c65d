package payroll

import (
	"context"
	"time"
)

type PeriodRepository interface {
	// Create inserts the period unless its range intersects an existing
	// period. On overlap it returns the zero Period and ErrPeriodOverlap;
	// the service treats overlap as a silent no-op.
	Create(ctx context.Context, p Period) (Period, error)
	GetByID(ctx context.Context, id string) (Period, error)
	List(ctx context.Context) ([]Period, error)
	FindCovering(ctx context.Context, date time.Time) (Period, error)
	UpdateStatus(ctx context.Context, id string, status PeriodStatus) error
}

type SalaryComponentRepository interface {
	// Upsert inserts or overwrites the component for (employee, period).
	Upsert(ctx context.Context, sc SalaryComponent) (SalaryComponent, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (SalaryComponent, error)
	ListByPeriod(ctx context.Context, periodID string) ([]SalaryComponent, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryComponent, error)
}

type PayrollService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (*PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)
	UpdatePeriodStatus(ctx context.Context, req UpdatePeriodStatusRequest) (PeriodResponse, error)
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) ([]SalaryComponentResponse, error)
	GetPayslip(ctx context.Context, employeeID, periodID string) (PayslipResponse, error)
	GetMyPayslip(ctx context.Context, periodID string) (PayslipResponse, error)
	ListPeriodComponents(ctx context.Context, periodID string) ([]SalaryComponentResponse, error)
}
