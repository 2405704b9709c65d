package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/tala-hr/payroll-backend-go/internal/domain/employee"
	"github.com/tala-hr/payroll-backend-go/internal/domain/loan"
	"github.com/tala-hr/payroll-backend-go/internal/domain/notification"
	"github.com/tala-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
	"github.com/tala-hr/payroll-backend-go/internal/repository/postgresql"
)

const (
	hoursPerDay        = 8
	overtimeMultiplier = "1.25"
)

type PayrollServiceImpl struct {
	db             *database.DB
	periodRepo     payroll.PeriodRepository
	salaryRepo     payroll.SalaryComponentRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	loanRepo       loan.LoanRepository
	notifier       notification.Service
	logger         *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	periodRepo payroll.PeriodRepository,
	salaryRepo payroll.SalaryComponentRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	loanRepo loan.LoanRepository,
	notifier notification.Service,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		periodRepo:     periodRepo,
		salaryRepo:     salaryRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		loanRepo:       loanRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// CreatePeriod implements payroll.PayrollService. An overlapping range is a
// silent no-op: the call succeeds and returns nil.
func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (*payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	period := payroll.Period{
		ID:        uuid.New().String(),
		StartDate: startDate,
		EndDate:   endDate,
		Status:    payroll.PeriodStatusDraft,
	}

	created, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodOverlap) {
			s.logger.Warn("payroll period overlaps an existing period, skipping",
				"start_date", req.StartDate, "end_date", req.EndDate)
			return nil, nil
		}
		return nil, fmt.Errorf("create payroll period: %w", err)
	}

	resp := periodToResponse(created)
	return &resp, nil
}

// ListPeriods implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payroll periods: %w", err)
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, periodToResponse(p))
	}
	return responses, nil
}

// UpdatePeriodStatus implements payroll.PayrollService. Status only moves
// forward: draft to processing to completed.
func (s *PayrollServiceImpl) UpdatePeriodStatus(ctx context.Context, req payroll.UpdatePeriodStatusRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.periodRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	next := payroll.PeriodStatus(req.Status)
	if !validTransition(period.Status, next) {
		return payroll.PeriodResponse{}, payroll.ErrInvalidStatusTransition
	}

	if err := s.periodRepo.UpdateStatus(ctx, period.ID, next); err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("update period status: %w", err)
	}

	period.Status = next
	return periodToResponse(period), nil
}

func validTransition(from, to payroll.PeriodStatus) bool {
	switch from {
	case payroll.PeriodStatusDraft:
		return to == payroll.PeriodStatusDraft || to == payroll.PeriodStatusProcessing
	case payroll.PeriodStatusProcessing:
		return to == payroll.PeriodStatusProcessing || to == payroll.PeriodStatusCompleted
	case payroll.PeriodStatusCompleted:
		return to == payroll.PeriodStatusCompleted
	}
	return false
}

// GeneratePayroll implements payroll.PayrollService. For each employee it
// derives hours from attendance, aggregates the salary component with
// schedule-gated deductions, persists it, posts loan amortizations and fires
// a payslip SMS. Regeneration overwrites the existing component without
// posting loan payments a second time.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.SalaryComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	period, err := s.periodRepo.GetByID(ctx, req.PeriodID)
	if err != nil {
		return nil, err
	}
	if period.Status == payroll.PeriodStatusCompleted {
		return nil, payroll.ErrPeriodCompleted
	}

	var employees []employee.Employee
	if len(req.EmployeeIDs) > 0 {
		for _, id := range req.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			employees = append(employees, emp)
		}
	} else {
		employees, err = s.employeeRepo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("list active employees: %w", err)
		}
	}

	responses := make([]payroll.SalaryComponentResponse, 0, len(employees))
	for _, emp := range employees {
		saved, err := s.generateForEmployee(ctx, emp, period)
		if err != nil {
			return nil, fmt.Errorf("generate payroll for employee %s: %w", emp.ID, err)
		}
		responses = append(responses, componentToResponse(saved))

		if emp.PhoneNumber != nil {
			msg := fmt.Sprintf("Your payslip for %s to %s is ready. Net pay: PHP %s.",
				period.StartDate.Format("Jan 2"), period.EndDate.Format("Jan 2, 2006"),
				saved.NetPay.StringFixed(2))
			s.notifier.SendPayslipAlert(ctx, emp.ID, *emp.PhoneNumber, msg)
		}
	}

	if period.Status == payroll.PeriodStatusDraft {
		if err := s.periodRepo.UpdateStatus(ctx, period.ID, payroll.PeriodStatusProcessing); err != nil {
			return nil, fmt.Errorf("update period status: %w", err)
		}
	}

	return responses, nil
}

func (s *PayrollServiceImpl) generateForEmployee(ctx context.Context, emp employee.Employee, period payroll.Period) (payroll.SalaryComponent, error) {
	attendances, err := s.attendanceRepo.ListByEmployeeBetween(ctx, emp.ID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.SalaryComponent{}, fmt.Errorf("list attendance: %w", err)
	}
	if len(attendances) == 0 {
		s.logger.Warn("no attendance records in period, basic pay will be zero",
			"employee_id", emp.ID, "period_id", period.ID)
	}

	hourlyRate := emp.RatePerDay.Div(decimal.NewFromInt(hoursPerDay))
	otRate := hourlyRate.Mul(decimal.RequireFromString(overtimeMultiplier))

	var regularHours, holidayHours, overtimeHours decimal.Decimal
	for _, att := range attendances {
		if att.WorkedHours == nil {
			continue
		}
		worked := decimal.NewFromFloat(*att.WorkedHours)
		if att.Type == attendance.TypeHoliday {
			holidayHours = holidayHours.Add(worked)
		} else {
			regularHours = regularHours.Add(worked)
		}
		if att.OvertimeHours != nil {
			overtimeHours = overtimeHours.Add(decimal.NewFromFloat(*att.OvertimeHours))
		}
	}

	loans, err := s.loanRepo.ListApprovedByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.SalaryComponent{}, fmt.Errorf("list approved loans: %w", err)
	}

	sc := payroll.SalaryComponent{
		ID:         uuid.New().String(),
		EmployeeID: emp.ID,
		PeriodID:   period.ID,
		BasicPay:   hourlyRate.Mul(regularHours).Round(2),
		Overtime:   otRate.Mul(overtimeHours).Round(2),
		HolidayPay: hourlyRate.Mul(holidayHours).Round(2),
	}
	sc = ComputeNetPay(&emp, sc, loans, period)

	var saved payroll.SalaryComponent
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// Settle before the upsert so the existence check still sees the
		// state from before this run.
		if err := s.settleLoanPayments(txCtx, emp.ID, loans, period); err != nil {
			return err
		}

		var err error
		saved, err = s.salaryRepo.Upsert(txCtx, sc)
		if err != nil {
			return fmt.Errorf("upsert salary component: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.SalaryComponent{}, err
	}
	return saved, nil
}

// settleLoanPayments posts each amortization due in the period's half to the
// loan balances, at most once per (employee, period): a salary component
// already saved for the pair means an earlier run settled the balances, so
// regenerating that employee posts nothing. Employees generated for the first
// time in a later run still get their payments posted.
func (s *PayrollServiceImpl) settleLoanPayments(ctx context.Context, employeeID string, loans []loan.Loan, period payroll.Period) error {
	_, err := s.salaryRepo.GetByEmployeeAndPeriod(ctx, employeeID, period.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, payroll.ErrSalaryComponentNotFound) {
		return fmt.Errorf("check existing salary component: %w", err)
	}

	half := period.Half()
	for _, l := range loans {
		due := l.AmortizationDue(half)
		if due.IsZero() {
			continue
		}
		if err := s.loanRepo.RecordPayment(ctx, l.ID, due); err != nil {
			return fmt.Errorf("record loan payment: %w", err)
		}
	}
	return nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID, periodID string) (payroll.PayslipResponse, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	sc, err := s.salaryRepo.GetByEmployeeAndPeriod(ctx, employeeID, periodID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.PayslipResponse{
		Period: periodToResponse(period),
		Salary: componentToResponse(sc),
	}, nil
}

// GetMyPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMyPayslip(ctx context.Context, periodID string) (payroll.PayslipResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return s.GetPayslip(ctx, employeeID, periodID)
}

// ListPeriodComponents implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPeriodComponents(ctx context.Context, periodID string) ([]payroll.SalaryComponentResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	components, err := s.salaryRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("list salary components: %w", err)
	}

	responses := make([]payroll.SalaryComponentResponse, 0, len(components))
	for _, sc := range components {
		responses = append(responses, componentToResponse(sc))
	}
	return responses, nil
}

func periodToResponse(p payroll.Period) payroll.PeriodResponse {
	return payroll.PeriodResponse{
		ID:        p.ID,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
		Half:      string(p.Half()),
	}
}

func componentToResponse(sc payroll.SalaryComponent) payroll.SalaryComponentResponse {
	resp := payroll.SalaryComponentResponse{
		ID:         sc.ID,
		EmployeeID: sc.EmployeeID,
		PeriodID:   sc.PeriodID,

		BasicPay:               sc.BasicPay,
		Overtime:               sc.Overtime,
		HolidayPay:             sc.HolidayPay,
		Allowance:              sc.Allowance,
		AdditionalCompensation: sc.AdditionalCompensation,

		Contributions:    sc.Contributions,
		LoanAmortization: sc.LoanAmortization,
		Deductions:       sc.Deductions,

		GrossPay:        sc.GrossPay,
		TotalDeductions: sc.TotalDeductions,
		NetPay:          sc.NetPay,
	}
	if sc.EmployeeName != nil {
		resp.EmployeeName = *sc.EmployeeName
	}
	if sc.Position != nil {
		resp.Position = *sc.Position
	}
	return resp
}
