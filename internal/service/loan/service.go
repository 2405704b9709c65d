package loan

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/domain/employee"
	"github.com/tala-hr/payroll-backend-go/internal/domain/loan"
)

type LoanServiceImpl struct {
	loanRepo     loan.LoanRepository
	employeeRepo employee.EmployeeRepository
}

func NewLoanService(loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository) loan.LoanService {
	return &LoanServiceImpl{loanRepo: loanRepo, employeeRepo: employeeRepo}
}

func claimsFromContext(ctx context.Context) (employeeID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, _ = claims["employee_id"].(string)
	isAdmin, _ = claims["is_admin"].(bool)
	return employeeID, isAdmin, nil
}

// Apply implements loan.LoanService. Employees apply for themselves; admins
// may file on behalf of any employee by setting employee_id.
func (s *LoanServiceImpl) Apply(ctx context.Context, req loan.ApplyLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	employeeID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if isAdmin && req.EmployeeID != "" {
		employeeID = req.EmployeeID
	}
	if employeeID == "" {
		return loan.LoanResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return loan.LoanResponse{}, employee.ErrEmployeeInactive
	}

	l := loan.Loan{
		ID:               uuid.New().String(),
		EmployeeID:       emp.ID,
		Variant:          loan.Variant(req.Variant),
		Amount:           req.Amount,
		Amortization:     req.Amortization,
		TotalAmount:      req.TotalAmount,
		Status:           loan.StatusPending,
		TotalPaid:        decimal.Zero,
		RemainingBalance: req.TotalAmount,
	}
	if req.MonthlySchedule != nil {
		schedule := contribution.HalfMonth(*req.MonthlySchedule)
		l.MonthlySchedule = &schedule
	}

	created, err := s.loanRepo.Create(ctx, l)
	if err != nil {
		return loan.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}
	return toResponse(created), nil
}

// Get implements loan.LoanService.
func (s *LoanServiceImpl) Get(ctx context.Context, id string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	return toResponse(l), nil
}

// List implements loan.LoanService.
func (s *LoanServiceImpl) List(ctx context.Context, filter loan.LoanFilter) ([]loan.LoanResponse, error) {
	loans, err := s.loanRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return toResponses(loans), nil
}

// ListMyLoans implements loan.LoanService.
func (s *LoanServiceImpl) ListMyLoans(ctx context.Context) ([]loan.LoanResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		return nil, employee.ErrEmployeeNotFound
	}

	loans, err := s.loanRepo.List(ctx, loan.LoanFilter{EmployeeID: employeeID})
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return toResponses(loans), nil
}

// Approve implements loan.LoanService.
func (s *LoanServiceImpl) Approve(ctx context.Context, id string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if l.Status != loan.StatusPending {
		return loan.LoanResponse{}, loan.ErrLoanAlreadyProcessed
	}

	if err := s.loanRepo.UpdateStatus(ctx, id, loan.StatusApproved, nil); err != nil {
		return loan.LoanResponse{}, fmt.Errorf("approve loan: %w", err)
	}

	l.Status = loan.StatusApproved
	return toResponse(l), nil
}

// Reject implements loan.LoanService.
func (s *LoanServiceImpl) Reject(ctx context.Context, req loan.RejectLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	l, err := s.loanRepo.GetByID(ctx, req.ID)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if l.Status != loan.StatusPending {
		return loan.LoanResponse{}, loan.ErrLoanAlreadyProcessed
	}

	if err := s.loanRepo.UpdateStatus(ctx, req.ID, loan.StatusRejected, &req.Reason); err != nil {
		return loan.LoanResponse{}, fmt.Errorf("reject loan: %w", err)
	}

	l.Status = loan.StatusRejected
	l.RejectionReason = &req.Reason
	return toResponse(l), nil
}

func toResponse(l loan.Loan) loan.LoanResponse {
	resp := loan.LoanResponse{
		ID:               l.ID,
		EmployeeID:       l.EmployeeID,
		Variant:          string(l.Variant),
		Amount:           l.Amount,
		Amortization:     l.Amortization,
		TotalAmount:      l.TotalAmount,
		Status:           string(l.Status),
		RejectionReason:  l.RejectionReason,
		TotalPaid:        l.TotalPaid,
		RemainingBalance: l.RemainingBalance,
	}
	if l.EmployeeName != nil {
		resp.EmployeeName = *l.EmployeeName
	}
	if l.MonthlySchedule != nil {
		schedule := string(*l.MonthlySchedule)
		resp.MonthlySchedule = &schedule
	}
	return resp
}

func toResponses(loans []loan.Loan) []loan.LoanResponse {
	responses := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		responses = append(responses, toResponse(l))
	}
	return responses
}
