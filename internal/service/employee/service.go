package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
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

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	emp := employee.Employee{
		ID:          uuid.New().String(),
		FullName:    req.FullName,
		Position:    req.Position,
		PhoneNumber: req.PhoneNumber,
		RatePerDay:  req.RatePerDay,

		SSSContribution:        req.SSSContribution,
		PhilHealthContribution: req.PhilHealthContribution,
		PagIbigContribution:    req.PagIbigContribution,
		IncomeTax:              req.IncomeTax,

		SSSSchedule:        contribution.HalfMonth(req.SSSSchedule),
		PhilHealthSchedule: contribution.HalfMonth(req.PhilHealthSchedule),
		PagIbigSchedule:    contribution.HalfMonth(req.PagIbigSchedule),
		IncomeTaxSchedule:  contribution.HalfMonth(req.IncomeTaxSchedule),

		Status:   employee.StatusActive,
		HireDate: hireDate,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("create employee: %w", err)
	}
	return toResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.Get(ctx, employeeID)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("list employees: %w", err)
	}

	resp := employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, toResponse(emp))
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.RatePerDay != nil {
		emp.RatePerDay = *req.RatePerDay
	}
	if req.Status != nil {
		emp.Status = employee.EmploymentStatus(*req.Status)
	}
	if req.SSSContribution != nil {
		emp.SSSContribution = *req.SSSContribution
	}
	if req.PhilHealthContribution != nil {
		emp.PhilHealthContribution = *req.PhilHealthContribution
	}
	if req.PagIbigContribution != nil {
		emp.PagIbigContribution = *req.PagIbigContribution
	}
	if req.IncomeTax != nil {
		emp.IncomeTax = *req.IncomeTax
	}
	if req.SSSSchedule != nil {
		emp.SSSSchedule = contribution.HalfMonth(*req.SSSSchedule)
	}
	if req.PhilHealthSchedule != nil {
		emp.PhilHealthSchedule = contribution.HalfMonth(*req.PhilHealthSchedule)
	}
	if req.PagIbigSchedule != nil {
		emp.PagIbigSchedule = contribution.HalfMonth(*req.PagIbigSchedule)
	}
	if req.IncomeTaxSchedule != nil {
		emp.IncomeTaxSchedule = contribution.HalfMonth(*req.IncomeTaxSchedule)
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("update employee: %w", err)
	}
	return toResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		FullName:    emp.FullName,
		Position:    emp.Position,
		PhoneNumber: emp.PhoneNumber,
		RatePerDay:  emp.RatePerDay,
		Status:      string(emp.Status),
		HireDate:    emp.HireDate.Format("2006-01-02"),

		SSSContribution:        emp.SSSContribution,
		PhilHealthContribution: emp.PhilHealthContribution,
		PagIbigContribution:    emp.PagIbigContribution,
		IncomeTax:              emp.IncomeTax,

		SSSSchedule:        string(emp.SSSSchedule),
		PhilHealthSchedule: string(emp.PhilHealthSchedule),
		PagIbigSchedule:    string(emp.PagIbigSchedule),
		IncomeTaxSchedule:  string(emp.IncomeTaxSchedule),
	}
}
