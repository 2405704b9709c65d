package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/tala-hr/payroll-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo}
}

func claimsFromContext(ctx context.Context) (employeeID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, _ = claims["employee_id"].(string)
	userID, _ = claims["user_id"].(string)
	return employeeID, userID, nil
}

// Request implements leave.LeaveService.
func (s *LeaveServiceImpl) Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if employeeID == "" {
		return leave.LeaveResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	lr := leave.LeaveRequest{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Type:       leave.Type(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	// Balance is checked up front so the employee gets immediate feedback;
	// approval re-checks because other requests may land in between.
	balance, err := s.leaveRepo.GetBalance(ctx, employeeID, lr.Type)
	if err != nil && !errors.Is(err, leave.ErrBalanceNotFound) {
		return leave.LeaveResponse{}, fmt.Errorf("get leave balance: %w", err)
	}
	if err == nil && balance.Remaining() < float64(lr.Days()) {
		return leave.LeaveResponse{}, leave.ErrInsufficientBalance
	}

	created, err := s.leaveRepo.Create(ctx, lr)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("create leave request: %w", err)
	}
	return toResponse(created), nil
}

// ListMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyRequests(ctx context.Context) ([]leave.LeaveResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.List(ctx, leave.LeaveFilter{EmployeeID: employeeID})
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// MyBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) MyBalances(ctx context.Context) ([]leave.BalanceResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := s.leaveRepo.ListBalances(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leave balances: %w", err)
	}

	responses := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.BalanceResponse{
			Type:      string(b.Type),
			Allocated: b.Allocated,
			Used:      b.Used,
			Remaining: b.Remaining(),
		})
	}
	return responses, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	_, userID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	balance, err := s.leaveRepo.GetBalance(ctx, lr.EmployeeID, lr.Type)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("get leave balance: %w", err)
	}
	days := float64(lr.Days())
	if balance.Remaining() < days {
		return leave.LeaveResponse{}, leave.ErrInsufficientBalance
	}

	now := time.Now()
	lr.Status = leave.StatusApproved
	lr.ProcessedBy = &userID
	lr.ProcessedAt = &now

	if err := s.leaveRepo.UpdateStatus(ctx, lr); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("approve leave request: %w", err)
	}
	if err := s.leaveRepo.AddUsed(ctx, lr.EmployeeID, lr.Type, days); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("update leave balance: %w", err)
	}
	return toResponse(lr), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	_, userID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	lr, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	lr.Status = leave.StatusRejected
	lr.RejectionReason = &req.Reason
	lr.ProcessedBy = &userID
	lr.ProcessedAt = &now

	if err := s.leaveRepo.UpdateStatus(ctx, lr); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("reject leave request: %w", err)
	}
	return toResponse(lr), nil
}

func toResponse(lr leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		Type:            string(lr.Type),
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		Days:            lr.Days(),
		Reason:          lr.Reason,
		Status:          string(lr.Status),
		RejectionReason: lr.RejectionReason,
	}
	if lr.EmployeeName != nil {
		resp.EmployeeName = *lr.EmployeeName
	}
	return resp
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, toResponse(lr))
	}
	return responses
}
