package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, lr LeaveRequest) error

	GetBalance(ctx context.Context, employeeID string, leaveType Type) (Balance, error)
	ListBalances(ctx context.Context, employeeID string) ([]Balance, error)
	AddUsed(ctx context.Context, employeeID string, leaveType Type, days float64) error
}

type LeaveService interface {
	Request(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListMyRequests(ctx context.Context) ([]LeaveResponse, error)
	MyBalances(ctx context.Context) ([]BalanceResponse, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)
}
