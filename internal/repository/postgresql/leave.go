package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tala-hr/payroll-backend-go/internal/domain/leave"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason,
	l.status, l.rejection_reason, l.processed_by, l.processed_at,
	l.created_at, l.updated_at, e.full_name`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.Type,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.Status,
		&lr.RejectionReason,
		&lr.ProcessedBy,
		&lr.ProcessedAt,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.EmployeeName,
	)
	return lr, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM inserted l
		JOIN employees e ON e.id = l.employee_id`

	return scanLeave(q.QueryRow(ctx, query,
		lr.ID, lr.EmployeeID, lr.Type, lr.StartDate, lr.EndDate, lr.Reason, lr.Status))
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1`

	lr, err := scanLeave(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return lr, err
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND l.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id` + where + `
		ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, lr leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, rejection_reason = $2, processed_by = $3, processed_at = $4,
			updated_at = NOW()
		WHERE id = $5`

	tag, err := q.Exec(ctx, query,
		lr.Status, lr.RejectionReason, lr.ProcessedBy, lr.ProcessedAt, lr.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// GetBalance implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetBalance(ctx context.Context, employeeID string, leaveType leave.Type) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, allocated, used
		FROM leave_balances
		WHERE employee_id = $1 AND type = $2`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, leaveType).Scan(
		&b.ID, &b.EmployeeID, &b.Type, &b.Allocated, &b.Used)
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.Balance{}, leave.ErrBalanceNotFound
	}
	return b, err
}

// ListBalances implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListBalances(ctx context.Context, employeeID string) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, type, allocated, used
		FROM leave_balances
		WHERE employee_id = $1
		ORDER BY type`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.Balance
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.Type, &b.Allocated, &b.Used); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// AddUsed implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) AddUsed(ctx context.Context, employeeID string, leaveType leave.Type, days float64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_balances
		SET used = used + $1, updated_at = NOW()
		WHERE employee_id = $2 AND type = $3`,
		days, employeeID, leaveType)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}
