package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/loan"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
)

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

const loanColumns = `
	l.id, l.employee_id, l.variant, l.amount, l.amortization, l.total_amount,
	l.status, l.rejection_reason, l.monthly_schedule, l.total_paid, l.remaining_balance,
	l.created_at, l.updated_at, e.full_name`

func scanLoan(row pgx.Row) (loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.Variant,
		&l.Amount,
		&l.Amortization,
		&l.TotalAmount,
		&l.Status,
		&l.RejectionReason,
		&l.MonthlySchedule,
		&l.TotalPaid,
		&l.RemainingBalance,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.EmployeeName,
	)
	return l, err
}

// Create implements loan.LoanRepository.
func (r *loanRepositoryImpl) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO loans (
				id, employee_id, variant, amount, amortization, total_amount,
				status, monthly_schedule, total_paid, remaining_balance
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)
		SELECT ` + loanColumns + `
		FROM inserted l
		JOIN employees e ON e.id = l.employee_id`

	return scanLoan(q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.Variant, l.Amount, l.Amortization, l.TotalAmount,
		l.Status, l.MonthlySchedule, l.TotalPaid, l.RemainingBalance))
}

// GetByID implements loan.LoanRepository.
func (r *loanRepositoryImpl) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loans l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1`

	l, err := scanLoan(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	return l, err
}

// List implements loan.LoanRepository.
func (r *loanRepositoryImpl) List(ctx context.Context, filter loan.LoanFilter) ([]loan.Loan, error) {
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
	if filter.Variant != "" {
		where += fmt.Sprintf(" AND l.variant = $%d", argPos)
		args = append(args, filter.Variant)
		argPos++
	}

	query := `
		SELECT ` + loanColumns + `
		FROM loans l
		JOIN employees e ON e.id = l.employee_id` + where + `
		ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLoans(rows)
}

// ListApprovedByEmployee implements loan.LoanRepository.
func (r *loanRepositoryImpl) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loans l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1 AND l.status = 'approved'
		ORDER BY l.created_at`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLoans(rows)
}

// UpdateStatus implements loan.LoanRepository.
func (r *loanRepositoryImpl) UpdateStatus(ctx context.Context, id string, status loan.Status, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE loans SET status = $1, rejection_reason = $2, updated_at = NOW() WHERE id = $3`,
		status, rejectionReason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}
	return nil
}

// RecordPayment implements loan.LoanRepository.
func (r *loanRepositoryImpl) RecordPayment(ctx context.Context, id string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET total_paid = total_paid + $1,
			remaining_balance = GREATEST(remaining_balance - $1, 0),
			status = CASE WHEN remaining_balance - $1 <= 0 THEN 'paid' ELSE status END,
			updated_at = NOW()
		WHERE id = $2`

	tag, err := q.Exec(ctx, query, amount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}
	return nil
}

func collectLoans(rows pgx.Rows) ([]loan.Loan, error) {
	var loans []loan.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
