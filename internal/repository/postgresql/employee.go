package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tala-hr/payroll-backend-go/internal/domain/employee"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, user_id, full_name, position, phone_number, rate_per_day,
	sss_contribution, philhealth_contribution, pagibig_contribution, income_tax,
	sss_schedule, philhealth_schedule, pagibig_schedule, income_tax_schedule,
	status, hire_date, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.FullName,
		&e.Position,
		&e.PhoneNumber,
		&e.RatePerDay,
		&e.SSSContribution,
		&e.PhilHealthContribution,
		&e.PagIbigContribution,
		&e.IncomeTax,
		&e.SSSSchedule,
		&e.PhilHealthSchedule,
		&e.PagIbigSchedule,
		&e.IncomeTaxSchedule,
		&e.Status,
		&e.HireDate,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, full_name, position, phone_number, rate_per_day,
			sss_contribution, philhealth_contribution, pagibig_contribution, income_tax,
			sss_schedule, philhealth_schedule, pagibig_schedule, income_tax_schedule,
			status, hire_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.UserID, emp.FullName, emp.Position, emp.PhoneNumber, emp.RatePerDay,
		emp.SSSContribution, emp.PhilHealthContribution, emp.PagIbigContribution, emp.IncomeTax,
		emp.SSSSchedule, emp.PhilHealthSchedule, emp.PagIbigSchedule, emp.IncomeTaxSchedule,
		emp.Status, emp.HireDate,
	))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (full_name ILIKE $%d OR position ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + employeeColumns + ` FROM employees` + where + ` ORDER BY full_name`
	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE status = 'active' ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, position = $2, phone_number = $3, rate_per_day = $4,
			sss_contribution = $5, philhealth_contribution = $6,
			pagibig_contribution = $7, income_tax = $8,
			sss_schedule = $9, philhealth_schedule = $10,
			pagibig_schedule = $11, income_tax_schedule = $12,
			status = $13, updated_at = NOW()
		WHERE id = $14`

	tag, err := q.Exec(ctx, query,
		emp.FullName, emp.Position, emp.PhoneNumber, emp.RatePerDay,
		emp.SSSContribution, emp.PhilHealthContribution,
		emp.PagIbigContribution, emp.IncomeTax,
		emp.SSSSchedule, emp.PhilHealthSchedule,
		emp.PagIbigSchedule, emp.IncomeTaxSchedule,
		emp.Status, emp.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Soft delete keeps historical payroll rows resolvable.
	tag, err := q.Exec(ctx,
		`UPDATE employees SET status = 'inactive', updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
