package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tala-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
)

type periodRepositoryImpl struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &periodRepositoryImpl{db: db}
}

const periodColumns = `id, start_date, end_date, status, created_at, updated_at`

func scanPeriod(row pgx.Row) (payroll.Period, error) {
	var p payroll.Period
	err := row.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create implements payroll.PeriodRepository. The overlap check and insert
// run in one transaction to keep the no-overlap invariant.
func (r *periodRepositoryImpl) Create(ctx context.Context, p payroll.Period) (payroll.Period, error) {
	var created payroll.Period

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var overlaps bool
		err := q.QueryRow(txCtx, `
			SELECT EXISTS(
				SELECT 1 FROM payroll_periods
				WHERE start_date <= $2 AND end_date >= $1
			)`, p.StartDate, p.EndDate).Scan(&overlaps)
		if err != nil {
			return err
		}
		if overlaps {
			return payroll.ErrPeriodOverlap
		}

		query := `
			INSERT INTO payroll_periods (id, start_date, end_date, status)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + periodColumns

		created, err = scanPeriod(q.QueryRow(txCtx, query, p.ID, p.StartDate, p.EndDate, p.Status))
		return err
	})
	if err != nil {
		return payroll.Period{}, err
	}
	return created, nil
}

// GetByID implements payroll.PeriodRepository.
func (r *periodRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPeriod(q.QueryRow(ctx,
		`SELECT `+periodColumns+` FROM payroll_periods WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Period{}, payroll.ErrPeriodNotFound
	}
	return p, err
}

// List implements payroll.PeriodRepository.
func (r *periodRepositoryImpl) List(ctx context.Context) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+periodColumns+` FROM payroll_periods ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// FindCovering implements payroll.PeriodRepository.
func (r *periodRepositoryImpl) FindCovering(ctx context.Context, date time.Time) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPeriod(q.QueryRow(ctx,
		`SELECT `+periodColumns+` FROM payroll_periods WHERE start_date <= $1 AND end_date >= $1`,
		date))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Period{}, payroll.ErrPeriodNotFound
	}
	return p, err
}

// UpdateStatus implements payroll.PeriodRepository.
func (r *periodRepositoryImpl) UpdateStatus(ctx context.Context, id string, status payroll.PeriodStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payroll_periods SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}
	return nil
}

type salaryComponentRepositoryImpl struct {
	db *database.DB
}

func NewSalaryComponentRepository(db *database.DB) payroll.SalaryComponentRepository {
	return &salaryComponentRepositoryImpl{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.period_id, s.basic_pay, s.overtime, s.holiday_pay,
	s.allowance, s.additional_compensation, s.contributions, s.loan_amortization,
	s.deductions, s.gross_pay, s.total_deductions, s.net_pay,
	s.created_at, s.updated_at, e.full_name, e.position`

func scanSalaryComponent(row pgx.Row) (payroll.SalaryComponent, error) {
	var sc payroll.SalaryComponent
	var contributionsJSON, deductionsJSON []byte

	err := row.Scan(
		&sc.ID,
		&sc.EmployeeID,
		&sc.PeriodID,
		&sc.BasicPay,
		&sc.Overtime,
		&sc.HolidayPay,
		&sc.Allowance,
		&sc.AdditionalCompensation,
		&contributionsJSON,
		&sc.LoanAmortization,
		&deductionsJSON,
		&sc.GrossPay,
		&sc.TotalDeductions,
		&sc.NetPay,
		&sc.CreatedAt,
		&sc.UpdatedAt,
		&sc.EmployeeName,
		&sc.Position,
	)
	if err != nil {
		return payroll.SalaryComponent{}, err
	}

	if err := json.Unmarshal(contributionsJSON, &sc.Contributions); err != nil {
		return payroll.SalaryComponent{}, err
	}
	if len(deductionsJSON) > 0 {
		if err := json.Unmarshal(deductionsJSON, &sc.Deductions); err != nil {
			return payroll.SalaryComponent{}, err
		}
	}
	return sc, nil
}

// Upsert implements payroll.SalaryComponentRepository.
func (r *salaryComponentRepositoryImpl) Upsert(ctx context.Context, sc payroll.SalaryComponent) (payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	contributionsJSON, err := json.Marshal(sc.Contributions)
	if err != nil {
		return payroll.SalaryComponent{}, err
	}
	deductionsJSON, err := json.Marshal(sc.Deductions)
	if err != nil {
		return payroll.SalaryComponent{}, err
	}

	query := `
		WITH upserted AS (
			INSERT INTO salary_components (
				id, employee_id, period_id, basic_pay, overtime, holiday_pay,
				allowance, additional_compensation, contributions, loan_amortization,
				deductions, gross_pay, total_deductions, net_pay
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (employee_id, period_id) DO UPDATE SET
				basic_pay = EXCLUDED.basic_pay,
				overtime = EXCLUDED.overtime,
				holiday_pay = EXCLUDED.holiday_pay,
				allowance = EXCLUDED.allowance,
				additional_compensation = EXCLUDED.additional_compensation,
				contributions = EXCLUDED.contributions,
				loan_amortization = EXCLUDED.loan_amortization,
				deductions = EXCLUDED.deductions,
				gross_pay = EXCLUDED.gross_pay,
				total_deductions = EXCLUDED.total_deductions,
				net_pay = EXCLUDED.net_pay,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + salaryColumns + `
		FROM upserted s
		JOIN employees e ON e.id = s.employee_id`

	return scanSalaryComponent(q.QueryRow(ctx, query,
		sc.ID, sc.EmployeeID, sc.PeriodID, sc.BasicPay, sc.Overtime, sc.HolidayPay,
		sc.Allowance, sc.AdditionalCompensation, contributionsJSON, sc.LoanAmortization,
		deductionsJSON, sc.GrossPay, sc.TotalDeductions, sc.NetPay))
}

// GetByEmployeeAndPeriod implements payroll.SalaryComponentRepository.
func (r *salaryComponentRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_components s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.period_id = $2`

	sc, err := scanSalaryComponent(q.QueryRow(ctx, query, employeeID, periodID))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.SalaryComponent{}, payroll.ErrSalaryComponentNotFound
	}
	return sc, err
}

// ListByPeriod implements payroll.SalaryComponentRepository.
func (r *salaryComponentRepositoryImpl) ListByPeriod(ctx context.Context, periodID string) ([]payroll.SalaryComponent, error) {
	return r.list(ctx, `
		SELECT `+salaryColumns+`
		FROM salary_components s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.period_id = $1
		ORDER BY e.full_name`, periodID)
}

// ListByEmployee implements payroll.SalaryComponentRepository.
func (r *salaryComponentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.SalaryComponent, error) {
	return r.list(ctx, `
		SELECT `+salaryColumns+`
		FROM salary_components s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		ORDER BY s.created_at DESC`, employeeID)
}

func (r *salaryComponentRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]payroll.SalaryComponent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []payroll.SalaryComponent
	for rows.Next() {
		sc, err := scanSalaryComponent(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, sc)
	}
	return components, rows.Err()
}
