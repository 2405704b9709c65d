package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
)

type contributionTableRepositoryImpl struct {
	db *database.DB
}

func NewContributionTableRepository(db *database.DB) contribution.TableRepository {
	return &contributionTableRepositoryImpl{db: db}
}

const tableColumns = `id, type, name, effective_date, is_active, premium_rate, created_at, updated_at`

func scanTable(row pgx.Row) (contribution.Table, error) {
	var t contribution.Table
	err := row.Scan(
		&t.ID,
		&t.Type,
		&t.Name,
		&t.EffectiveDate,
		&t.IsActive,
		&t.PremiumRate,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

func (r *contributionTableRepositoryImpl) loadBrackets(ctx context.Context, tableID string) ([]contribution.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT range_start, range_end, regular_ss_ee, regular_ss_er, ec_er,
			   wisp_ee, wisp_er, employee_rate, employer_rate
		FROM contribution_brackets
		WHERE table_id = $1
		ORDER BY range_start`

	rows, err := q.Query(ctx, query, tableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brackets []contribution.Bracket
	for rows.Next() {
		var b contribution.Bracket
		err := rows.Scan(
			&b.RangeStart, &b.RangeEnd,
			&b.RegularSSEE, &b.RegularSSER, &b.ECER,
			&b.WISPEE, &b.WISPER,
			&b.EmployeeRate, &b.EmployerRate,
		)
		if err != nil {
			return nil, err
		}
		brackets = append(brackets, b)
	}
	return brackets, rows.Err()
}

// Create implements contribution.TableRepository. The table row and all its
// brackets are written in one transaction.
func (r *contributionTableRepositoryImpl) Create(ctx context.Context, table contribution.Table) (contribution.Table, error) {
	var created contribution.Table

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO contribution_tables (id, type, name, effective_date, is_active, premium_rate)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING ` + tableColumns

		var err error
		created, err = scanTable(q.QueryRow(txCtx, query,
			table.ID, table.Type, table.Name, table.EffectiveDate, table.IsActive, table.PremiumRate))
		if err != nil {
			return err
		}

		for _, b := range table.Brackets {
			_, err = q.Exec(txCtx, `
				INSERT INTO contribution_brackets (
					table_id, range_start, range_end, regular_ss_ee, regular_ss_er,
					ec_er, wisp_ee, wisp_er, employee_rate, employer_rate
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				created.ID, b.RangeStart, b.RangeEnd, b.RegularSSEE, b.RegularSSER,
				b.ECER, b.WISPEE, b.WISPER, b.EmployeeRate, b.EmployerRate,
			)
			if err != nil {
				return err
			}
		}

		created.Brackets = table.Brackets
		return nil
	})
	if err != nil {
		return contribution.Table{}, err
	}
	return created, nil
}

// GetByID implements contribution.TableRepository.
func (r *contributionTableRepositoryImpl) GetByID(ctx context.Context, id string) (contribution.Table, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTable(q.QueryRow(ctx,
		`SELECT `+tableColumns+` FROM contribution_tables WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return contribution.Table{}, contribution.ErrTableNotFound
	}
	if err != nil {
		return contribution.Table{}, err
	}

	t.Brackets, err = r.loadBrackets(ctx, t.ID)
	return t, err
}

// ListByType implements contribution.TableRepository.
func (r *contributionTableRepositoryImpl) ListByType(ctx context.Context, tableType contribution.TableType) ([]contribution.Table, error) {
	return r.list(ctx,
		`SELECT `+tableColumns+` FROM contribution_tables WHERE type = $1 ORDER BY effective_date DESC`,
		tableType)
}

// List implements contribution.TableRepository.
func (r *contributionTableRepositoryImpl) List(ctx context.Context) ([]contribution.Table, error) {
	return r.list(ctx,
		`SELECT `+tableColumns+` FROM contribution_tables ORDER BY type, effective_date DESC`)
}

func (r *contributionTableRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]contribution.Table, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []contribution.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tables {
		tables[i].Brackets, err = r.loadBrackets(ctx, tables[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return tables, nil
}

// Activate implements contribution.TableRepository. Deactivating siblings and
// activating the target happen in one transaction so there is never a window
// with two active tables of the same type.
func (r *contributionTableRepositoryImpl) Activate(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var tableType contribution.TableType
		err := q.QueryRow(txCtx,
			`SELECT type FROM contribution_tables WHERE id = $1 FOR UPDATE`, id).Scan(&tableType)
		if errors.Is(err, pgx.ErrNoRows) {
			return contribution.ErrTableNotFound
		}
		if err != nil {
			return err
		}

		_, err = q.Exec(txCtx,
			`UPDATE contribution_tables SET is_active = false, updated_at = NOW()
			 WHERE type = $1 AND is_active = true`, tableType)
		if err != nil {
			return err
		}

		_, err = q.Exec(txCtx,
			`UPDATE contribution_tables SET is_active = true, updated_at = NOW() WHERE id = $1`, id)
		return err
	})
}

// GetActive implements contribution.TableRepository.
func (r *contributionTableRepositoryImpl) GetActive(ctx context.Context, tableType contribution.TableType) (contribution.Table, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + tableColumns + `
		FROM contribution_tables
		WHERE type = $1 AND is_active = true
		ORDER BY effective_date DESC
		LIMIT 1`

	t, err := scanTable(q.QueryRow(ctx, query, tableType))
	if errors.Is(err, pgx.ErrNoRows) {
		return contribution.Table{}, contribution.ErrNoActiveTable
	}
	if err != nil {
		return contribution.Table{}, err
	}

	t.Brackets, err = r.loadBrackets(ctx, t.ID)
	return t, err
}

// Delete implements contribution.TableRepository.
func (r *contributionTableRepositoryImpl) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx,
			`DELETE FROM contribution_brackets WHERE table_id = $1`, id); err != nil {
			return err
		}

		tag, err := q.Exec(txCtx, `DELETE FROM contribution_tables WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return contribution.ErrTableNotFound
		}
		return nil
	})
}
