package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tala-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.time_in, a.time_out, a.type, a.status,
	a.worked_hours, a.overtime_hours, a.is_late, a.is_undertime,
	a.created_at, a.updated_at, e.full_name`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.TimeIn,
		&a.TimeOut,
		&a.Type,
		&a.Status,
		&a.WorkedHours,
		&a.OvertimeHours,
		&a.IsLate,
		&a.IsUndertime,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO attendances (id, employee_id, date, time_in, type, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM inserted a
		JOIN employees e ON e.id = a.employee_id`

	return scanAttendance(q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.TimeIn, att.Type, att.Status))
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, err
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, err
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.DateFrom != "" {
		where += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, filter.DateFrom)
		argPos++
	}
	if filter.DateTo != "" {
		where += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, filter.DateTo)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances a`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id` + where + `
		ORDER BY a.date DESC, e.full_name`
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

	attendances, err := collectAttendances(rows)
	return attendances, total, err
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET time_in = $1, time_out = $2, type = $3, status = $4,
			worked_hours = $5, overtime_hours = $6, is_late = $7, is_undertime = $8,
			updated_at = NOW()
		WHERE id = $9`

	tag, err := q.Exec(ctx, query,
		att.TimeIn, att.TimeOut, att.Type, att.Status,
		att.WorkedHours, att.OvertimeHours, att.IsLate, att.IsUndertime,
		att.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// GetOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenSessions(ctx context.Context, before time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.time_out IS NULL AND a.date < $1
		ORDER BY a.date`

	rows, err := q.Query(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, a)
	}
	return attendances, rows.Err()
}
