package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (Attendance, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	Update(ctx context.Context, att Attendance) error

	// GetOpenSessions returns records with a time-in but no time-out dated
	// before the given date. Used by the end-of-day auto-close job.
	GetOpenSessions(ctx context.Context, before time.Time) ([]Attendance, error)
}

type AttendanceService interface {
	TimeIn(ctx context.Context, req TimeInRequest) (AttendanceResponse, error)
	TimeOut(ctx context.Context) (AttendanceResponse, error)
	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	CorrectAttendance(ctx context.Context, req CorrectAttendanceRequest) (AttendanceResponse, error)
}
