package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tala-hr/payroll-backend-go/internal/domain/attendance"
)

// AutoCloser closes attendance sessions whose time-out was never punched.
// It runs from the cron scheduler after each day ends.
type AutoCloser struct {
	attendanceRepo attendance.AttendanceRepository
	logger         *slog.Logger
}

func NewAutoCloser(attendanceRepo attendance.AttendanceRepository, logger *slog.Logger) *AutoCloser {
	return &AutoCloser{attendanceRepo: attendanceRepo, logger: logger}
}

// Run stamps a 5 PM time-out on every open session from past days and
// recomputes the derived hours. Closed rows are marked auto_closed so admins
// can tell them from real punches.
func (c *AutoCloser) Run(ctx context.Context) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	open, err := c.attendanceRepo.GetOpenSessions(ctx, today)
	if err != nil {
		return fmt.Errorf("get open attendance sessions: %w", err)
	}

	for _, att := range open {
		timeOut := time.Date(att.Date.Year(), att.Date.Month(), att.Date.Day(),
			workEndHour, 0, 0, 0, att.Date.Location())
		if timeOut.Before(att.TimeIn) {
			// Punched in after 5 PM; close at the punch-in time with zero
			// worked hours.
			timeOut = att.TimeIn
		}

		att.TimeOut = &timeOut
		att.Status = attendance.StatusAutoClosed
		applyHours(&att)

		if err := c.attendanceRepo.Update(ctx, att); err != nil {
			c.logger.Error("failed to auto-close attendance session",
				"attendance_id", att.ID, "error", err)
			continue
		}
		c.logger.Info("auto-closed attendance session",
			"attendance_id", att.ID, "employee_id", att.EmployeeID, "date", att.Date.Format("2006-01-02"))
	}

	return nil
}
