package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyTimedIn     = errors.New("already timed in for this date")
	ErrNotTimedIn         = errors.New("no time-in recorded for this date")
	ErrAlreadyTimedOut    = errors.New("already timed out for this date")
	ErrTimeOutBeforeIn    = errors.New("time-out cannot be before time-in")
)
