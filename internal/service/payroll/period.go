package payroll

import (
	"time"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
)

// cutoffDay splits each month into two payroll halves: days 1-15 and
// day 16 through month end.
const cutoffDay = 15

// ResolvePeriod returns the semi-monthly payroll period enclosing date.
// Both bounds are inclusive calendar dates in the same month and year.
func ResolvePeriod(date time.Time) (start, end time.Time) {
	year, month, day := date.Date()
	loc := date.Location()

	if day <= cutoffDay {
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month, cutoffDay, 0, 0, 0, 0, loc)
		return start, end
	}

	start = time.Date(year, month, 16, 0, 0, 0, 0, loc)
	// Day zero of the next month is the last day of this one.
	end = time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	return start, end
}

// CutoffHalf returns which semi-monthly bucket date falls in.
func CutoffHalf(date time.Time) contribution.HalfMonth {
	if date.Day() <= cutoffDay {
		return contribution.FirstHalf
	}
	return contribution.SecondHalf
}
