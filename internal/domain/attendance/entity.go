package attendance

import "time"

type Status string

const (
	StatusPresent    Status = "present"
	StatusAutoClosed Status = "auto_closed"
)

type Type string

const (
	TypeRegular Type = "regular"
	TypeHoliday Type = "holiday"
)

// Attendance is one record per employee per calendar date. TimeOut is set at
// most once, and only after TimeIn exists on the same date.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	TimeIn     time.Time
	TimeOut    *time.Time
	Type       Type
	Status     Status

	// Derived by the hours engine on time-out.
	WorkedHours   *float64
	OvertimeHours *float64
	IsLate        *bool
	IsUndertime   *bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
