package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Type string

const (
	TypeVacation  Type = "vacation"
	TypeSick      Type = "sick"
	TypeEmergency Type = "emergency"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVacation, TypeSick, TypeEmergency, TypeMaternity, TypePaternity:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	Type            Type
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          Status
	RejectionReason *string
	ProcessedBy     *string
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}

// Days returns the inclusive calendar-day span of the request.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// Balance tracks an employee's remaining credits for one leave type.
type Balance struct {
	ID         string
	EmployeeID string
	Type       Type
	Allocated  float64
	Used       float64
}

func (b *Balance) Remaining() float64 {
	return b.Allocated - b.Used
}
