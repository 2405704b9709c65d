package notification

import (
	"context"
	"time"
)

type SMSStatus string

const (
	SMSStatusSent   SMSStatus = "sent"
	SMSStatusFailed SMSStatus = "failed"
)

// SMSLog records each payslip SMS attempt, successful or not.
type SMSLog struct {
	ID          string
	EmployeeID  string
	PhoneNumber string
	Message     string
	Status      SMSStatus
	ProviderRef *string
	Error       *string
	SentAt      time.Time
}

type SMSLogRepository interface {
	Create(ctx context.Context, log SMSLog) (SMSLog, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SMSLog, error)
}

// Service sends payslip alerts. Delivery is best effort: failures are logged
// and recorded, never propagated to the payroll run.
type Service interface {
	SendPayslipAlert(ctx context.Context, employeeID, phoneNumber, message string)
}
