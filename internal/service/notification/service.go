package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tala-hr/payroll-backend-go/internal/domain/notification"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/sms"
)

const sendTimeout = 15 * time.Second

type SMSNotificationService struct {
	client  *sms.Client
	logRepo notification.SMSLogRepository
	logger  *slog.Logger
	enabled bool
}

func NewSMSNotificationService(client *sms.Client, logRepo notification.SMSLogRepository, logger *slog.Logger, enabled bool) notification.Service {
	return &SMSNotificationService{
		client:  client,
		logRepo: logRepo,
		logger:  logger,
		enabled: enabled,
	}
}

// SendPayslipAlert implements notification.Service. The send runs in its own
// goroutine with a detached context so a slow gateway never blocks or fails
// the payroll run. Every attempt is written to the sms log.
func (s *SMSNotificationService) SendPayslipAlert(ctx context.Context, employeeID, phoneNumber, message string) {
	if !s.enabled {
		s.logger.Debug("sms notifications disabled, skipping payslip alert", "employee_id", employeeID)
		return
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		logEntry := notification.SMSLog{
			ID:          uuid.New().String(),
			EmployeeID:  employeeID,
			PhoneNumber: phoneNumber,
			Message:     message,
			Status:      notification.SMSStatusSent,
		}

		messageID, err := s.client.Send(sendCtx, phoneNumber, message)
		if err != nil {
			errMsg := err.Error()
			logEntry.Status = notification.SMSStatusFailed
			logEntry.Error = &errMsg
			s.logger.Error("payslip sms failed", "employee_id", employeeID, "error", err)
		} else {
			logEntry.ProviderRef = &messageID
		}

		if _, err := s.logRepo.Create(sendCtx, logEntry); err != nil {
			s.logger.Error("failed to record sms log", "employee_id", employeeID, "error", err)
		}
	}()
}
