package postgresql

import (
	"context"

	"github.com/tala-hr/payroll-backend-go/internal/domain/notification"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
)

type smsLogRepositoryImpl struct {
	db *database.DB
}

func NewSMSLogRepository(db *database.DB) notification.SMSLogRepository {
	return &smsLogRepositoryImpl{db: db}
}

// Create implements notification.SMSLogRepository.
func (r *smsLogRepositoryImpl) Create(ctx context.Context, log notification.SMSLog) (notification.SMSLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sms_logs (id, employee_id, phone_number, message, status, provider_ref, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, phone_number, message, status, provider_ref, error, sent_at`

	var saved notification.SMSLog
	err := q.QueryRow(ctx, query,
		log.ID, log.EmployeeID, log.PhoneNumber, log.Message, log.Status, log.ProviderRef, log.Error,
	).Scan(
		&saved.ID,
		&saved.EmployeeID,
		&saved.PhoneNumber,
		&saved.Message,
		&saved.Status,
		&saved.ProviderRef,
		&saved.Error,
		&saved.SentAt,
	)
	return saved, err
}

// ListByEmployee implements notification.SMSLogRepository.
func (r *smsLogRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]notification.SMSLog, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, phone_number, message, status, provider_ref, error, sent_at
		FROM sms_logs
		WHERE employee_id = $1
		ORDER BY sent_at DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []notification.SMSLog
	for rows.Next() {
		var l notification.SMSLog
		err := rows.Scan(&l.ID, &l.EmployeeID, &l.PhoneNumber, &l.Message,
			&l.Status, &l.ProviderRef, &l.Error, &l.SentAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
