package response

import (
	"errors"
	"net/http"

	"github.com/tala-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/tala-hr/payroll-backend-go/internal/domain/auth"
	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/domain/employee"
	"github.com/tala-hr/payroll-backend-go/internal/domain/leave"
	"github.com/tala-hr/payroll-backend-go/internal/domain/loan"
	"github.com/tala-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/tala-hr/payroll-backend-go/internal/domain/user"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, employee.ErrPhoneNumberTaken):
		Conflict(w, "Phone number already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyTimedIn):
		Conflict(w, "Already timed in for this date")
	case errors.Is(err, attendance.ErrNotTimedIn):
		BadRequest(w, "No time-in recorded for this date", nil)
	case errors.Is(err, attendance.ErrAlreadyTimedOut):
		Conflict(w, "Already timed out for this date")
	case errors.Is(err, attendance.ErrTimeOutBeforeIn):
		BadRequest(w, "Time-out cannot be before time-in", nil)

	// Contribution table errors
	case errors.Is(err, contribution.ErrTableNotFound):
		NotFound(w, "Contribution table not found")
	case errors.Is(err, contribution.ErrNoActiveTable):
		NotFound(w, "No active contribution table for type")
	case errors.Is(err, contribution.ErrInvalidTableType):
		BadRequest(w, "Invalid contribution table type", nil)
	case errors.Is(err, contribution.ErrTableInUse):
		Conflict(w, "Contribution table is referenced by generated payroll")

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, loan.ErrLoanAlreadyProcessed):
		Conflict(w, "Loan has already been processed")
	case errors.Is(err, loan.ErrRejectionReasonRequired):
		BadRequest(w, "Rejection reason is required", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodCompleted):
		Conflict(w, "Payroll period is already completed")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		BadRequest(w, "Invalid period status transition", nil)
	case errors.Is(err, payroll.ErrSalaryComponentNotFound):
		NotFound(w, "Salary component not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
