package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/tala-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/tala-hr/payroll-backend-go/internal/handler/http"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/cron"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/database"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/sms"
	"github.com/tala-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tala-hr/payroll-backend-go/internal/service/attendance"
	authService "github.com/tala-hr/payroll-backend-go/internal/service/auth"
	contributionService "github.com/tala-hr/payroll-backend-go/internal/service/contribution"
	employeeService "github.com/tala-hr/payroll-backend-go/internal/service/employee"
	leaveService "github.com/tala-hr/payroll-backend-go/internal/service/leave"
	loanService "github.com/tala-hr/payroll-backend-go/internal/service/loan"
	notificationService "github.com/tala-hr/payroll-backend-go/internal/service/notification"
	payrollService "github.com/tala-hr/payroll-backend-go/internal/service/payroll"
	reportService "github.com/tala-hr/payroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	tableRepo := postgresql.NewContributionTableRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	salaryRepo := postgresql.NewSalaryComponentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	smsLogRepo := postgresql.NewSMSLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	smsClient := sms.NewClient(sms.Config{
		BaseURL:    cfg.SMS.BaseURL,
		APIKey:     cfg.SMS.APIKey,
		SenderName: cfg.SMS.SenderName,
	})
	notifier := notificationService.NewSMSNotificationService(smsClient, smsLogRepo, logger, cfg.SMS.APIKey != "")

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	contributionSvc := contributionService.NewContributionService(tableRepo)
	loanSvc := loanService.NewLoanService(loanRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, periodRepo, salaryRepo, employeeRepo, attendanceRepo, loanRepo, notifier, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	reportSvc := reportService.NewReportService(employeeRepo, tableRepo, periodRepo, salaryRepo, cfg.App.CompanyName, logger)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Contribution: appHTTP.NewContributionHandler(contributionSvc),
		Loan:         appHTTP.NewLoanHandler(loanSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	autoCloser := attendanceService.NewAutoCloser(attendanceRepo, logger)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("attendance-auto-close", time.Hour, autoCloser.Run)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
