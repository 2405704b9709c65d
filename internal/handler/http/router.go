package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tala-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Contribution ContributionHandler
	Loan         LoanHandler
	Payroll      PayrollHandler
	Leave        LeaveHandler
	Report       ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tala-payroll"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/my", h.Employee.GetMyProfile)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Patch("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/time-in", h.Attendance.TimeIn)
				r.Post("/time-out", h.Attendance.TimeOut)
				r.Get("/my", h.Attendance.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
					r.Patch("/{id}", h.Attendance.Correct)
				})
			})

			r.Route("/contribution-tables", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Contribution.ListTables)
				r.Post("/", h.Contribution.CreateTable)
				r.Get("/{id}", h.Contribution.GetTable)
				r.Post("/{id}/activate", h.Contribution.ActivateTable)
				r.Delete("/{id}", h.Contribution.DeleteTable)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Post("/", h.Loan.Apply)
				r.Get("/my", h.Loan.ListMyLoans)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Loan.List)
					r.Get("/{id}", h.Loan.Get)
					r.Post("/{id}/approve", h.Loan.Approve)
					r.Post("/{id}/reject", h.Loan.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/payslips/my/{periodID}", h.Payroll.GetMyPayslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Route("/periods", func(r chi.Router) {
						r.Get("/", h.Payroll.ListPeriods)
						r.Post("/", h.Payroll.CreatePeriod)
						r.Patch("/{id}/status", h.Payroll.UpdatePeriodStatus)
						r.Post("/{id}/generate", h.Payroll.Generate)
						r.Get("/{id}/components", h.Payroll.ListPeriodComponents)
					})
					r.Get("/payslips/{employeeID}/{periodID}", h.Payroll.GetPayslip)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Request)
				r.Get("/my", h.Leave.ListMyRequests)
				r.Get("/balances/my", h.Leave.MyBalances)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.List)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/remittance/{program}", h.Report.ContributionRemittance)
				r.Get("/register/{periodID}", h.Report.PayrollRegister)
				r.Get("/payslip/{employeeID}/{periodID}", h.Report.PayslipPDF)
			})
		})
	})
	return r
}
