package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
	"github.com/tala-hr/payroll-backend-go/internal/domain/employee"
	domain "github.com/tala-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/tala-hr/payroll-backend-go/internal/domain/report"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/export"
	"github.com/tala-hr/payroll-backend-go/internal/pkg/pdf"
	"github.com/tala-hr/payroll-backend-go/internal/service/payroll"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	tableRepo    contribution.TableRepository
	periodRepo   domain.PeriodRepository
	salaryRepo   domain.SalaryComponentRepository
	companyName  string
	logger       *slog.Logger
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	tableRepo contribution.TableRepository,
	periodRepo domain.PeriodRepository,
	salaryRepo domain.SalaryComponentRepository,
	companyName string,
	logger *slog.Logger,
) report.Service {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		tableRepo:    tableRepo,
		periodRepo:   periodRepo,
		salaryRepo:   salaryRepo,
		companyName:  companyName,
		logger:       logger,
	}
}

// ContributionRemittance implements report.Service. Shares come from the
// program's active table and the employee's derived monthly compensation,
// not from the fixed per-employee deduction amounts.
func (s *ReportServiceImpl) ContributionRemittance(ctx context.Context, program string, format report.Format) (report.File, error) {
	if !format.Valid() {
		format = report.FormatXLSX
	}

	kind := contribution.Kind(strings.ToLower(program))

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return report.File{}, fmt.Errorf("list active employees: %w", err)
	}

	table, err := s.activeTableFor(ctx, kind)
	if err != nil {
		return report.File{}, err
	}

	headers := []string{"Employee", "Position", "Monthly Compensation", "Employee Share", "Employer Share", "Total"}
	rows := make([][]interface{}, 0, len(employees))

	for _, emp := range employees {
		monthly := payroll.MonthlyCompensation(emp.RatePerDay)
		shares, ok := s.sharesFor(kind, monthly, table)
		if !ok {
			s.logger.Warn("no contribution bracket covers compensation, reporting zero",
				"program", kind, "employee_id", emp.ID, "monthly_compensation", monthly.String())
		}
		rows = append(rows, []interface{}{
			emp.FullName,
			emp.Position,
			monthly.StringFixed(2),
			shares.Employee.StringFixed(2),
			shares.Employer.StringFixed(2),
			shares.Total().StringFixed(2),
		})
	}

	name := fmt.Sprintf("%s-remittance-%s", kind, time.Now().Format("2006-01"))
	return s.render(string(kind)+" Remittance", name, headers, rows, format)
}

func (s *ReportServiceImpl) activeTableFor(ctx context.Context, kind contribution.Kind) (*contribution.Table, error) {
	var tableType contribution.TableType
	switch kind {
	case contribution.KindSSS:
		tableType = contribution.TableTypeSSS
	case contribution.KindPhilHealth:
		tableType = contribution.TableTypePhilHealth
	case contribution.KindPagIbig, contribution.KindTax:
		// Pag-IBIG uses the fixed percentage rule and withholding tax is
		// formula-based; neither needs a stored table.
		return nil, nil
	default:
		return nil, contribution.ErrInvalidTableType
	}

	table, err := s.tableRepo.GetActive(ctx, tableType)
	if err != nil {
		// Missing table degrades to zero shares; warn instead of failing
		// so the rest of the report still renders.
		s.logger.Warn("no active contribution table, shares will be zero",
			"type", tableType, "error", err)
		return nil, nil
	}
	return &table, nil
}

func (s *ReportServiceImpl) sharesFor(kind contribution.Kind, monthly decimal.Decimal, table *contribution.Table) (payroll.Shares, bool) {
	switch kind {
	case contribution.KindSSS:
		return payroll.ComputeSSS(monthly, table)
	case contribution.KindPhilHealth:
		return payroll.ComputePhilHealth(monthly, table)
	case contribution.KindPagIbig:
		return payroll.ComputePagIbig(monthly), true
	case contribution.KindTax:
		tax := payroll.ComputeWithholdingTax(monthly)
		return payroll.Shares{Employee: tax, Employer: decimal.Zero}, true
	}
	return payroll.Shares{}, false
}

// PayrollRegister implements report.Service.
func (s *ReportServiceImpl) PayrollRegister(ctx context.Context, periodID string, format report.Format) (report.File, error) {
	if !format.Valid() {
		format = report.FormatXLSX
	}

	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return report.File{}, err
	}

	components, err := s.salaryRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return report.File{}, fmt.Errorf("list salary components: %w", err)
	}

	headers := []string{
		"Employee", "Position", "Basic Pay", "Overtime", "Holiday Pay",
		"Allowance", "Additional", "SSS", "PhilHealth", "Pag-IBIG", "Tax",
		"Loans", "Other Deductions", "Gross Pay", "Total Deductions", "Net Pay",
	}
	rows := make([][]interface{}, 0, len(components))

	for _, sc := range components {
		var other decimal.Decimal
		for _, d := range sc.Deductions {
			other = other.Add(d.Amount)
		}

		name, position := "", ""
		if sc.EmployeeName != nil {
			name = *sc.EmployeeName
		}
		if sc.Position != nil {
			position = *sc.Position
		}

		rows = append(rows, []interface{}{
			name, position,
			sc.BasicPay.StringFixed(2),
			sc.Overtime.StringFixed(2),
			sc.HolidayPay.StringFixed(2),
			sc.Allowance.StringFixed(2),
			sc.AdditionalCompensation.StringFixed(2),
			sc.Contributions.SSS.StringFixed(2),
			sc.Contributions.PhilHealth.StringFixed(2),
			sc.Contributions.PagIbig.StringFixed(2),
			sc.Contributions.Tax.StringFixed(2),
			sc.LoanAmortization.StringFixed(2),
			other.StringFixed(2),
			sc.GrossPay.StringFixed(2),
			sc.TotalDeductions.StringFixed(2),
			sc.NetPay.StringFixed(2),
		})
	}

	name := fmt.Sprintf("payroll-register-%s", period.StartDate.Format("2006-01-02"))
	return s.render("Payroll Register", name, headers, rows, format)
}

// PayslipPDF implements report.Service.
func (s *ReportServiceImpl) PayslipPDF(ctx context.Context, employeeID, periodID string) (report.File, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return report.File{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.File{}, err
	}

	sc, err := s.salaryRepo.GetByEmployeeAndPeriod(ctx, employeeID, periodID)
	if err != nil {
		return report.File{}, err
	}

	earnings := []pdf.PayslipLine{
		{Label: "Basic Pay", Amount: sc.BasicPay.StringFixed(2)},
		{Label: "Overtime", Amount: sc.Overtime.StringFixed(2)},
		{Label: "Holiday Pay", Amount: sc.HolidayPay.StringFixed(2)},
	}
	if !sc.Allowance.IsZero() {
		earnings = append(earnings, pdf.PayslipLine{Label: "Allowance", Amount: sc.Allowance.StringFixed(2)})
	}
	if !sc.AdditionalCompensation.IsZero() {
		earnings = append(earnings, pdf.PayslipLine{Label: "Additional Compensation", Amount: sc.AdditionalCompensation.StringFixed(2)})
	}

	deductions := []pdf.PayslipLine{
		{Label: "SSS", Amount: sc.Contributions.SSS.StringFixed(2)},
		{Label: "PhilHealth", Amount: sc.Contributions.PhilHealth.StringFixed(2)},
		{Label: "Pag-IBIG", Amount: sc.Contributions.PagIbig.StringFixed(2)},
		{Label: "Withholding Tax", Amount: sc.Contributions.Tax.StringFixed(2)},
	}
	if !sc.LoanAmortization.IsZero() {
		deductions = append(deductions, pdf.PayslipLine{Label: "Loan Amortization", Amount: sc.LoanAmortization.StringFixed(2)})
	}
	for _, d := range sc.Deductions {
		deductions = append(deductions, pdf.PayslipLine{Label: d.Name, Amount: d.Amount.StringFixed(2)})
	}

	content, err := pdf.Payslip(pdf.PayslipData{
		CompanyName:  s.companyName,
		EmployeeName: emp.FullName,
		Position:     emp.Position,
		PeriodLabel: fmt.Sprintf("%s to %s",
			period.StartDate.Format("Jan 2, 2006"), period.EndDate.Format("Jan 2, 2006")),
		Earnings:        earnings,
		Deductions:      deductions,
		GrossPay:        sc.GrossPay.StringFixed(2),
		TotalDeductions: sc.TotalDeductions.StringFixed(2),
		NetPay:          sc.NetPay.StringFixed(2),
	})
	if err != nil {
		return report.File{}, err
	}

	return report.File{
		Name:        fmt.Sprintf("payslip-%s-%s.pdf", emp.ID, period.StartDate.Format("2006-01-02")),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func (s *ReportServiceImpl) render(sheetName, fileName string, headers []string, rows [][]interface{}, format report.Format) (report.File, error) {
	if format == report.FormatCSV {
		csvRows := make([][]string, 0, len(rows))
		for _, row := range rows {
			csvRow := make([]string, 0, len(row))
			for _, cell := range row {
				csvRow = append(csvRow, fmt.Sprint(cell))
			}
			csvRows = append(csvRows, csvRow)
		}

		content, err := export.CSV(headers, csvRows)
		if err != nil {
			return report.File{}, err
		}
		return report.File{
			Name:        fileName + ".csv",
			ContentType: format.ContentType(),
			Content:     content,
		}, nil
	}

	content, err := export.XLSX(sheetName, headers, rows)
	if err != nil {
		return report.File{}, err
	}
	return report.File{
		Name:        fileName + ".xlsx",
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
