package report

import "context"

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

func (f Format) Valid() bool {
	return f == FormatXLSX || f == FormatCSV
}

// ContentType returns the MIME type for download responses.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// File is a generated downloadable report.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Service builds statutory remittance reports, the payroll register and
// payslip PDFs for a payroll period.
type Service interface {
	// ContributionRemittance lists every active employee with the EE/ER
	// shares for one statutory program, computed from the program's active
	// contribution table.
	ContributionRemittance(ctx context.Context, program string, format Format) (File, error)

	// PayrollRegister exports all salary components generated for a period.
	PayrollRegister(ctx context.Context, periodID string, format Format) (File, error)

	// PayslipPDF renders one employee's payslip for a period.
	PayslipPDF(ctx context.Context, employeeID, periodID string) (File, error)
}
