package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PayslipLine is one labeled amount on the payslip.
type PayslipLine struct {
	Label  string
	Amount string
}

// PayslipData carries everything the payslip template renders.
type PayslipData struct {
	CompanyName  string
	EmployeeName string
	Position     string
	PeriodLabel  string

	Earnings   []PayslipLine
	Deductions []PayslipLine

	GrossPay        string
	TotalDeductions string
	NetPay          string
}

// Payslip renders a one-page payslip PDF.
func Payslip(data PayslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, data.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Payslip for "+data.PeriodLabel, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Employee", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, data.EmployeeName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Position", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, data.Position, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection := func(title string, lines []PayslipLine) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range lines {
			pdf.CellFormat(120, 7, line.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, line.Amount, "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}

	writeSection("Earnings", data.Earnings)
	writeSection("Deductions", data.Deductions)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 7, "Gross Pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, data.GrossPay, "T", 1, "R", false, 0, "")
	pdf.CellFormat(120, 7, "Total Deductions", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, data.TotalDeductions, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 9, "NET PAY", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 9, data.NetPay, "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
