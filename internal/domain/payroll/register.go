package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// BuildRegisterPDF renders the payroll register for a period: one row per
// entry with the derived totals, plus a totals line. Used for the printable
// record once a period has entries; callers decide whether to expose it
// before processing.
func BuildRegisterPDF(period Period, entries []Entry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Registro de Nomina")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, period.PeriodName)
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Periodo: %s a %s", period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, "Empleado", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Bruto", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Deducciones", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Neto", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	totalGross, totalDeductions, totalNet := decimal.Zero, decimal.Zero, decimal.Zero
	for _, entry := range entries {
		pdf.CellFormat(70, 7, entry.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, entry.GrossPay.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, entry.TotalDeductions.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, entry.NetPay.StringFixed(2), "1", 1, "R", false, 0, "")
		totalGross = totalGross.Add(entry.GrossPay)
		totalDeductions = totalDeductions.Add(entry.TotalDeductions)
		totalNet = totalNet.Add(entry.NetPay)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, totalGross.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, totalDeductions.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, totalNet.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
