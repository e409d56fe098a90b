package payroll

import (
	"bytes"
	"testing"
	"time"
)

func TestBuildRegisterPDF(t *testing.T) {
	period := Period{
		ID:         "p-1",
		PeriodName: "1ra Quincena Agosto 2025",
		StartDate:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
	}
	entry := Entry{
		EmployeeName: "Ana Torres",
		BaseSalary:   mustDecimal(t, "5000"),
		Bonuses:      mustDecimal(t, "500"),
		ISRTax:       mustDecimal(t, "300"),
	}
	entry.Recompute()

	pdfBytes, err := BuildRegisterPDF(period, []Entry{entry})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("expected a PDF document")
	}
}
