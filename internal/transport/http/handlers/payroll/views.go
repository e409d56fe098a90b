package payrollhandler

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"nomina/internal/domain/payroll"
	"nomina/internal/transport/http/shared"
)

// moneyField is a lenient JSON amount: it accepts numbers or strings and
// never fails the decode. Interpretation happens in shared.Validator.Amount,
// where absent or malformed values coerce to zero and negatives are
// rejected. Editors always send the full field set, so coercion is a
// round-trip convenience, not data loss.
type moneyField struct {
	raw string
}

func (m *moneyField) UnmarshalJSON(data []byte) error {
	m.raw = strings.Trim(strings.TrimSpace(string(data)), `"`)
	if m.raw == "null" {
		m.raw = ""
	}
	return nil
}

type periodView struct {
	ID          string               `json:"id"`
	PeriodName  string               `json:"periodName"`
	StartDate   string               `json:"startDate"`
	EndDate     string               `json:"endDate"`
	PaymentDate string               `json:"paymentDate,omitempty"`
	Status      payroll.PeriodStatus `json:"status"`
	Notes       string               `json:"notes,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

type periodSummaryView struct {
	periodView
	EntryCount      int             `json:"entryCount"`
	TotalGross      decimal.Decimal `json:"totalGross"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TotalNet        decimal.Decimal `json:"totalNet"`
}

type entryView struct {
	ID           string `json:"id"`
	PeriodID     string `json:"periodId"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`

	BaseSalary      decimal.Decimal `json:"baseSalary"`
	OvertimeHours   decimal.Decimal `json:"overtimeHours"`
	OvertimePay     decimal.Decimal `json:"overtimePay"`
	Bonuses         decimal.Decimal `json:"bonuses"`
	Commissions     decimal.Decimal `json:"commissions"`
	OtherEarnings   decimal.Decimal `json:"otherEarnings"`
	ISRTax          decimal.Decimal `json:"isrTax"`
	IMSSEmployee    decimal.Decimal `json:"imssEmployee"`
	Infonavit       decimal.Decimal `json:"infonavit"`
	LoansDeduction  decimal.Decimal `json:"loansDeduction"`
	OtherDeductions decimal.Decimal `json:"otherDeductions"`

	GrossPay        decimal.Decimal `json:"grossPay"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`

	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type processResultView struct {
	PeriodID         string          `json:"periodId"`
	EntriesProcessed int             `json:"entriesProcessed"`
	TotalGross       decimal.Decimal `json:"totalGross"`
	TotalDeductions  decimal.Decimal `json:"totalDeductions"`
	TotalNet         decimal.Decimal `json:"totalNet"`
	PaymentDate      string          `json:"paymentDate"`
}

func periodToView(period payroll.Period) periodView {
	view := periodView{
		ID:         period.ID,
		PeriodName: period.PeriodName,
		StartDate:  shared.FormatDate(period.StartDate),
		EndDate:    shared.FormatDate(period.EndDate),
		Status:     period.Status,
		Notes:      period.Notes,
		CreatedAt:  period.CreatedAt,
	}
	if period.PaymentDate != nil {
		view.PaymentDate = shared.FormatDate(*period.PaymentDate)
	}
	return view
}

func summaryToView(summary payroll.PeriodSummary) periodSummaryView {
	return periodSummaryView{
		periodView:      periodToView(summary.Period),
		EntryCount:      summary.EntryCount,
		TotalGross:      summary.TotalGross,
		TotalDeductions: summary.TotalDeductions,
		TotalNet:        summary.TotalNet,
	}
}

func entryToView(entry payroll.Entry) entryView {
	return entryView{
		ID:              entry.ID,
		PeriodID:        entry.PeriodID,
		EmployeeID:      entry.EmployeeID,
		EmployeeName:    entry.EmployeeName,
		BaseSalary:      entry.BaseSalary,
		OvertimeHours:   entry.OvertimeHours,
		OvertimePay:     entry.OvertimePay,
		Bonuses:         entry.Bonuses,
		Commissions:     entry.Commissions,
		OtherEarnings:   entry.OtherEarnings,
		ISRTax:          entry.ISRTax,
		IMSSEmployee:    entry.IMSSEmployee,
		Infonavit:       entry.Infonavit,
		LoansDeduction:  entry.LoansDeduction,
		OtherDeductions: entry.OtherDeductions,
		GrossPay:        entry.GrossPay,
		TotalDeductions: entry.TotalDeductions,
		NetPay:          entry.NetPay,
		Notes:           entry.Notes,
		UpdatedAt:       entry.UpdatedAt,
	}
}

func processResultToView(result payroll.ProcessResult) processResultView {
	return processResultView{
		PeriodID:         result.PeriodID,
		EntriesProcessed: result.EntriesProcessed,
		TotalGross:       result.TotalGross,
		TotalDeductions:  result.TotalDeductions,
		TotalNet:         result.TotalNet,
		PaymentDate:      shared.FormatDate(result.PaymentDate),
	}
}
