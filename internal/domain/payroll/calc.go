package payroll

import "github.com/shopspring/decimal"

// ComputeTotals derives gross, total deductions and net from an entry's
// input fields. It is the only place the pay arithmetic lives; every write
// path recomputes through it so stored totals can never drift from inputs.
func ComputeTotals(e Entry) (gross, deductions, net decimal.Decimal) {
	gross = e.BaseSalary.
		Add(e.OvertimePay).
		Add(e.Bonuses).
		Add(e.Commissions).
		Add(e.OtherEarnings)
	deductions = e.ISRTax.
		Add(e.IMSSEmployee).
		Add(e.Infonavit).
		Add(e.LoansDeduction).
		Add(e.OtherDeductions)
	net = gross.Sub(deductions)
	return gross, deductions, net
}

// Recompute refreshes the derived fields from the current inputs.
func (e *Entry) Recompute() {
	e.GrossPay, e.TotalDeductions, e.NetPay = ComputeTotals(*e)
}

// BiweeklySalary is the deterministic half of a monthly wage used as the
// generated base for a quincena entry.
func BiweeklySalary(monthlyWage decimal.Decimal) decimal.Decimal {
	return monthlyWage.DivRound(decimal.NewFromInt(2), 2)
}
