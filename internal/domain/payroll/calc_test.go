package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	value, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", raw, err)
	}
	return value
}

func TestComputeTotals(t *testing.T) {
	entry := Entry{
		BaseSalary: mustDecimal(t, "5000"),
		Bonuses:    mustDecimal(t, "500"),
		ISRTax:     mustDecimal(t, "300"),
	}

	gross, deductions, net := ComputeTotals(entry)
	if !gross.Equal(mustDecimal(t, "5500")) {
		t.Fatalf("expected gross 5500, got %s", gross)
	}
	if !deductions.Equal(mustDecimal(t, "300")) {
		t.Fatalf("expected deductions 300, got %s", deductions)
	}
	if !net.Equal(mustDecimal(t, "5200")) {
		t.Fatalf("expected net 5200, got %s", net)
	}
}

func TestComputeTotalsAllFields(t *testing.T) {
	entry := Entry{
		BaseSalary:      mustDecimal(t, "8000.50"),
		OvertimePay:     mustDecimal(t, "250.25"),
		Bonuses:         mustDecimal(t, "100.10"),
		Commissions:     mustDecimal(t, "99.90"),
		OtherEarnings:   mustDecimal(t, "0.25"),
		ISRTax:          mustDecimal(t, "940.33"),
		IMSSEmployee:    mustDecimal(t, "210.07"),
		Infonavit:       mustDecimal(t, "500.00"),
		LoansDeduction:  mustDecimal(t, "125.60"),
		OtherDeductions: mustDecimal(t, "10.00"),
	}

	gross, deductions, net := ComputeTotals(entry)
	if !gross.Equal(mustDecimal(t, "8451.00")) {
		t.Fatalf("expected gross 8451.00, got %s", gross)
	}
	if !deductions.Equal(mustDecimal(t, "1786.00")) {
		t.Fatalf("expected deductions 1786.00, got %s", deductions)
	}
	if !net.Equal(mustDecimal(t, "6665.00")) {
		t.Fatalf("expected net 6665.00, got %s", net)
	}
}

func TestComputeTotalsZeroEntry(t *testing.T) {
	gross, deductions, net := ComputeTotals(Entry{})
	if !gross.IsZero() || !deductions.IsZero() || !net.IsZero() {
		t.Fatalf("expected all-zero totals, got %s/%s/%s", gross, deductions, net)
	}
}

func TestComputeTotalsLargeValuesExact(t *testing.T) {
	entry := Entry{
		BaseSalary: mustDecimal(t, "999999999999.99"),
		Bonuses:    mustDecimal(t, "0.01"),
		ISRTax:     mustDecimal(t, "0.01"),
	}
	gross, _, net := ComputeTotals(entry)
	if !gross.Equal(mustDecimal(t, "1000000000000.00")) {
		t.Fatalf("expected exact gross, got %s", gross)
	}
	if !net.Equal(mustDecimal(t, "999999999999.99")) {
		t.Fatalf("expected exact net, got %s", net)
	}
}

func TestRecomputeRefreshesStaleTotals(t *testing.T) {
	entry := Entry{
		BaseSalary: mustDecimal(t, "5000"),
		NetPay:     mustDecimal(t, "123.45"),
	}
	entry.Recompute()
	if !entry.GrossPay.Equal(mustDecimal(t, "5000")) {
		t.Fatalf("expected gross 5000, got %s", entry.GrossPay)
	}
	if !entry.NetPay.Equal(mustDecimal(t, "5000")) {
		t.Fatalf("expected net 5000, got %s", entry.NetPay)
	}
}

func TestBiweeklySalary(t *testing.T) {
	cases := []struct {
		wage string
		want string
	}{
		{"10000", "5000"},
		{"16000", "8000"},
		{"9001", "4500.50"},
		{"0.01", "0.01"},
		{"0", "0"},
	}
	for _, tc := range cases {
		got := BiweeklySalary(mustDecimal(t, tc.wage))
		if !got.Equal(mustDecimal(t, tc.want)) {
			t.Fatalf("wage %s: expected %s, got %s", tc.wage, tc.want, got)
		}
	}
}
