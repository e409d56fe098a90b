package shared

import (
	"testing"
	"time"
)

func TestAmountCoercion(t *testing.T) {
	cases := []struct {
		name       string
		raw        string
		want       string
		wantIssues bool
	}{
		{name: "plain amount", raw: "500", want: "500"},
		{name: "decimal amount", raw: "1234.56", want: "1234.56"},
		{name: "padded amount", raw: "  42.50  ", want: "42.5"},
		{name: "empty coerces to zero", raw: "", want: "0"},
		{name: "garbage coerces to zero", raw: "abc", want: "0"},
		{name: "negative rejected", raw: "-1", want: "0", wantIssues: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator()
			got := v.Amount("bonuses", tc.raw)
			if got.String() != tc.want {
				t.Fatalf("Amount(%q) = %s, want %s", tc.raw, got, tc.want)
			}
			if v.HasIssues() != tc.wantIssues {
				t.Fatalf("Amount(%q) issues = %v, want %v", tc.raw, v.HasIssues(), tc.wantIssues)
			}
		})
	}
}

func TestDateValidation(t *testing.T) {
	v := NewValidator()

	parsed, ok := v.Date("start_date", "2025-08-01")
	if !ok || !parsed.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2025-08-01, got %v ok=%v", parsed, ok)
	}

	if _, ok := v.Date("end_date", "15/08/2025"); ok {
		t.Fatal("expected rejection of non ISO date")
	}
	if !v.HasIssues() {
		t.Fatal("expected an issue recorded for the bad date")
	}
}

func TestOptionalDate(t *testing.T) {
	v := NewValidator()

	parsed, ok := v.OptionalDate("payment_date", "")
	if !ok || !parsed.IsZero() {
		t.Fatalf("expected empty optional date to pass, got %v ok=%v", parsed, ok)
	}
	if v.HasIssues() {
		t.Fatal("expected no issues for an absent optional date")
	}

	if _, ok := v.OptionalDate("payment_date", "not-a-date"); ok {
		t.Fatal("expected rejection of malformed optional date")
	}
}

func TestDateOrder(t *testing.T) {
	start := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	v := NewValidator()
	v.DateOrder("start_date", start, "end_date", end)
	if !v.HasIssues() {
		t.Fatal("expected issues for inverted range")
	}

	v = NewValidator()
	v.DateOrder("start_date", end, "end_date", start)
	if v.HasIssues() {
		t.Fatal("expected no issues for ordered range")
	}

	v = NewValidator()
	v.DateOrder("start_date", time.Time{}, "end_date", end)
	if v.HasIssues() {
		t.Fatal("expected zero start to skip the ordering check")
	}
}

func TestIssuesSortedAndCopied(t *testing.T) {
	v := NewValidator()
	v.Add("zeta", "late issue")
	v.Add("alpha", "early issue")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Field != "alpha" || issues[1].Field != "zeta" {
		t.Fatalf("expected field-sorted issues, got %+v", issues)
	}

	issues[0].Field = "mutated"
	if v.Issues()[0].Field != "alpha" {
		t.Fatal("expected Issues to return a copy")
	}
}

func TestParseDateAcceptsRFC3339(t *testing.T) {
	parsed, err := ParseDate("2025-08-15T00:00:00Z")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if FormatDate(parsed) != "2025-08-15" {
		t.Fatalf("expected 2025-08-15, got %s", FormatDate(parsed))
	}
	if FormatDate(time.Time{}) != "" {
		t.Fatal("expected zero time to format as empty string")
	}
}
