package payroll

import "testing"

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"open", "processing", "paid", "closed"} {
		status, ok := ParseStatus(raw)
		if !ok {
			t.Fatalf("expected %q to parse", raw)
		}
		if string(status) != raw {
			t.Fatalf("expected %q, got %q", raw, status)
		}
	}

	if _, ok := ParseStatus("finalized"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
	if _, ok := ParseStatus(""); ok {
		t.Fatal("expected empty status to be rejected")
	}
}

func TestStatusGating(t *testing.T) {
	cases := []struct {
		status     PeriodStatus
		editable   bool
		canProcess bool
		canDelete  bool
	}{
		{StatusOpen, true, true, true},
		{StatusProcessing, true, false, true},
		{StatusPaid, false, false, false},
		{StatusClosed, false, false, true},
	}
	for _, tc := range cases {
		if got := tc.status.Editable(); got != tc.editable {
			t.Fatalf("%s: Editable = %v, want %v", tc.status, got, tc.editable)
		}
		if got := tc.status.CanProcess(); got != tc.canProcess {
			t.Fatalf("%s: CanProcess = %v, want %v", tc.status, got, tc.canProcess)
		}
		if got := tc.status.CanDelete(); got != tc.canDelete {
			t.Fatalf("%s: CanDelete = %v, want %v", tc.status, got, tc.canDelete)
		}
	}
}
