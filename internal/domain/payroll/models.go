package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus is the closed set of payroll period states. Transitions are
// checked through the methods below, never by comparing raw strings at call
// sites.
type PeriodStatus string

const (
	StatusOpen       PeriodStatus = "open"
	StatusProcessing PeriodStatus = "processing"
	StatusPaid       PeriodStatus = "paid"
	StatusClosed     PeriodStatus = "closed"
)

func ParseStatus(raw string) (PeriodStatus, bool) {
	switch PeriodStatus(raw) {
	case StatusOpen, StatusProcessing, StatusPaid, StatusClosed:
		return PeriodStatus(raw), true
	}
	return "", false
}

// Editable reports whether entries owned by a period in this status may
// still be mutated.
func (s PeriodStatus) Editable() bool {
	switch s {
	case StatusOpen, StatusProcessing:
		return true
	case StatusPaid, StatusClosed:
		return false
	}
	return false
}

// CanProcess reports whether the period may be handed to payment
// processing. Only open periods qualify; paid is terminal.
func (s PeriodStatus) CanProcess() bool {
	return s == StatusOpen
}

// CanDelete reports whether the period may be removed. Paid periods are
// permanent records.
func (s PeriodStatus) CanDelete() bool {
	return s != StatusPaid
}

type Period struct {
	ID          string
	PeriodName  string
	StartDate   time.Time
	EndDate     time.Time
	PaymentDate *time.Time
	Status      PeriodStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PeriodSummary is the list projection: the period plus aggregates computed
// at read time from its entries. The aggregates are never stored.
type PeriodSummary struct {
	Period
	EntryCount      int
	TotalGross      decimal.Decimal
	TotalNet        decimal.Decimal
	TotalDeductions decimal.Decimal
}

// Entry is one employee's pay record within a period. The earnings and
// deduction fields are caller-editable; GrossPay, TotalDeductions and NetPay
// are derived and recomputed from the full input set on every write.
type Entry struct {
	ID           string
	PeriodID     string
	EmployeeID   string
	EmployeeName string

	BaseSalary      decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimePay     decimal.Decimal
	Bonuses         decimal.Decimal
	Commissions     decimal.Decimal
	OtherEarnings   decimal.Decimal
	ISRTax          decimal.Decimal
	IMSSEmployee    decimal.Decimal
	Infonavit       decimal.Decimal
	LoansDeduction  decimal.Decimal
	OtherDeductions decimal.Decimal

	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryChanges carries the full editable field set for an entry save.
// Callers always submit every field; absent values arrive as zero.
type EntryChanges struct {
	BaseSalary      decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimePay     decimal.Decimal
	Bonuses         decimal.Decimal
	Commissions     decimal.Decimal
	OtherEarnings   decimal.Decimal
	ISRTax          decimal.Decimal
	IMSSEmployee    decimal.Decimal
	Infonavit       decimal.Decimal
	LoansDeduction  decimal.Decimal
	OtherDeductions decimal.Decimal
	Notes           string
}

type PeriodWithEntries struct {
	Period
	Entries []Entry
}

// ProcessResult reports what a successful payment run covered.
type ProcessResult struct {
	PeriodID         string
	EntriesProcessed int
	TotalGross       decimal.Decimal
	TotalDeductions  decimal.Decimal
	TotalNet         decimal.Decimal
	PaymentDate      time.Time
}
