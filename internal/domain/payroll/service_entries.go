package payroll

import (
	"context"
	"fmt"
)

// GenerateEntries materializes one entry per active employee that does not
// already have one in the period. The base salary defaults to half the
// monthly wage; every other earning and deduction starts at zero so a human
// reviews and adjusts them before processing. The engine never guesses
// bonuses, taxes or deductions.
func (s *Service) GenerateEntries(ctx context.Context, periodID string) (int, error) {
	period, err := s.store.GetPeriod(ctx, periodID)
	if err != nil {
		return 0, err
	}
	if period.Status != StatusOpen {
		return 0, fmt.Errorf("%w: period %s is %s", ErrPeriodNotOpen, periodID, period.Status)
	}

	employees, err := s.roster.ListActiveEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: employee directory: %v", ErrDependency, err)
	}

	entries := make([]Entry, 0, len(employees))
	for _, employee := range employees {
		if !employee.IsActive {
			continue
		}
		entry := Entry{
			PeriodID:   periodID,
			EmployeeID: employee.ID,
			BaseSalary: BiweeklySalary(employee.MonthlyWage),
		}
		entry.Recompute()
		entries = append(entries, entry)
	}

	return s.store.InsertMissingEntries(ctx, periodID, entries)
}

// UpdateEntry applies the full editable field set to an entry and recomputes
// the derived totals from scratch before persisting. Incremental updates are
// deliberately impossible; totals are always a function of the inputs that
// get stored with them.
func (s *Service) UpdateEntry(ctx context.Context, entryID string, changes EntryChanges) (Entry, error) {
	for field, value := range map[string]interface{ IsNegative() bool }{
		"base_salary":      changes.BaseSalary,
		"overtime_hours":   changes.OvertimeHours,
		"overtime_pay":     changes.OvertimePay,
		"bonuses":          changes.Bonuses,
		"commissions":      changes.Commissions,
		"other_earnings":   changes.OtherEarnings,
		"isr_tax":          changes.ISRTax,
		"imss_employee":    changes.IMSSEmployee,
		"infonavit":        changes.Infonavit,
		"loans_deduction":  changes.LoansDeduction,
		"other_deductions": changes.OtherDeductions,
	} {
		if value.IsNegative() {
			return Entry{}, fmt.Errorf("%w: %s must not be negative for entry %s", ErrInvalidInput, field, entryID)
		}
	}

	entry, status, err := s.store.GetEntry(ctx, entryID)
	if err != nil {
		return Entry{}, err
	}
	if !status.Editable() {
		return Entry{}, fmt.Errorf("%w: entry %s belongs to a %s period", ErrPeriodImmutable, entryID, status)
	}

	entry.BaseSalary = changes.BaseSalary
	entry.OvertimeHours = changes.OvertimeHours
	entry.OvertimePay = changes.OvertimePay
	entry.Bonuses = changes.Bonuses
	entry.Commissions = changes.Commissions
	entry.OtherEarnings = changes.OtherEarnings
	entry.ISRTax = changes.ISRTax
	entry.IMSSEmployee = changes.IMSSEmployee
	entry.Infonavit = changes.Infonavit
	entry.LoansDeduction = changes.LoansDeduction
	entry.OtherDeductions = changes.OtherDeductions
	entry.Notes = changes.Notes
	entry.Recompute()

	return s.store.SaveEntry(ctx, entry)
}

func (s *Service) GetEntry(ctx context.Context, entryID string) (Entry, error) {
	entry, _, err := s.store.GetEntry(ctx, entryID)
	return entry, err
}
