package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const entryColumns = `
  e.id, e.period_id, e.employee_id, emp.name,
  e.base_salary, e.overtime_hours, e.overtime_pay, e.bonuses, e.commissions, e.other_earnings,
  e.isr_tax, e.imss_employee, e.infonavit, e.loans_deduction, e.other_deductions,
  e.gross_pay, e.total_deductions, e.net_pay,
  e.notes, e.created_at, e.updated_at`

func scanEntry(row pgx.Row) (Entry, error) {
	var entry Entry
	err := row.Scan(
		&entry.ID, &entry.PeriodID, &entry.EmployeeID, &entry.EmployeeName,
		&entry.BaseSalary, &entry.OvertimeHours, &entry.OvertimePay, &entry.Bonuses,
		&entry.Commissions, &entry.OtherEarnings,
		&entry.ISRTax, &entry.IMSSEmployee, &entry.Infonavit, &entry.LoansDeduction,
		&entry.OtherDeductions,
		&entry.GrossPay, &entry.TotalDeductions, &entry.NetPay,
		&entry.Notes, &entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

func (s *Store) ListEntries(ctx context.Context, periodID string) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+entryColumns+`
    FROM payroll_entries e
    JOIN employees emp ON emp.id = e.employee_id
    WHERE e.period_id = $1
    ORDER BY emp.name
  `, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) GetEntry(ctx context.Context, entryID string) (Entry, PeriodStatus, error) {
	var status PeriodStatus
	row := s.DB.QueryRow(ctx, `
    SELECT`+entryColumns+`, p.status
    FROM payroll_entries e
    JOIN employees emp ON emp.id = e.employee_id
    JOIN payroll_periods p ON p.id = e.period_id
    WHERE e.id = $1
  `, entryID)

	var entry Entry
	err := row.Scan(
		&entry.ID, &entry.PeriodID, &entry.EmployeeID, &entry.EmployeeName,
		&entry.BaseSalary, &entry.OvertimeHours, &entry.OvertimePay, &entry.Bonuses,
		&entry.Commissions, &entry.OtherEarnings,
		&entry.ISRTax, &entry.IMSSEmployee, &entry.Infonavit, &entry.LoansDeduction,
		&entry.OtherDeductions,
		&entry.GrossPay, &entry.TotalDeductions, &entry.NetPay,
		&entry.Notes, &entry.CreatedAt, &entry.UpdatedAt,
		&status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, "", fmt.Errorf("%w %s", ErrEntryNotFound, entryID)
	}
	if err != nil {
		return Entry{}, "", err
	}
	return entry, status, nil
}

// SaveEntry persists the complete entry, derived fields included, in one
// statement. The owning period row is share-locked first so the save
// serializes against a concurrent processing run; a period that already
// flipped to paid rejects the write.
func (s *Store) SaveEntry(ctx context.Context, entry Entry) (Entry, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Entry{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status PeriodStatus
	err = tx.QueryRow(ctx, "SELECT status FROM payroll_periods WHERE id = $1 FOR SHARE", entry.PeriodID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w %s", ErrPeriodNotFound, entry.PeriodID)
	}
	if err != nil {
		return Entry{}, err
	}
	if !status.Editable() {
		return Entry{}, fmt.Errorf("%w: period %s is %s", ErrPeriodImmutable, entry.PeriodID, status)
	}

	err = tx.QueryRow(ctx, `
    UPDATE payroll_entries SET
      base_salary = $2, overtime_hours = $3, overtime_pay = $4, bonuses = $5,
      commissions = $6, other_earnings = $7,
      isr_tax = $8, imss_employee = $9, infonavit = $10, loans_deduction = $11,
      other_deductions = $12,
      gross_pay = $13, total_deductions = $14, net_pay = $15,
      notes = $16, updated_at = now()
    WHERE id = $1
    RETURNING updated_at
  `, entry.ID,
		entry.BaseSalary, entry.OvertimeHours, entry.OvertimePay, entry.Bonuses,
		entry.Commissions, entry.OtherEarnings,
		entry.ISRTax, entry.IMSSEmployee, entry.Infonavit, entry.LoansDeduction,
		entry.OtherDeductions,
		entry.GrossPay, entry.TotalDeductions, entry.NetPay,
		entry.Notes,
	).Scan(&entry.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w %s", ErrEntryNotFound, entry.ID)
	}
	if err != nil {
		return Entry{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// InsertMissingEntries adds the given entries, skipping any employee that
// already has one in the period. The (period_id, employee_id) unique index
// does the duplicate detection; re-runs only fill gaps.
func (s *Store) InsertMissingEntries(ctx context.Context, periodID string, entries []Entry) (int, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status PeriodStatus
	err = tx.QueryRow(ctx, "SELECT status FROM payroll_periods WHERE id = $1 FOR SHARE", periodID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w %s", ErrPeriodNotFound, periodID)
	}
	if err != nil {
		return 0, err
	}
	if status != StatusOpen {
		return 0, fmt.Errorf("%w: period %s is %s", ErrPeriodNotOpen, periodID, status)
	}

	created := 0
	for _, entry := range entries {
		tag, err := tx.Exec(ctx, `
      INSERT INTO payroll_entries (
        period_id, employee_id,
        base_salary, overtime_hours, overtime_pay, bonuses, commissions, other_earnings,
        isr_tax, imss_employee, infonavit, loans_deduction, other_deductions,
        gross_pay, total_deductions, net_pay, notes
      )
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
      ON CONFLICT (period_id, employee_id) DO NOTHING
    `, periodID, entry.EmployeeID,
			entry.BaseSalary, entry.OvertimeHours, entry.OvertimePay, entry.Bonuses,
			entry.Commissions, entry.OtherEarnings,
			entry.ISRTax, entry.IMSSEmployee, entry.Infonavit, entry.LoansDeduction,
			entry.OtherDeductions,
			entry.GrossPay, entry.TotalDeductions, entry.NetPay, entry.Notes,
		)
		if err != nil {
			return 0, err
		}
		created += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return created, nil
}
