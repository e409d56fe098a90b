package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"nomina/internal/domain/ledger"
)

// ProcessPeriod runs the payment transition as one atomic unit: lock the
// period row, verify it is still open and has entries, sum the stored
// totals, post exactly one journal, flip the status to paid. Any failure,
// the ledger post included, rolls the whole thing back and leaves the
// period open for a retry. The row lock serializes concurrent calls; the
// loser observes the paid status and gets a conflict.
func (s *Store) ProcessPeriod(ctx context.Context, periodID string, paymentDate time.Time) (ProcessResult, Period, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return ProcessResult{}, Period{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var period Period
	err = tx.QueryRow(ctx, `
    SELECT id, period_name, start_date, end_date, payment_date, status, notes, created_at, updated_at
    FROM payroll_periods
    WHERE id = $1
    FOR UPDATE
  `, periodID).Scan(
		&period.ID, &period.PeriodName, &period.StartDate, &period.EndDate,
		&period.PaymentDate, &period.Status, &period.Notes, &period.CreatedAt, &period.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return ProcessResult{}, Period{}, fmt.Errorf("%w %s", ErrPeriodNotFound, periodID)
	}
	if err != nil {
		return ProcessResult{}, Period{}, err
	}
	if !period.Status.CanProcess() {
		return ProcessResult{}, Period{}, fmt.Errorf("%w: period %s is %s", ErrPeriodNotOpen, periodID, period.Status)
	}

	result := ProcessResult{PeriodID: periodID, PaymentDate: paymentDate}
	err = tx.QueryRow(ctx, `
    SELECT COUNT(1),
           COALESCE(SUM(gross_pay), 0),
           COALESCE(SUM(total_deductions), 0),
           COALESCE(SUM(net_pay), 0)
    FROM payroll_entries
    WHERE period_id = $1
  `, periodID).Scan(&result.EntriesProcessed, &result.TotalGross, &result.TotalDeductions, &result.TotalNet)
	if err != nil {
		return ProcessResult{}, Period{}, err
	}
	if result.EntriesProcessed == 0 {
		return ProcessResult{}, Period{}, fmt.Errorf("%w: period %s", ErrNoEntries, periodID)
	}

	_, err = s.Books.PostJournal(ctx, tx, ledger.JournalRequest{
		SourceType:  ledger.SourcePayrollPeriod,
		SourceID:    periodID,
		Description: fmt.Sprintf("Nomina %s", period.PeriodName),
		Gross:       result.TotalGross,
		Deductions:  result.TotalDeductions,
		Net:         result.TotalNet,
		PostedOn:    paymentDate,
	})
	if errors.Is(err, ledger.ErrAlreadyPosted) {
		return ProcessResult{}, Period{}, fmt.Errorf("%w: period %s was already posted", ErrConflict, periodID)
	}
	if err != nil {
		return ProcessResult{}, Period{}, fmt.Errorf("%w: ledger post for period %s: %v", ErrDependency, periodID, err)
	}

	err = tx.QueryRow(ctx, `
    UPDATE payroll_periods
    SET status = $2, payment_date = $3, updated_at = now()
    WHERE id = $1
    RETURNING status, payment_date, updated_at
  `, periodID, StatusPaid, paymentDate).Scan(&period.Status, &period.PaymentDate, &period.UpdatedAt)
	if err != nil {
		return ProcessResult{}, Period{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return ProcessResult{}, Period{}, err
	}
	return result, period, nil
}
