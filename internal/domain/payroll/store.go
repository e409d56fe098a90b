package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nomina/internal/domain/ledger"
)

type Store struct {
	DB    *pgxpool.Pool
	Books *ledger.Store
}

func NewStore(db *pgxpool.Pool, books *ledger.Store) *Store {
	return &Store{DB: db, Books: books}
}

func (s *Store) CreatePeriod(ctx context.Context, period Period) (Period, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_periods (period_name, start_date, end_date, payment_date, status, notes)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at, updated_at
  `, period.PeriodName, period.StartDate, period.EndDate, period.PaymentDate, period.Status, period.Notes).
		Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		return Period{}, fmt.Errorf("create period: %w", err)
	}
	return period, nil
}

func (s *Store) CountPeriods(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM payroll_periods").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListPeriodSummaries(ctx context.Context, limit, offset int) ([]PeriodSummary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.id, p.period_name, p.start_date, p.end_date, p.payment_date, p.status, p.notes,
           p.created_at, p.updated_at,
           COUNT(e.id),
           COALESCE(SUM(e.gross_pay), 0),
           COALESCE(SUM(e.total_deductions), 0),
           COALESCE(SUM(e.net_pay), 0)
    FROM payroll_periods p
    LEFT JOIN payroll_entries e ON e.period_id = p.id
    GROUP BY p.id
    ORDER BY p.start_date DESC, p.created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []PeriodSummary
	for rows.Next() {
		var summary PeriodSummary
		if err := rows.Scan(
			&summary.ID, &summary.PeriodName, &summary.StartDate, &summary.EndDate,
			&summary.PaymentDate, &summary.Status, &summary.Notes,
			&summary.CreatedAt, &summary.UpdatedAt,
			&summary.EntryCount, &summary.TotalGross, &summary.TotalDeductions, &summary.TotalNet,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (s *Store) GetPeriod(ctx context.Context, periodID string) (Period, error) {
	var period Period
	err := s.DB.QueryRow(ctx, `
    SELECT id, period_name, start_date, end_date, payment_date, status, notes, created_at, updated_at
    FROM payroll_periods
    WHERE id = $1
  `, periodID).Scan(
		&period.ID, &period.PeriodName, &period.StartDate, &period.EndDate,
		&period.PaymentDate, &period.Status, &period.Notes, &period.CreatedAt, &period.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Period{}, fmt.Errorf("%w %s", ErrPeriodNotFound, periodID)
	}
	if err != nil {
		return Period{}, err
	}
	return period, nil
}

// DeletePeriod removes a period and, through the FK cascade, all of its
// entries. The status is checked under a row lock so a delete cannot race a
// concurrent processing run.
func (s *Store) DeletePeriod(ctx context.Context, periodID string) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status PeriodStatus
	err = tx.QueryRow(ctx, "SELECT status FROM payroll_periods WHERE id = $1 FOR UPDATE", periodID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w %s", ErrPeriodNotFound, periodID)
	}
	if err != nil {
		return err
	}
	if !status.CanDelete() {
		return fmt.Errorf("%w: period %s", ErrPeriodPaid, periodID)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM payroll_periods WHERE id = $1", periodID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
