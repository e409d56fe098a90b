package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// SourcePayrollPeriod tags journal rows posted by payroll processing.
const SourcePayrollPeriod = "payroll_period"

var ErrAlreadyPosted = errors.New("journal already posted for source")

// JournalRequest carries the aggregate figures for one posting. One request
// is posted per payroll period, never per entry.
type JournalRequest struct {
	SourceType  string
	SourceID    string
	Description string
	Gross       decimal.Decimal
	Deductions  decimal.Decimal
	Net         decimal.Decimal
	PostedOn    time.Time
}

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx so postings can join
// a caller-owned transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// PostJournal writes one journal row. The unique constraint on
// (source_type, source_id) makes a second posting for the same period fail
// with ErrAlreadyPosted regardless of caller behaviour.
func (s *Store) PostJournal(ctx context.Context, q Querier, req JournalRequest) (string, error) {
	var id string
	err := q.QueryRow(ctx, `
    INSERT INTO journal_entries (source_type, source_id, description, gross, deductions, net, posted_on)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, req.SourceType, req.SourceID, req.Description, req.Gross, req.Deductions, req.Net, req.PostedOn).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrAlreadyPosted
		}
		return "", err
	}
	return id, nil
}
