package payroll

import (
	"context"
	"time"
)

// StoreAPI is the persistence boundary for periods and entries. The pgx
// implementation lives in store.go; tests substitute an in-memory fake.
type StoreAPI interface {
	CreatePeriod(ctx context.Context, period Period) (Period, error)
	CountPeriods(ctx context.Context) (int, error)
	ListPeriodSummaries(ctx context.Context, limit, offset int) ([]PeriodSummary, error)
	GetPeriod(ctx context.Context, periodID string) (Period, error)
	DeletePeriod(ctx context.Context, periodID string) error
	ListEntries(ctx context.Context, periodID string) ([]Entry, error)
	GetEntry(ctx context.Context, entryID string) (Entry, PeriodStatus, error)
	SaveEntry(ctx context.Context, entry Entry) (Entry, error)
	InsertMissingEntries(ctx context.Context, periodID string, entries []Entry) (int, error)
	ProcessPeriod(ctx context.Context, periodID string, paymentDate time.Time) (ProcessResult, Period, error)
}
