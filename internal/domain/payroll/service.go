package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nomina/internal/domain/directory"
)

// Roster is the read-only slice of the employee directory the engine needs.
type Roster interface {
	ListActiveEmployees(ctx context.Context) ([]directory.Employee, error)
}

// Notifier is informed after a period is processed. Implementations are
// fire-and-forget; the engine never waits on them.
type Notifier interface {
	PeriodProcessed(ctx context.Context, periodID, periodName, totalNet string)
}

type Service struct {
	store    StoreAPI
	roster   Roster
	notifier Notifier
}

func NewService(store StoreAPI, roster Roster, notifier Notifier) *Service {
	return &Service{store: store, roster: roster, notifier: notifier}
}

type CreatePeriodParams struct {
	PeriodName  string
	StartDate   time.Time
	EndDate     time.Time
	PaymentDate *time.Time
	Notes       string
}

func (s *Service) CreatePeriod(ctx context.Context, params CreatePeriodParams) (Period, error) {
	if strings.TrimSpace(params.PeriodName) == "" {
		return Period{}, fmt.Errorf("%w: period_name is required", ErrInvalidInput)
	}
	if params.StartDate.IsZero() || params.EndDate.IsZero() {
		return Period{}, fmt.Errorf("%w: start_date and end_date are required", ErrInvalidInput)
	}
	if params.StartDate.After(params.EndDate) {
		return Period{}, fmt.Errorf("%w: start_date must not be after end_date", ErrInvalidInput)
	}

	return s.store.CreatePeriod(ctx, Period{
		PeriodName:  strings.TrimSpace(params.PeriodName),
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		PaymentDate: params.PaymentDate,
		Status:      StatusOpen,
		Notes:       params.Notes,
	})
}

func (s *Service) ListPeriods(ctx context.Context, limit, offset int) ([]PeriodSummary, int, error) {
	total, err := s.store.CountPeriods(ctx)
	if err != nil {
		return nil, 0, err
	}
	summaries, err := s.store.ListPeriodSummaries(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func (s *Service) GetPeriod(ctx context.Context, periodID string) (PeriodWithEntries, error) {
	period, err := s.store.GetPeriod(ctx, periodID)
	if err != nil {
		return PeriodWithEntries{}, err
	}
	entries, err := s.store.ListEntries(ctx, periodID)
	if err != nil {
		return PeriodWithEntries{}, err
	}
	return PeriodWithEntries{Period: period, Entries: entries}, nil
}

func (s *Service) DeletePeriod(ctx context.Context, periodID string) error {
	return s.store.DeletePeriod(ctx, periodID)
}
