package payroll

import (
	"context"
	"log/slog"
	"time"
)

// ProcessPayroll finalizes a period: it sums the stored entry totals, posts
// one journal to the ledger and flips the period to paid, all inside a
// single store transaction. A period that is already paid rejects the call;
// the status guard, not caller discipline, is what prevents double payment.
func (s *Service) ProcessPayroll(ctx context.Context, periodID string, paymentDate time.Time) (ProcessResult, error) {
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	result, period, err := s.store.ProcessPeriod(ctx, periodID, paymentDate)
	if err != nil {
		return ProcessResult{}, err
	}

	slog.Info("payroll period processed",
		"periodId", period.ID,
		"periodName", period.PeriodName,
		"entries", result.EntriesProcessed,
		"totalNet", result.TotalNet.String(),
	)
	if s.notifier != nil {
		s.notifier.PeriodProcessed(ctx, period.ID, period.PeriodName, result.TotalNet.String())
	}
	return result, nil
}
