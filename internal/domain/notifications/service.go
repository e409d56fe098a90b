package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

const KindPeriodProcessed = "payroll.period.processed"

type Service struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// PeriodProcessed records a fire-and-forget notification that a payroll
// period was paid. Failures are logged and swallowed; processing never
// depends on notification delivery.
func (s *Service) PeriodProcessed(ctx context.Context, periodID, periodName, totalNet string) {
	if s == nil || s.db == nil {
		return
	}
	subject := fmt.Sprintf("Nomina procesada: %s", periodName)
	body := fmt.Sprintf("El periodo %s fue procesado con un neto total de %s.", periodName, totalNet)
	if _, err := s.db.Exec(ctx, `
    INSERT INTO notifications (kind, subject, body, reference_id)
    VALUES ($1, $2, $3, $4)
  `, KindPeriodProcessed, subject, body, periodID); err != nil {
		slog.Warn("notification insert failed", "periodId", periodID, "err", err)
	}
}
