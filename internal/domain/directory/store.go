package directory

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListActiveEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, role, monthly_wage, is_active
    FROM employees
    WHERE is_active = true
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var employee Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Role, &employee.MonthlyWage, &employee.IsActive); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

// EstimateBiweekly sums monthly_wage / 2 over the active roster.
func (s *Store) EstimateBiweekly(ctx context.Context) (BiweeklyEstimate, error) {
	employees, err := s.ListActiveEmployees(ctx)
	if err != nil {
		return BiweeklyEstimate{}, err
	}

	estimate := BiweeklyEstimate{EstimatedTotal: decimal.Zero}
	two := decimal.NewFromInt(2)
	for _, employee := range employees {
		estimate.ActiveEmployees++
		estimate.EstimatedTotal = estimate.EstimatedTotal.Add(employee.MonthlyWage.DivRound(two, 2))
	}
	return estimate, nil
}
