package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedEmployee struct {
	name        string
	role        string
	monthlyWage string
}

var demoEmployees = []seedEmployee{
	{name: "Ana Torres", role: "Estilista Senior", monthlyWage: "16000.00"},
	{name: "Luis Mendoza", role: "Estilista", monthlyWage: "10000.00"},
	{name: "Carmen Ruiz", role: "Recepcionista", monthlyWage: "9000.00"},
}

// Seed inserts a small demo roster for local development. Employees are
// matched by name so re-running the seed is harmless.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, employee := range demoEmployees {
		_, err := pool.Exec(ctx, `
      INSERT INTO employees (name, role, monthly_wage, is_active)
      VALUES ($1, $2, $3, true)
      ON CONFLICT (name) DO NOTHING
    `, employee.name, employee.role, employee.monthlyWage)
		if err != nil {
			return err
		}
	}
	return nil
}
