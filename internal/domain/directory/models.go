package directory

import "github.com/shopspring/decimal"

// Employee is the read-only view the payroll engine gets of the staff
// directory. The directory itself is owned elsewhere; nothing in this
// module mutates it.
type Employee struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	MonthlyWage decimal.Decimal `json:"monthlyWage"`
	IsActive    bool            `json:"isActive"`
}

// BiweeklyEstimate is a live projection over the active roster: what the
// next quincena would cost if it were generated right now. It is a display
// figure only and is never reconciled against generated entries.
type BiweeklyEstimate struct {
	ActiveEmployees int             `json:"activeEmployees"`
	EstimatedTotal  decimal.Decimal `json:"estimatedTotal"`
}
