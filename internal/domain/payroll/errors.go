package payroll

import (
	"errors"
	"fmt"
)

// Error categories. Specific failures below wrap one of these so transports
// can map with errors.Is while messages keep the offending ids.
var (
	ErrInvalidInput = errors.New("invalid payroll input")
	ErrConflict     = errors.New("payroll state conflict")
	ErrNotFound     = errors.New("payroll record not found")
	ErrDependency   = errors.New("payroll dependency failed")
)

var (
	ErrPeriodNotFound  = fmt.Errorf("%w: period", ErrNotFound)
	ErrEntryNotFound   = fmt.Errorf("%w: entry", ErrNotFound)
	ErrPeriodNotOpen   = fmt.Errorf("%w: period is not open", ErrConflict)
	ErrPeriodImmutable = fmt.Errorf("%w: period is finalized", ErrConflict)
	ErrPeriodPaid      = fmt.Errorf("%w: paid periods are permanent", ErrConflict)
	ErrNoEntries       = fmt.Errorf("%w: period has no entries", ErrConflict)
)
