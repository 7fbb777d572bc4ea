package reservation

import (
	"time"

	"library-backend/internal/pkg/errs"
)

const (
	DefaultLoanDays      = 7
	DefaultExtensionDays = 7
	DefaultMaxLoanDays   = 365
)

var ErrLoanTooLong = errs.NewKind("days to keep exceeds the maximum loan length", errs.ErrValidation)

type Policy struct {
	DefaultDays   int
	ExtensionDays int
	MaxDays       int
}

func DefaultPolicy() Policy {
	return Policy{DefaultDays: DefaultLoanDays, ExtensionDays: DefaultExtensionDays, MaxDays: DefaultMaxLoanDays}
}

// NewPolicy falls back to the defaults for non-positive values.
func NewPolicy(defaultDays, extensionDays, maxDays int) Policy {
	p := DefaultPolicy()
	if defaultDays > 0 {
		p.DefaultDays = defaultDays
	}
	if extensionDays > 0 {
		p.ExtensionDays = extensionDays
	}
	if maxDays > 0 {
		p.MaxDays = maxDays
	}
	return p
}

// LoanDays resolves the requested days to keep. Nil or non-positive means the default.
func (p Policy) LoanDays(daysToKeep *int) (int, error) {
	days := p.DefaultDays
	if daysToKeep != nil && *daysToKeep > 0 {
		days = *daysToKeep
	}
	if p.MaxDays > 0 && days > p.MaxDays {
		return 0, errs.Wrapf(ErrLoanTooLong, "%d days, max %d", days, p.MaxDays)
	}
	return days, nil
}

// DueDate is from plus the resolved loan length in calendar days.
func (p Policy) DueDate(from time.Time, daysToKeep *int) (time.Time, error) {
	days, err := p.LoanDays(daysToKeep)
	if err != nil {
		return time.Time{}, err
	}
	return from.AddDate(0, 0, days), nil
}

func (p Policy) Extend(from time.Time) time.Time {
	return from.AddDate(0, 0, p.ExtensionDays)
}
