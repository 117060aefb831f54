package apperr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound covers missing jobs, contracts and profiles, including
	// resources that exist but are not visible to the calling profile.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the wrong party attempts an action.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyPaid is returned when a job has already been settled.
	ErrAlreadyPaid = errors.New("job has already been paid")
	// ErrInsufficientFunds is returned when the client balance cannot cover
	// the job price.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrValidation covers malformed input such as unparsable date ranges.
	ErrValidation = errors.New("invalid argument")
	// ErrInternal wraps storage failures; the surrounding transaction has
	// been rolled back when it surfaces.
	ErrInternal = errors.New("internal error")
)

// LimitExceededError rejects a deposit above 25% of the client's outstanding
// unpaid job total. The computed threshold is part of the contract and must
// reach the caller.
type LimitExceededError struct {
	Threshold decimal.Decimal
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("deposit exceeds 25%% of outstanding jobs to pay (threshold %s)", e.Threshold.StringFixed(2))
}

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
