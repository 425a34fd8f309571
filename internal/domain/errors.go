package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the use cases wraps exactly one of these,
// so callers classify with errors.Is(err, domain.ErrNotFound) and friends.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrQuoteExpired       = errors.New("quote expired")
	ErrPersistence        = errors.New("persistence failure")
)

var kinds = []error{ErrNotFound, ErrValidation, ErrServiceUnavailable, ErrInvalidTransition, ErrQuoteExpired, ErrPersistence}

// KindOf returns the kind err is classified under, or nil for an unclassified error.
func KindOf(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Errors raised by storage adapters that callers need to tell apart.
var (
	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrValidation)
	ErrStockItemNotFound = fmt.Errorf("%w: stock item not found", ErrNotFound)
	ErrConcurrentUpdate  = fmt.Errorf("%w: service order was modified concurrently", ErrPersistence)
)

// PersistenceError reports that storage failed for an otherwise valid request.
// It matches ErrPersistence and unwraps to the storage cause. The cause must be
// unclassified; use WrapPersistence when that is not known.
type PersistenceError struct {
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence.Error(), e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// WrapPersistence returns err unchanged when it already carries a kind and
// wraps it in a PersistenceError otherwise.
func WrapPersistence(op string, err error) error {
	if err == nil || KindOf(err) != nil {
		return err
	}
	return NewPersistenceError(op, err)
}
