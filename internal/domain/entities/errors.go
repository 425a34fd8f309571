package entities

import (
	"fmt"

	"os_service_api/internal/domain"
)

var (
	ErrInvalidInsumoQuantity = fmt.Errorf("%w: insumo quantity must be positive", domain.ErrValidation)
	ErrInvalidQuote          = fmt.Errorf("%w: invalid quote value", domain.ErrValidation)
	ErrQuoteLocked           = fmt.Errorf("%w: quote can no longer be changed", domain.ErrValidation)
	ErrOrderClosed           = fmt.Errorf("%w: service order is closed", domain.ErrValidation)
)

// InvalidTransitionError is returned when a transition is requested from a
// status that is not one of its legal predecessors.
type InvalidTransitionError struct {
	From ServiceOrderStatus
	To   ServiceOrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", domain.ErrInvalidTransition.Error(), e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == domain.ErrInvalidTransition
}
