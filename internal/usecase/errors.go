package usecase

import (
	"fmt"

	"os_service_api/internal/domain"
	"os_service_api/internal/domain/entities"
)

var (
	ErrInvalidServiceOrderID = fmt.Errorf("%w: invalid service order id", domain.ErrValidation)
	ErrInvalidClientID       = fmt.Errorf("%w: invalid client id", domain.ErrValidation)
	ErrInvalidVehicleID      = fmt.Errorf("%w: invalid vehicle id", domain.ErrValidation)
	ErrInvalidServiceID      = fmt.Errorf("%w: invalid service id", domain.ErrValidation)
	ErrInvalidStatus         = fmt.Errorf("%w: invalid status", domain.ErrValidation)
	ErrInvalidServicePrice   = fmt.Errorf("%w: service price must be positive", domain.ErrValidation)
	ErrQuoteRequired         = fmt.Errorf("%w: a quote value is required to send the budget", domain.ErrValidation)
	ErrQuoteNotSent          = fmt.Errorf("%w: quote was never sent to the customer", domain.ErrValidation)
	ErrEmptyInsumos          = fmt.Errorf("%w: at least one insumo is required", domain.ErrValidation)
	ErrInvalidStockItemID    = fmt.Errorf("%w: invalid stock item id", domain.ErrValidation)

	ErrServiceOrderNotFound = fmt.Errorf("%w: service order not found", domain.ErrNotFound)
	ErrClientNotFound       = fmt.Errorf("%w: client not found", domain.ErrNotFound)
	ErrVehicleNotFound      = fmt.Errorf("%w: vehicle not found", domain.ErrNotFound)
	ErrServiceNotFound      = fmt.Errorf("%w: service not found", domain.ErrNotFound)

	ErrServiceUnavailable = fmt.Errorf("%w: service is not available", domain.ErrServiceUnavailable)
	ErrQuoteExpired       = fmt.Errorf("%w: the acceptance window for this quote has passed", domain.ErrQuoteExpired)

	// Re-exported so callers of this package do not need the entities or domain packages.
	ErrInvalidQuote          = entities.ErrInvalidQuote
	ErrInvalidInsumoQuantity = entities.ErrInvalidInsumoQuantity
	ErrInsufficientStock     = domain.ErrInsufficientStock
	ErrStockItemNotFound     = domain.ErrStockItemNotFound
	ErrConcurrentUpdate      = domain.ErrConcurrentUpdate
)
