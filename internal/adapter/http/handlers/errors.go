package handlers

import (
	"errors"
	"net/http"

	"os_service_api/internal/domain"
	"os_service_api/internal/usecase"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidServiceOrderPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
	errInvalidInsumosPayload      = pkg.NewDomainErrorSimple("INVALID_INSUMOS_INPUT", "Invalid insumos payload", http.StatusBadRequest)
	errInvalidStatusFilter        = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown service order status", http.StatusBadRequest)
)

// mapServiceOrderError turns a use case error into the API error body. Specific
// errors are checked before the kind they wrap.
func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock for the requested insumos", err, http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return pkg.NewDomainError("CONCURRENT_UPDATE", "Service order was modified by another request, retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainError("SERVICE_ORDER_NOT_FOUND", "Service order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainError("CLIENT_NOT_FOUND", "Client not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainError("VEHICLE_NOT_FOUND", "Vehicle not found for this client", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainError("SERVICE_NOT_FOUND", "Service not found", err, http.StatusNotFound)
	case errors.Is(err, domain.ErrStockItemNotFound):
		return pkg.NewDomainError("STOCK_ITEM_NOT_FOUND", "Stock item not found", err, http.StatusNotFound)
	case errors.Is(err, domain.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, domain.ErrQuoteExpired):
		return pkg.NewDomainError("QUOTE_EXPIRED", "The acceptance window for this quote has passed", err, http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, domain.ErrServiceUnavailable):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Service is not available", err, http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Storage is unavailable, retry later", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapServiceOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("code", appErr.Code).
			Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
