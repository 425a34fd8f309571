package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

//go:generate mockgen -source=reference_gateway_interface.go -destination=mocks/mock_reference_gateway.go -package=mock_interfaces

// IClientGateway looks up clients (with their vehicles) owned by the customer context.
// A zero-value client (empty ID) means not found.
type IClientGateway interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
}

// IServiceGateway looks up catalog services. A zero-value service means not found.
type IServiceGateway interface {
	GetByID(ctx context.Context, id string) (entities.Service, error)
}
