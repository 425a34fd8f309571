package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

//go:generate mockgen -source=service_order_repository_interface.go -destination=mocks/mock_service_order_repository.go -package=mock_interfaces

// IServiceOrderRepository is the read side of service order persistence.
// Writes go through IUnitOfWork so they commit together with stock movements.
//
// GetByID returns a zero-value order (empty ID) when nothing is stored under id.
type IServiceOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByStatus(ctx context.Context, status entities.ServiceOrderStatus) ([]entities.ServiceOrder, error)
}
