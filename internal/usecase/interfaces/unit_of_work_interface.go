package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

//go:generate mockgen -source=unit_of_work_interface.go -destination=mocks/mock_unit_of_work.go -package=mock_interfaces

// IUnitOfWork collects the writes of one use case call and applies them all or
// none on Commit. A unit of work is single use.
//
// SaveOrder stages the order and bumps its Version; Commit fails if another
// writer changed the stored version in between.
type IUnitOfWork interface {
	SaveOrder(order *entities.ServiceOrder)
	Stock() IStockLedger
	Commit(ctx context.Context) error
}

type IUnitOfWorkFactory interface {
	New() IUnitOfWork
}
