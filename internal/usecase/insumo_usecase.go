package usecase

import (
	"context"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	"os_service_api/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=insumo_usecase.go -destination=../adapter/http/handlers/mocks/mock_insumo_usecase.go -package=mocks

// InsumoInput is one stock item consumption (or return) request.
type InsumoInput struct {
	StockItemID string
	Quantity    int
}

// IInsumoUseCase covers stock consumption by service orders.
type IInsumoUseCase interface {
	AddInsumos(ctx context.Context, orderID string, items []InsumoInput) (entities.ServiceOrder, error)
	ReturnInsumosToStock(ctx context.Context, items []InsumoInput) error
}

type InsumoUseCase struct {
	orders interfaces.IServiceOrderRepository
	uow    interfaces.IUnitOfWorkFactory
	now    func() time.Time
	log    zerolog.Logger
}

var _ IInsumoUseCase = (*InsumoUseCase)(nil)

func NewInsumoUseCase(
	orders interfaces.IServiceOrderRepository,
	uow interfaces.IUnitOfWorkFactory,
	log zerolog.Logger,
) *InsumoUseCase {
	return &InsumoUseCase{
		orders: orders,
		uow:    uow,
		now:    time.Now,
		log:    logger.Component(log, "insumo.usecase"),
	}
}

func (u *InsumoUseCase) WithClock(now func() time.Time) *InsumoUseCase {
	u.now = now
	return u
}

// AddInsumos deducts every item from stock and attaches the lines to the order.
// Either all lines are added and all deductions applied, or nothing changes.
func (u *InsumoUseCase) AddInsumos(ctx context.Context, orderID string, items []InsumoInput) (entities.ServiceOrder, error) {
	if len(items) == 0 {
		return entities.ServiceOrder{}, ErrEmptyInsumos
	}
	if err := validateInsumos(items); err != nil {
		return entities.ServiceOrder{}, err
	}

	order, err := loadActiveOrder(ctx, u.orders, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.Status.IsTerminal() {
		return entities.ServiceOrder{}, entities.ErrOrderClosed
	}

	s := entities.Stamp{At: u.now().UTC(), By: ActorFromContext(ctx)}
	uow := u.uow.New()
	ledger := uow.Stock()

	lines := make([]entities.InsumoOS, 0, len(items))
	for _, it := range items {
		stockItemID := strings.TrimSpace(it.StockItemID)
		if err := ledger.Deduct(ctx, stockItemID, it.Quantity); err != nil {
			u.log.Info().Err(err).
				Str("os_id", order.ID).
				Str("estoque_id", stockItemID).
				Int("quantidade", it.Quantity).
				Msg("insumo deduction rejected")
			return entities.ServiceOrder{}, err
		}
		line, err := entities.NewInsumoOS(uuid.NewString(), stockItemID, it.Quantity, s.At)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		lines = append(lines, line)
	}

	if err := order.AddInsumos(lines, s); err != nil {
		return entities.ServiceOrder{}, err
	}
	uow.SaveOrder(&order)
	if err := commit(ctx, uow, "add insumos"); err != nil {
		u.log.Error().Err(err).Str("os_id", order.ID).Msg("add insumos commit failed")
		return entities.ServiceOrder{}, err
	}

	u.log.Info().Str("os_id", order.ID).Int("lines", len(lines)).Msg("insumos added")
	return order, nil
}

// ReturnInsumosToStock gives the quantities back to stock. It does not check
// whether the items were ever consumed; the caller owns that boundary.
func (u *InsumoUseCase) ReturnInsumosToStock(ctx context.Context, items []InsumoInput) error {
	if len(items) == 0 {
		return ErrEmptyInsumos
	}
	if err := validateInsumos(items); err != nil {
		return err
	}

	lines := make([]entities.InsumoOS, 0, len(items))
	for _, it := range items {
		lines = append(lines, entities.InsumoOS{StockItemID: strings.TrimSpace(it.StockItemID), Quantity: it.Quantity})
	}

	uow := u.uow.New()
	if err := returnToStock(ctx, uow.Stock(), lines); err != nil {
		return err
	}
	if err := commit(ctx, uow, "return insumos to stock"); err != nil {
		u.log.Error().Err(err).Int("lines", len(lines)).Msg("stock return commit failed")
		return err
	}

	u.log.Info().Int("lines", len(lines)).Msg("insumos returned to stock")
	return nil
}

func validateInsumos(items []InsumoInput) error {
	for _, it := range items {
		if strings.TrimSpace(it.StockItemID) == "" {
			return ErrInvalidStockItemID
		}
		if it.Quantity <= 0 {
			return ErrInvalidInsumoQuantity
		}
	}
	return nil
}

// returnToStock stages a restore per line on ledger. Shared by cancellation,
// quote refusal and the explicit return operation.
func returnToStock(ctx context.Context, ledger interfaces.IStockLedger, lines []entities.InsumoOS) error {
	for _, l := range lines {
		if err := ledger.Restore(ctx, l.StockItemID, l.Quantity); err != nil {
			return err
		}
	}
	return nil
}
