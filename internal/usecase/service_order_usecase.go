package usecase

import (
	"context"
	"os_service_api/internal/domain"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/domain/policy"
	"os_service_api/internal/usecase/interfaces"
	"os_service_api/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service_order_usecase.go -destination=../adapter/http/handlers/mocks/mock_service_order_usecase.go -package=mocks

// CreateServiceOrderInput is the "cadastrar" command.
type CreateServiceOrderInput struct {
	ClientID    string
	VehicleID   string
	ServiceID   string
	Description string
}

// UpdateServiceOrderInput is the "atualizar" command. Nil fields keep their
// current value.
type UpdateServiceOrderInput struct {
	ClientID    *string
	VehicleID   *string
	ServiceID   *string
	Description *string
	Status      *entities.ServiceOrderStatus
	Quote       *decimal.Decimal
}

func (in UpdateServiceOrderInput) isEmpty() bool {
	return in.ClientID == nil && in.VehicleID == nil && in.ServiceID == nil &&
		in.Description == nil && in.Status == nil && in.Quote == nil
}

// IServiceOrderUseCase exposes the service order lifecycle:
//   - Create      => "cadastrar"
//   - Update      => "atualizar" (partial; drives diagnosis, budget, finalization, cancellation)
//   - AcceptQuote => "aceitar orçamento"
//   - RefuseQuote => "recusar orçamento"
//   - GetByID / GetAll / GetByStatus => read-only projections

type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, in UpdateServiceOrderInput) (entities.ServiceOrder, error)
	AcceptQuote(ctx context.Context, id string) (entities.ServiceOrder, error)
	RefuseQuote(ctx context.Context, id string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetAll(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByStatus(ctx context.Context, status entities.ServiceOrderStatus) ([]entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	orders   interfaces.IServiceOrderRepository
	clients  interfaces.IClientGateway
	services interfaces.IServiceGateway
	uow      interfaces.IUnitOfWorkFactory
	notifier interfaces.IEventNotifier
	rules    policy.QuoteRules
	now      func() time.Time
	log      zerolog.Logger
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	clients interfaces.IClientGateway,
	services interfaces.IServiceGateway,
	uow interfaces.IUnitOfWorkFactory,
	notifier interfaces.IEventNotifier,
	rules policy.QuoteRules,
	log zerolog.Logger,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:   orders,
		clients:  clients,
		services: services,
		uow:      uow,
		notifier: notifier,
		rules:    rules,
		now:      time.Now,
		log:      logger.Component(log, "os.usecase"),
	}
}

// WithClock replaces the time source. Meant for tests.
func (u *ServiceOrderUseCase) WithClock(now func() time.Time) *ServiceOrderUseCase {
	u.now = now
	return u
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	clientID := strings.TrimSpace(in.ClientID)
	vehicleID := strings.TrimSpace(in.VehicleID)
	serviceID := strings.TrimSpace(in.ServiceID)
	switch {
	case clientID == "":
		return entities.ServiceOrder{}, ErrInvalidClientID
	case vehicleID == "":
		return entities.ServiceOrder{}, ErrInvalidVehicleID
	case serviceID == "":
		return entities.ServiceOrder{}, ErrInvalidServiceID
	}

	if err := u.checkClientVehicle(ctx, clientID, vehicleID); err != nil {
		u.log.Info().Err(err).Str("client_id", clientID).Str("vehicle_id", vehicleID).Msg("create rejected")
		return entities.ServiceOrder{}, err
	}
	if err := u.checkService(ctx, serviceID); err != nil {
		u.log.Info().Err(err).Str("service_id", serviceID).Msg("create rejected")
		return entities.ServiceOrder{}, err
	}

	order := entities.NewServiceOrder(uuid.NewString(), clientID, vehicleID, serviceID, strings.TrimSpace(in.Description), u.stamp(ctx))

	uow := u.uow.New()
	uow.SaveOrder(&order)
	if err := commit(ctx, uow, "create service order"); err != nil {
		u.log.Error().Err(err).Str("os_id", order.ID).Msg("create commit failed")
		return entities.ServiceOrder{}, err
	}

	u.log.Info().Str("os_id", order.ID).Str("client_id", clientID).Msg("service order created")
	return order, nil
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, in UpdateServiceOrderInput) (entities.ServiceOrder, error) {
	if in.Status != nil && !in.Status.IsValid() {
		return entities.ServiceOrder{}, ErrInvalidStatus
	}
	if in.Quote != nil && !u.rules.AcceptsAmount(*in.Quote) {
		return entities.ServiceOrder{}, ErrInvalidQuote
	}

	order, err := loadActiveOrder(ctx, u.orders, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if in.isEmpty() {
		return order, nil
	}

	clientID, vehicleID, serviceID := trimmed(in.ClientID), trimmed(in.VehicleID), trimmed(in.ServiceID)
	switch {
	case in.ClientID != nil && clientID == "":
		return entities.ServiceOrder{}, ErrInvalidClientID
	case in.VehicleID != nil && vehicleID == "":
		return entities.ServiceOrder{}, ErrInvalidVehicleID
	case in.ServiceID != nil && serviceID == "":
		return entities.ServiceOrder{}, ErrInvalidServiceID
	}
	if clientID != "" || vehicleID != "" {
		if err := u.checkClientVehicle(ctx, firstNonEmpty(clientID, order.ClientID), firstNonEmpty(vehicleID, order.VehicleID)); err != nil {
			return entities.ServiceOrder{}, err
		}
	}
	if serviceID != "" && serviceID != order.ServiceID {
		if err := u.checkService(ctx, serviceID); err != nil {
			return entities.ServiceOrder{}, err
		}
	}

	s := u.stamp(ctx)
	if clientID != "" || vehicleID != "" || serviceID != "" {
		if err := order.Reassign(clientID, vehicleID, serviceID, s); err != nil {
			return entities.ServiceOrder{}, err
		}
	}
	if in.Description != nil {
		if err := order.Describe(strings.TrimSpace(*in.Description), s); err != nil {
			return entities.ServiceOrder{}, err
		}
	}

	uow := u.uow.New()
	events, err := u.applyStatus(ctx, uow, &order, in, s)
	if err != nil {
		u.log.Info().Err(err).Str("os_id", order.ID).Str("status", string(order.Status)).Msg("update rejected")
		return entities.ServiceOrder{}, err
	}

	uow.SaveOrder(&order)
	if err := commit(ctx, uow, "update service order"); err != nil {
		u.log.Error().Err(err).Str("os_id", order.ID).Msg("update commit failed")
		return entities.ServiceOrder{}, err
	}
	for _, ev := range events {
		u.publish(ctx, ev)
	}

	u.log.Info().Str("os_id", order.ID).Str("status", string(order.Status)).Msg("service order updated")
	return order, nil
}

// applyStatus performs the requested status change and quote revision on order,
// staging stock returns in uow when the order gets cancelled.
func (u *ServiceOrderUseCase) applyStatus(
	ctx context.Context,
	uow interfaces.IUnitOfWork,
	order *entities.ServiceOrder,
	in UpdateServiceOrderInput,
	s entities.Stamp,
) ([]entities.ServiceOrderEvent, error) {
	target := order.Status
	if in.Status != nil {
		target = *in.Status
	}

	if target == order.Status {
		if in.Quote != nil {
			return nil, order.ReviseQuote(*in.Quote, s)
		}
		return nil, nil
	}

	switch target {
	case entities.StatusInDiagnosis:
		if in.Quote != nil {
			if err := order.ReviseQuote(*in.Quote, s); err != nil {
				return nil, err
			}
		}
		return nil, order.BeginDiagnosis(s)

	case entities.StatusAwaitingApproval:
		amount := in.Quote
		if amount == nil {
			amount = order.Quote
		}
		if amount == nil {
			return nil, ErrQuoteRequired
		}
		if !u.rules.AcceptsAmount(*amount) {
			return nil, ErrInvalidQuote
		}
		ev, err := order.IssueQuote(*amount, s)
		if err != nil {
			return nil, err
		}
		return []entities.ServiceOrderEvent{ev}, nil

	case entities.StatusFinalized:
		if in.Quote != nil {
			return nil, entities.ErrQuoteLocked
		}
		ev, err := order.Finalize(s)
		if err != nil {
			return nil, err
		}
		return []entities.ServiceOrderEvent{ev}, nil

	case entities.StatusCancelled:
		ev, lines, err := order.Cancel(s)
		if err != nil {
			return nil, err
		}
		if err := returnToStock(ctx, uow.Stock(), lines); err != nil {
			return nil, err
		}
		return []entities.ServiceOrderEvent{ev}, nil
	}

	// Received cannot be re-entered; InExecution and QuoteExpired are only reached
	// through AcceptQuote, which applies the expiration policy.
	return nil, &entities.InvalidTransitionError{From: order.Status, To: target}
}

// AcceptQuote starts execution of an order whose quote the customer approved.
//
// When the quote is past its acceptance window the order is moved to
// QuoteExpired and that change is committed before ErrQuoteExpired is returned.
func (u *ServiceOrderUseCase) AcceptQuote(ctx context.Context, id string) (entities.ServiceOrder, error) {
	order, err := loadActiveOrder(ctx, u.orders, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.Status != entities.StatusAwaitingApproval {
		return entities.ServiceOrder{}, &entities.InvalidTransitionError{From: order.Status, To: entities.StatusInExecution}
	}
	if order.QuoteSentAt == nil {
		return entities.ServiceOrder{}, ErrQuoteNotSent
	}

	s := u.stamp(ctx)
	uow := u.uow.New()

	if u.rules.IsExpired(*order.QuoteSentAt, s.At) {
		if err := order.ExpireQuote(s); err != nil {
			return entities.ServiceOrder{}, err
		}
		uow.SaveOrder(&order)
		if err := commit(ctx, uow, "expire quote"); err != nil {
			u.log.Error().Err(err).Str("os_id", order.ID).Msg("expire quote commit failed")
			return entities.ServiceOrder{}, err
		}
		u.log.Info().Str("os_id", order.ID).Time("quote_sent_at", *order.QuoteSentAt).Msg("quote expired on acceptance")
		return entities.ServiceOrder{}, ErrQuoteExpired
	}

	if err := order.StartExecution(s); err != nil {
		return entities.ServiceOrder{}, err
	}
	uow.SaveOrder(&order)
	if err := commit(ctx, uow, "accept quote"); err != nil {
		u.log.Error().Err(err).Str("os_id", order.ID).Msg("accept quote commit failed")
		return entities.ServiceOrder{}, err
	}

	u.log.Info().Str("os_id", order.ID).Msg("quote accepted")
	return order, nil
}

// RefuseQuote cancels the order and gives every consumed insumo back to stock.
func (u *ServiceOrderUseCase) RefuseQuote(ctx context.Context, id string) (entities.ServiceOrder, error) {
	order, err := loadActiveOrder(ctx, u.orders, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	ev, lines, err := order.RefuseQuote(u.stamp(ctx))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	uow := u.uow.New()
	if err := returnToStock(ctx, uow.Stock(), lines); err != nil {
		u.log.Error().Err(err).Str("os_id", order.ID).Msg("refuse quote stock return failed")
		return entities.ServiceOrder{}, err
	}
	uow.SaveOrder(&order)
	if err := commit(ctx, uow, "refuse quote"); err != nil {
		u.log.Error().Err(err).Str("os_id", order.ID).Msg("refuse quote commit failed")
		return entities.ServiceOrder{}, err
	}
	u.publish(ctx, ev)

	u.log.Info().Str("os_id", order.ID).Int("insumos_returned", len(lines)).Msg("quote refused")
	return order, nil
}

// Delete deactivates the order. Orders are never physically removed.
func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := loadActiveOrder(ctx, u.orders, id)
	if err != nil {
		return err
	}

	order.Deactivate(u.stamp(ctx))

	uow := u.uow.New()
	uow.SaveOrder(&order)
	if err := commit(ctx, uow, "deactivate service order"); err != nil {
		u.log.Error().Err(err).Str("os_id", order.ID).Msg("deactivate commit failed")
		return err
	}
	u.log.Info().Str("os_id", order.ID).Msg("service order deactivated")
	return nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return loadActiveOrder(ctx, u.orders, id)
}

func (u *ServiceOrderUseCase) GetAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("list service orders", err)
	}
	return filterOrders(orders, func(o entities.ServiceOrder) bool { return o.Active }), nil
}

func (u *ServiceOrderUseCase) GetByStatus(ctx context.Context, status entities.ServiceOrderStatus) ([]entities.ServiceOrder, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	orders, err := u.orders.ListByStatus(ctx, status)
	if err != nil {
		return nil, domain.NewPersistenceError("list service orders by status", err)
	}
	// The status index is eventually consistent; never hand out an order whose
	// stored status already moved on.
	return filterOrders(orders, func(o entities.ServiceOrder) bool { return o.Active && o.Status == status }), nil
}

func (u *ServiceOrderUseCase) checkClientVehicle(ctx context.Context, clientID, vehicleID string) error {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return domain.NewPersistenceError("load client", err)
	}
	if client.ID == "" {
		return ErrClientNotFound
	}
	if !client.OwnsVehicle(vehicleID) {
		return ErrVehicleNotFound
	}
	return nil
}

func (u *ServiceOrderUseCase) checkService(ctx context.Context, serviceID string) error {
	service, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return domain.NewPersistenceError("load service", err)
	}
	if service.ID == "" {
		return ErrServiceNotFound
	}
	if !service.Available {
		return ErrServiceUnavailable
	}
	if !service.Price.IsPositive() {
		return ErrInvalidServicePrice
	}
	return nil
}

// publish delivers ev after commit. Failures are logged only: the transition is
// already durable and must not be undone by a notification problem.
func (u *ServiceOrderUseCase) publish(ctx context.Context, ev entities.ServiceOrderEvent) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Publish(ctx, ev); err != nil {
		u.log.Error().Err(err).Str("os_id", ev.OrderID).Str("event", string(ev.Kind)).Msg("event publish failed")
		return
	}
	u.log.Debug().Str("os_id", ev.OrderID).Str("event", string(ev.Kind)).Msg("event published")
}

func (u *ServiceOrderUseCase) stamp(ctx context.Context) entities.Stamp {
	return entities.Stamp{At: u.now().UTC(), By: ActorFromContext(ctx)}
}

func loadActiveOrder(ctx context.Context, repo interfaces.IServiceOrderRepository, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	order, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, domain.NewPersistenceError("load service order", err)
	}
	if order.ID == "" || !order.Active {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return order, nil
}

func commit(ctx context.Context, uow interfaces.IUnitOfWork, op string) error {
	return domain.WrapPersistence(op, uow.Commit(ctx))
}

func filterOrders(in []entities.ServiceOrder, keep func(entities.ServiceOrder) bool) []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, 0, len(in))
	for _, o := range in {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func trimmed(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
