package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stamp identifies when and by whom a mutation happened. Every mutation method
// receives one explicitly; there is no ambient "current user".
type Stamp struct {
	At time.Time
	By string
}

// InsumoOS is a stock item consumed by a service order.
// Lines are owned by their order: they are stored inside the order item and are
// deactivated together with it.
type InsumoOS struct {
	ID          string    `json:"id"`
	StockItemID string    `json:"estoque_id"`
	Quantity    int       `json:"quantidade"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Active      bool      `json:"active"`
}

func NewInsumoOS(id, stockItemID string, quantity int, at time.Time) (InsumoOS, error) {
	if quantity <= 0 {
		return InsumoOS{}, ErrInvalidInsumoQuantity
	}
	return InsumoOS{
		ID:          id,
		StockItemID: stockItemID,
		Quantity:    quantity,
		CreatedAt:   at,
		UpdatedAt:   at,
		Active:      true,
	}, nil
}

// ServiceOrder (ordem de serviço) is the aggregate root of a repair job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
//   - insumos are embedded as a list attribute
//
// Monetary representation:
//   - Quote is a decimal, never a float, and is nil until a quote is generated.
//   - QuoteSentAt is set once, when the order enters AwaitingApproval.
//
// Concurrency:
//   - Version is incremented by the unit of work on every save and checked on commit.
type ServiceOrder struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"cliente_id"`
	VehicleID   string             `json:"veiculo_id"`
	ServiceID   string             `json:"servico_id"`
	Description string             `json:"descricao"`
	Status      ServiceOrderStatus `json:"status"`
	Quote       *decimal.Decimal   `json:"orcamento,omitempty"`
	QuoteSentAt *time.Time         `json:"data_envio_orcamento,omitempty"`
	Insumos     []InsumoOS         `json:"insumos"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	CreatedBy   string             `json:"created_by,omitempty"`
	UpdatedBy   string             `json:"updated_by,omitempty"`
	Active      bool               `json:"active"`
	Version     int64              `json:"version"`
}

// NewServiceOrder builds an order in the Received state.
func NewServiceOrder(id, clientID, vehicleID, serviceID, description string, s Stamp) ServiceOrder {
	return ServiceOrder{
		ID:          id,
		ClientID:    clientID,
		VehicleID:   vehicleID,
		ServiceID:   serviceID,
		Description: description,
		Status:      StatusReceived,
		Insumos:     []InsumoOS{},
		CreatedAt:   s.At,
		UpdatedAt:   s.At,
		CreatedBy:   s.By,
		UpdatedBy:   s.By,
		Active:      true,
	}
}

// ActiveInsumos returns a copy of the lines that still hold consumed stock.
func (o *ServiceOrder) ActiveInsumos() []InsumoOS {
	out := make([]InsumoOS, 0, len(o.Insumos))
	for _, it := range o.Insumos {
		if it.Active {
			out = append(out, it)
		}
	}
	return out
}

func (o *ServiceOrder) BeginDiagnosis(s Stamp) error {
	if o.Status != StatusReceived {
		return o.invalid(StatusInDiagnosis)
	}
	o.Status = StatusInDiagnosis
	o.touch(s)
	return nil
}

// IssueQuote moves a pre-approval order to AwaitingApproval, recording the amount
// and the moment the quote was sent to the customer.
func (o *ServiceOrder) IssueQuote(amount decimal.Decimal, s Stamp) (ServiceOrderEvent, error) {
	if o.Status != StatusReceived && o.Status != StatusInDiagnosis {
		return ServiceOrderEvent{}, o.invalid(StatusAwaitingApproval)
	}
	if amount.IsNegative() {
		return ServiceOrderEvent{}, ErrInvalidQuote
	}
	sentAt := s.At
	o.Quote = &amount
	o.QuoteSentAt = &sentAt
	o.Status = StatusAwaitingApproval
	o.touch(s)
	return o.event(EventBudgetReady, s), nil
}

// ReviseQuote changes the amount without a status change. The quote is frozen
// once execution starts.
func (o *ServiceOrder) ReviseQuote(amount decimal.Decimal, s Stamp) error {
	switch o.Status {
	case StatusReceived, StatusInDiagnosis, StatusAwaitingApproval:
	default:
		return ErrQuoteLocked
	}
	if amount.IsNegative() {
		return ErrInvalidQuote
	}
	o.Quote = &amount
	o.touch(s)
	return nil
}

func (o *ServiceOrder) StartExecution(s Stamp) error {
	if o.Status != StatusAwaitingApproval {
		return o.invalid(StatusInExecution)
	}
	o.Status = StatusInExecution
	o.touch(s)
	return nil
}

func (o *ServiceOrder) ExpireQuote(s Stamp) error {
	if o.Status != StatusAwaitingApproval {
		return o.invalid(StatusQuoteExpired)
	}
	o.Status = StatusQuoteExpired
	o.touch(s)
	return nil
}

// RefuseQuote cancels an order whose quote was declined by the customer.
// The returned lines must be given back to stock in the same unit of work.
func (o *ServiceOrder) RefuseQuote(s Stamp) (ServiceOrderEvent, []InsumoOS, error) {
	if o.Status != StatusAwaitingApproval {
		return ServiceOrderEvent{}, nil, o.invalid(StatusCancelled)
	}
	return o.cancel(s)
}

// Cancel stops an order before execution starts.
func (o *ServiceOrder) Cancel(s Stamp) (ServiceOrderEvent, []InsumoOS, error) {
	switch o.Status {
	case StatusReceived, StatusInDiagnosis, StatusAwaitingApproval:
	default:
		return ServiceOrderEvent{}, nil, o.invalid(StatusCancelled)
	}
	return o.cancel(s)
}

func (o *ServiceOrder) Finalize(s Stamp) (ServiceOrderEvent, error) {
	if o.Status != StatusInExecution {
		return ServiceOrderEvent{}, o.invalid(StatusFinalized)
	}
	o.Status = StatusFinalized
	o.touch(s)
	return o.event(EventFinalized, s), nil
}

// Reassign replaces the client, vehicle and service references. Empty values keep
// the current reference.
func (o *ServiceOrder) Reassign(clientID, vehicleID, serviceID string, s Stamp) error {
	if o.Status.IsTerminal() {
		return ErrOrderClosed
	}
	if clientID != "" {
		o.ClientID = clientID
	}
	if vehicleID != "" {
		o.VehicleID = vehicleID
	}
	if serviceID != "" {
		o.ServiceID = serviceID
	}
	o.touch(s)
	return nil
}

func (o *ServiceOrder) Describe(description string, s Stamp) error {
	if o.Status.IsTerminal() {
		return ErrOrderClosed
	}
	o.Description = description
	o.touch(s)
	return nil
}

// AddInsumos appends already-consumed lines. Callers deduct stock first.
func (o *ServiceOrder) AddInsumos(lines []InsumoOS, s Stamp) error {
	if o.Status.IsTerminal() {
		return ErrOrderClosed
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return ErrInvalidInsumoQuantity
		}
	}
	o.Insumos = append(o.Insumos, lines...)
	o.touch(s)
	return nil
}

// Deactivate soft-deletes the order and every line it owns.
func (o *ServiceOrder) Deactivate(s Stamp) {
	o.Active = false
	for i := range o.Insumos {
		o.Insumos[i].Active = false
		o.Insumos[i].UpdatedAt = s.At
	}
	o.touch(s)
}

func (o *ServiceOrder) cancel(s Stamp) (ServiceOrderEvent, []InsumoOS, error) {
	returned := o.ActiveInsumos()
	for i := range o.Insumos {
		if o.Insumos[i].Active {
			o.Insumos[i].Active = false
			o.Insumos[i].UpdatedAt = s.At
		}
	}
	o.Status = StatusCancelled
	o.touch(s)
	return o.event(EventCancelled, s), returned, nil
}

func (o *ServiceOrder) touch(s Stamp) {
	o.UpdatedAt = s.At
	if s.By != "" {
		o.UpdatedBy = s.By
	}
}

func (o *ServiceOrder) event(kind ServiceOrderEventKind, s Stamp) ServiceOrderEvent {
	return ServiceOrderEvent{Kind: kind, OrderID: o.ID, OccurredAt: s.At}
}

func (o *ServiceOrder) invalid(to ServiceOrderStatus) error {
	return &InvalidTransitionError{From: o.Status, To: to}
}
