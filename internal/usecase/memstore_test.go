package usecase

import (
	"context"
	"sort"
	"sync"

	"os_service_api/internal/domain"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
)

// memStore is an in-memory order store plus stock ledger with the same commit
// semantics as the DynamoDB unit of work: staged writes, version check, and
// all-or-nothing application.
type memStore struct {
	mu     sync.Mutex
	orders map[string]entities.ServiceOrder
	stock  map[string]int
	events []entities.ServiceOrderEvent
}

func newMemStore() *memStore {
	return &memStore{orders: map[string]entities.ServiceOrder{}, stock: map[string]int{}}
}

func (m *memStore) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneOrder(m.orders[id]), nil
}

func (m *memStore) List(_ context.Context) ([]entities.ServiceOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.ServiceOrder, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ListByStatus(ctx context.Context, status entities.ServiceOrderStatus) ([]entities.ServiceOrder, error) {
	all, _ := m.List(ctx)
	out := make([]entities.ServiceOrder, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memStore) Publish(_ context.Context, ev entities.ServiceOrderEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func (m *memStore) New() interfaces.IUnitOfWork {
	return &memUnitOfWork{store: m, deltas: map[string]int{}}
}

type memUnitOfWork struct {
	store  *memStore
	orders []entities.ServiceOrder
	expect []int64
	deltas map[string]int
}

func (u *memUnitOfWork) SaveOrder(o *entities.ServiceOrder) {
	u.expect = append(u.expect, o.Version)
	o.Version++
	u.orders = append(u.orders, cloneOrder(*o))
}

func (u *memUnitOfWork) Stock() interfaces.IStockLedger { return u }

func (u *memUnitOfWork) Deduct(_ context.Context, id string, qty int) error {
	u.store.mu.Lock()
	onHand, ok := u.store.stock[id]
	u.store.mu.Unlock()
	if !ok {
		return domain.ErrStockItemNotFound
	}
	if onHand+u.deltas[id] < qty {
		return domain.ErrInsufficientStock
	}
	u.deltas[id] -= qty
	return nil
}

func (u *memUnitOfWork) Restore(_ context.Context, id string, qty int) error {
	u.deltas[id] += qty
	return nil
}

func (u *memUnitOfWork) Commit(_ context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for i, o := range u.orders {
		if u.store.orders[o.ID].Version != u.expect[i] {
			return domain.ErrConcurrentUpdate
		}
	}
	for id, d := range u.deltas {
		if u.store.stock[id]+d < 0 {
			return domain.ErrInsufficientStock
		}
	}
	for _, o := range u.orders {
		u.store.orders[o.ID] = o
	}
	for id, d := range u.deltas {
		u.store.stock[id] += d
	}
	return nil
}

func cloneOrder(o entities.ServiceOrder) entities.ServiceOrder {
	if o.Insumos != nil {
		o.Insumos = append([]entities.InsumoOS(nil), o.Insumos...)
	}
	return o
}
