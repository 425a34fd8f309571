package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"os_service_api/internal/domain"
	"os_service_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ordersTable = "service_orders"
	stockTable  = "stock_items"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func sampleOrder(id string, status entities.ServiceOrderStatus) entities.ServiceOrder {
	o := entities.NewServiceOrder(id, "cli-1", "vei-1", "srv-1", "revisao 40 mil km", entities.Stamp{At: t0, By: "atendente"})
	o.Status = status
	return o
}

func newUnitOfWorkFactory(ddb *fakeDynamo) *DynamoUnitOfWorkFactory {
	f := NewDynamoUnitOfWorkFactory(ddb, ordersTable, NewStockDynamoRepository(ddb, stockTable), zerolog.Nop())
	f.now = func() time.Time { return t0 }
	return f
}

func TestServiceOrderDynamoRepository_RoundTrip(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewServiceOrderDynamoRepository(ddb, ordersTable)

	o := sampleOrder("os-1", entities.StatusAwaitingApproval)
	q := decimal.RequireFromString("150.75")
	sent := t0.Add(time.Hour)
	o.Quote, o.QuoteSentAt = &q, &sent
	line, _ := entities.NewInsumoOS("l1", "oleo", 4, t0)
	o.Insumos = []entities.InsumoOS{line}

	uow := newUnitOfWorkFactory(ddb).New()
	uow.SaveOrder(&o)
	require.NoError(t, uow.Commit(context.Background()))

	got, err := repo.GetByID(context.Background(), "os-1")
	require.NoError(t, err)
	assert.Equal(t, "os-1", got.ID)
	assert.Equal(t, entities.StatusAwaitingApproval, got.Status)
	require.NotNil(t, got.Quote)
	assert.True(t, got.Quote.Equal(q))
	require.NotNil(t, got.QuoteSentAt)
	assert.True(t, got.QuoteSentAt.Equal(sent))
	require.Len(t, got.Insumos, 1)
	assert.Equal(t, line.StockItemID, got.Insumos[0].StockItemID)
	assert.Equal(t, 4, got.Insumos[0].Quantity)
	assert.True(t, got.Insumos[0].Active)
	assert.Equal(t, "atendente", got.CreatedBy)
	assert.True(t, got.CreatedAt.Equal(t0))
	assert.Equal(t, int64(1), got.Version)
}

func TestServiceOrderDynamoRepository_GetByIDMissing(t *testing.T) {
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), ordersTable)

	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.Nil(t, got.Quote)
}

func TestServiceOrderDynamoRepository_ListFollowsPages(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.pageSize = 2
	for _, id := range []string{"os-1", "os-2", "os-3"} {
		ddb.seed(ordersTable, toServiceOrderItem(sampleOrder(id, entities.StatusReceived)))
	}
	repo := NewServiceOrderDynamoRepository(ddb, ordersTable)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, 2, ddb.scans)
}

func TestServiceOrderDynamoRepository_ListByStatus(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.pageSize = 1
	ddb.seed(ordersTable, toServiceOrderItem(sampleOrder("os-1", entities.StatusReceived)))
	ddb.seed(ordersTable, toServiceOrderItem(sampleOrder("os-2", entities.StatusInExecution)))
	ddb.seed(ordersTable, toServiceOrderItem(sampleOrder("os-3", entities.StatusReceived)))
	repo := NewServiceOrderDynamoRepository(ddb, ordersTable)

	got, err := repo.ListByStatus(context.Background(), entities.StatusReceived)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "os-1", got[0].ID)
	assert.Equal(t, "os-3", got[1].ID)
	require.NotEmpty(t, ddb.queries)
	assert.Equal(t, serviceOrdersStatusIndex, *ddb.queries[0].IndexName)
}

func TestServiceOrderDynamoRepository_GetError(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.getErr = errors.New("throttled")
	repo := NewServiceOrderDynamoRepository(ddb, ordersTable)

	_, err := repo.GetByID(context.Background(), "os-1")
	assert.EqualError(t, err, "throttled")
}

func TestServiceOrderDynamoRepository_CorruptItems(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*serviceOrderItem)
		field  string
	}{
		{"quote", func(it *serviceOrderItem) { it.Quote = "cento e vinte" }, "orcamento"},
		{"quote sent at", func(it *serviceOrderItem) { it.QuoteSentAt = "ontem" }, "data_envio_orcamento"},
		{"created at", func(it *serviceOrderItem) { it.CreatedAt = "2025-13-40" }, "created_at"},
		{"insumo timestamp", func(it *serviceOrderItem) {
			it.Insumos = []insumoItem{{ID: "l1", StockItemID: "oleo", Quantity: 1, CreatedAt: "x", Active: true}}
		}, "insumo created_at"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ddb := newFakeDynamo()
			it := toServiceOrderItem(sampleOrder("os-1", entities.StatusAwaitingApproval))
			tc.mutate(&it)
			ddb.seed(ordersTable, it)
			repo := NewServiceOrderDynamoRepository(ddb, ordersTable)

			_, err := repo.GetByID(context.Background(), "os-1")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)

			_, err = repo.List(context.Background())
			assert.Error(t, err)

			_, err = repo.ListByStatus(context.Background(), entities.StatusAwaitingApproval)
			assert.Error(t, err)
		})
	}
}

func TestClientAndServiceGateways(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.seed("clients", clientItem{
		ID: "cli-1", Name: "Joao", Document: "123",
		Vehicles: []vehicleItem{{ID: "vei-1", Plate: "ABC1D23", Brand: "Fiat", Model: "Uno", Year: 2012}},
	})
	ddb.seed("services", serviceItem{ID: "srv-1", Name: "Alinhamento", Price: "89.90", Available: true})

	clients := NewClientDynamoGateway(ddb, "clients")
	services := NewServiceDynamoGateway(ddb, "services")

	c, err := clients.GetByID(context.Background(), "cli-1")
	require.NoError(t, err)
	assert.True(t, c.OwnsVehicle("vei-1"))
	assert.Equal(t, "Uno", c.Vehicles[0].Model)

	s, err := services.GetByID(context.Background(), "srv-1")
	require.NoError(t, err)
	assert.True(t, s.Price.Equal(decimal.RequireFromString("89.9")))
	assert.True(t, s.Available)

	missing, err := clients.GetByID(context.Background(), "cli-x")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestDynamoUnitOfWork_OrderConditions(t *testing.T) {
	ddb := newFakeDynamo()
	factory := newUnitOfWorkFactory(ddb)

	created := sampleOrder("os-new", entities.StatusReceived)
	existing := sampleOrder("os-old", entities.StatusInDiagnosis)
	existing.Version = 7

	uow := factory.New()
	uow.SaveOrder(&created)
	uow.SaveOrder(&existing)
	uow.SaveOrder(&existing)
	require.NoError(t, uow.Commit(context.Background()))

	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, int64(8), existing.Version, "saving twice bumps once")

	require.Len(t, ddb.transacts, 1)
	items := ddb.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "attribute_not_exists(#id)", *items[0].Put.ConditionExpression)
	assert.Equal(t, "#version = :expected", *items[1].Put.ConditionExpression)
	assert.Equal(t, "7", items[1].Put.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value)
	assert.Equal(t, "8", items[1].Put.Item["version"].(*types.AttributeValueMemberN).Value)
}

func TestDynamoUnitOfWork_NetsStockMovements(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.seed(stockTable, stockItem{ID: "oleo", Quantity: 10, MinimumQuantity: 6})
	ddb.seed(stockTable, stockItem{ID: "filtro", Quantity: 1})
	uow := newUnitOfWorkFactory(ddb).New()
	ctx := context.Background()

	ledger := uow.Stock()
	require.NoError(t, ledger.Deduct(ctx, "oleo", 2))
	require.NoError(t, ledger.Deduct(ctx, "oleo", 3))
	require.NoError(t, ledger.Restore(ctx, "filtro", 1))
	require.NoError(t, uow.Commit(ctx))

	require.Len(t, ddb.transacts, 1)
	items := ddb.transacts[0].TransactItems
	require.Len(t, items, 2, "one operation per stock item")

	oleo := items[0].Update
	assert.Equal(t, "-5", oleo.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN).Value)
	assert.Equal(t, "5", oleo.ExpressionAttributeValues[":need"].(*types.AttributeValueMemberN).Value)
	assert.Contains(t, *oleo.ConditionExpression, "#quantity >= :need")

	filtro := items[1].Update
	assert.Equal(t, "attribute_exists(#id)", *filtro.ConditionExpression)
	assert.NotContains(t, filtro.ExpressionAttributeValues, ":need")

	assert.Equal(t, 5, ddb.quantity(stockTable, "oleo"))
	assert.Equal(t, 2, ddb.quantity(stockTable, "filtro"))
}

func TestDynamoUnitOfWork_DeductChecksStagedQuantity(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.seed(stockTable, stockItem{ID: "oleo", Quantity: 4})
	uow := newUnitOfWorkFactory(ddb).New()
	ctx := context.Background()

	require.NoError(t, uow.Stock().Deduct(ctx, "oleo", 3))
	assert.ErrorIs(t, uow.Stock().Deduct(ctx, "oleo", 2), domain.ErrInsufficientStock)
	assert.ErrorIs(t, uow.Stock().Deduct(ctx, "pastilha", 1), domain.ErrStockItemNotFound)
	assert.ErrorIs(t, uow.Stock().Restore(ctx, "oleo", 0), entities.ErrInvalidInsumoQuantity)
}

func TestDynamoUnitOfWork_StockReadFailure(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.getErr = errors.New("throttled")
	uow := newUnitOfWorkFactory(ddb).New()

	err := uow.Stock().Deduct(context.Background(), "oleo", 1)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestDynamoUnitOfWork_CommitErrors(t *testing.T) {
	reason := func(code string) types.CancellationReason {
		return types.CancellationReason{Code: &code}
	}

	cases := []struct {
		name    string
		restore bool
		reasons []types.CancellationReason
		want    error
	}{
		{"stale order version", false, []types.CancellationReason{reason("ConditionalCheckFailed"), reason("None")}, domain.ErrConcurrentUpdate},
		{"stock condition", false, []types.CancellationReason{reason("None"), reason("ConditionalCheckFailed")}, domain.ErrInsufficientStock},
		{"restore target removed", true, []types.CancellationReason{reason("None"), reason("ConditionalCheckFailed")}, domain.ErrStockItemNotFound},
		{"conflicting transaction", false, []types.CancellationReason{reason("TransactionConflict"), reason("None")}, domain.ErrConcurrentUpdate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ddb := newFakeDynamo()
			ddb.seed(stockTable, stockItem{ID: "oleo", Quantity: 4})
			ddb.transactErr = &types.TransactionCanceledException{CancellationReasons: tc.reasons}
			uow := newUnitOfWorkFactory(ddb).New()

			o := sampleOrder("os-1", entities.StatusInDiagnosis)
			o.Version = 2
			uow.SaveOrder(&o)
			if tc.restore {
				require.NoError(t, uow.Stock().Restore(context.Background(), "oleo", 1))
			} else {
				require.NoError(t, uow.Stock().Deduct(context.Background(), "oleo", 1))
			}

			err := uow.Commit(context.Background())
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, domain.KindOf(tc.want), domain.KindOf(err))
			assert.Equal(t, 4, ddb.quantity(stockTable, "oleo"))
		})
	}

	t.Run("single use", func(t *testing.T) {
		ddb := newFakeDynamo()
		uow := newUnitOfWorkFactory(ddb).New()
		require.NoError(t, uow.Commit(context.Background()))
		assert.ErrorIs(t, uow.Commit(context.Background()), errUnitOfWorkDone)
		assert.Empty(t, ddb.transacts, "nothing staged, nothing sent")
	})

	t.Run("too many operations", func(t *testing.T) {
		ddb := newFakeDynamo()
		uow := newUnitOfWorkFactory(ddb).New()
		for i := 0; i <= maxTransactItems; i++ {
			o := sampleOrder("os-"+strconv.Itoa(i), entities.StatusReceived)
			uow.SaveOrder(&o)
		}
		assert.ErrorIs(t, uow.Commit(context.Background()), errTooManyOperations)
	})
}

func TestDynamoEventOutbox_Publish(t *testing.T) {
	ddb := newFakeDynamo()
	outbox := NewDynamoEventOutbox(ddb, "service_order_events")
	outbox.now = func() time.Time { return t0 }

	err := outbox.Publish(context.Background(), entities.ServiceOrderEvent{Kind: entities.EventBudgetReady, OrderID: "os-1", OccurredAt: t0})
	require.NoError(t, err)

	require.Len(t, ddb.puts, 1)
	put := ddb.puts[0]
	assert.Equal(t, "service_order_events", *put.TableName)
	assert.Equal(t, "os-1", put.Item["os_id"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "BudgetReady", put.Item["event_type"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, outboxStatusPending, put.Item["status"].(*types.AttributeValueMemberS).Value)
	assert.JSONEq(t,
		`{"kind":"BudgetReady","os_id":"os-1","occurred_at":"2025-03-10T09:00:00Z"}`,
		put.Item["payload"].(*types.AttributeValueMemberS).Value,
	)
}
