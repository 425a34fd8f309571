package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"os_service_api/internal/domain"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// DynamoDB rejects transactions with more operations than this.
const maxTransactItems = 100

var (
	errUnitOfWorkDone    = errors.New("unit of work already committed")
	errTooManyOperations = fmt.Errorf("unit of work exceeds %d operations", maxTransactItems)
)

// DynamoUnitOfWorkFactory hands out units of work that commit service orders
// and stock movements in a single TransactWriteItems call.
type DynamoUnitOfWorkFactory struct {
	ddb         DynamoAPI
	ordersTable string
	stock       *StockDynamoRepository
	now         func() time.Time
	log         zerolog.Logger
}

var _ interfaces.IUnitOfWorkFactory = (*DynamoUnitOfWorkFactory)(nil)

func NewDynamoUnitOfWorkFactory(ddb DynamoAPI, ordersTable string, stock *StockDynamoRepository, log zerolog.Logger) *DynamoUnitOfWorkFactory {
	return &DynamoUnitOfWorkFactory{
		ddb:         ddb,
		ordersTable: ordersTable,
		stock:       stock,
		now:         time.Now,
		log:         log.With().Str("component", "dynamodb.uow").Logger(),
	}
}

func (f *DynamoUnitOfWorkFactory) New() interfaces.IUnitOfWork {
	return &DynamoUnitOfWork{
		factory:  f,
		orderIdx: map[string]int{},
		moves:    map[string]*stockMovement{},
	}
}

type stagedOrder struct {
	item     serviceOrderItem
	expected int64
}

// stockMovement nets every deduction and restore of one stock item. DynamoDB
// allows a single operation per item in a transaction.
type stockMovement struct {
	snapshot entities.StockItem
	delta    int
}

// itemRole tells what a transact item does, so a failed condition can be
// reported by index.
type itemRole int

const (
	roleOrder itemRole = iota
	roleDeduct
	roleRestore
)

// DynamoUnitOfWork is single use and not safe for concurrent use.
type DynamoUnitOfWork struct {
	factory *DynamoUnitOfWorkFactory

	orders   []stagedOrder
	orderIdx map[string]int

	moves     map[string]*stockMovement
	moveOrder []string

	roles []itemRole

	done bool
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func (u *DynamoUnitOfWork) SaveOrder(o *entities.ServiceOrder) {
	if i, ok := u.orderIdx[o.ID]; ok {
		o.Version = u.orders[i].expected + 1
		u.orders[i].item = toServiceOrderItem(*o)
		return
	}
	expected := o.Version
	o.Version++
	u.orderIdx[o.ID] = len(u.orders)
	u.orders = append(u.orders, stagedOrder{item: toServiceOrderItem(*o), expected: expected})
}

func (u *DynamoUnitOfWork) Stock() interfaces.IStockLedger {
	return stagedLedger{uow: u}
}

func (u *DynamoUnitOfWork) Commit(ctx context.Context) error {
	if u.done {
		return errUnitOfWorkDone
	}
	u.done = true

	items, err := u.transactItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	if len(items) > maxTransactItems {
		return errTooManyOperations
	}

	_, err = u.factory.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return u.mapCommitError(err)
	}

	u.warnLowStock()
	return nil
}

func (u *DynamoUnitOfWork) transactItems() ([]types.TransactWriteItem, error) {
	items := make([]types.TransactWriteItem, 0, len(u.orders)+len(u.moves))
	u.roles = u.roles[:0]

	for _, so := range u.orders {
		av, err := attributevalue.MarshalMap(so.item)
		if err != nil {
			return nil, err
		}
		put := &types.Put{
			TableName: aws.String(u.factory.ordersTable),
			Item:      av,
		}
		if so.expected == 0 {
			put.ConditionExpression = aws.String("attribute_not_exists(#id)")
			put.ExpressionAttributeNames = map[string]string{"#id": "id"}
		} else {
			put.ConditionExpression = aws.String("#version = :expected")
			put.ExpressionAttributeNames = map[string]string{"#version": "version"}
			put.ExpressionAttributeValues = map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(so.expected, 10)},
			}
		}
		items = append(items, types.TransactWriteItem{Put: put})
		u.roles = append(u.roles, roleOrder)
	}

	now := formatTime(u.factory.now())
	for _, id := range u.moveOrder {
		mv := u.moves[id]
		if mv.delta == 0 {
			continue
		}
		cond := "attribute_exists(#id)"
		values := map[string]types.AttributeValue{
			":delta":      &types.AttributeValueMemberN{Value: strconv.Itoa(mv.delta)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		role := roleRestore
		if mv.delta < 0 {
			role = roleDeduct
			cond += " AND #quantity >= :need"
			values[":need"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-mv.delta)}
		}
		u.roles = append(u.roles, role)
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName: aws.String(u.factory.stock.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression:    aws.String("SET #quantity = #quantity + :delta, #updated_at = :updated_at"),
			ConditionExpression: aws.String(cond),
			ExpressionAttributeNames: mergeNames(
				map[string]string{"#quantity": "quantity", "#updated_at": "updated_at"},
				map[string]string{"#id": "id"},
			),
			ExpressionAttributeValues: values,
		}})
	}
	return items, nil
}

// mapCommitError translates a cancelled transaction into the domain error of the
// first failed condition. Reasons line up with the staged items, so the role
// at the same index tells which check lost. A restore only requires the item
// to exist.
func (u *DynamoUnitOfWork) mapCommitError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed":
			if i >= len(u.roles) {
				return err
			}
			switch u.roles[i] {
			case roleOrder:
				return domain.ErrConcurrentUpdate
			case roleRestore:
				return domain.ErrStockItemNotFound
			default:
				return domain.ErrInsufficientStock
			}
		case "TransactionConflict":
			return domain.ErrConcurrentUpdate
		}
	}
	return err
}

func (u *DynamoUnitOfWork) warnLowStock() {
	for _, id := range u.moveOrder {
		mv := u.moves[id]
		if mv.delta >= 0 {
			continue
		}
		after := mv.snapshot
		after.Quantity += mv.delta
		if after.BelowMinimum() {
			u.factory.log.Warn().
				Str("estoque_id", id).
				Int("quantity", after.Quantity).
				Int("minimum_quantity", after.MinimumQuantity).
				Msg("stock item below minimum")
		}
	}
}

func (u *DynamoUnitOfWork) movement(ctx context.Context, id string) (*stockMovement, error) {
	if mv, ok := u.moves[id]; ok {
		return mv, nil
	}
	item, err := u.factory.stock.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("load stock item", err)
	}
	if item.ID == "" {
		return nil, domain.ErrStockItemNotFound
	}
	mv := &stockMovement{snapshot: item}
	u.moves[id] = mv
	u.moveOrder = append(u.moveOrder, id)
	return mv, nil
}

// stagedLedger checks availability against a consistent read plus what this
// unit of work already staged. The final guard is the conditional update on commit.
type stagedLedger struct {
	uow *DynamoUnitOfWork
}

func (l stagedLedger) Deduct(ctx context.Context, stockItemID string, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidInsumoQuantity
	}
	mv, err := l.uow.movement(ctx, stockItemID)
	if err != nil {
		return err
	}
	if mv.snapshot.Quantity+mv.delta < quantity {
		return domain.ErrInsufficientStock
	}
	mv.delta -= quantity
	return nil
}

func (l stagedLedger) Restore(ctx context.Context, stockItemID string, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidInsumoQuantity
	}
	mv, err := l.uow.movement(ctx, stockItemID)
	if err != nil {
		return err
	}
	mv.delta += quantity
	return nil
}
