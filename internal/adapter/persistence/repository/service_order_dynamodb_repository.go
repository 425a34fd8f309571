package repository

import (
	"context"
	"fmt"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const serviceOrdersStatusIndex = "status-index"

type insumoItem struct {
	ID          string `dynamodbav:"id"`
	StockItemID string `dynamodbav:"estoque_id"`
	Quantity    int    `dynamodbav:"quantidade"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	Active      bool   `dynamodbav:"active"`
}

type serviceOrderItem struct {
	ID          string       `dynamodbav:"id"`
	ClientID    string       `dynamodbav:"cliente_id"`
	VehicleID   string       `dynamodbav:"veiculo_id"`
	ServiceID   string       `dynamodbav:"servico_id"`
	Description string       `dynamodbav:"descricao"`
	Status      string       `dynamodbav:"status"`
	Quote       string       `dynamodbav:"orcamento,omitempty"`
	QuoteSentAt string       `dynamodbav:"data_envio_orcamento,omitempty"`
	Insumos     []insumoItem `dynamodbav:"insumos"`
	CreatedAt   string       `dynamodbav:"created_at"`
	UpdatedAt   string       `dynamodbav:"updated_at"`
	CreatedBy   string       `dynamodbav:"created_by,omitempty"`
	UpdatedBy   string       `dynamodbav:"updated_by,omitempty"`
	Active      bool         `dynamodbav:"active"`
	Version     int64        `dynamodbav:"version"`
}

// ServiceOrderDynamoRepository reads ServiceOrder aggregates from DynamoDB.
// Writes are staged through DynamoUnitOfWork.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
type ServiceOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb DynamoAPI, tableName string) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	var it serviceOrderItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it)
}

// List scans the whole table, following pagination.
func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var (
		orders []entities.ServiceOrder
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalOrders(out.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *ServiceOrderDynamoRepository) ListByStatus(ctx context.Context, status entities.ServiceOrderStatus) ([]entities.ServiceOrder, error) {
	var (
		orders []entities.ServiceOrder
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(serviceOrdersStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalOrders(out.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		start = out.LastEvaluatedKey
	}
}

func unmarshalOrders(raw []map[string]types.AttributeValue) ([]entities.ServiceOrder, error) {
	orders := make([]entities.ServiceOrder, 0, len(raw))
	for _, item := range raw {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		o, err := fromServiceOrderItem(it)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:          o.ID,
		ClientID:    o.ClientID,
		VehicleID:   o.VehicleID,
		ServiceID:   o.ServiceID,
		Description: o.Description,
		Status:      string(o.Status),
		Insumos:     make([]insumoItem, 0, len(o.Insumos)),
		CreatedAt:   formatTime(o.CreatedAt),
		UpdatedAt:   formatTime(o.UpdatedAt),
		CreatedBy:   o.CreatedBy,
		UpdatedBy:   o.UpdatedBy,
		Active:      o.Active,
		Version:     o.Version,
	}
	// Stored as a string to keep the exact decimal representation.
	if o.Quote != nil {
		it.Quote = o.Quote.String()
	}
	if o.QuoteSentAt != nil {
		it.QuoteSentAt = formatTime(*o.QuoteSentAt)
	}
	for _, l := range o.Insumos {
		it.Insumos = append(it.Insumos, insumoItem{
			ID:          l.ID,
			StockItemID: l.StockItemID,
			Quantity:    l.Quantity,
			CreatedAt:   formatTime(l.CreatedAt),
			UpdatedAt:   formatTime(l.UpdatedAt),
			Active:      l.Active,
		})
	}
	return it
}

// fromServiceOrderItem rejects items whose quote or timestamps do not parse.
func fromServiceOrderItem(it serviceOrderItem) (entities.ServiceOrder, error) {
	var td timeDecoder
	o := entities.ServiceOrder{
		ID:          it.ID,
		ClientID:    it.ClientID,
		VehicleID:   it.VehicleID,
		ServiceID:   it.ServiceID,
		Description: it.Description,
		Status:      entities.ServiceOrderStatus(it.Status),
		Insumos:     make([]entities.InsumoOS, 0, len(it.Insumos)),
		CreatedAt:   td.parse("created_at", it.CreatedAt),
		UpdatedAt:   td.parse("updated_at", it.UpdatedAt),
		CreatedBy:   it.CreatedBy,
		UpdatedBy:   it.UpdatedBy,
		Active:      it.Active,
		Version:     it.Version,
	}
	if it.Quote != "" {
		q, err := decimal.NewFromString(it.Quote)
		if err != nil {
			return entities.ServiceOrder{}, fmt.Errorf("service order %s: invalid orcamento %q: %w", it.ID, it.Quote, err)
		}
		o.Quote = &q
	}
	if it.QuoteSentAt != "" {
		sent := td.parse("data_envio_orcamento", it.QuoteSentAt)
		o.QuoteSentAt = &sent
	}
	for _, l := range it.Insumos {
		o.Insumos = append(o.Insumos, entities.InsumoOS{
			ID:          l.ID,
			StockItemID: l.StockItemID,
			Quantity:    l.Quantity,
			CreatedAt:   td.parse("insumo created_at", l.CreatedAt),
			UpdatedAt:   td.parse("insumo updated_at", l.UpdatedAt),
			Active:      l.Active,
		})
	}
	if td.err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("service order %s: %w", it.ID, td.err)
	}
	return o, nil
}
