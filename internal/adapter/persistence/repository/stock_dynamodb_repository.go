package repository

import (
	"context"

	"os_service_api/internal/domain/entities"
)

type stockItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Quantity        int    `dynamodbav:"quantity"`
	MinimumQuantity int    `dynamodbav:"minimum_quantity"`
	UpdatedAt       string `dynamodbav:"updated_at,omitempty"`
}

// StockDynamoRepository reads on-hand quantities. Movements are applied by
// DynamoUnitOfWork as conditional updates.
//
// Table requirements:
//   - PK: id (string)
type StockDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

func NewStockDynamoRepository(ddb DynamoAPI, tableName string) *StockDynamoRepository {
	return &StockDynamoRepository{ddb: ddb, tableName: tableName}
}

// GetByID returns a zero-value item when id is unknown.
func (r *StockDynamoRepository) GetByID(ctx context.Context, id string) (entities.StockItem, error) {
	var it stockItem
	found, err := getItemByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.StockItem{}, err
	}
	return entities.StockItem{
		ID:              it.ID,
		Name:            it.Name,
		Quantity:        it.Quantity,
		MinimumQuantity: it.MinimumQuantity,
	}, nil
}
