package repository

import (
	"context"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type vehicleItem struct {
	ID    string `dynamodbav:"id"`
	Plate string `dynamodbav:"plate"`
	Brand string `dynamodbav:"brand"`
	Model string `dynamodbav:"model"`
	Year  int    `dynamodbav:"year"`
}

type clientItem struct {
	ID       string        `dynamodbav:"id"`
	Name     string        `dynamodbav:"name"`
	Document string        `dynamodbav:"document"`
	Vehicles []vehicleItem `dynamodbav:"vehicles"`
}

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	Available   bool   `dynamodbav:"available"`
}

// ClientDynamoGateway reads clients owned by the customer context. Vehicles are
// embedded in the client item.
//
// Table requirements:
//   - PK: id (string)
type ClientDynamoGateway struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientGateway = (*ClientDynamoGateway)(nil)

func NewClientDynamoGateway(ddb DynamoAPI, tableName string) *ClientDynamoGateway {
	return &ClientDynamoGateway{ddb: ddb, tableName: tableName}
}

func (g *ClientDynamoGateway) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := getItemByID(ctx, g.ddb, g.tableName, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}

	c := entities.Client{
		ID:       it.ID,
		Name:     it.Name,
		Document: it.Document,
		Vehicles: make([]entities.Vehicle, 0, len(it.Vehicles)),
	}
	for _, v := range it.Vehicles {
		c.Vehicles = append(c.Vehicles, entities.Vehicle{ID: v.ID, Plate: v.Plate, Brand: v.Brand, Model: v.Model, Year: v.Year})
	}
	return c, nil
}

// ServiceDynamoGateway reads the service catalog.
//
// Table requirements:
//   - PK: id (string)
type ServiceDynamoGateway struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceGateway = (*ServiceDynamoGateway)(nil)

func NewServiceDynamoGateway(ddb DynamoAPI, tableName string) *ServiceDynamoGateway {
	return &ServiceDynamoGateway{ddb: ddb, tableName: tableName}
}

func (g *ServiceDynamoGateway) GetByID(ctx context.Context, id string) (entities.Service, error) {
	var it serviceItem
	found, err := getItemByID(ctx, g.ddb, g.tableName, id, &it)
	if err != nil || !found {
		return entities.Service{}, err
	}

	// An unparsable price reads as zero, which the use case rejects.
	price, _ := decimal.NewFromString(it.Price)
	return entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		Available:   it.Available,
	}, nil
}

func getItemByID(ctx context.Context, ddb DynamoAPI, table, id string, dst any) (bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, err
	}
	return true, nil
}
