package repository

import (
	"context"
	"encoding/json"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const outboxStatusPending = "PENDING"

type outboxEventItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"os_id"`
	EventType  string `dynamodbav:"event_type"`
	Payload    string `dynamodbav:"payload"`
	Status     string `dynamodbav:"status"`
	RetryCount int    `dynamodbav:"retry_count"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// DynamoEventOutbox records service order events in an outbox table. A relay
// outside this service reads PENDING items and forwards them to the broker.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: os_id-index (PK: os_id) for per-order history
type DynamoEventOutbox struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IEventNotifier = (*DynamoEventOutbox)(nil)

func NewDynamoEventOutbox(ddb DynamoAPI, tableName string) *DynamoEventOutbox {
	return &DynamoEventOutbox{ddb: ddb, tableName: tableName, now: time.Now}
}

func (o *DynamoEventOutbox) Publish(ctx context.Context, ev entities.ServiceOrderEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	it := outboxEventItem{
		ID:        uuid.NewString(),
		OrderID:   ev.OrderID,
		EventType: string(ev.Kind),
		Payload:   string(payload),
		Status:    outboxStatusPending,
		CreatedAt: formatTime(o.now()),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = o.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(o.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
