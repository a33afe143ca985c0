package repository

import (
	"context"
	"sort"
	"time"

	"studio_orders/internal/domain/entities"
	"studio_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTrackingTableName = "order_tracking"
	trackingOrderIDIndex     = "order_id-index"
)

type trackingItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	Status    string `dynamodbav:"status"`
	Message   string `dynamodbav:"message"`
	Author    string `dynamodbav:"author"`
	ClientIP  string `dynamodbav:"client_ip"`
	UserAgent string `dynamodbav:"user_agent"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderTrackingDynamoRepository stores the append-only order audit log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI "order_id-index" with PK order_id (string)
type OrderTrackingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderTrackingRepository = (*OrderTrackingDynamoRepository)(nil)

func NewOrderTrackingDynamoRepository(ddb *dynamodb.Client) *OrderTrackingDynamoRepository {
	return &OrderTrackingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_TRACKING_TABLE", defaultTrackingTableName),
	}
}

func (r *OrderTrackingDynamoRepository) Append(ctx context.Context, entry entities.OrderTrackingEntry) (entities.OrderTrackingEntry, error) {
	av, err := attributevalue.MarshalMap(toTrackingItem(entry))
	if err != nil {
		return entities.OrderTrackingEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.OrderTrackingEntry{}, err
	}
	return entry, nil
}

func (r *OrderTrackingDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderTrackingEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(trackingOrderIDIndex),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.OrderTrackingEntry, 0, len(out.Items))
	for _, item := range out.Items {
		var it trackingItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromTrackingItem(it))
	}

	// The index has no sort key, so order the history here.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func toTrackingItem(e entities.OrderTrackingEntry) trackingItem {
	return trackingItem{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Status:    string(e.Status),
		Message:   e.Message,
		Author:    e.Author,
		ClientIP:  e.Metadata.ClientIP,
		UserAgent: e.Metadata.UserAgent,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTrackingItem(it trackingItem) entities.OrderTrackingEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.OrderTrackingEntry{
		ID:      it.ID,
		OrderID: it.OrderID,
		Status:  entities.OrderStatus(it.Status),
		Message: it.Message,
		Author:  it.Author,
		Metadata: entities.TrackingMetadata{
			ClientIP:  it.ClientIP,
			UserAgent: it.UserAgent,
		},
		CreatedAt: createdAt,
	}
}
