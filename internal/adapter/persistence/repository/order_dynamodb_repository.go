package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studio_orders/internal/domain/entities"
	"studio_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderNoteItem struct {
	Author    string `dynamodbav:"author"`
	Text      string `dynamodbav:"text"`
	CreatedAt string `dynamodbav:"created_at"`
}

type orderItem struct {
	ID         string          `dynamodbav:"id"`
	CustomerID string          `dynamodbav:"customer_id"`
	Status     string          `dynamodbav:"status"`
	Priority   string          `dynamodbav:"priority"`
	Data       string          `dynamodbav:"data"`
	TotalMin   float64         `dynamodbav:"total_min"`
	TotalMax   float64         `dynamodbav:"total_max"`
	Currency   string          `dynamodbav:"currency"`
	Notes      []orderNoteItem `dynamodbav:"notes"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The frozen order data is stored as a JSON blob: it is written once at
// creation and only ever read back whole, so item-level attributes would
// buy nothing.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrDuplicateOrderID
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) AppendNote(ctx context.Context, id string, note entities.OrderNote) (entities.Order, error) {
	noteAV, err := attributevalue.Marshal([]orderNoteItem{{
		Author:    note.Author,
		Text:      note.Text,
		CreatedAt: note.CreatedAt.UTC().Format(time.RFC3339Nano),
	}})
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #notes = list_append(if_not_exists(#notes, :empty), :note), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":note":       noteAV,
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#notes":      "notes",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) (orderItem, error) {
	data, err := json.Marshal(o.Data)
	if err != nil {
		return orderItem{}, err
	}
	notes := make([]orderNoteItem, 0, len(o.Notes))
	for _, n := range o.Notes {
		notes = append(notes, orderNoteItem{
			Author:    n.Author,
			Text:      n.Text,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return orderItem{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		Priority:   string(o.Priority),
		Data:       string(data),
		TotalMin:   o.Total.Min,
		TotalMax:   o.Total.Max,
		Currency:   o.Total.Currency,
		Notes:      notes,
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	var data entities.OrderData
	if it.Data != "" {
		if err := json.Unmarshal([]byte(it.Data), &data); err != nil {
			return entities.Order{}, err
		}
	}
	notes := make([]entities.OrderNote, 0, len(it.Notes))
	for _, n := range it.Notes {
		createdAt, _ := time.Parse(time.RFC3339Nano, n.CreatedAt)
		notes = append(notes, entities.OrderNote{Author: n.Author, Text: n.Text, CreatedAt: createdAt})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Order{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Status:     entities.OrderStatus(it.Status),
		Data:       data,
		Total:      entities.PriceRange{Min: it.TotalMin, Max: it.TotalMax, Currency: it.Currency},
		Priority:   entities.OrderPriority(it.Priority),
		Notes:      notes,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
