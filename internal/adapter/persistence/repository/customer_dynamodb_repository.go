package repository

import (
	"context"
	"errors"
	"time"

	"studio_orders/internal/domain/entities"
	"studio_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	Email           string   `dynamodbav:"email"`
	ID              string   `dynamodbav:"id"`
	FirstName       string   `dynamodbav:"first_name"`
	LastName        string   `dynamodbav:"last_name"`
	Company         string   `dynamodbav:"company,omitempty"`
	Timezone        string   `dynamodbav:"timezone,omitempty"`
	OrderIDs        []string `dynamodbav:"order_ids"`
	TotalOrderValue float64  `dynamodbav:"total_order_value"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: email (string, lowercased)
//
// Using the email as PK lets a conditional put carry the
// one-customer-per-email invariant: concurrent first orders from the same
// email race on the same key and exactly one put wins.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) FindOrCreate(ctx context.Context, candidate entities.Customer) (entities.Customer, bool, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(candidate))
	if err != nil {
		return entities.Customer{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err == nil {
		return candidate, true, nil
	}

	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return entities.Customer{}, false, err
	}

	// Lost the race (or the customer already existed): read the winner.
	existing, err := r.GetByEmail(ctx, candidate.Email)
	if err != nil {
		return entities.Customer{}, false, err
	}
	return existing, false, nil
}

func (r *CustomerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) AppendOrder(ctx context.Context, email, orderID string, orderMax float64) (entities.Customer, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConditionExpression: aws.String("attribute_exists(#email)"),
		UpdateExpression: aws.String(
			"SET #order_ids = list_append(if_not_exists(#order_ids, :empty), :order), #updated_at = :updated_at ADD #total :max",
		),
		ExpressionAttributeNames: map[string]string{
			"#email":      "email",
			"#order_ids":  "order_ids",
			"#updated_at": "updated_at",
			"#total":      "total_order_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order": &types.AttributeValueMemberL{
				Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: orderID}},
			},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":max":        &types.AttributeValueMemberN{Value: floatToString(orderMax)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, interfaces.ErrCustomerNotFound
		}
		return entities.Customer{}, err
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	orderIDs := c.OrderIDs
	if orderIDs == nil {
		orderIDs = []string{}
	}
	return customerItem{
		Email:           c.Email,
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Company:         c.Company,
		Timezone:        c.Timezone,
		OrderIDs:        orderIDs,
		TotalOrderValue: c.TotalOrderValue,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		ID:              it.ID,
		Email:           it.Email,
		FirstName:       it.FirstName,
		LastName:        it.LastName,
		Company:         it.Company,
		Timezone:        it.Timezone,
		OrderIDs:        it.OrderIDs,
		TotalOrderValue: it.TotalOrderValue,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
