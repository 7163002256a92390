package repository

import (
	"context"
	"errors"
	"time"

	"lasercraft/internal/domain/entities"
	"lasercraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID                string  `dynamodbav:"id"`
	Status            string  `dynamodbav:"status"`
	PaymentMethod     string  `dynamodbav:"payment_method"`
	ExternalPaymentID string  `dynamodbav:"external_payment_id,omitempty"`
	Amount            float64 `dynamodbav:"amount"`
	MaterialTypeID    string  `dynamodbav:"material_type_id"`
	Quantity          int     `dynamodbav:"quantity"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every status write goes through UpdateStatus with a condition on the
// expected prior status, so concurrent writers (duplicate webhook deliveries
// from other instances) can never double-apply a transition.

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
	it := toOrderItem(o)
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
	return fromOrderItem(it), nil
}

// UpdateStatus moves an order from `from` to `to`, recording the external
// payment id when one is supplied. A failed conditional check (the stored
// status moved on) returns the zero Order with a nil error; the caller decides
// whether the race was benign.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, externalPaymentID string) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :to, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if externalPaymentID != "" {
		updateExpr += ", #external_payment_id = :external_payment_id"
		values[":external_payment_id"] = &types.AttributeValueMemberS{Value: externalPaymentID}
		names["#external_payment_id"] = "external_payment_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
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
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                o.ID,
		Status:            string(o.Status),
		PaymentMethod:     string(o.PaymentMethod),
		ExternalPaymentID: o.ExternalPaymentID,
		Amount:            o.Amount,
		MaterialTypeID:    o.MaterialTypeID,
		Quantity:          o.Quantity,
		CreatedAt:         o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Order{
		ID:                it.ID,
		Status:            entities.OrderStatus(it.Status),
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		ExternalPaymentID: it.ExternalPaymentID,
		Amount:            it.Amount,
		MaterialTypeID:    it.MaterialTypeID,
		Quantity:          it.Quantity,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
