package repository

import (
	"context"

	"lasercraft/internal/domain/entities"
	"lasercraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultExtraServicesTableName = "extra_services"

type extraServiceItem struct {
	ID       string  `dynamodbav:"id"`
	Name     string  `dynamodbav:"name"`
	Price    float64 `dynamodbav:"price"`
	Unit     string  `dynamodbav:"unit"`
	IsActive bool    `dynamodbav:"is_active"`
}

// ExtrasRegistryDynamoRepository reads the optional-service registry.
//
// Table requirements:
//   - extra_services: PK id (string)

type ExtrasRegistryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExtrasRegistryRepository = (*ExtrasRegistryDynamoRepository)(nil)

func NewExtrasRegistryDynamoRepository(ddb *dynamodb.Client) *ExtrasRegistryDynamoRepository {
	return &ExtrasRegistryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXTRA_SERVICES_TABLE", defaultExtraServicesTableName),
	}
}

func (r *ExtrasRegistryDynamoRepository) ListActive(ctx context.Context) ([]entities.ExtraService, error) {
	var out []entities.ExtraService
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#is_active = :active"),
			ExpressionAttributeNames: map[string]string{
				"#is_active": "is_active",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it extraServiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, entities.ExtraService{
				ID:       it.ID,
				Name:     it.Name,
				Price:    it.Price,
				Unit:     it.Unit,
				IsActive: it.IsActive,
			})
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}
