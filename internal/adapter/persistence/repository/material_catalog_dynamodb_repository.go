package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"lasercraft/internal/domain/entities"
	"lasercraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMaterialsTableName     = "materials"
	defaultMaterialTypesTableName = "material_types"
)

var ErrStockConflict = errors.New("not enough stock to decrement")

type materialItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type materialTypeItem struct {
	ID           string  `dynamodbav:"id"`
	MaterialID   string  `dynamodbav:"material_id"`
	Width        float64 `dynamodbav:"width"`
	Length       float64 `dynamodbav:"length"`
	Height       float64 `dynamodbav:"height"`
	PricePerUnit float64 `dynamodbav:"price_per_unit"`
	MassPerUnit  float64 `dynamodbav:"mass_per_unit"`
	Stock        int     `dynamodbav:"stock"`
	ErrorMargin  float64 `dynamodbav:"error_margin"`
	MinCutLength float64 `dynamodbav:"min_cut_length"`
	MaxCutLength float64 `dynamodbav:"max_cut_length"`
	MinCutWidth  float64 `dynamodbav:"min_cut_width"`
	MaxCutWidth  float64 `dynamodbav:"max_cut_width"`
}

// MaterialCatalogDynamoRepository reads the material catalog from DynamoDB.
//
// Table requirements:
//   - materials: PK id (string)
//   - material_types: PK id (string), material_id attribute for grouping
//
// Catalog management writes these tables elsewhere; the only write this
// service performs is the conditional stock decrement at order confirmation.

type MaterialCatalogDynamoRepository struct {
	ddb                *dynamodb.Client
	materialsTable     string
	materialTypesTable string
}

var _ interfaces.IMaterialCatalogRepository = (*MaterialCatalogDynamoRepository)(nil)

func NewMaterialCatalogDynamoRepository(ddb *dynamodb.Client) *MaterialCatalogDynamoRepository {
	return &MaterialCatalogDynamoRepository{
		ddb:                ddb,
		materialsTable:     getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
		materialTypesTable: getenvDefault("MATERIAL_TYPES_TABLE", defaultMaterialTypesTableName),
	}
}

func (r *MaterialCatalogDynamoRepository) GetMaterialTypeByID(ctx context.Context, id string) (entities.MaterialType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.materialTypesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaterialType{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaterialType{}, nil
	}

	var it materialTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaterialType{}, err
	}
	return fromMaterialTypeItem(it), nil
}

func (r *MaterialCatalogDynamoRepository) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	materials, err := r.scanMaterials(ctx)
	if err != nil {
		return nil, err
	}
	typesByMaterial, err := r.scanMaterialTypes(ctx)
	if err != nil {
		return nil, err
	}

	for i := range materials {
		materials[i].Types = typesByMaterial[materials[i].ID]
	}
	return materials, nil
}

// DecrementStock consumes `quantity` units of a material type. The condition
// keeps stock from going negative when paid orders race on the same type.
func (r *MaterialCatalogDynamoRepository) DecrementStock(ctx context.Context, materialTypeID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("invalid decrement quantity %d", quantity)
	}

	qty := strconv.Itoa(quantity)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.materialTypesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: materialTypeID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :qty"),
		UpdateExpression:    aws.String("SET #stock = #stock - :qty"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#stock": "stock",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty": &types.AttributeValueMemberN{Value: qty},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrStockConflict
		}
		return err
	}
	return nil
}

func (r *MaterialCatalogDynamoRepository) scanMaterials(ctx context.Context) ([]entities.Material, error) {
	var out []entities.Material
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.materialsTable),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it materialItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, entities.Material{ID: it.ID, Name: it.Name})
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (r *MaterialCatalogDynamoRepository) scanMaterialTypes(ctx context.Context) (map[string][]entities.MaterialType, error) {
	grouped := make(map[string][]entities.MaterialType)
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.materialTypesTable),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it materialTypeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			mt := fromMaterialTypeItem(it)
			grouped[mt.MaterialID] = append(grouped[mt.MaterialID], mt)
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return grouped, nil
}

func fromMaterialTypeItem(it materialTypeItem) entities.MaterialType {
	return entities.MaterialType{
		ID:           it.ID,
		MaterialID:   it.MaterialID,
		Width:        it.Width,
		Length:       it.Length,
		Height:       it.Height,
		PricePerUnit: it.PricePerUnit,
		MassPerUnit:  it.MassPerUnit,
		Stock:        it.Stock,
		ErrorMargin:  it.ErrorMargin,
		MinCutLength: it.MinCutLength,
		MaxCutLength: it.MaxCutLength,
		MinCutWidth:  it.MinCutWidth,
		MaxCutWidth:  it.MaxCutWidth,
	}
}
