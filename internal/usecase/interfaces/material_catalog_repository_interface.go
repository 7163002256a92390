package interfaces

import (
	"context"

	"lasercraft/internal/domain/entities"
)

// IMaterialCatalogRepository abstracts the material catalog stored in DynamoDB.
//
// The quote path only reads. DecrementStock is the single write this service
// performs against the catalog, fired once when an order is confirmed paid;
// the update is conditional on enough stock remaining.
type IMaterialCatalogRepository interface {
	GetMaterialTypeByID(ctx context.Context, id string) (entities.MaterialType, error)
	ListMaterials(ctx context.Context) ([]entities.Material, error)
	DecrementStock(ctx context.Context, materialTypeID string, quantity int) error
}
