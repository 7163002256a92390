package interfaces

import (
	"context"

	"lasercraft/internal/domain/entities"
)

// IExtrasRegistryRepository abstracts the registry of optional flat-priced
// services. Read-only: the registry is managed elsewhere.
type IExtrasRegistryRepository interface {
	ListActive(ctx context.Context) ([]entities.ExtraService, error)
}
