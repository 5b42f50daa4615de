package interfaces

import (
	"context"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

// IReferenceRepository is the read-only view of the catalog (techniques,
// engine options, SKUs) maintained by the admin tooling.

type IReferenceRepository interface {
	GetTechnique(ctx context.Context, id int64) (entities.Technique, error)
	GetEngineOption(ctx context.Context, id int64) (entities.EngineOption, error)
	GetSKUsByIDs(ctx context.Context, ids []int64) ([]entities.SKU, error)
}
