package interfaces

import (
	"context"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

// IRuleRepository abstracts DynamoDB persistence for calculation rules.

type IRuleRepository interface {
	Create(ctx context.Context, r entities.Rule) (entities.Rule, error)
	// ListActiveByTechniqueIDs returns every rule flagged active for the given
	// techniques. Date windows are not applied here.
	ListActiveByTechniqueIDs(ctx context.Context, techniqueIDs []int64) ([]entities.Rule, error)
}
