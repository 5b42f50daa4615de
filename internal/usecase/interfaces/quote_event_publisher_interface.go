package interfaces

import (
	"context"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

// IQuoteEventPublisher notifies downstream consumers about committed quote changes.
type IQuoteEventPublisher interface {
	Publish(ctx context.Context, e entities.QuoteEvent) error
}
