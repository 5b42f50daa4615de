package interfaces

import (
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

// IQuoteMetrics records calculation and workflow metrics.
type IQuoteMetrics interface {
	ObserveCalculation(result string, duration time.Duration, matchedRules int)
	IncStatusTransition(from, to entities.QuoteStatus)
}
