package interfaces

import (
	"context"
	"errors"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

// ErrVersionConflict is returned by conditional quote writes when the stored
// version no longer matches the one the caller read.
var ErrVersionConflict = errors.New("quote version conflict")

// ErrResultLineMissing is returned by CommitStatus when a line named in the
// availability set is not part of the quote's current result.
var ErrResultLineMissing = errors.New("result line missing")

// IQuoteRepository abstracts DynamoDB persistence for quotes, their result
// lines and calc-run audit records.
//
// Read methods return the zero value and a nil error when nothing is stored.
// Every quote write is conditional on the expected version and bumps it by one.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error)

	ListResultLines(ctx context.Context, quoteID string) ([]entities.QuoteResultLine, error)
	UpdateResultLine(ctx context.Context, line entities.QuoteResultLine) (entities.QuoteResultLine, error)
	ListCalcRuns(ctx context.Context, quoteID string) ([]entities.QuoteCalcRun, error)

	// CommitCalculation replaces the result lines, appends the calc run and sets
	// the status in a single transaction of constant size.
	CommitCalculation(ctx context.Context, c entities.CalculationCommit) error
	// CommitStatus sets status, comment and line availability in a single transaction.
	CommitStatus(ctx context.Context, c entities.StatusCommit) error
}
