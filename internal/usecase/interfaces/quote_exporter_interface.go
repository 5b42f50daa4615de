package interfaces

import (
	"context"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

// IQuoteExporter renders a calculated quote as a spreadsheet.
type IQuoteExporter interface {
	Render(ctx context.Context, doc entities.QuoteExport) ([]byte, error)
}
