package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/calc"
	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase"
	"github.com/alexVinter/fire-dynamics1/pkg"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidParams = errors.New("params must be a flat JSON object")
	ErrInvalidDate   = errors.New("dates must use YYYY-MM-DD")
)

// QuoteItemRequest accepts parameters either as a JSON object in params or
// as a serialized object in params_json. params wins when both are sent.
type QuoteItemRequest struct {
	TechniqueID    int64           `json:"technique_id" binding:"required"`
	EngineOptionID *int64          `json:"engine_option_id"`
	EngineText     *string         `json:"engine_text"`
	Year           *int            `json:"year"`
	Qty            int             `json:"qty" binding:"required,min=1"`
	Params         json.RawMessage `json:"params" swaggertype:"object"`
	ParamsJSON     *string         `json:"params_json"`
}

func (r QuoteItemRequest) ToInput() (usecase.QuoteItemInput, error) {
	params, err := r.resolveParams()
	if err != nil {
		return usecase.QuoteItemInput{}, err
	}
	return usecase.QuoteItemInput{
		TechniqueID:    r.TechniqueID,
		EngineOptionID: r.EngineOptionID,
		EngineText:     r.EngineText,
		Year:           r.Year,
		Qty:            r.Qty,
		Params:         params,
	}, nil
}

func (r QuoteItemRequest) resolveParams() (map[string]any, error) {
	raw := strings.TrimSpace(string(r.Params))
	if raw == "" || raw == "null" {
		if r.ParamsJSON == nil {
			return nil, nil
		}
		raw = strings.TrimSpace(*r.ParamsJSON)
	}
	if raw == "" {
		return nil, nil
	}
	if !strings.HasPrefix(raw, "{") {
		return nil, ErrInvalidParams
	}
	params, err := calc.ParseParams(raw)
	if err != nil {
		return nil, ErrInvalidParams
	}
	if err := calc.ValidateParams(params); err != nil {
		return nil, ErrInvalidParams
	}
	return params, nil
}

type CreateQuoteRequest struct {
	CustomerName *string            `json:"customer_name"`
	Comment      *string            `json:"comment"`
	Zones        []string           `json:"zones"`
	Items        []QuoteItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
}

func (r CreateQuoteRequest) ToCommand() (usecase.CreateQuoteCommand, error) {
	items, err := toInputs(r.Items)
	if err != nil {
		return usecase.CreateQuoteCommand{}, err
	}
	return usecase.CreateQuoteCommand{
		CustomerName: r.CustomerName,
		Comment:      r.Comment,
		Zones:        r.Zones,
		Items:        items,
	}, nil
}

// UpdateQuoteRequest is a partial update: an omitted customer_name or comment
// is kept, an explicit null clears it.
type UpdateQuoteRequest struct {
	CustomerName pkg.Optional[string] `json:"customer_name" swaggertype:"string"`
	Comment      pkg.Optional[string] `json:"comment" swaggertype:"string"`
	Zones        *[]string            `json:"zones"`
	Items        *[]QuoteItemRequest  `json:"items"`
}

func (r UpdateQuoteRequest) ToCommand() (usecase.UpdateQuoteCommand, error) {
	cmd := usecase.UpdateQuoteCommand{
		CustomerName: r.CustomerName,
		Comment:      r.Comment,
		Zones:        r.Zones,
	}
	if r.Items != nil {
		items, err := toInputs(*r.Items)
		if err != nil {
			return usecase.UpdateQuoteCommand{}, err
		}
		cmd.Items = &items
	}
	return cmd, nil
}

func toInputs(items []QuoteItemRequest) ([]usecase.QuoteItemInput, error) {
	out := make([]usecase.QuoteItemInput, 0, len(items))
	for _, it := range items {
		in, err := it.ToInput()
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// ListQuotesQuery binds GET /quotes query parameters.
type ListQuotesQuery struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

func (q ListQuotesQuery) ToFilter() (entities.QuoteFilter, error) {
	f := entities.QuoteFilter{
		Status: entities.QuoteStatus(strings.TrimSpace(q.Status)),
		Search: q.Search,
	}
	var err error
	if f.DateFrom, err = parseDate(q.DateFrom); err != nil {
		return entities.QuoteFilter{}, err
	}
	if f.DateTo, err = parseDate(q.DateTo); err != nil {
		return entities.QuoteFilter{}, err
	}
	return f, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

type ChangeStatusRequest struct {
	Status  string  `json:"status" binding:"required"`
	Comment *string `json:"comment"`
}

type LineAvailabilityRequest struct {
	LineID              string  `json:"line_id" binding:"required"`
	AvailabilityStatus  string  `json:"availability_status" binding:"required,oneof=in_stock to_order absent"`
	AvailabilityComment *string `json:"availability_comment"`
}

type WarehouseDecisionRequest struct {
	Decision string                    `json:"decision" binding:"required,oneof=confirmed rework"`
	Comment  *string                   `json:"comment"`
	Lines    []LineAvailabilityRequest `json:"lines" binding:"dive"`
}

func (r WarehouseDecisionRequest) ToCommand() usecase.WarehouseDecisionCommand {
	cmd := usecase.WarehouseDecisionCommand{
		Decision: entities.QuoteStatus(r.Decision),
		Comment:  r.Comment,
		Lines:    make([]entities.LineAvailability, 0, len(r.Lines)),
	}
	for _, l := range r.Lines {
		cmd.Lines = append(cmd.Lines, entities.LineAvailability{
			LineID:  strings.TrimSpace(l.LineID),
			Status:  entities.AvailabilityStatus(l.AvailabilityStatus),
			Comment: l.AvailabilityComment,
		})
	}
	return cmd
}

type PatchResultLineRequest struct {
	Qty  *int64               `json:"qty"`
	Note pkg.Optional[string] `json:"note" swaggertype:"string"`
}

func (r PatchResultLineRequest) ToCommand(quoteID, lineID string) usecase.PatchResultLineCommand {
	return usecase.PatchResultLineCommand{
		QuoteID: quoteID,
		LineID:  lineID,
		Qty:     r.Qty,
		Note:    r.Note,
	}
}
