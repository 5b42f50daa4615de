package response

import (
	"encoding/json"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase"
)

type QuoteItemResponse struct {
	TechniqueID    int64           `json:"technique_id"`
	EngineOptionID *int64          `json:"engine_option_id"`
	EngineText     *string         `json:"engine_text"`
	Year           *int            `json:"year"`
	Qty            int             `json:"qty"`
	Params         json.RawMessage `json:"params" swaggertype:"object"`
	ParamsJSON     *string         `json:"params_json"`
}

type QuoteResponse struct {
	ID           string              `json:"id"`
	CreatedBy    string              `json:"created_by"`
	Status       string              `json:"status"`
	CustomerName *string             `json:"customer_name"`
	Comment      *string             `json:"comment"`
	Zones        []string            `json:"zones"`
	Items        []QuoteItemResponse `json:"items"`
	Version      int64               `json:"version"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		ID:           q.ID,
		CreatedBy:    q.CreatedBy,
		Status:       string(q.Status),
		CustomerName: q.CustomerName,
		Comment:      q.Comment,
		Zones:        q.Zones,
		Items:        make([]QuoteItemResponse, 0, len(q.Items)),
		Version:      q.Version,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
	if res.Zones == nil {
		res.Zones = []string{}
	}
	for _, it := range q.Items {
		item := QuoteItemResponse{
			TechniqueID:    it.TechniqueID,
			EngineOptionID: it.EngineOptionID,
			EngineText:     it.EngineText,
			Year:           it.Year,
			Qty:            it.Qty,
		}
		if it.ParamsJSON != "" {
			params := it.ParamsJSON
			item.Params = json.RawMessage(params)
			item.ParamsJSON = &params
		}
		res.Items = append(res.Items, item)
	}
	return res
}

type QuoteListItemResponse struct {
	ID           string    `json:"id"`
	CreatedBy    string    `json:"created_by"`
	Status       string    `json:"status"`
	CustomerName *string   `json:"customer_name"`
	ItemsCount   int       `json:"items_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromQuoteList(quotes []entities.Quote) []QuoteListItemResponse {
	out := make([]QuoteListItemResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, QuoteListItemResponse{
			ID:           q.ID,
			CreatedBy:    q.CreatedBy,
			Status:       string(q.Status),
			CustomerName: q.CustomerName,
			ItemsCount:   len(q.Items),
			CreatedAt:    q.CreatedAt,
			UpdatedAt:    q.UpdatedAt,
		})
	}
	return out
}

type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func FromQuoteStatus(q entities.Quote) StatusResponse {
	return StatusResponse{ID: q.ID, Status: string(q.Status)}
}

type ResultLineResponse struct {
	ID                  string  `json:"id"`
	SKUID               int64   `json:"sku_id"`
	SKUCode             *string `json:"sku_code"`
	SKUName             *string `json:"sku_name"`
	SKUUnit             *string `json:"sku_unit"`
	Qty                 int64   `json:"qty"`
	Note                *string `json:"note"`
	AvailabilityStatus  *string `json:"availability_status"`
	AvailabilityComment *string `json:"availability_comment"`
}

func FromResultLine(v usecase.ResultLineView) ResultLineResponse {
	res := ResultLineResponse{
		ID:                  v.ID,
		SKUID:               v.SKUID,
		SKUCode:             v.SKUCode,
		SKUName:             v.SKUName,
		SKUUnit:             v.SKUUnit,
		Qty:                 v.Qty,
		Note:                v.Note,
		AvailabilityComment: v.AvailabilityComment,
	}
	if v.AvailabilityStatus != nil {
		s := string(*v.AvailabilityStatus)
		res.AvailabilityStatus = &s
	}
	return res
}

func FromResultLines(views []usecase.ResultLineView) []ResultLineResponse {
	out := make([]ResultLineResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromResultLine(v))
	}
	return out
}

type CalcResultResponse struct {
	QuoteID string               `json:"quote_id"`
	Status  string               `json:"status"`
	Lines   []ResultLineResponse `json:"lines"`
}

func FromCalculation(r usecase.CalculationResult) CalcResultResponse {
	return CalcResultResponse{
		QuoteID: r.QuoteID,
		Status:  string(r.Status),
		Lines:   FromResultLines(r.Lines),
	}
}

type CalcRunResponse struct {
	ID             string    `json:"id"`
	QuoteID        string    `json:"quote_id"`
	CreatedAt      time.Time `json:"created_at"`
	MatchedRuleIDs []int64   `json:"matched_rule_ids"`
	DebugNote      *string   `json:"debug_note"`
}

func FromCalcRuns(runs []entities.QuoteCalcRun) []CalcRunResponse {
	out := make([]CalcRunResponse, 0, len(runs))
	for _, r := range runs {
		ids := r.MatchedRuleIDs
		if ids == nil {
			ids = []int64{}
		}
		out = append(out, CalcRunResponse{
			ID:             r.ID,
			QuoteID:        r.QuoteID,
			CreatedAt:      r.CreatedAt,
			MatchedRuleIDs: ids,
			DebugNote:      r.DebugNote,
		})
	}
	return out
}
