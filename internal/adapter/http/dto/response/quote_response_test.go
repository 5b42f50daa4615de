package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	name := "ACME"
	q := entities.Quote{
		ID:           "q-1",
		CreatedBy:    "u-1",
		Status:       entities.QuoteStatusDraft,
		CustomerName: &name,
		Items: []entities.QuoteItem{
			{TechniqueID: 1, Qty: 2, ParamsJSON: `{"drive":"4x4"}`},
			{TechniqueID: 2, Qty: 1},
		},
		Version:   3,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.Status != "draft" || res.Version != 3 || *res.CustomerName != "ACME" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Zones == nil || len(res.Zones) != 0 {
		t.Fatalf("expected empty zones slice, got %v", res.Zones)
	}

	b, err := json.Marshal(res.Items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"technique_id":1,"engine_option_id":null,"engine_text":null,"year":null,"qty":2,"params":{"drive":"4x4"},"params_json":"{\"drive\":\"4x4\"}"},` +
		`{"technique_id":2,"engine_option_id":null,"engine_text":null,"year":null,"qty":1,"params":null,"params_json":null}]`
	if string(b) != want {
		t.Fatalf("unexpected items json:\n%s", b)
	}
}

func TestFromResultLine(t *testing.T) {
	code := "FX-1"
	status := entities.AvailabilityToOrder
	v := usecase.ResultLineView{
		QuoteResultLine: entities.QuoteResultLine{ID: "l-1", SKUID: 9, Qty: 4, AvailabilityStatus: &status},
		SKUCode:         &code,
	}

	res := FromResultLine(v)
	if res.ID != "l-1" || res.SKUID != 9 || res.Qty != 4 || *res.SKUCode != "FX-1" || res.SKUName != nil {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.AvailabilityStatus == nil || *res.AvailabilityStatus != "to_order" {
		t.Fatalf("unexpected availability: %v", res.AvailabilityStatus)
	}
}

func TestFromCalcRuns(t *testing.T) {
	res := FromCalcRuns([]entities.QuoteCalcRun{{ID: "r-1", QuoteID: "q-1"}})
	if len(res) != 1 || res[0].MatchedRuleIDs == nil {
		t.Fatalf("expected empty matched ids slice, got %+v", res)
	}
}

func TestFromRule(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	res := FromRule(entities.Rule{ID: 5, TechniqueID: 2, Actions: json.RawMessage(`[{"sku_id":1}]`), Version: 2, ActiveFrom: &from, Active: true})
	if res.ID != 5 || string(res.Conditions) != `{}` || res.ActiveFrom == nil || *res.ActiveFrom != "2026-02-01" || res.ActiveTo != nil {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}
