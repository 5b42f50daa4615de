package request

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

func TestQuoteItemRequest_ToInput(t *testing.T) {
	t.Run("params object", func(t *testing.T) {
		in, err := QuoteItemRequest{TechniqueID: 1, Qty: 2, Params: json.RawMessage(`{"drive":"4x4","axles":3}`)}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Params["drive"] != "4x4" || in.Params["axles"] != json.Number("3") {
			t.Fatalf("unexpected params: %v", in.Params)
		}
	})

	t.Run("params_json string", func(t *testing.T) {
		s := `{"drive":"6x6"}`
		in, err := QuoteItemRequest{TechniqueID: 1, Qty: 1, ParamsJSON: &s}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Params["drive"] != "6x6" {
			t.Fatalf("unexpected params: %v", in.Params)
		}
	})

	t.Run("no params", func(t *testing.T) {
		in, err := QuoteItemRequest{TechniqueID: 1, Qty: 1, Params: json.RawMessage(`null`)}.ToInput()
		if err != nil || in.Params != nil {
			t.Fatalf("expected no params, got %v %v", in.Params, err)
		}
	})

	for name, raw := range map[string]string{
		"array":     `[1,2]`,
		"scalar":    `"x"`,
		"nested":    `{"a":{"b":1}}`,
		"truncated": `{"a":`,
	} {
		t.Run("invalid "+name, func(t *testing.T) {
			_, err := QuoteItemRequest{TechniqueID: 1, Qty: 1, ParamsJSON: &raw}.ToInput()
			if !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestUpdateQuoteRequest_TriState(t *testing.T) {
	var req UpdateQuoteRequest
	if err := json.Unmarshal([]byte(`{"customer_name":null,"items":[{"technique_id":4,"qty":2}]}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmd, err := req.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cmd.CustomerName.Set || !cmd.CustomerName.Null {
		t.Fatalf("expected explicit null customer name, got %+v", cmd.CustomerName)
	}
	if cmd.Comment.Set {
		t.Fatalf("expected comment absent")
	}
	if cmd.Zones != nil {
		t.Fatalf("expected zones absent")
	}
	if cmd.Items == nil || len(*cmd.Items) != 1 || (*cmd.Items)[0].TechniqueID != 4 {
		t.Fatalf("unexpected items: %+v", cmd.Items)
	}
}

func TestListQuotesQuery_ToFilter(t *testing.T) {
	f, err := ListQuotesQuery{Status: "draft", Search: "acme", DateFrom: "2026-03-01"}.ToFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Status != entities.QuoteStatusDraft || f.Search != "acme" || f.DateFrom == nil || f.DateFrom.Day() != 1 || f.DateTo != nil {
		t.Fatalf("unexpected filter: %+v", f)
	}

	if _, err := (ListQuotesQuery{DateTo: "03/01/2026"}).ToFilter(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestWarehouseDecisionRequest_ToCommand(t *testing.T) {
	cmd := WarehouseDecisionRequest{
		Decision: "rework",
		Lines:    []LineAvailabilityRequest{{LineID: " l-1 ", AvailabilityStatus: "to_order"}},
	}.ToCommand()
	if cmd.Decision != entities.QuoteStatusRework {
		t.Fatalf("unexpected decision: %s", cmd.Decision)
	}
	if len(cmd.Lines) != 1 || cmd.Lines[0].LineID != "l-1" || cmd.Lines[0].Status != entities.AvailabilityToOrder {
		t.Fatalf("unexpected lines: %+v", cmd.Lines)
	}
}

func TestCreateRuleRequest_ToCommand(t *testing.T) {
	cmd, err := CreateRuleRequest{TechniqueID: 2, Actions: json.RawMessage(`[{"sku_id":1}]`), ActiveFrom: "2026-01-01"}.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.TechniqueID != 2 || cmd.ActiveFrom == nil || cmd.ActiveFrom.Year() != 2026 || cmd.ActiveTo != nil {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	if _, err := (CreateRuleRequest{TechniqueID: 2, ActiveTo: "tomorrow"}).ToCommand(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
