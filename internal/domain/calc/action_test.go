package calc

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeActions_SkipsMalformedEntries(t *testing.T) {
	raw := json.RawMessage(`[
		{"sku_id": 1, "multiplier": 2},
		{"sku_id": 2},
		{"multiplier": 3},
		{"sku_id": null, "multiplier": 1},
		{"sku_id": "7", "multiplier": 1},
		{"sku_id": 3, "multiplier": "x2"},
		{"sku_id": 4, "multiplier": null},
		{"sku_id": 5, "multiplier": 0.5},
		"garbage"
	]`)
	actions := DecodeActions(raw)
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d: %+v", len(actions), actions)
	}
	if actions[0].SKUID != 1 || actions[0].Multiplier.String() != "2" {
		t.Fatalf("unexpected first action: %+v", actions[0])
	}
	if actions[1].SKUID != 2 || actions[1].Multiplier.String() != "1" {
		t.Fatalf("multiplier must default to 1: %+v", actions[1])
	}
	if actions[2].SKUID != 5 || actions[2].Multiplier.String() != "0.5" {
		t.Fatalf("unexpected fractional action: %+v", actions[2])
	}

	if got := DecodeActions(json.RawMessage(`{"sku_id":1}`)); len(got) != 0 {
		t.Fatalf("a non-array action list yields no actions, got %+v", got)
	}
}

func TestApplyActions(t *testing.T) {
	actions := DecodeActions(json.RawMessage(`[{"sku_id":1,"multiplier":2},{"sku_id":2,"multiplier":0.5},{"sku_id":1}]`))
	totals := map[int64]int64{}

	ApplyActions(actions, 3, totals)
	if totals[1] != 9 {
		t.Fatalf("expected sku 1 = 2*3 + 1*3 = 9, got %d", totals[1])
	}
	if totals[2] != 1 {
		t.Fatalf("expected sku 2 = trunc(1.5) = 1, got %d", totals[2])
	}

	ApplyActions(actions, 3, totals)
	if totals[1] != 18 || totals[2] != 2 {
		t.Fatalf("totals must accumulate, got %+v", totals)
	}
}

func TestApplyActions_ExactProduct(t *testing.T) {
	// 0.29 * 100 is 28.999999999999996 in binary floating point.
	actions := DecodeActions(json.RawMessage(`[{"sku_id":1,"multiplier":0.29}]`))
	totals := map[int64]int64{}
	ApplyActions(actions, 100, totals)
	if totals[1] != 29 {
		t.Fatalf("expected 29, got %d", totals[1])
	}
}

func TestApplyActions_TruncatesTowardZero(t *testing.T) {
	actions := DecodeActions(json.RawMessage(`[{"sku_id":1,"multiplier":-0.5}]`))
	totals := map[int64]int64{}
	ApplyActions(actions, 3, totals)
	if totals[1] != -1 {
		t.Fatalf("expected -1, got %d", totals[1])
	}
}

func TestValidateActions(t *testing.T) {
	actions, err := ValidateActions(json.RawMessage(`[{"sku_id":10,"multiplier":1.5},{"sku_id":11}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 2 || actions[1].SKUID != 11 {
		t.Fatalf("unexpected actions: %+v", actions)
	}

	for _, raw := range []string{`[]`, `{}`, `[{"multiplier":1}]`, `[{"sku_id":1,"multiplier":"2"}]`, `[{"sku_id":1.5}]`} {
		if _, err := ValidateActions(json.RawMessage(raw)); !errors.Is(err, ErrMalformedActions) {
			t.Fatalf("expected ErrMalformedActions for %s, got %v", raw, err)
		}
	}
}

func TestApplyActions_Overflow(t *testing.T) {
	actions := DecodeActions(json.RawMessage(`[{"sku_id":1,"multiplier":1e19},{"sku_id":2,"multiplier":5e18},{"sku_id":2,"multiplier":5e18},{"sku_id":3}]`))
	totals := map[int64]int64{}

	overflowed := ApplyActions(actions, 1, totals)
	if len(overflowed) != 2 || overflowed[0] != 1 || overflowed[1] != 2 {
		t.Fatalf("expected skus 1 and 2 to overflow, got %v", overflowed)
	}
	if _, ok := totals[1]; ok {
		t.Fatalf("sku 1 must not be recorded, got %d", totals[1])
	}
	if totals[2] != 5e18 {
		t.Fatalf("expected the first sku 2 contribution to stay, got %d", totals[2])
	}
	if totals[3] != 1 {
		t.Fatalf("expected sku 3 = 1, got %d", totals[3])
	}
}

func TestValidateActions_MultiplierBound(t *testing.T) {
	if _, err := ValidateActions(json.RawMessage(`[{"sku_id":1,"multiplier":1000000}]`)); err != nil {
		t.Fatalf("multiplier at the bound must pass, got %v", err)
	}
	for _, raw := range []string{`[{"sku_id":1,"multiplier":1e19}]`, `[{"sku_id":1,"multiplier":-1000001}]`} {
		if _, err := ValidateActions(json.RawMessage(raw)); !errors.Is(err, ErrMalformedActions) {
			t.Fatalf("expected ErrMalformedActions for %s, got %v", raw, err)
		}
	}
}
