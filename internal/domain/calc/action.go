package calc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	KeySKUID      = "sku_id"
	KeyMultiplier = "multiplier"
)

// MaxMultiplier bounds the absolute multiplier accepted when a rule is written.
const MaxMultiplier = 1_000_000

var ErrMalformedActions = errors.New("malformed actions")

var (
	maxMultiplier = decimal.NewFromInt(MaxMultiplier)
	maxQty        = decimal.NewFromInt(math.MaxInt64)
)

// Action adds Multiplier × item quantity of SKUID to the bill of materials.
type Action struct {
	SKUID      int64
	Multiplier decimal.Decimal
}

// DecodeActions parses a stored action list, silently dropping entries that
// lack an integer sku_id or carry a non-numeric multiplier.
func DecodeActions(raw json.RawMessage) []Action {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	actions := make([]Action, 0, len(entries))
	for _, e := range entries {
		a, err := decodeAction(e)
		if err != nil {
			continue
		}
		actions = append(actions, a)
	}
	return actions
}

// ValidateActions is the write-time check: a non-empty array where every entry decodes.
func ValidateActions(raw json.RawMessage) ([]Action, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedActions, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: actions must be a non-empty array", ErrMalformedActions)
	}
	actions := make([]Action, 0, len(entries))
	for i, e := range entries {
		a, err := decodeAction(e)
		if err != nil {
			return nil, fmt.Errorf("%w: action %d: %v", ErrMalformedActions, i, err)
		}
		if a.Multiplier.Abs().GreaterThan(maxMultiplier) {
			return nil, fmt.Errorf("%w: action %d: multiplier exceeds %d", ErrMalformedActions, i, MaxMultiplier)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func decodeAction(raw json.RawMessage) (Action, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Action{}, err
	}

	rawSKU, ok := fields[KeySKUID]
	if !ok || isNull(rawSKU) {
		return Action{}, errors.New("missing sku_id")
	}
	num, ok := asNumber(rawSKU)
	if !ok {
		return Action{}, errors.New("sku_id is not a number")
	}
	skuID, err := num.Int64()
	if err != nil {
		return Action{}, fmt.Errorf("sku_id is not an integer: %w", err)
	}

	multiplier := decimal.NewFromInt(1)
	if rawMul, ok := fields[KeyMultiplier]; ok {
		num, ok := asNumber(rawMul)
		if !ok {
			return Action{}, errors.New("multiplier is not a number")
		}
		multiplier, err = decimal.NewFromString(num.String())
		if err != nil {
			return Action{}, fmt.Errorf("multiplier: %w", err)
		}
	}

	return Action{SKUID: skuID, Multiplier: multiplier}, nil
}

func asNumber(raw json.RawMessage) (json.Number, bool) {
	v, err := decodeValue(raw)
	if err != nil {
		return "", false
	}
	n, ok := v.(json.Number)
	return n, ok
}

// ApplyActions adds each action's contribution for qty units to totals.
// The product is computed exactly and truncated toward zero. A contribution
// that does not fit in int64, alone or added to the running total, is left
// out and its SKU id returned.
func ApplyActions(actions []Action, qty int, totals map[int64]int64) []int64 {
	var overflowed []int64
	q := decimal.NewFromInt(int64(qty))
	for _, a := range actions {
		p := a.Multiplier.Mul(q).Truncate(0)
		if p.Abs().GreaterThan(maxQty) {
			overflowed = append(overflowed, a.SKUID)
			continue
		}
		sum, ok := addInt64(totals[a.SKUID], p.IntPart())
		if !ok {
			overflowed = append(overflowed, a.SKUID)
			continue
		}
		totals[a.SKUID] = sum
	}
	return overflowed
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}
