package calc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	KeyZonesIncluded = "zones_included"
	KeyYearRange     = "year_range"
	KeyEngine        = "engine"
	KeyParams        = "params"
)

var (
	ErrMalformedCondition  = errors.New("malformed condition")
	ErrUnknownConditionKey = errors.New("unknown condition key")
)

// Condition is a decoded rule condition. Every populated dimension must hold.
type Condition struct {
	// ZonesIncluded is required to be a subset of the quote's selected zones.
	ZonesIncluded []string
	HasZones      bool

	YearRange *YearRange
	Engine    *string
	// Params is nil when the key is absent.
	Params map[string]any
}

// YearRange bounds are inclusive; a nil bound is open.
type YearRange struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

// DecodeCondition parses a stored condition object. Unknown keys are ignored.
func DecodeCondition(raw json.RawMessage) (Condition, error) {
	var c Condition
	if len(bytes.TrimSpace(raw)) == 0 {
		return c, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Condition{}, fmt.Errorf("%w: %v", ErrMalformedCondition, err)
	}

	if v, ok := fields[KeyZonesIncluded]; ok {
		var zones []string
		if isNull(v) {
			return Condition{}, malformedKey(KeyZonesIncluded, errors.New("null"))
		}
		if err := json.Unmarshal(v, &zones); err != nil {
			return Condition{}, malformedKey(KeyZonesIncluded, err)
		}
		c.ZonesIncluded = zones
		c.HasZones = true
	}

	if v, ok := fields[KeyYearRange]; ok {
		var yr YearRange
		if isNull(v) {
			return Condition{}, malformedKey(KeyYearRange, errors.New("null"))
		}
		if err := json.Unmarshal(v, &yr); err != nil {
			return Condition{}, malformedKey(KeyYearRange, err)
		}
		c.YearRange = &yr
	}

	if v, ok := fields[KeyEngine]; ok {
		var engine string
		if isNull(v) {
			return Condition{}, malformedKey(KeyEngine, errors.New("null"))
		}
		if err := json.Unmarshal(v, &engine); err != nil {
			return Condition{}, malformedKey(KeyEngine, err)
		}
		c.Engine = &engine
	}

	if v, ok := fields[KeyParams]; ok {
		var params map[string]json.RawMessage
		if isNull(v) {
			return Condition{}, malformedKey(KeyParams, errors.New("null"))
		}
		if err := json.Unmarshal(v, &params); err != nil {
			return Condition{}, malformedKey(KeyParams, err)
		}
		c.Params = make(map[string]any, len(params))
		for k, pv := range params {
			decoded, err := decodeValue(pv)
			if err != nil {
				return Condition{}, malformedKey(KeyParams+"."+k, err)
			}
			c.Params[k] = decoded
		}
	}

	return c, nil
}

// ValidateCondition is the write-time check for admin-authored conditions:
// the document must be an object using only known keys with well-typed values.
func ValidateCondition(raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: conditions must be an object", ErrMalformedCondition)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCondition, err)
	}
	for k := range fields {
		switch k {
		case KeyZonesIncluded, KeyYearRange, KeyEngine, KeyParams:
		default:
			return fmt.Errorf("%w: %s", ErrUnknownConditionKey, k)
		}
	}
	c, err := DecodeCondition(trimmed)
	if err != nil {
		return err
	}
	if c.YearRange != nil && c.YearRange.From != nil && c.YearRange.To != nil && *c.YearRange.From > *c.YearRange.To {
		return malformedKey(KeyYearRange, errors.New("from is after to"))
	}
	for k, v := range c.Params {
		switch v.(type) {
		case map[string]any, []any:
			return malformedKey(KeyParams+"."+k, errors.New("params must be flat"))
		}
	}
	return nil
}

// Matches reports whether item satisfies every populated dimension of c.
// An empty Condition matches unconditionally.
func (c Condition) Matches(item DedupedItem, selectedZones ZoneSet) bool {
	if c.HasZones && !selectedZones.ContainsAll(c.ZonesIncluded) {
		return false
	}

	if c.YearRange != nil {
		if item.Year == nil {
			return false
		}
		if c.YearRange.From != nil && *item.Year < *c.YearRange.From {
			return false
		}
		if c.YearRange.To != nil && *item.Year > *c.YearRange.To {
			return false
		}
	}

	if c.Engine != nil {
		if !strings.EqualFold(item.Engine(), *c.Engine) {
			return false
		}
	}

	for k, expected := range c.Params {
		actual, ok := item.Params[k]
		if !ok || !valuesEqual(actual, expected) {
			return false
		}
	}

	return true
}

// ZoneSet is the set of zone codes selected on a quote.
type ZoneSet map[string]struct{}

func NewZoneSet(codes []string) ZoneSet {
	s := make(ZoneSet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

func (s ZoneSet) ContainsAll(codes []string) bool {
	for _, c := range codes {
		if _, ok := s[c]; !ok {
			return false
		}
	}
	return true
}

func malformedKey(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedCondition, key, err)
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// decodeValue decodes a JSON scalar keeping numbers as json.Number.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// valuesEqual compares parameter values; numbers compare by value so 2 and 2.0 are equal.
func valuesEqual(a, b any) bool {
	an, aok := a.(json.Number)
	bn, bok := b.(json.Number)
	if aok && bok {
		ad, aerr := decimal.NewFromString(an.String())
		bd, berr := decimal.NewFromString(bn.String())
		if aerr != nil || berr != nil {
			return an == bn
		}
		return ad.Equal(bd)
	}
	return reflect.DeepEqual(a, b)
}
