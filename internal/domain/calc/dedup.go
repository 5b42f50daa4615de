package calc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

// EngineNameResolver resolves an engine option id to its display name.
// Missing or inactive options resolve to "".
type EngineNameResolver interface {
	EngineName(ctx context.Context, engineOptionID int64) string
}

// DedupedItem is the quantity-summed form of identical quote items.
type DedupedItem struct {
	TechniqueID    int64
	EngineOptionID *int64
	EngineName     string
	EngineText     *string
	Year           *int
	Qty            int
	Params         map[string]any
}

// Engine is the value compared against an engine condition: the resolved
// option name, falling back to the free-text engine.
func (d DedupedItem) Engine() string {
	if d.EngineName != "" {
		return d.EngineName
	}
	if d.EngineText != nil {
		return *d.EngineText
	}
	return ""
}

type dedupKey struct {
	techniqueID    int64
	engineOptionID int64
	hasEngineOpt   bool
	engineText     string
	hasEngineText  bool
	year           int
	hasYear        bool
	params         string
}

func keyOf(it entities.QuoteItem) dedupKey {
	k := dedupKey{techniqueID: it.TechniqueID, params: it.ParamsJSON}
	if it.EngineOptionID != nil {
		k.engineOptionID, k.hasEngineOpt = *it.EngineOptionID, true
	}
	if it.EngineText != nil {
		k.engineText, k.hasEngineText = *it.EngineText, true
	}
	if it.Year != nil {
		k.year, k.hasYear = *it.Year, true
	}
	return k
}

// Dedup groups items by (technique, engine option, engine text, year, params)
// and sums their quantities. Buckets keep the order of first occurrence.
// Each engine option id is resolved at most once.
func Dedup(ctx context.Context, items []entities.QuoteItem, resolver EngineNameResolver) []DedupedItem {
	buckets := make([]DedupedItem, 0, len(items))
	index := make(map[dedupKey]int, len(items))
	engineCache := make(map[int64]string)

	for _, it := range items {
		var engineName string
		if it.EngineOptionID != nil {
			id := *it.EngineOptionID
			name, ok := engineCache[id]
			if !ok {
				if resolver != nil {
					name = resolver.EngineName(ctx, id)
				}
				engineCache[id] = name
			}
			engineName = name
		}

		k := keyOf(it)
		if i, ok := index[k]; ok {
			buckets[i].Qty += it.Qty
			continue
		}
		index[k] = len(buckets)
		buckets = append(buckets, DedupedItem{
			TechniqueID:    it.TechniqueID,
			EngineOptionID: it.EngineOptionID,
			EngineName:     engineName,
			EngineText:     it.EngineText,
			Year:           it.Year,
			Qty:            it.Qty,
			Params:         decodeParams(it.ParamsJSON),
		})
	}
	return buckets
}

// TechniqueIDs returns the distinct technique ids of items in ascending order.
func TechniqueIDs(items []DedupedItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.TechniqueID]; ok {
			continue
		}
		seen[it.TechniqueID] = struct{}{}
		ids = append(ids, it.TechniqueID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

var ErrMalformedParams = errors.New("malformed params")

// ValidateParams rejects nested objects and arrays: item parameters are a flat mapping.
func ValidateParams(params map[string]any) error {
	for k, v := range params {
		switch v.(type) {
		case map[string]any, []any:
			return fmt.Errorf("%w: %s must be a scalar", ErrMalformedParams, k)
		}
	}
	return nil
}

// CanonicalParams serializes a flat parameter mapping with sorted keys.
// An empty or nil mapping serializes to "".
func CanonicalParams(params map[string]any) (string, error) {
	if len(params) == 0 {
		return "", nil
	}
	b, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseParams decodes a serialized parameter mapping, keeping numbers exact.
func ParseParams(s string) (map[string]any, error) {
	params := map[string]any{}
	if s == "" {
		return params, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		return nil, err
	}
	if params == nil {
		params = map[string]any{}
	}
	return params, nil
}

func decodeParams(s string) map[string]any {
	params, err := ParseParams(s)
	if err != nil {
		return map[string]any{}
	}
	return params
}
