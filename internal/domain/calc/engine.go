package calc

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"go.uber.org/zap"
)

// Line is one aggregated bill-of-materials row.
type Line struct {
	SKUID int64
	Qty   int64
}

// Result is the outcome of one evaluation pass.
type Result struct {
	// Lines holds SKUs with a positive total, ordered by SKU id.
	Lines []Line
	// MatchedRuleIDs is sorted ascending and free of duplicates.
	MatchedRuleIDs []int64
	// Trace has one entry per (item, rule) match, in evaluation order,
	// followed by one entry per contribution dropped for overflow.
	Trace []string
}

type compiledRule struct {
	rule      entities.Rule
	condition Condition
	actions   []Action
	malformed bool
}

// Evaluate matches every deduped item against the rules of its technique that
// are active on today and sums the actions of every match. Matching is not
// exclusive: an item may match any number of rules.
func Evaluate(items []DedupedItem, rules []entities.Rule, selectedZones ZoneSet, today time.Time) Result {
	byTechnique := compileRules(rules, today)

	totals := make(map[int64]int64)
	matched := make(map[int64]struct{})
	var trace []string

	for _, item := range items {
		for _, cr := range byTechnique[item.TechniqueID] {
			if cr.malformed || !cr.condition.Matches(item, selectedZones) {
				continue
			}
			overflowed := ApplyActions(cr.actions, item.Qty, totals)
			matched[cr.rule.ID] = struct{}{}
			trace = append(trace, fmt.Sprintf("rule=%d matched technique=%d qty=%d", cr.rule.ID, item.TechniqueID, item.Qty))
			for _, sku := range overflowed {
				zap.L().Warn("[calc][engine] quantity overflow, contribution skipped",
					zap.Int64("rule_id", cr.rule.ID), zap.Int64("sku_id", sku))
				trace = append(trace, fmt.Sprintf("rule=%d sku=%d skipped: quantity overflow", cr.rule.ID, sku))
			}
		}
	}

	return Result{
		Lines:          positiveLines(totals),
		MatchedRuleIDs: sortedIDs(matched),
		Trace:          trace,
	}
}

func compileRules(rules []entities.Rule, today time.Time) map[int64][]compiledRule {
	sorted := make([]entities.Rule, 0, len(rules))
	for _, r := range rules {
		if r.ActiveOn(today) {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	out := make(map[int64][]compiledRule)
	for _, r := range sorted {
		cr := compiledRule{rule: r}
		cond, err := DecodeCondition(r.Conditions)
		if err != nil {
			zap.L().Warn("[calc][engine] skipping rule with malformed condition",
				zap.Int64("rule_id", r.ID), zap.Error(err))
			cr.malformed = true
		} else {
			cr.condition = cond
			cr.actions = DecodeActions(r.Actions)
		}
		out[r.TechniqueID] = append(out[r.TechniqueID], cr)
	}
	return out
}

func positiveLines(totals map[int64]int64) []Line {
	lines := make([]Line, 0, len(totals))
	for sku, qty := range totals {
		if qty <= 0 {
			continue
		}
		lines = append(lines, Line{SKUID: sku, Qty: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].SKUID < lines[j].SKUID })
	return lines
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
