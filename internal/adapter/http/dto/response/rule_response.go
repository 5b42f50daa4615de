package response

import (
	"encoding/json"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
)

type RuleResponse struct {
	ID          int64           `json:"id"`
	TechniqueID int64           `json:"technique_id"`
	Conditions  json.RawMessage `json:"conditions" swaggertype:"object"`
	Actions     json.RawMessage `json:"actions" swaggertype:"array,object"`
	Version     int             `json:"version"`
	ActiveFrom  *string         `json:"active_from"`
	ActiveTo    *string         `json:"active_to"`
	Active      bool            `json:"active"`
}

func FromRule(r entities.Rule) RuleResponse {
	res := RuleResponse{
		ID:          r.ID,
		TechniqueID: r.TechniqueID,
		Conditions:  r.Conditions,
		Actions:     r.Actions,
		Version:     r.Version,
		Active:      r.Active,
	}
	if len(res.Conditions) == 0 {
		res.Conditions = json.RawMessage(`{}`)
	}
	if r.ActiveFrom != nil {
		s := r.ActiveFrom.Format("2006-01-02")
		res.ActiveFrom = &s
	}
	if r.ActiveTo != nil {
		s := r.ActiveTo.Format("2006-01-02")
		res.ActiveTo = &s
	}
	return res
}

func FromRules(rules []entities.Rule) []RuleResponse {
	out := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromRule(r))
	}
	return out
}
