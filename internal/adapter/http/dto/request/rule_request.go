package request

import (
	"encoding/json"

	"github.com/alexVinter/fire-dynamics1/internal/usecase"
)

type CreateRuleRequest struct {
	TechniqueID int64           `json:"technique_id" binding:"required"`
	Conditions  json.RawMessage `json:"conditions" swaggertype:"object"`
	Actions     json.RawMessage `json:"actions" binding:"required" swaggertype:"array,object"`
	Version     int             `json:"version"`
	ActiveFrom  string          `json:"active_from" example:"2026-01-01"`
	ActiveTo    string          `json:"active_to" example:"2026-12-31"`
}

func (r CreateRuleRequest) ToCommand() (usecase.CreateRuleCommand, error) {
	from, err := parseDate(r.ActiveFrom)
	if err != nil {
		return usecase.CreateRuleCommand{}, err
	}
	to, err := parseDate(r.ActiveTo)
	if err != nil {
		return usecase.CreateRuleCommand{}, err
	}
	return usecase.CreateRuleCommand{
		TechniqueID: r.TechniqueID,
		Conditions:  r.Conditions,
		Actions:     r.Actions,
		Version:     r.Version,
		ActiveFrom:  from,
		ActiveTo:    to,
	}, nil
}
