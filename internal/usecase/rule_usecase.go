package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/calc"
	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidTechniqueID   = errors.New("invalid technique id")
	ErrTechniqueNotFound    = errors.New("technique not found")
	ErrSKUNotFound          = errors.New("sku not found")
	ErrInvalidRuleCondition = errors.New("invalid rule conditions")
	ErrInvalidRuleActions   = errors.New("invalid rule actions")
	ErrInvalidRuleVersion   = errors.New("rule version must be >= 1")
	ErrInvalidRuleWindow    = errors.New("active_from is after active_to")
)

type CreateRuleCommand struct {
	TechniqueID int64
	Conditions  json.RawMessage
	Actions     json.RawMessage
	Version     int
	ActiveFrom  *time.Time
	ActiveTo    *time.Time
}

// IRuleUseCase is the admin surface for calculation rules.
// Conditions and actions are validated here so the engine only ever sees
// documents from the closed vocabulary.

type IRuleUseCase interface {
	Create(ctx context.Context, cmd CreateRuleCommand) (entities.Rule, error)
	ListByTechnique(ctx context.Context, techniqueID int64) ([]entities.Rule, error)
}

type RuleUseCase struct {
	rules interfaces.IRuleRepository
	refs  interfaces.IReferenceRepository
}

var _ IRuleUseCase = (*RuleUseCase)(nil)

func NewRuleUseCase(rules interfaces.IRuleRepository, refs interfaces.IReferenceRepository) *RuleUseCase {
	return &RuleUseCase{rules: rules, refs: refs}
}

func (u *RuleUseCase) Create(ctx context.Context, cmd CreateRuleCommand) (entities.Rule, error) {
	if cmd.TechniqueID <= 0 {
		return entities.Rule{}, ErrInvalidTechniqueID
	}
	if cmd.Version == 0 {
		cmd.Version = 1
	}
	if cmd.Version < 1 {
		return entities.Rule{}, ErrInvalidRuleVersion
	}
	if cmd.ActiveFrom != nil && cmd.ActiveTo != nil && entities.DateOf(*cmd.ActiveFrom).After(entities.DateOf(*cmd.ActiveTo)) {
		return entities.Rule{}, ErrInvalidRuleWindow
	}

	conditions := bytes.TrimSpace(cmd.Conditions)
	if len(conditions) == 0 {
		conditions = []byte("{}")
	}
	if err := calc.ValidateCondition(conditions); err != nil {
		return entities.Rule{}, fmt.Errorf("%w: %v", ErrInvalidRuleCondition, err)
	}
	actions, err := calc.ValidateActions(cmd.Actions)
	if err != nil {
		return entities.Rule{}, fmt.Errorf("%w: %v", ErrInvalidRuleActions, err)
	}

	technique, err := u.refs.GetTechnique(ctx, cmd.TechniqueID)
	if err != nil {
		return entities.Rule{}, err
	}
	if technique.ID == 0 {
		return entities.Rule{}, ErrTechniqueNotFound
	}
	if err := u.ensureSKUs(ctx, actions); err != nil {
		return entities.Rule{}, err
	}

	r := entities.Rule{
		TechniqueID: cmd.TechniqueID,
		Conditions:  compact(conditions),
		Actions:     compact(cmd.Actions),
		Version:     cmd.Version,
		ActiveFrom:  dateOrNil(cmd.ActiveFrom),
		ActiveTo:    dateOrNil(cmd.ActiveTo),
		Active:      true,
	}
	created, err := u.rules.Create(ctx, r)
	if err != nil {
		return entities.Rule{}, err
	}
	zap.L().Info("[rule][usecase] rule created",
		zap.Int64("rule_id", created.ID),
		zap.Int64("technique_id", created.TechniqueID),
		zap.Int("version", created.Version),
	)
	return created, nil
}

// ListByTechnique returns the active rules of a technique, highest version first.
func (u *RuleUseCase) ListByTechnique(ctx context.Context, techniqueID int64) ([]entities.Rule, error) {
	if techniqueID <= 0 {
		return nil, ErrInvalidTechniqueID
	}
	rules, err := u.rules.ListActiveByTechniqueIDs(ctx, []int64{techniqueID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Version != rules[j].Version {
			return rules[i].Version > rules[j].Version
		}
		return rules[i].ID > rules[j].ID
	})
	return rules, nil
}

func (u *RuleUseCase) ensureSKUs(ctx context.Context, actions []calc.Action) error {
	ids := make([]int64, 0, len(actions))
	seen := make(map[int64]struct{}, len(actions))
	for _, a := range actions {
		if _, ok := seen[a.SKUID]; ok {
			continue
		}
		seen[a.SKUID] = struct{}{}
		ids = append(ids, a.SKUID)
	}

	skus, err := u.refs.GetSKUsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, s := range skus {
		delete(seen, s.ID)
	}
	for _, id := range ids {
		if _, missing := seen[id]; missing {
			return fmt.Errorf("%w: %d", ErrSKUNotFound, id)
		}
	}
	return nil
}

func compact(raw []byte) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return json.RawMessage(raw)
	}
	return json.RawMessage(buf.Bytes())
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entities.DateOf(*t)
	return &d
}
