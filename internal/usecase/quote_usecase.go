package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/calc"
	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/domain/quotestatus"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"
	"github.com/alexVinter/fire-dynamics1/pkg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidQuoteItems     = errors.New("invalid quote items")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrQuoteNotEditable      = errors.New("quote is not editable in its current status")
	ErrQuoteNotCalculable    = errors.New("quote cannot be calculated in its current status")
	ErrQuoteConcurrentUpdate = errors.New("quote was modified concurrently")
	ErrForbidden             = errors.New("forbidden")
	ErrResultLineNotFound    = errors.New("result line not found")
	ErrResultFrozen          = errors.New("result lines of a confirmed quote cannot be edited")
	ErrInvalidQty            = errors.New("qty must be >= 1")
	ErrNoResultLines         = errors.New("quote has no result lines")
	ErrInvalidDecision       = errors.New("decision must be confirmed or rework")
	ErrInvalidAvailability   = errors.New("invalid availability status")
)

// Calculation outcomes reported to IQuoteMetrics.
const (
	CalcResultSuccess  = "success"
	CalcResultConflict = "conflict"
	CalcResultError    = "error"
)

// QuoteItemInput is one raw item as received from a caller. Params is the
// decoded flat parameter mapping; it is canonicalized before storage.
type QuoteItemInput struct {
	TechniqueID    int64
	EngineOptionID *int64
	EngineText     *string
	Year           *int
	Qty            int
	Params         map[string]any
}

type CreateQuoteCommand struct {
	CustomerName *string
	Comment      *string
	Zones        []string
	Items        []QuoteItemInput
}

// UpdateQuoteCommand is a partial update. Zones and Items replace the stored
// values wholesale when non-nil.
type UpdateQuoteCommand struct {
	CustomerName pkg.Optional[string]
	Comment      pkg.Optional[string]
	Zones        *[]string
	Items        *[]QuoteItemInput
}

type PatchResultLineCommand struct {
	QuoteID string
	LineID  string
	Qty     *int64
	Note    pkg.Optional[string]
}

type WarehouseDecisionCommand struct {
	Decision entities.QuoteStatus
	Comment  *string
	Lines    []entities.LineAvailability
}

// ResultLineView is a result line joined with its SKU. SKU fields stay nil
// when the SKU is no longer in the catalog.
type ResultLineView struct {
	entities.QuoteResultLine
	SKUCode *string
	SKUName *string
	SKUUnit *string
}

type CalculationResult struct {
	QuoteID string
	Status  entities.QuoteStatus
	Lines   []ResultLineView
}

// IQuoteUseCase exposes quote editing, calculation and workflow operations.
//
//   - POST /quotes/{id}/calculate  => Calculate()
//   - POST /quotes/{id}/status     => ChangeStatus()
//   - POST /quotes/{id}/warehouse/confirm => WarehouseDecision()

type IQuoteUseCase interface {
	Create(ctx context.Context, actor entities.Actor, cmd CreateQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error)
	Update(ctx context.Context, actor entities.Actor, id string, cmd UpdateQuoteCommand) (entities.Quote, error)
	Calculate(ctx context.Context, id string) (CalculationResult, error)
	ChangeStatus(ctx context.Context, actor entities.Actor, id string, target entities.QuoteStatus, comment *string) (entities.Quote, error)
	WarehouseDecision(ctx context.Context, actor entities.Actor, id string, cmd WarehouseDecisionCommand) (entities.Quote, error)
	GetResultLines(ctx context.Context, id string) ([]ResultLineView, error)
	PatchResultLine(ctx context.Context, actor entities.Actor, cmd PatchResultLineCommand) (ResultLineView, error)
	ListCalcRuns(ctx context.Context, id string) ([]entities.QuoteCalcRun, error)
	Export(ctx context.Context, id string) ([]byte, error)
}

type QuoteUseCase struct {
	quotes    interfaces.IQuoteRepository
	rules     interfaces.IRuleRepository
	refs      interfaces.IReferenceRepository
	publisher interfaces.IQuoteEventPublisher
	exporter  interfaces.IQuoteExporter
	metrics   interfaces.IQuoteMetrics
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	rules interfaces.IRuleRepository,
	refs interfaces.IReferenceRepository,
	publisher interfaces.IQuoteEventPublisher,
	exporter interfaces.IQuoteExporter,
	metrics interfaces.IQuoteMetrics,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:    quotes,
		rules:     rules,
		refs:      refs,
		publisher: publisher,
		exporter:  exporter,
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, actor entities.Actor, cmd CreateQuoteCommand) (entities.Quote, error) {
	items, err := buildItems(cmd.Items)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	q := entities.Quote{
		ID:           uuid.NewString(),
		CreatedBy:    actor.UserID,
		Status:       entities.QuoteStatusDraft,
		CustomerName: cmd.CustomerName,
		Comment:      cmd.Comment,
		Zones:        normalizeZones(cmd.Zones),
		Items:        items,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	zap.L().Info("[quote][usecase] quote created", zap.String("quote_id", created.ID), zap.Int("items", len(items)))
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// List filters by status in storage, then by customer-name search and
// creation date. Newest updates come first.
func (u *QuoteUseCase) List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	if filter.Status != "" && !quotestatus.Valid(filter.Status) {
		return nil, ErrInvalidStatus
	}

	all, err := u.quotes.List(ctx, filter.Status)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if search != "" && (q.CustomerName == nil || !strings.Contains(strings.ToLower(*q.CustomerName), search)) {
			continue
		}
		created := entities.DateOf(q.CreatedAt)
		if filter.DateFrom != nil && created.Before(entities.DateOf(*filter.DateFrom)) {
			continue
		}
		if filter.DateTo != nil && created.After(entities.DateOf(*filter.DateTo)) {
			continue
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, actor entities.Actor, id string, cmd UpdateQuoteCommand) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.CreatedBy != actor.UserID && actor.Role != entities.RoleAdmin {
		return entities.Quote{}, ErrForbidden
	}
	if !quotestatus.IsEditable(q.Status) {
		return entities.Quote{}, ErrQuoteNotEditable
	}

	cmd.CustomerName.ApplyTo(&q.CustomerName)
	cmd.Comment.ApplyTo(&q.Comment)
	if cmd.Zones != nil {
		q.Zones = normalizeZones(*cmd.Zones)
	}
	if cmd.Items != nil {
		items, err := buildItems(*cmd.Items)
		if err != nil {
			return entities.Quote{}, err
		}
		q.Items = items
	}
	q.UpdatedAt = u.now()

	updated, err := u.quotes.Update(ctx, q, q.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Quote{}, ErrQuoteConcurrentUpdate
		}
		return entities.Quote{}, err
	}
	return updated, nil
}

// Calculate expands the quote into a bill of materials and replaces its
// result lines. Lines, the calc-run record and the status change commit
// together or not at all.
func (u *QuoteUseCase) Calculate(ctx context.Context, id string) (CalculationResult, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return CalculationResult{}, err
	}
	if !quotestatus.IsCalculable(q.Status) {
		return CalculationResult{}, ErrQuoteNotCalculable
	}

	started := u.now()
	res, commit, err := u.evaluate(ctx, q, started)
	if err != nil {
		u.observeCalculation(CalcResultError, started, 0)
		return CalculationResult{}, err
	}

	if err := u.quotes.CommitCalculation(ctx, commit); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.observeCalculation(CalcResultConflict, started, len(res.MatchedRuleIDs))
			zap.L().Warn("[quote][usecase] calculation lost a concurrent update", zap.String("quote_id", q.ID))
			return CalculationResult{}, ErrQuoteConcurrentUpdate
		}
		u.observeCalculation(CalcResultError, started, len(res.MatchedRuleIDs))
		return CalculationResult{}, err
	}
	u.observeCalculation(CalcResultSuccess, started, len(res.MatchedRuleIDs))

	zap.L().Info("[quote][usecase] quote calculated",
		zap.String("quote_id", q.ID),
		zap.Int("lines", len(commit.Lines)),
		zap.Int64s("matched_rule_ids", res.MatchedRuleIDs),
	)
	u.publish(ctx, entities.QuoteEvent{
		Type:           entities.QuoteEventCalculated,
		QuoteID:        q.ID,
		Status:         commit.Status,
		PreviousStatus: q.Status,
		MatchedRuleIDs: res.MatchedRuleIDs,
		LineCount:      len(commit.Lines),
		OccurredAt:     commit.UpdatedAt,
	})

	views, err := u.enrichLines(ctx, commit.Lines)
	if err != nil {
		return CalculationResult{}, err
	}
	return CalculationResult{QuoteID: q.ID, Status: commit.Status, Lines: views}, nil
}

func (u *QuoteUseCase) evaluate(ctx context.Context, q entities.Quote, now time.Time) (calc.Result, entities.CalculationCommit, error) {
	items := calc.Dedup(ctx, q.Items, engineNameResolver{refs: u.refs})

	var rules []entities.Rule
	if ids := calc.TechniqueIDs(items); len(ids) > 0 {
		var err error
		rules, err = u.rules.ListActiveByTechniqueIDs(ctx, ids)
		if err != nil {
			return calc.Result{}, entities.CalculationCommit{}, err
		}
	}

	res := calc.Evaluate(items, rules, calc.NewZoneSet(q.Zones), now)

	lines := make([]entities.QuoteResultLine, 0, len(res.Lines))
	for _, l := range res.Lines {
		lines = append(lines, entities.QuoteResultLine{
			ID:      uuid.NewString(),
			QuoteID: q.ID,
			SKUID:   l.SKUID,
			Qty:     l.Qty,
		})
	}

	run := entities.QuoteCalcRun{
		ID:             uuid.NewString(),
		QuoteID:        q.ID,
		CreatedAt:      now,
		MatchedRuleIDs: res.MatchedRuleIDs,
	}
	if len(res.Trace) > 0 {
		note := strings.Join(res.Trace, "\n")
		run.DebugNote = &note
	}

	return res, entities.CalculationCommit{
		QuoteID:         q.ID,
		ExpectedVersion: q.Version,
		Lines:           lines,
		Run:             run,
		Status:          entities.QuoteStatusCalculated,
		UpdatedAt:       now,
	}, nil
}

// ChangeStatus applies a role-gated transition. A transition into approved
// settles in warehouse_check.
func (u *QuoteUseCase) ChangeStatus(ctx context.Context, actor entities.Actor, id string, target entities.QuoteStatus, comment *string) (entities.Quote, error) {
	if !quotestatus.Valid(target) {
		return entities.Quote{}, ErrInvalidStatus
	}
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !quotestatus.CanTransition(actor.Role, q.Status, target) {
		zap.L().Info("[quote][usecase] transition rejected",
			zap.String("quote_id", q.ID),
			zap.String("from", string(q.Status)),
			zap.String("to", string(target)),
			zap.String("role", string(actor.Role)),
		)
		return entities.Quote{}, ErrInvalidTransition
	}

	return u.commitStatus(ctx, actor, q, target, comment, nil)
}

// WarehouseDecision confirms or sends back a quote under warehouse_check and
// records per-line availability in the same write.
func (u *QuoteUseCase) WarehouseDecision(ctx context.Context, actor entities.Actor, id string, cmd WarehouseDecisionCommand) (entities.Quote, error) {
	if cmd.Decision != entities.QuoteStatusConfirmed && cmd.Decision != entities.QuoteStatusRework {
		return entities.Quote{}, ErrInvalidDecision
	}
	for _, la := range cmd.Lines {
		if !la.Status.Valid() {
			return entities.Quote{}, ErrInvalidAvailability
		}
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !quotestatus.CanTransition(actor.Role, q.Status, cmd.Decision) {
		return entities.Quote{}, ErrInvalidTransition
	}

	if len(cmd.Lines) > 0 {
		lines, err := u.quotes.ListResultLines(ctx, q.ID)
		if err != nil {
			return entities.Quote{}, err
		}
		known := make(map[string]struct{}, len(lines))
		for _, l := range lines {
			known[l.ID] = struct{}{}
		}
		for _, la := range cmd.Lines {
			if _, ok := known[la.LineID]; !ok {
				return entities.Quote{}, fmt.Errorf("%w: %s", ErrResultLineNotFound, la.LineID)
			}
		}
	}

	return u.commitStatus(ctx, actor, q, cmd.Decision, cmd.Comment, cmd.Lines)
}

func (u *QuoteUseCase) commitStatus(ctx context.Context, actor entities.Actor, q entities.Quote, target entities.QuoteStatus, comment *string, availability []entities.LineAvailability) (entities.Quote, error) {
	final := quotestatus.Settle(target)
	now := u.now()

	err := u.quotes.CommitStatus(ctx, entities.StatusCommit{
		QuoteID:         q.ID,
		ExpectedVersion: q.Version,
		Status:          final,
		Comment:         comment,
		Availability:    availability,
		UpdatedAt:       now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Quote{}, ErrQuoteConcurrentUpdate
		}
		if errors.Is(err, interfaces.ErrResultLineMissing) {
			return entities.Quote{}, ErrResultLineNotFound
		}
		return entities.Quote{}, err
	}

	previous := q.Status
	u.metrics.IncStatusTransition(previous, target)
	if final != target {
		u.metrics.IncStatusTransition(target, final)
	}
	zap.L().Info("[quote][usecase] status changed",
		zap.String("quote_id", q.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(final)),
		zap.String("actor", actor.UserID),
	)
	u.publish(ctx, entities.QuoteEvent{
		Type:           entities.QuoteEventStatusChanged,
		QuoteID:        q.ID,
		Status:         final,
		PreviousStatus: previous,
		ActorID:        actor.UserID,
		OccurredAt:     now,
	})

	q.Status = final
	if comment != nil {
		q.Comment = comment
	}
	q.Version++
	q.UpdatedAt = now
	return q, nil
}

func (u *QuoteUseCase) GetResultLines(ctx context.Context, id string) ([]ResultLineView, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := u.quotes.ListResultLines(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	sortLines(lines)
	return u.enrichLines(ctx, lines)
}

// PatchResultLine edits a single line by hand. Only admins may change qty.
func (u *QuoteUseCase) PatchResultLine(ctx context.Context, actor entities.Actor, cmd PatchResultLineCommand) (ResultLineView, error) {
	q, err := u.GetByID(ctx, cmd.QuoteID)
	if err != nil {
		return ResultLineView{}, err
	}
	if quotestatus.ResultFrozen(q.Status) {
		return ResultLineView{}, ErrResultFrozen
	}

	lines, err := u.quotes.ListResultLines(ctx, q.ID)
	if err != nil {
		return ResultLineView{}, err
	}
	var line entities.QuoteResultLine
	for _, l := range lines {
		if l.ID == cmd.LineID {
			line = l
			break
		}
	}
	if line.ID == "" {
		return ResultLineView{}, ErrResultLineNotFound
	}

	if cmd.Qty != nil {
		if actor.Role != entities.RoleAdmin {
			return ResultLineView{}, ErrForbidden
		}
		if *cmd.Qty < 1 {
			return ResultLineView{}, ErrInvalidQty
		}
		line.Qty = *cmd.Qty
	}
	cmd.Note.ApplyTo(&line.Note)

	updated, err := u.quotes.UpdateResultLine(ctx, line)
	if err != nil {
		return ResultLineView{}, err
	}
	if updated.ID == "" {
		return ResultLineView{}, ErrResultLineNotFound
	}
	views, err := u.enrichLines(ctx, []entities.QuoteResultLine{updated})
	if err != nil {
		return ResultLineView{}, err
	}
	return views[0], nil
}

func (u *QuoteUseCase) ListCalcRuns(ctx context.Context, id string) ([]entities.QuoteCalcRun, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.quotes.ListCalcRuns(ctx, q.ID)
}

// Export renders the calculated lines as a spreadsheet.
func (u *QuoteUseCase) Export(ctx context.Context, id string) ([]byte, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := u.quotes.ListResultLines(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoResultLines
	}
	sortLines(lines)

	views, err := u.enrichLines(ctx, lines)
	if err != nil {
		return nil, err
	}
	doc := entities.QuoteExport{
		QuoteID: q.ID,
		Manager: q.CreatedBy,
		Date:    u.now(),
		Lines:   make([]entities.QuoteExportLine, 0, len(views)),
	}
	for _, v := range views {
		doc.Lines = append(doc.Lines, entities.QuoteExportLine{
			Code: deref(v.SKUCode),
			Name: deref(v.SKUName),
			Unit: deref(v.SKUUnit),
			Qty:  v.Qty,
			Note: deref(v.Note),
		})
	}
	return u.exporter.Render(ctx, doc)
}

func (u *QuoteUseCase) enrichLines(ctx context.Context, lines []entities.QuoteResultLine) ([]ResultLineView, error) {
	views := make([]ResultLineView, 0, len(lines))
	if len(lines) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.SKUID]; ok {
			continue
		}
		seen[l.SKUID] = struct{}{}
		ids = append(ids, l.SKUID)
	}
	skus, err := u.refs.GetSKUsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]entities.SKU, len(skus))
	for _, s := range skus {
		byID[s.ID] = s
	}

	for _, l := range lines {
		v := ResultLineView{QuoteResultLine: l}
		if s, ok := byID[l.SKUID]; ok {
			code, name, unit := s.Code, s.Name, s.Unit
			v.SKUCode, v.SKUName, v.SKUUnit = &code, &name, &unit
		}
		views = append(views, v)
	}
	return views, nil
}

func (u *QuoteUseCase) observeCalculation(result string, started time.Time, matched int) {
	u.metrics.ObserveCalculation(result, u.now().Sub(started), matched)
}

// publish is best effort: the write has already committed.
func (u *QuoteUseCase) publish(ctx context.Context, e entities.QuoteEvent) {
	if err := u.publisher.Publish(ctx, e); err != nil {
		zap.L().Warn("[quote][usecase] failed to publish quote event",
			zap.String("quote_id", e.QuoteID),
			zap.String("type", string(e.Type)),
			zap.Error(err),
		)
	}
}

type engineNameResolver struct {
	refs interfaces.IReferenceRepository
}

func (r engineNameResolver) EngineName(ctx context.Context, id int64) string {
	opt, err := r.refs.GetEngineOption(ctx, id)
	if err != nil {
		zap.L().Warn("[quote][usecase] engine option lookup failed", zap.Int64("engine_option_id", id), zap.Error(err))
		return ""
	}
	if opt.ID == 0 || !opt.Active {
		return ""
	}
	return opt.EngineName
}

func buildItems(inputs []QuoteItemInput) ([]entities.QuoteItem, error) {
	if len(inputs) == 0 || len(inputs) > entities.MaxQuoteItems {
		return nil, fmt.Errorf("%w: between 1 and %d items required", ErrInvalidQuoteItems, entities.MaxQuoteItems)
	}
	items := make([]entities.QuoteItem, 0, len(inputs))
	for i, in := range inputs {
		if in.TechniqueID <= 0 {
			return nil, fmt.Errorf("%w: item %d: technique_id is required", ErrInvalidQuoteItems, i)
		}
		if in.Qty < 1 {
			return nil, fmt.Errorf("%w: item %d: qty must be >= 1", ErrInvalidQuoteItems, i)
		}
		if err := calc.ValidateParams(in.Params); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidQuoteItems, i, err)
		}
		params, err := calc.CanonicalParams(in.Params)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidQuoteItems, i, err)
		}
		items = append(items, entities.QuoteItem{
			TechniqueID:    in.TechniqueID,
			EngineOptionID: in.EngineOptionID,
			EngineText:     in.EngineText,
			Year:           in.Year,
			Qty:            in.Qty,
			ParamsJSON:     params,
		})
	}
	return items, nil
}

func normalizeZones(zones []string) []string {
	out := make([]string, 0, len(zones))
	seen := make(map[string]struct{}, len(zones))
	for _, z := range zones {
		z = strings.TrimSpace(z)
		if z == "" {
			continue
		}
		if _, ok := seen[z]; ok {
			continue
		}
		seen[z] = struct{}{}
		out = append(out, z)
	}
	return out
}

func sortLines(lines []entities.QuoteResultLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].SKUID != lines[j].SKUID {
			return lines[i].SKUID < lines[j].SKUID
		}
		return lines[i].ID < lines[j].ID
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
