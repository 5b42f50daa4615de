package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName      = "quotes"
	defaultResultLinesTableName = "quote_result_lines"
	defaultCalcRunsTableName    = "quote_calc_runs"
)

type quoteItem struct {
	ID           string          `dynamodbav:"id"`
	CreatedBy    string          `dynamodbav:"created_by"`
	Status       string          `dynamodbav:"status"`
	CustomerName *string         `dynamodbav:"customer_name,omitempty"`
	Comment      *string         `dynamodbav:"comment,omitempty"`
	Zones        []string        `dynamodbav:"zones"`
	Items        []quoteLineItem `dynamodbav:"items"`
	Version      int64           `dynamodbav:"version"`
	CreatedAt    string          `dynamodbav:"created_at"`
	UpdatedAt    string          `dynamodbav:"updated_at"`
}

type quoteLineItem struct {
	TechniqueID    int64   `dynamodbav:"technique_id"`
	EngineOptionID *int64  `dynamodbav:"engine_option_id,omitempty"`
	EngineText     *string `dynamodbav:"engine_text,omitempty"`
	Year           *int    `dynamodbav:"year,omitempty"`
	Qty            int     `dynamodbav:"qty"`
	ParamsJSON     string  `dynamodbav:"params_json,omitempty"`
}

// resultSetItem holds every result line of a quote. run_id changes on each
// recalculation, so positional line updates can be guarded by it.
type resultSetItem struct {
	QuoteID string           `dynamodbav:"quote_id"`
	RunID   string           `dynamodbav:"run_id"`
	Lines   []resultLineItem `dynamodbav:"lines"`
}

type resultLineItem struct {
	ID                  string  `dynamodbav:"id"`
	SKUID               int64   `dynamodbav:"sku_id"`
	Qty                 int64   `dynamodbav:"qty"`
	Note                *string `dynamodbav:"note,omitempty"`
	AvailabilityStatus  *string `dynamodbav:"availability_status,omitempty"`
	AvailabilityComment *string `dynamodbav:"availability_comment,omitempty"`
}

type calcRunItem struct {
	QuoteID        string  `dynamodbav:"quote_id"`
	ID             string  `dynamodbav:"id"`
	CreatedAt      string  `dynamodbav:"created_at"`
	MatchedRuleIDs []int64 `dynamodbav:"matched_rule_ids"`
	DebugNote      *string `dynamodbav:"debug_note,omitempty"`
}

type quoteTables struct {
	quotes      string
	resultLines string
	calcRuns    string
}

// QuoteDynamoRepository persists quotes, their result lines and calc runs.
//
// Table requirements:
//   - quotes: PK id (string)
//   - quote_result_lines: PK quote_id (string), one item per quote
//   - quote_calc_runs: PK quote_id (string), SK id (string)
//
// Writes that touch more than one table go through TransactWriteItems, guarded
// by the quote version. The line set is a single item, so a calculation
// commits three writes however many lines it produces.
type QuoteDynamoRepository struct {
	ddb    *dynamodb.Client
	tables quoteTables
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb: ddb,
		tables: quoteTables{
			quotes:      getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
			resultLines: getenvDefault("RESULT_LINES_TABLE", defaultResultLinesTableName),
			calcRuns:    getenvDefault("CALC_RUNS_TABLE", defaultCalcRunsTableName),
		},
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.quotes),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.quotes),
		Key: map[string]types.AttributeValue{
			"id": attrS(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// List scans the quotes table, optionally filtered by status.
func (r *QuoteDynamoRepository) List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tables.quotes),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{":status": attrS(string(status))}
	}

	var quotes []entities.Quote
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}
	}
	return quotes, nil
}

// Update overwrites the quote when the stored version equals expectedVersion.
func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error) {
	q.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.quotes),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": attrN(expectedVersion),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, interfaces.ErrVersionConflict
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListResultLines(ctx context.Context, quoteID string) ([]entities.QuoteResultLine, error) {
	set, err := r.getResultSet(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	lines := make([]entities.QuoteResultLine, 0, len(set.Lines))
	for _, it := range set.Lines {
		lines = append(lines, fromResultLineItem(quoteID, it))
	}
	return lines, nil
}

// UpdateResultLine overwrites an existing line in place. A line that is not
// part of the stored set yields the zero value.
func (r *QuoteDynamoRepository) UpdateResultLine(ctx context.Context, line entities.QuoteResultLine) (entities.QuoteResultLine, error) {
	set, err := r.getResultSet(ctx, line.QuoteID)
	if err != nil {
		return entities.QuoteResultLine{}, err
	}
	idx := lineIndex(set.Lines, line.ID)
	if idx < 0 {
		return entities.QuoteResultLine{}, nil
	}

	in, err := buildResultLineUpdate(r.tables.resultLines, line, idx)
	if err != nil {
		return entities.QuoteResultLine{}, err
	}
	if _, err := r.ddb.UpdateItem(ctx, in); err != nil {
		if isConditionFailed(err) {
			return entities.QuoteResultLine{}, nil
		}
		return entities.QuoteResultLine{}, err
	}
	return line, nil
}

// ListCalcRuns returns the audit records of a quote, oldest first.
func (r *QuoteDynamoRepository) ListCalcRuns(ctx context.Context, quoteID string) ([]entities.QuoteCalcRun, error) {
	var items []calcRunItem
	if err := r.queryByQuote(ctx, r.tables.calcRuns, quoteID, &items); err != nil {
		return nil, err
	}
	runs := make([]entities.QuoteCalcRun, 0, len(items))
	for _, it := range items {
		runs = append(runs, fromCalcRunItem(it))
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs, nil
}

func (r *QuoteDynamoRepository) CommitCalculation(ctx context.Context, c entities.CalculationCommit) error {
	items, err := buildCalculationTransaction(r.tables, c)
	if err != nil {
		return err
	}
	return r.transact(ctx, items)
}

// CommitStatus returns interfaces.ErrResultLineMissing when an availability
// entry names a line outside the current set, including a set replaced by a
// recalculation after it was read here.
func (r *QuoteDynamoRepository) CommitStatus(ctx context.Context, c entities.StatusCommit) error {
	var set resultSetItem
	if len(c.Availability) > 0 {
		var err error
		if set, err = r.getResultSet(ctx, c.QuoteID); err != nil {
			return err
		}
	}
	items, err := buildStatusTransaction(r.tables, c, set)
	if err != nil {
		return err
	}
	return r.transact(ctx, items)
}

// transact expects the quote version update at index 0. Any later failed
// condition guards the result line set.
func (r *QuoteDynamoRepository) transact(ctx context.Context, items []types.TransactWriteItem) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return mapTransactionError(err)
	}
	return nil
}

func mapTransactionError(err error) error {
	switch idx := conditionFailedIndex(err); {
	case idx == 0:
		return interfaces.ErrVersionConflict
	case idx > 0:
		return interfaces.ErrResultLineMissing
	}
	return err
}

func (r *QuoteDynamoRepository) getResultSet(ctx context.Context, quoteID string) (resultSetItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.resultLines),
		Key: map[string]types.AttributeValue{
			"quote_id": attrS(quoteID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return resultSetItem{}, err
	}
	if len(out.Item) == 0 {
		return resultSetItem{QuoteID: quoteID}, nil
	}

	var set resultSetItem
	if err := attributevalue.UnmarshalMap(out.Item, &set); err != nil {
		return resultSetItem{}, err
	}
	return set, nil
}

func (r *QuoteDynamoRepository) queryByQuote(ctx context.Context, table, quoteID string, out interface{}) error {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": attrS(quoteID),
		},
		ConsistentRead: aws.Bool(true),
	})

	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		raw = append(raw, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(raw, out)
}

// quoteVersionUpdate bumps the quote version and sets the given attributes,
// conditional on the version the caller read.
func quoteVersionUpdate(table, quoteID string, expected int64, setExpr string, names map[string]string, values map[string]types.AttributeValue) *types.Update {
	vals := map[string]types.AttributeValue{
		":expected": attrN(expected),
		":next":     attrN(expected + 1),
	}
	for k, v := range values {
		vals[k] = v
	}
	return &types.Update{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": attrS(quoteID),
		},
		UpdateExpression:          aws.String("SET #version = :next, " + setExpr),
		ConditionExpression:       aws.String("#version = :expected"),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#version": "version"}),
		ExpressionAttributeValues: vals,
	}
}

func buildCalculationTransaction(t quoteTables, c entities.CalculationCommit) ([]types.TransactWriteItem, error) {
	lines := make([]resultLineItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, toResultLineItem(l))
	}
	set, err := attributevalue.MarshalMap(resultSetItem{QuoteID: c.QuoteID, RunID: c.Run.ID, Lines: lines})
	if err != nil {
		return nil, err
	}
	run, err := attributevalue.MarshalMap(toCalcRunItem(c.Run))
	if err != nil {
		return nil, err
	}

	return []types.TransactWriteItem{
		{
			Update: quoteVersionUpdate(t.quotes, c.QuoteID, c.ExpectedVersion,
				"#status = :status, #updated_at = :updated_at",
				map[string]string{"#status": "status", "#updated_at": "updated_at"},
				map[string]types.AttributeValue{
					":status":     attrS(string(c.Status)),
					":updated_at": attrS(formatTime(c.UpdatedAt)),
				},
			),
		},
		{Put: &types.Put{TableName: aws.String(t.resultLines), Item: set}},
		{Put: &types.Put{TableName: aws.String(t.calcRuns), Item: run}},
	}, nil
}

func buildStatusTransaction(t quoteTables, c entities.StatusCommit, set resultSetItem) ([]types.TransactWriteItem, error) {
	setExpr := "#status = :status, #updated_at = :updated_at"
	names := map[string]string{"#status": "status", "#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":status":     attrS(string(c.Status)),
		":updated_at": attrS(formatTime(c.UpdatedAt)),
	}
	if c.Comment != nil {
		setExpr += ", #comment = :comment"
		names["#comment"] = "comment"
		values[":comment"] = attrS(*c.Comment)
	}

	items := []types.TransactWriteItem{
		{Update: quoteVersionUpdate(t.quotes, c.QuoteID, c.ExpectedVersion, setExpr, names, values)},
	}
	if len(c.Availability) == 0 {
		return items, nil
	}

	update, err := availabilityUpdate(t.resultLines, c.QuoteID, c.Availability, set)
	if err != nil {
		return nil, err
	}
	return append(items, types.TransactWriteItem{Update: update}), nil
}

// availabilityUpdate writes every availability entry into the stored set by
// position. A repeated line id keeps the last entry.
func availabilityUpdate(table, quoteID string, availability []entities.LineAvailability, set resultSetItem) (*types.Update, error) {
	order := make([]int, 0, len(availability))
	byIndex := make(map[int]entities.LineAvailability, len(availability))
	for _, a := range availability {
		idx := lineIndex(set.Lines, a.LineID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrResultLineMissing, a.LineID)
		}
		if _, seen := byIndex[idx]; !seen {
			order = append(order, idx)
		}
		byIndex[idx] = a
	}

	var sets, removes []string
	values := map[string]types.AttributeValue{
		":run_id": attrS(set.RunID),
	}
	for n, idx := range order {
		a := byIndex[idx]
		status := fmt.Sprintf(":as%d", n)
		sets = append(sets, fmt.Sprintf("#lines[%d].#availability_status = %s", idx, status))
		values[status] = attrS(string(a.Status))
		if a.Comment != nil {
			comment := fmt.Sprintf(":ac%d", n)
			sets = append(sets, fmt.Sprintf("#lines[%d].#availability_comment = %s", idx, comment))
			values[comment] = attrS(*a.Comment)
		} else {
			removes = append(removes, fmt.Sprintf("#lines[%d].#availability_comment", idx))
		}
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return &types.Update{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"quote_id": attrS(quoteID),
		},
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String("#run_id = :run_id"),
		ExpressionAttributeNames: map[string]string{
			"#run_id":               "run_id",
			"#lines":                "lines",
			"#availability_status":  "availability_status",
			"#availability_comment": "availability_comment",
		},
		ExpressionAttributeValues: values,
	}, nil
}

func buildResultLineUpdate(table string, line entities.QuoteResultLine, idx int) (*dynamodb.UpdateItemInput, error) {
	av, err := attributevalue.Marshal(toResultLineItem(line))
	if err != nil {
		return nil, err
	}
	return &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"quote_id": attrS(line.QuoteID),
		},
		UpdateExpression:    aws.String(fmt.Sprintf("SET #lines[%d] = :line", idx)),
		ConditionExpression: aws.String(fmt.Sprintf("#lines[%d].#id = :id", idx)),
		ExpressionAttributeNames: map[string]string{
			"#lines": "lines",
			"#id":    "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":line": av,
			":id":   attrS(line.ID),
		},
	}, nil
}

func lineIndex(lines []resultLineItem, id string) int {
	for i, l := range lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, 0, len(q.Items))
	for _, it := range q.Items {
		lines = append(lines, quoteLineItem{
			TechniqueID:    it.TechniqueID,
			EngineOptionID: it.EngineOptionID,
			EngineText:     it.EngineText,
			Year:           it.Year,
			Qty:            it.Qty,
			ParamsJSON:     it.ParamsJSON,
		})
	}
	zones := q.Zones
	if zones == nil {
		zones = []string{}
	}
	return quoteItem{
		ID:           q.ID,
		CreatedBy:    q.CreatedBy,
		Status:       string(q.Status),
		CustomerName: q.CustomerName,
		Comment:      q.Comment,
		Zones:        zones,
		Items:        lines,
		Version:      q.Version,
		CreatedAt:    formatTime(q.CreatedAt),
		UpdatedAt:    formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, l := range it.Items {
		items = append(items, entities.QuoteItem{
			TechniqueID:    l.TechniqueID,
			EngineOptionID: l.EngineOptionID,
			EngineText:     l.EngineText,
			Year:           l.Year,
			Qty:            l.Qty,
			ParamsJSON:     l.ParamsJSON,
		})
	}
	return entities.Quote{
		ID:           it.ID,
		CreatedBy:    it.CreatedBy,
		Status:       entities.QuoteStatus(it.Status),
		CustomerName: it.CustomerName,
		Comment:      it.Comment,
		Zones:        it.Zones,
		Items:        items,
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

func toResultLineItem(l entities.QuoteResultLine) resultLineItem {
	it := resultLineItem{
		ID:                  l.ID,
		SKUID:               l.SKUID,
		Qty:                 l.Qty,
		Note:                l.Note,
		AvailabilityComment: l.AvailabilityComment,
	}
	if l.AvailabilityStatus != nil {
		s := string(*l.AvailabilityStatus)
		it.AvailabilityStatus = &s
	}
	return it
}

func fromResultLineItem(quoteID string, it resultLineItem) entities.QuoteResultLine {
	l := entities.QuoteResultLine{
		ID:                  it.ID,
		QuoteID:             quoteID,
		SKUID:               it.SKUID,
		Qty:                 it.Qty,
		Note:                it.Note,
		AvailabilityComment: it.AvailabilityComment,
	}
	if it.AvailabilityStatus != nil {
		s := entities.AvailabilityStatus(*it.AvailabilityStatus)
		l.AvailabilityStatus = &s
	}
	return l
}

func toCalcRunItem(run entities.QuoteCalcRun) calcRunItem {
	ids := run.MatchedRuleIDs
	if ids == nil {
		ids = []int64{}
	}
	return calcRunItem{
		QuoteID:        run.QuoteID,
		ID:             run.ID,
		CreatedAt:      formatTime(run.CreatedAt),
		MatchedRuleIDs: ids,
		DebugNote:      run.DebugNote,
	}
}

func fromCalcRunItem(it calcRunItem) entities.QuoteCalcRun {
	return entities.QuoteCalcRun{
		ID:             it.ID,
		QuoteID:        it.QuoteID,
		CreatedAt:      parseTime(it.CreatedAt),
		MatchedRuleIDs: it.MatchedRuleIDs,
		DebugNote:      it.DebugNote,
	}
}
