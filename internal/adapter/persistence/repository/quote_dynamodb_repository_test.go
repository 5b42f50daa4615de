package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var testTables = quoteTables{quotes: "quotes", resultLines: "lines", calcRuns: "runs"}

func TestBuildCalculationTransaction(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	note := "rule 1 matched"
	commit := entities.CalculationCommit{
		QuoteID:         "q-1",
		ExpectedVersion: 3,
		Lines: []entities.QuoteResultLine{
			{ID: "new-1", QuoteID: "q-1", SKUID: 10, Qty: 4},
		},
		Run:       entities.QuoteCalcRun{ID: "run-1", QuoteID: "q-1", CreatedAt: now, MatchedRuleIDs: []int64{1}, DebugNote: &note},
		Status:    entities.QuoteStatusCalculated,
		UpdatedAt: now,
	}

	items, err := buildCalculationTransaction(testTables, commit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	upd := items[0].Update
	if upd == nil || aws.ToString(upd.TableName) != "quotes" {
		t.Fatalf("expected quote update first, got %+v", items[0])
	}
	if aws.ToString(upd.ConditionExpression) != "#version = :expected" {
		t.Fatalf("unexpected condition: %s", aws.ToString(upd.ConditionExpression))
	}
	if v := upd.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "3" {
		t.Fatalf("expected version 3, got %s", v)
	}
	if v := upd.ExpressionAttributeValues[":next"].(*types.AttributeValueMemberN).Value; v != "4" {
		t.Fatalf("expected next version 4, got %s", v)
	}
	if v := upd.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value; v != "calculated" {
		t.Fatalf("unexpected status %s", v)
	}

	put := items[1].Put
	if put == nil || aws.ToString(put.TableName) != "lines" {
		t.Fatalf("expected line set put, got %+v", items[1])
	}
	if v := put.Item["run_id"].(*types.AttributeValueMemberS).Value; v != "run-1" {
		t.Fatalf("unexpected run id %s", v)
	}
	lines := put.Item["lines"].(*types.AttributeValueMemberL).Value
	if len(lines) != 1 {
		t.Fatalf("expected 1 stored line, got %d", len(lines))
	}
	if v := lines[0].(*types.AttributeValueMemberM).Value["qty"].(*types.AttributeValueMemberN).Value; v != "4" {
		t.Fatalf("unexpected qty %s", v)
	}

	run := items[2].Put
	if run == nil || aws.ToString(run.TableName) != "runs" {
		t.Fatalf("expected calc run put last, got %+v", items[2])
	}
}

func TestBuildCalculationTransaction_ManyLines(t *testing.T) {
	lines := make([]entities.QuoteResultLine, 0, 120)
	for i := 0; i < 120; i++ {
		lines = append(lines, entities.QuoteResultLine{ID: fmt.Sprintf("n-%d", i), QuoteID: "q", SKUID: int64(i + 1), Qty: 1})
	}

	items, err := buildCalculationTransaction(testTables, entities.CalculationCommit{
		QuoteID:         "q",
		ExpectedVersion: 7,
		Lines:           lines,
		Run:             entities.QuoteCalcRun{ID: "run-2", QuoteID: "q"},
		Status:          entities.QuoteStatusCalculated,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected a constant 3 items, got %d", len(items))
	}
	if got := len(items[1].Put.Item["lines"].(*types.AttributeValueMemberL).Value); got != 120 {
		t.Fatalf("expected 120 stored lines, got %d", got)
	}
}

func TestBuildCalculationTransaction_EmptySet(t *testing.T) {
	items, err := buildCalculationTransaction(testTables, entities.CalculationCommit{QuoteID: "q", Run: entities.QuoteCalcRun{ID: "run-3"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := items[1].Put.Item["lines"].(*types.AttributeValueMemberL); !ok {
		t.Fatalf("expected an empty list, got %T", items[1].Put.Item["lines"])
	}
}

func storedSet(runID string, ids ...string) resultSetItem {
	set := resultSetItem{QuoteID: "q-1", RunID: runID}
	for _, id := range ids {
		set.Lines = append(set.Lines, resultLineItem{ID: id, Qty: 1})
	}
	return set
}

func TestBuildStatusTransaction(t *testing.T) {
	comment := "ok"
	lineComment := "2 weeks"
	items, err := buildStatusTransaction(testTables, entities.StatusCommit{
		QuoteID:         "q-1",
		ExpectedVersion: 1,
		Status:          entities.QuoteStatusConfirmed,
		Comment:         &comment,
		Availability: []entities.LineAvailability{
			{LineID: "l-2", Status: entities.AvailabilityInStock},
			{LineID: "l-0", Status: entities.AvailabilityToOrder, Comment: &lineComment},
		},
		UpdatedAt: time.Now(),
	}, storedSet("run-1", "l-0", "l-1", "l-2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	quote := items[0].Update
	if got := aws.ToString(quote.UpdateExpression); got != "SET #version = :next, #status = :status, #updated_at = :updated_at, #comment = :comment" {
		t.Fatalf("unexpected update expression: %s", got)
	}

	set := items[1].Update
	want := "SET #lines[2].#availability_status = :as0, #lines[0].#availability_status = :as1, #lines[0].#availability_comment = :ac1 REMOVE #lines[2].#availability_comment"
	if got := aws.ToString(set.UpdateExpression); got != want {
		t.Fatalf("unexpected line expression: %s", got)
	}
	if got := aws.ToString(set.ConditionExpression); got != "#run_id = :run_id" {
		t.Fatalf("unexpected condition: %s", got)
	}
	if v := set.ExpressionAttributeValues[":run_id"].(*types.AttributeValueMemberS).Value; v != "run-1" {
		t.Fatalf("unexpected run id %s", v)
	}
	if v := set.ExpressionAttributeValues[":ac1"].(*types.AttributeValueMemberS).Value; v != lineComment {
		t.Fatalf("unexpected availability comment %s", v)
	}
}

func TestBuildStatusTransaction_NoComment(t *testing.T) {
	items, err := buildStatusTransaction(testTables, entities.StatusCommit{QuoteID: "q", Status: entities.QuoteStatusRework}, resultSetItem{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected only the quote update, got %d items", len(items))
	}
	if _, ok := items[0].Update.ExpressionAttributeNames["#comment"]; ok {
		t.Fatalf("comment must not be touched when absent")
	}
}

func TestBuildStatusTransaction_UnknownLine(t *testing.T) {
	_, err := buildStatusTransaction(testTables, entities.StatusCommit{
		QuoteID:      "q-1",
		Status:       entities.QuoteStatusConfirmed,
		Availability: []entities.LineAvailability{{LineID: "l-9", Status: entities.AvailabilityInStock}},
	}, storedSet("run-1", "l-0"))
	if !errors.Is(err, interfaces.ErrResultLineMissing) {
		t.Fatalf("expected ErrResultLineMissing, got %v", err)
	}
}

func TestBuildStatusTransaction_RepeatedLineKeepsLast(t *testing.T) {
	items, err := buildStatusTransaction(testTables, entities.StatusCommit{
		QuoteID: "q-1",
		Status:  entities.QuoteStatusConfirmed,
		Availability: []entities.LineAvailability{
			{LineID: "l-0", Status: entities.AvailabilityInStock},
			{LineID: "l-0", Status: entities.AvailabilityAbsent},
		},
	}, storedSet("run-1", "l-0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := items[1].Update
	if got := aws.ToString(set.UpdateExpression); got != "SET #lines[0].#availability_status = :as0 REMOVE #lines[0].#availability_comment" {
		t.Fatalf("unexpected line expression: %s", got)
	}
	if v := set.ExpressionAttributeValues[":as0"].(*types.AttributeValueMemberS).Value; v != string(entities.AvailabilityAbsent) {
		t.Fatalf("expected last entry to win, got %s", v)
	}
}

func TestBuildResultLineUpdate(t *testing.T) {
	in, err := buildResultLineUpdate("lines", entities.QuoteResultLine{ID: "l-4", QuoteID: "q-1", SKUID: 3, Qty: 2}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := aws.ToString(in.UpdateExpression); got != "SET #lines[4] = :line" {
		t.Fatalf("unexpected update expression: %s", got)
	}
	if got := aws.ToString(in.ConditionExpression); got != "#lines[4].#id = :id" {
		t.Fatalf("unexpected condition: %s", got)
	}
	if v := in.Key["quote_id"].(*types.AttributeValueMemberS).Value; v != "q-1" {
		t.Fatalf("unexpected key %s", v)
	}
	line := in.ExpressionAttributeValues[":line"].(*types.AttributeValueMemberM).Value
	if _, ok := line["quote_id"]; ok {
		t.Fatalf("stored line must not repeat the quote id")
	}
}

func TestQuoteItemMapping(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	engine := int64(7)
	name := "ACME"
	q := entities.Quote{
		ID:           "q-1",
		CreatedBy:    "u-1",
		Status:       entities.QuoteStatusDraft,
		CustomerName: &name,
		Items:        []entities.QuoteItem{{TechniqueID: 1, EngineOptionID: &engine, Qty: 2, ParamsJSON: `{"a":1}`}},
		Version:      2,
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	it := toQuoteItem(q)
	if it.Zones == nil {
		t.Fatalf("zones must be stored as an empty list")
	}
	back := fromQuoteItem(it)
	if back.ID != q.ID || back.Version != 2 || !back.CreatedAt.Equal(created) {
		t.Fatalf("unexpected quote: %+v", back)
	}
	if len(back.Items) != 1 || *back.Items[0].EngineOptionID != 7 || back.Items[0].ParamsJSON != `{"a":1}` {
		t.Fatalf("unexpected items: %+v", back.Items)
	}
}

func TestResultLineMapping(t *testing.T) {
	status := entities.AvailabilityAbsent
	l := entities.QuoteResultLine{ID: "l", QuoteID: "q", SKUID: 3, Qty: 9, AvailabilityStatus: &status}
	back := fromResultLineItem("q", toResultLineItem(l))
	if back.AvailabilityStatus == nil || *back.AvailabilityStatus != entities.AvailabilityAbsent || back.Qty != 9 || back.QuoteID != "q" {
		t.Fatalf("unexpected line: %+v", back)
	}
}

func TestIsConditionFailed(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"conditional check", &types.ConditionalCheckFailedException{}, true},
		{"transaction cancelled by condition", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		}, true},
		{"transaction cancelled by conflict", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("TransactionConflict")}},
		}, false},
		{"other", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isConditionFailed(tc.err); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestMapTransactionError(t *testing.T) {
	other := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("TransactionConflict")}},
	}
	cases := []struct {
		name     string
		err      error
		expected error
	}{
		{"single write condition", &types.ConditionalCheckFailedException{}, interfaces.ErrVersionConflict},
		{"quote version", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}, {Code: aws.String("None")}},
		}, interfaces.ErrVersionConflict},
		{"line set replaced", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		}, interfaces.ErrResultLineMissing},
		{"not a condition", other, other},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapTransactionError(tc.err); !errors.Is(got, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
