package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRulesTableName    = "rules"
	defaultCountersTableName = "counters"
	rulesTechniqueIDIndex    = "technique_id-index"
	rulesCounterName         = "rules"
)

var errCounterMissing = errors.New("counter update returned no value")

type ruleItem struct {
	ID          int64  `dynamodbav:"id"`
	TechniqueID int64  `dynamodbav:"technique_id"`
	Conditions  string `dynamodbav:"conditions"`
	Actions     string `dynamodbav:"actions"`
	Version     int    `dynamodbav:"version"`
	ActiveFrom  string `dynamodbav:"active_from,omitempty"`
	ActiveTo    string `dynamodbav:"active_to,omitempty"`
	Active      bool   `dynamodbav:"active"`
}

// RuleDynamoRepository persists calculation rules in DynamoDB.
//
// Table requirements:
//   - rules: PK id (number), GSI technique_id-index (PK: technique_id)
//   - counters: PK name (string), numeric attribute value
//
// Numeric rule ids come from an atomic counter so they sort the way rule
// authors expect in the calc-run audit trail.

type RuleDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IRuleRepository = (*RuleDynamoRepository)(nil)

func NewRuleDynamoRepository(ddb *dynamodb.Client) *RuleDynamoRepository {
	return &RuleDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("RULES_TABLE", defaultRulesTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *RuleDynamoRepository) Create(ctx context.Context, rule entities.Rule) (entities.Rule, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return entities.Rule{}, err
	}
	rule.ID = id

	av, err := attributevalue.MarshalMap(toRuleItem(rule))
	if err != nil {
		return entities.Rule{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Rule{}, err
	}
	return rule, nil
}

func (r *RuleDynamoRepository) ListActiveByTechniqueIDs(ctx context.Context, techniqueIDs []int64) ([]entities.Rule, error) {
	var rules []entities.Rule
	for _, tid := range techniqueIDs {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(rulesTechniqueIDIndex),
			KeyConditionExpression: aws.String("technique_id = :tid"),
			FilterExpression:       aws.String("#active = :active"),
			ExpressionAttributeNames: map[string]string{
				"#active": "active",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tid":    attrN(tid),
				":active": &types.AttributeValueMemberBOOL{Value: true},
			},
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			var items []ruleItem
			if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
				return nil, err
			}
			for _, it := range items {
				rules = append(rules, fromRuleItem(it))
			}
		}
	}
	return rules, nil
}

func (r *RuleDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": attrS(rulesCounterName),
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": attrN(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errCounterMissing
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func toRuleItem(r entities.Rule) ruleItem {
	return ruleItem{
		ID:          r.ID,
		TechniqueID: r.TechniqueID,
		Conditions:  string(r.Conditions),
		Actions:     string(r.Actions),
		Version:     r.Version,
		ActiveFrom:  formatTimePtr(r.ActiveFrom),
		ActiveTo:    formatTimePtr(r.ActiveTo),
		Active:      r.Active,
	}
}

func fromRuleItem(it ruleItem) entities.Rule {
	return entities.Rule{
		ID:          it.ID,
		TechniqueID: it.TechniqueID,
		Conditions:  json.RawMessage(it.Conditions),
		Actions:     json.RawMessage(it.Actions),
		Version:     it.Version,
		ActiveFrom:  parseTimePtr(it.ActiveFrom),
		ActiveTo:    parseTimePtr(it.ActiveTo),
		Active:      it.Active,
	}
}
