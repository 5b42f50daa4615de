package repository

import (
	"context"
	"errors"

	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"
	"github.com/alexVinter/fire-dynamics1/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTechniquesTableName    = "techniques"
	defaultSKUsTableName          = "skus"
	defaultEngineOptionsTableName = "engine_options"

	maxUnprocessedRetries = 5
)

var errUnprocessedKeys = errors.New("batch get left unprocessed keys")

type techniqueItem struct {
	ID           int64   `dynamodbav:"id"`
	Manufacturer string  `dynamodbav:"manufacturer"`
	Model        string  `dynamodbav:"model"`
	Series       *string `dynamodbav:"series,omitempty"`
	Active       bool    `dynamodbav:"active"`
}

type engineOptionItem struct {
	ID          int64  `dynamodbav:"id"`
	TechniqueID int64  `dynamodbav:"technique_id"`
	EngineName  string `dynamodbav:"engine_name"`
	YearFrom    *int   `dynamodbav:"year_from,omitempty"`
	YearTo      *int   `dynamodbav:"year_to,omitempty"`
	Active      bool   `dynamodbav:"active"`
}

type skuItem struct {
	ID     int64  `dynamodbav:"id"`
	Code   string `dynamodbav:"code"`
	Name   string `dynamodbav:"name"`
	Unit   string `dynamodbav:"unit"`
	Active bool   `dynamodbav:"active"`
}

// ReferenceDynamoRepository reads the catalog tables. Every table is keyed by
// a numeric id.

type ReferenceDynamoRepository struct {
	ddb                *dynamodb.Client
	techniquesTable    string
	skusTable          string
	engineOptionsTable string
}

var _ interfaces.IReferenceRepository = (*ReferenceDynamoRepository)(nil)

func NewReferenceDynamoRepository(ddb *dynamodb.Client) *ReferenceDynamoRepository {
	return &ReferenceDynamoRepository{
		ddb:                ddb,
		techniquesTable:    getenvDefault("TECHNIQUES_TABLE", defaultTechniquesTableName),
		skusTable:          getenvDefault("SKUS_TABLE", defaultSKUsTableName),
		engineOptionsTable: getenvDefault("ENGINE_OPTIONS_TABLE", defaultEngineOptionsTableName),
	}
}

func (r *ReferenceDynamoRepository) GetTechnique(ctx context.Context, id int64) (entities.Technique, error) {
	var it techniqueItem
	found, err := r.getByID(ctx, r.techniquesTable, id, &it)
	if err != nil || !found {
		return entities.Technique{}, err
	}
	return entities.Technique{
		ID:           it.ID,
		Manufacturer: it.Manufacturer,
		Model:        it.Model,
		Series:       it.Series,
		Active:       it.Active,
	}, nil
}

func (r *ReferenceDynamoRepository) GetEngineOption(ctx context.Context, id int64) (entities.EngineOption, error) {
	var it engineOptionItem
	found, err := r.getByID(ctx, r.engineOptionsTable, id, &it)
	if err != nil || !found {
		return entities.EngineOption{}, err
	}
	return entities.EngineOption{
		ID:          it.ID,
		TechniqueID: it.TechniqueID,
		EngineName:  it.EngineName,
		YearFrom:    it.YearFrom,
		YearTo:      it.YearTo,
		Active:      it.Active,
	}, nil
}

// GetSKUsByIDs batch-reads SKUs. Unknown ids are simply absent from the result.
func (r *ReferenceDynamoRepository) GetSKUsByIDs(ctx context.Context, ids []int64) ([]entities.SKU, error) {
	skus := make([]entities.SKU, 0, len(ids))
	for _, chunk := range chunkIDs(ids, maxBatchGetKeys) {
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, id := range chunk {
			keys = append(keys, map[string]types.AttributeValue{"id": attrN(id)})
		}

		request := map[string]types.KeysAndAttributes{
			r.skusTable: {Keys: keys},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt > maxUnprocessedRetries {
				return nil, errUnprocessedKeys
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			var items []skuItem
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.skusTable], &items); err != nil {
				return nil, err
			}
			for _, it := range items {
				skus = append(skus, entities.SKU{ID: it.ID, Code: it.Code, Name: it.Name, Unit: it.Unit, Active: it.Active})
			}
			request = out.UnprocessedKeys
		}
	}
	return skus, nil
}

func (r *ReferenceDynamoRepository) getByID(ctx context.Context, table string, id int64, out interface{}) (bool, error) {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": attrN(id),
		},
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// chunkIDs dedupes ids and splits them into slices of at most size elements.
func chunkIDs(ids []int64, size int) [][]int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	var chunks [][]int64
	for len(unique) > 0 {
		n := size
		if len(unique) < n {
			n = len(unique)
		}
		chunks = append(chunks, unique[:n])
		unique = unique[n:]
	}
	return chunks
}
