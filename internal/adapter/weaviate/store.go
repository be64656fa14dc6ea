package weaviate

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"docsage/internal/document"
	"docsage/internal/retrieval"
	"docsage/internal/vector"
)

// Store persists chunk records with their vectors into one Weaviate class
// and answers similarity queries against it.
type Store struct {
	client    *weaviate.Client
	schema    vector.SchemaClient
	className string
}

func NewStore(client *weaviate.Client, className string) *Store {
	return &Store{
		client:    client,
		schema:    vector.NewWeaviateClientAdapter(client),
		className: className,
	}
}

func (s *Store) EnsureCollection(ctx context.Context) error {
	return vector.EnsureCollection(ctx, s.schema, s.className)
}

// RecreateCollection destroys the class and every record in it.
func (s *Store) RecreateCollection(ctx context.Context) error {
	return vector.RecreateCollection(ctx, s.schema, s.className)
}

// StoreBatch writes all records with their vectors in a single batch call.
// Either every submitted record is accepted or the batch fails as a whole.
func (s *Store) StoreBatch(ctx context.Context, records []document.ChunkRecord, vectors [][]float32) error {
	if len(records) != len(vectors) {
		return fmt.Errorf("records and vectors length mismatch: %d vs %d", len(records), len(vectors))
	}
	if len(records) == 0 {
		return nil
	}

	objects := make([]*models.Object, len(records))
	for i, rec := range records {
		objects[i] = &models.Object{
			Class: s.className,
			Properties: map[string]interface{}{
				"content":      rec.Text,
				"source":       rec.SourceName,
				"sourceType":   string(rec.SourceType),
				"documentType": rec.Category,
				"page":         rec.Locator.Page,
				"sheet":        rec.Locator.Sheet,
				"section":      rec.Locator.Section,
				"chunkIndex":   rec.ChunkIndex,
				"filePath":     rec.FilePath,
			},
			Vector: vectors[i],
		}
	}

	resp, err := s.client.Batch().ObjectsBatcher().WithObjects(objects...).Do(ctx)
	if err != nil {
		return fmt.Errorf("batch write: %w", err)
	}
	for _, r := range resp {
		if r.Result != nil && r.Result.Errors != nil && len(r.Result.Errors.Error) > 0 {
			return fmt.Errorf("batch write rejected: %s", r.Result.Errors.Error[0].Message)
		}
	}
	return nil
}

// Search returns the top-limit chunks nearest to the query vector, ranked by
// the store. Ties are broken by Weaviate's internal order.
func (s *Store) Search(ctx context.Context, queryVector []float32, limit int) ([]retrieval.SearchResult, error) {
	nearVector := s.client.GraphQL().NearVectorArgBuilder().WithVector(queryVector)

	fields := []graphql.Field{
		{Name: "content"},
		{Name: "source"},
		{Name: "sourceType"},
		{Name: "documentType"},
		{Name: "page"},
		{Name: "sheet"},
		{Name: "section"},
		{Name: "chunkIndex"},
		{Name: "filePath"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}

	res, err := s.client.GraphQL().Get().
		WithClassName(s.className).
		WithNearVector(nearVector).
		WithLimit(limit).
		WithFields(fields...).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %v", res.Errors)
	}

	var results []retrieval.SearchResult
	data, ok := res.Data["Get"].(map[string]interface{})
	if !ok {
		return results, nil
	}
	chunks, ok := data[s.className].([]interface{})
	if !ok {
		return results, nil
	}

	for _, c := range chunks {
		props, ok := c.(map[string]interface{})
		if !ok {
			continue
		}

		var rec document.ChunkRecord
		if v, ok := props["content"].(string); ok {
			rec.Text = v
		}
		if v, ok := props["source"].(string); ok {
			rec.SourceName = v
		}
		if v, ok := props["sourceType"].(string); ok {
			rec.SourceType = document.SourceType(v)
		}
		if v, ok := props["documentType"].(string); ok {
			rec.Category = v
		}
		if v, ok := props["page"].(float64); ok {
			rec.Locator.Page = int(v)
		}
		if v, ok := props["sheet"].(string); ok {
			rec.Locator.Sheet = v
		}
		if v, ok := props["section"].(string); ok {
			rec.Locator.Section = v
		}
		if v, ok := props["chunkIndex"].(float64); ok {
			rec.ChunkIndex = int(v)
		}
		if v, ok := props["filePath"].(string); ok {
			rec.FilePath = v
		}

		result := retrieval.SearchResult{Record: rec}
		if additional, ok := props["_additional"].(map[string]interface{}); ok {
			if distance, ok := additional["distance"].(float64); ok {
				result.Score = float32(1 - distance)
			}
		}
		results = append(results, result)
	}
	return results, nil
}
