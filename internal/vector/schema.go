package vector

import (
	"context"

	"github.com/weaviate/weaviate/entities/models"
)

// SchemaClient defines the interface for Weaviate schema operations
type SchemaClient interface {
	ClassExists(ctx context.Context, className string) (bool, error)
	CreateClass(ctx context.Context, class *models.Class) error
	GetClass(ctx context.Context, className string) (*models.Class, error)
	AddProperty(ctx context.Context, className string, property *models.Property) error
	DeleteClass(ctx context.Context, className string) error
}

func chunkProperties() []*models.Property {
	return []*models.Property{
		{
			Name:     "content",
			DataType: []string{"text"},
		},
		{
			Name:     "source",
			DataType: []string{"string"}, // filename (exact match)
		},
		{
			Name:     "sourceType",
			DataType: []string{"string"},
		},
		{
			Name:     "documentType",
			DataType: []string{"string"},
		},
		{
			Name:     "page",
			DataType: []string{"int"},
		},
		{
			Name:     "sheet",
			DataType: []string{"string"},
		},
		{
			Name:     "section",
			DataType: []string{"string"},
		},
		{
			Name:     "chunkIndex",
			DataType: []string{"int"},
		},
		{
			Name:     "filePath",
			DataType: []string{"string"},
		},
	}
}

// ChunkClass builds the class definition for a chunk collection. Vectors are
// supplied by the caller, never by a Weaviate vectorizer.
func ChunkClass(className string) *models.Class {
	return &models.Class{
		Class:       className,
		Description: "A chunk of a source document with citation metadata",
		Vectorizer:  "none",
		Properties:  chunkProperties(),
	}
}

// EnsureCollection creates the class if missing, and backfills any missing
// properties if it already exists (append mode).
func EnsureCollection(ctx context.Context, client SchemaClient, className string) error {
	exists, err := client.ClassExists(ctx, className)
	if err != nil {
		return err
	}
	if !exists {
		return client.CreateClass(ctx, ChunkClass(className))
	}

	class, err := client.GetClass(ctx, className)
	if err != nil {
		return err
	}
	existing := make(map[string]bool)
	for _, p := range class.Properties {
		existing[p.Name] = true
	}
	for _, p := range chunkProperties() {
		if !existing[p.Name] {
			if err := client.AddProperty(ctx, className, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecreateCollection destroys the class, discarding every stored chunk, and
// creates it fresh. Callers must not interleave reads against the class
// while this runs.
func RecreateCollection(ctx context.Context, client SchemaClient, className string) error {
	exists, err := client.ClassExists(ctx, className)
	if err != nil {
		return err
	}
	if exists {
		if err := client.DeleteClass(ctx, className); err != nil {
			return err
		}
	}
	return client.CreateClass(ctx, ChunkClass(className))
}
