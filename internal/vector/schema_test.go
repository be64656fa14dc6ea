package vector_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/weaviate/weaviate/entities/models"

	"docsage/internal/vector"
)

type MockSchemaClient struct{ mock.Mock }

func (m *MockSchemaClient) ClassExists(ctx context.Context, className string) (bool, error) {
	args := m.Called(ctx, className)
	return args.Bool(0), args.Error(1)
}

func (m *MockSchemaClient) CreateClass(ctx context.Context, class *models.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockSchemaClient) GetClass(ctx context.Context, className string) (*models.Class, error) {
	args := m.Called(ctx, className)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Class), args.Error(1)
}

func (m *MockSchemaClient) AddProperty(ctx context.Context, className string, property *models.Property) error {
	args := m.Called(ctx, className, property)
	return args.Error(0)
}

func (m *MockSchemaClient) DeleteClass(ctx context.Context, className string) error {
	args := m.Called(ctx, className)
	return args.Error(0)
}

func TestChunkClass(t *testing.T) {
	class := vector.ChunkClass("IsoRhKnowledge")
	assert.Equal(t, "IsoRhKnowledge", class.Class)
	assert.Equal(t, "none", class.Vectorizer, "vectors are supplied by the pipeline, never by weaviate")

	names := make(map[string]bool)
	for _, p := range class.Properties {
		names[p.Name] = true
	}
	for _, want := range []string{"content", "source", "sourceType", "documentType", "page", "sheet", "section", "chunkIndex", "filePath"} {
		assert.True(t, names[want], "missing property %s", want)
	}
}

func TestEnsureCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates When Missing", func(t *testing.T) {
		client := new(MockSchemaClient)
		client.On("ClassExists", ctx, "Kb").Return(false, nil)
		client.On("CreateClass", ctx, mock.Anything).Return(nil)

		require.NoError(t, vector.EnsureCollection(ctx, client, "Kb"))
		client.AssertExpectations(t)
	})

	t.Run("Backfills Missing Properties", func(t *testing.T) {
		client := new(MockSchemaClient)
		existing := &models.Class{
			Class: "Kb",
			Properties: []*models.Property{
				{Name: "content"},
				{Name: "source"},
			},
		}
		client.On("ClassExists", ctx, "Kb").Return(true, nil)
		client.On("GetClass", ctx, "Kb").Return(existing, nil)
		client.On("AddProperty", ctx, "Kb", mock.Anything).Return(nil)

		require.NoError(t, vector.EnsureCollection(ctx, client, "Kb"))
		client.AssertNumberOfCalls(t, "AddProperty", 7)
		client.AssertNotCalled(t, "CreateClass", ctx, mock.Anything)
	})
}

func TestRecreateCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes Existing Then Creates", func(t *testing.T) {
		client := new(MockSchemaClient)
		client.On("ClassExists", ctx, "Kb").Return(true, nil)
		client.On("DeleteClass", ctx, "Kb").Return(nil)
		client.On("CreateClass", ctx, mock.Anything).Return(nil)

		require.NoError(t, vector.RecreateCollection(ctx, client, "Kb"))
		client.AssertExpectations(t)
	})

	t.Run("Creates When Missing", func(t *testing.T) {
		client := new(MockSchemaClient)
		client.On("ClassExists", ctx, "Kb").Return(false, nil)
		client.On("CreateClass", ctx, mock.Anything).Return(nil)

		require.NoError(t, vector.RecreateCollection(ctx, client, "Kb"))
		client.AssertNotCalled(t, "DeleteClass", ctx, "Kb")
	})
}
