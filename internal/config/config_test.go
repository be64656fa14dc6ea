package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsage/internal/document"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "localhost:8080", cfg.WeaviateHost)
		assert.Equal(t, "http", cfg.WeaviateScheme)
		assert.Equal(t, "IsoRhKnowledge", cfg.CollectionName)
		assert.Equal(t, "gemini-embedding-001", cfg.EmbeddingModel)
		assert.Equal(t, "gemini-2.0-flash", cfg.AnswerModel)
		assert.Equal(t, 1000, cfg.ChunkSize)
		assert.Equal(t, 250, cfg.ChunkOverlap)
		assert.Equal(t, 5, cfg.RetrievalK)
		assert.Equal(t, CategoryTable(document.DefaultCategories), cfg.Categories)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("COLLECTION_NAME", "Playbooks")
		t.Setenv("CHUNK_SIZE", "500")
		t.Setenv("CHUNK_OVERLAP", "50")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "Playbooks", cfg.CollectionName)
		assert.Equal(t, 500, cfg.ChunkSize)
		assert.Equal(t, 50, cfg.ChunkOverlap)
	})

	t.Run("Custom Category Table", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("CATEGORY_TABLE", "Qualité:ISO,NORME;Sécurité:SEC")

		cfg, err := Load()
		require.NoError(t, err)
		require.Len(t, cfg.Categories, 2)
		assert.Equal(t, "Qualité", cfg.Categories[0].Name)
		assert.Equal(t, []string{"ISO", "NORME"}, cfg.Categories[0].Keywords)
		assert.Equal(t, "Sécurité", cfg.Categories[1].Name)
	})

	t.Run("Invalid Overlap Rejected", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("CHUNK_SIZE", "100")
		t.Setenv("CHUNK_OVERLAP", "100")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CHUNK_OVERLAP")
	})
}

func TestCategoryTableDecode(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var table CategoryTable
		require.NoError(t, table.Decode("RH: EFFECTIF, FOR-RH ; ISO:ISO"))
		require.Len(t, table, 2)
		assert.Equal(t, "RH", table[0].Name)
		assert.Equal(t, []string{"EFFECTIF", "FOR-RH"}, table[0].Keywords)
		assert.Equal(t, "ISO", table[1].Name)
	})

	t.Run("Missing Name", func(t *testing.T) {
		var table CategoryTable
		assert.Error(t, table.Decode(":ISO"))
	})

	t.Run("Missing Separator", func(t *testing.T) {
		var table CategoryTable
		assert.Error(t, table.Decode("just-a-name"))
	})

	t.Run("Empty Entries Skipped", func(t *testing.T) {
		var table CategoryTable
		require.NoError(t, table.Decode("RH:X;;"))
		assert.Len(t, table, 1)
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			CollectionName: "Kb",
			ChunkSize:      1000,
			ChunkOverlap:   250,
			RetrievalK:     5,
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("Missing Collection", func(t *testing.T) {
		cfg := base()
		cfg.CollectionName = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequired)
	})

	t.Run("Zero Chunk Size", func(t *testing.T) {
		cfg := base()
		cfg.ChunkSize = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Negative Overlap", func(t *testing.T) {
		cfg := base()
		cfg.ChunkOverlap = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("Zero Retrieval K", func(t *testing.T) {
		cfg := base()
		cfg.RetrievalK = 0
		assert.Error(t, cfg.Validate())
	})
}
