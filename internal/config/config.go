package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"docsage/internal/document"
)

var ErrMissingRequired = errors.New("missing required configuration")

// CategoryTable is an ordered category→keywords mapping, configurable as
// "Name:kw1,kw2;Name2:kw3". Order is significant: earlier entries win on
// ambiguous filenames.
type CategoryTable []document.Category

func (t *CategoryTable) Decode(value string) error {
	var table CategoryTable
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, keywords, ok := strings.Cut(entry, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid category entry %q, want Name:kw1,kw2", entry)
		}
		cat := document.Category{Name: strings.TrimSpace(name)}
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				cat.Keywords = append(cat.Keywords, kw)
			}
		}
		table = append(table, cat)
	}
	*t = table
	return nil
}

type Config struct {
	WeaviateHost   string `envconfig:"WEAVIATE_HOST" default:"localhost:8080"`
	WeaviateScheme string `envconfig:"WEAVIATE_SCHEME" default:"http"`
	CollectionName string `envconfig:"COLLECTION_NAME" default:"IsoRhKnowledge"`

	GeminiAPIKey   string `envconfig:"GEMINI_API_KEY"`
	EmbeddingModel string `envconfig:"EMBEDDING_MODEL" default:"gemini-embedding-001"`
	AnswerModel    string `envconfig:"ANSWER_MODEL" default:"gemini-2.0-flash"`

	DataDir      string `envconfig:"DATA_DIR" default:"data/docs"`
	ChunkSize    int    `envconfig:"CHUNK_SIZE" default:"1000"`
	ChunkOverlap int    `envconfig:"CHUNK_OVERLAP" default:"250"`
	RetrievalK   int    `envconfig:"RETRIEVAL_K" default:"5"`

	RunLogPath string `envconfig:"RUN_LOG_PATH" default:"data/logs/index.log"`

	Categories CategoryTable `envconfig:"CATEGORY_TABLE"`
}

func Load() (*Config, error) {
	// Env vars may also come from the shell; a missing .env is fine.
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = CategoryTable(document.DefaultCategories)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.CollectionName == "" {
		return fmt.Errorf("%w: COLLECTION_NAME", ErrMissingRequired)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP must be in [0, CHUNK_SIZE), got %d", c.ChunkOverlap)
	}
	if c.RetrievalK <= 0 {
		return fmt.Errorf("RETRIEVAL_K must be positive, got %d", c.RetrievalK)
	}
	return nil
}
