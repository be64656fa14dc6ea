package retrieval

import (
	"context"
	"fmt"
	"strings"

	"docsage/internal/document"
)

// SearchResult is one ranked chunk returned from the vector store.
type SearchResult struct {
	Record document.ChunkRecord
	Score  float32
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type VectorStore interface {
	Search(ctx context.Context, vector []float32, limit int) ([]SearchResult, error)
}

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Answer is a generated reply with its supporting sources.
type Answer struct {
	Text      string
	Citations string
	Sources   []SearchResult
}

type Service struct {
	embedder  Embedder
	store     VectorStore
	generator Generator
	topK      int
}

func NewService(e Embedder, s VectorStore, g Generator, topK int) *Service {
	return &Service{embedder: e, store: s, generator: g, topK: topK}
}

// Search embeds the question and returns the top-k chunks by similarity,
// in the store's ranking order.
func (s *Service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	results, err := s.store.Search(ctx, vec, s.topK)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	return results, nil
}

// Ask retrieves context for the question, has the generator produce an
// answer over it, and attaches the formatted citations.
func (s *Service) Ask(ctx context.Context, question string) (*Answer, error) {
	results, err := s.Search(ctx, question)
	if err != nil {
		return nil, err
	}

	answer, err := s.generator.Generate(ctx, buildPrompt(question, results))
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	records := make([]document.ChunkRecord, len(results))
	for i, r := range results {
		records[i] = r.Record
	}

	return &Answer{
		Text:      answer,
		Citations: FormatSources(records),
		Sources:   results,
	}, nil
}

// buildPrompt assembles the context block the generator answers over: each
// retrieved chunk prefixed with its provenance so the model can ground its
// reply.
func buildPrompt(question string, results []SearchResult) string {
	var b strings.Builder
	b.WriteString("Tu es un assistant expert en normes ISO et documents RH.\n")
	b.WriteString("Réponds uniquement à partir du contexte fourni; si l'information n'y figure pas, dis-le clairement.\n\n")
	b.WriteString("Contexte:\n")
	for _, r := range results {
		rec := r.Record
		fmt.Fprintf(&b, "[%s | %s | %s]\n%s\n\n",
			rec.SourceName, rec.Category, rec.Locator.Display(rec.SourceType), rec.Text)
	}
	fmt.Fprintf(&b, "Question: %s\n\nRéponse:\n", question)
	return b.String()
}
