package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"docsage/internal/document"
	"docsage/internal/logger"

	"log/slog"
)

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type VectorStore interface {
	EnsureCollection(ctx context.Context) error
	RecreateCollection(ctx context.Context) error
	StoreBatch(ctx context.Context, records []document.ChunkRecord, vectors [][]float32) error
}

// Report summarizes one indexing run.
type Report struct {
	RunID          string
	Path           string
	Force          bool
	FilesAttempted int
	FilesSucceeded int
	FilesFailed    int
	TotalChunks    int
	Failures       []document.Failure
	Duration       time.Duration
}

// Service runs the write path: walk → normalize → embed → store. It is a
// single-writer batch pipeline; concurrent runs against the same collection
// are not supported.
type Service struct {
	processor *document.Processor
	embedder  Embedder
	store     VectorStore
	runLog    *RunLogger
}

func NewService(p *document.Processor, e Embedder, s VectorStore, rl *RunLogger) *Service {
	return &Service{processor: p, embedder: e, store: s, runLog: rl}
}

// IndexDirectory ingests every supported file under dir. Per-file failures
// are reported, not fatal; zero chunks overall is ErrNoDocuments. With
// force, the collection is destroyed and rebuilt so it holds only this
// run's records; otherwise records are appended.
func (s *Service) IndexDirectory(ctx context.Context, dir string, force bool) (*Report, error) {
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	start := time.Now()

	slog.InfoContext(ctx, "indexing run started", "dir", dir, "force", force)

	records, walk, err := s.processor.WalkDirectory(dir)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", document.ErrNoDocuments, dir)
	}

	report := &Report{
		RunID:          runID,
		Path:           dir,
		Force:          force,
		FilesAttempted: walk.FilesAttempted,
		FilesSucceeded: walk.FilesSucceeded,
		FilesFailed:    len(walk.Failures),
		TotalChunks:    walk.TotalChunks,
		Failures:       walk.Failures,
	}

	if err := s.storeRecords(ctx, records, force); err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	s.logRun(report)
	slog.InfoContext(ctx, "indexing run finished",
		"files_attempted", report.FilesAttempted,
		"files_succeeded", report.FilesSucceeded,
		"files_failed", report.FilesFailed,
		"chunks", report.TotalChunks,
		"duration", report.Duration)
	return report, nil
}

// IndexFile ingests a single file. Unlike a directory walk, any failure
// here is fatal: there is no batch to continue.
func (s *Service) IndexFile(ctx context.Context, path string, force bool) (*Report, error) {
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	start := time.Now()

	records, err := s.processor.Normalize(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", document.ErrNoDocuments, path)
	}

	if err := s.storeRecords(ctx, records, force); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:          runID,
		Path:           path,
		Force:          force,
		FilesAttempted: 1,
		FilesSucceeded: 1,
		TotalChunks:    len(records),
		Duration:       time.Since(start),
	}
	s.logRun(report)
	return report, nil
}

func (s *Service) storeRecords(ctx context.Context, records []document.ChunkRecord, force bool) error {
	// The destructive recreate happens strictly before any write.
	if force {
		if err := s.store.RecreateCollection(ctx); err != nil {
			return fmt.Errorf("recreate collection: %w", err)
		}
	} else {
		if err := s.store.EnsureCollection(ctx); err != nil {
			return fmt.Errorf("ensure collection: %w", err)
		}
	}

	vectors := make([][]float32, len(records))
	for i, rec := range records {
		vec, err := s.embedder.Embed(ctx, embeddingText(rec))
		if err != nil {
			return fmt.Errorf("embed chunk %d of %s: %w", rec.ChunkIndex, rec.SourceName, err)
		}
		vectors[i] = vec
	}

	if err := s.store.StoreBatch(ctx, records, vectors); err != nil {
		return fmt.Errorf("store batch: %w", err)
	}
	return nil
}

// embeddingText prefixes the chunk with its provenance before embedding.
// The stored record keeps the raw text; only the vector sees the header.
func embeddingText(rec document.ChunkRecord) string {
	return fmt.Sprintf("Source: %s\nCatégorie: %s\nLocalisation: %s\n---\n%s",
		rec.SourceName, rec.Category, rec.Locator.Display(rec.SourceType), rec.Text)
}

func (s *Service) logRun(r *Report) {
	if s.runLog == nil {
		return
	}
	failures := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		failures[i] = fmt.Sprintf("%s: %v", f.File, f.Err)
	}
	s.runLog.Log(RunLogEntry{
		RunID:          r.RunID,
		Path:           r.Path,
		Force:          r.Force,
		FilesAttempted: r.FilesAttempted,
		FilesSucceeded: r.FilesSucceeded,
		FilesFailed:    r.FilesFailed,
		TotalChunks:    r.TotalChunks,
		Failures:       failures,
		Duration:       r.Duration,
	})
}
