package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"

	"docsage/internal/adapter/gemini"
	wstore "docsage/internal/adapter/weaviate"
	"docsage/internal/config"
	"docsage/internal/document"
	"docsage/internal/ingest"
	"docsage/internal/logger"
	"docsage/internal/text"
)

func main() {
	log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(log)

	dir := flag.String("dir", "", "directory to index (default DATA_DIR)")
	file := flag.String("file", "", "index a single file instead of a directory")
	force := flag.Bool("force", false, "recreate the collection before indexing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	wClient, err := weaviate.NewClient(weaviate.Config{
		Host:   cfg.WeaviateHost,
		Scheme: cfg.WeaviateScheme,
	})
	if err != nil {
		slog.Error("failed to create weaviate client", "error", err)
		os.Exit(1)
	}
	store := wstore.NewStore(wClient, cfg.CollectionName)

	embedder, err := gemini.NewEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		slog.Error("failed to create embedder", "error", err)
		os.Exit(1)
	}
	defer embedder.Close()

	runLog, err := ingest.NewFileRunLogger(cfg.RunLogPath)
	if err != nil {
		slog.Warn("failed to create run log, falling back to stdout", "error", err)
		runLog = ingest.NewRunLogger(os.Stdout)
	}

	splitter := text.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	processor := document.NewProcessor(splitter, cfg.Categories)
	service := ingest.NewService(processor, embedder, store, runLog)

	var report *ingest.Report
	if *file != "" {
		report, err = service.IndexFile(ctx, *file, *force)
	} else {
		target := *dir
		if target == "" {
			target = cfg.DataDir
		}
		report, err = service.IndexDirectory(ctx, target, *force)
	}
	if err != nil {
		if errors.Is(err, document.ErrNoDocuments) {
			slog.Warn("nothing to index", "error", err)
			return
		}
		slog.Error("indexing failed", "error", err)
		os.Exit(1)
	}

	slog.Info("indexed",
		"run_id", report.RunID,
		"collection", cfg.CollectionName,
		"files_succeeded", report.FilesSucceeded,
		"files_failed", report.FilesFailed,
		"chunks", report.TotalChunks)
	for _, f := range report.Failures {
		slog.Warn("failed file", "file", f.File, "error", f.Err)
	}
}
