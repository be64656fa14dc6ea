package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"

	"docsage/internal/adapter/gemini"
	wstore "docsage/internal/adapter/weaviate"
	"docsage/internal/config"
	"docsage/internal/logger"
	"docsage/internal/retrieval"
)

func main() {
	log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(os.Stderr, nil)))
	slog.SetDefault(log)

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

	generator, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.AnswerModel)
	if err != nil {
		slog.Error("failed to create generator", "error", err)
		os.Exit(1)
	}
	defer generator.Close()

	service := retrieval.NewService(embedder, store, generator, cfg.RetrievalK)

	fmt.Println("Assistant documentaire — posez une question (q pour quitter)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "q" || question == "quit" {
			break
		}

		answer, err := service.Ask(ctx, question)
		if err != nil {
			slog.Error("query failed", "error", err)
			continue
		}

		fmt.Println()
		fmt.Println(answer.Text)
		fmt.Println()
		fmt.Println(answer.Citations)
		fmt.Println()
	}
}
