// Package main provides the entry point for the bowlink MCP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rvisser/bowlink/internal/config"
	"github.com/rvisser/bowlink/internal/embedding"
	"github.com/rvisser/bowlink/internal/linker"
	"github.com/rvisser/bowlink/internal/metrics"
	"github.com/rvisser/bowlink/internal/server"
	"github.com/rvisser/bowlink/internal/service"
	"github.com/rvisser/bowlink/internal/store"
	"github.com/rvisser/bowlink/internal/tools"
)

const version = "0.1.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	logger.Info("bowlink starting",
		"version", version,
		"surrealdb_url", cfg.SurrealDBURL,
		"similarity_threshold", cfg.SimilarityThreshold,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	storeCfg := store.Config{
		URL:       cfg.SurrealDBURL,
		Namespace: cfg.SurrealDBNamespace,
		Database:  cfg.SurrealDBDatabase,
		Username:  cfg.SurrealDBUser,
		Password:  cfg.SurrealDBPass,
		AuthLevel: cfg.SurrealDBAuthLevel,
	}

	storeClient, err := store.NewClient(ctx, storeCfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		logger.Info("closing database connection")
		_ = storeClient.Close(ctx)
	}()

	// Initialize database schema
	if err := storeClient.InitSchema(ctx); err != nil {
		logger.Error("failed to initialize database schema", "error", err)
		os.Exit(1)
	}

	// Embeddings are optional; without a reachable Ollama the
	// similarity methods still work.
	var embedder embedding.Embedder
	if ollama, err := embedding.NewOllama(cfg.OllamaHost, cfg.EmbedModel, cfg.EmbedDimension); err != nil {
		logger.Warn("embedder unavailable, embedding method disabled", "error", err)
	} else {
		embedder = ollama
		logger.Info("embedder initialized", "model", ollama.Model())
	}

	// Create linker service
	linkerSvc := service.NewLinkerService(linker.Config{
		SimilarityThreshold: cfg.SimilarityThreshold,
		MaxLinksPerItem:     cfg.MaxLinksPerItem,
		MinSimilarity:       cfg.MinSimilarity,
		Workers:             cfg.ScanWorkers,
	}, nil, embedder, metrics.NewCollector(), logger)

	// Create and setup server
	srv := server.New(version, logger)
	srv.Setup()

	// Register tools
	deps := &tools.Dependencies{
		Store:  storeClient,
		Linker: linkerSvc,
		Logger: logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)

	logger.Info("server ready, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
