package main

import (
	"context"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/adhikariaashish/gemini-blog/internal/ai"
	"github.com/adhikariaashish/gemini-blog/internal/auth"
	"github.com/adhikariaashish/gemini-blog/internal/config"
	"github.com/adhikariaashish/gemini-blog/internal/server"
	"github.com/adhikariaashish/gemini-blog/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Logging.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Initialize storage
	var store storage.Store
	switch cfg.Storage.Type {
	case "memory":
		store = storage.NewMemoryStore()
	case "file":
		store, err = storage.NewFileStore(cfg.Storage.Path, logger)
		if err != nil {
			logger.Fatal("Failed to initialize file storage", zap.Error(err))
		}
	case "sqlite":
		store, err = storage.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			logger.Fatal("Failed to initialize sqlite storage", zap.Error(err))
		}
	default:
		logger.Fatal("Unsupported storage type", zap.String("type", cfg.Storage.Type))
	}
	defer store.Close()

	// Initialize the generation provider, if configured
	var provider ai.Provider
	if cfg.AI.APIKey != "" {
		client, err := ai.NewClient(context.Background(), cfg.AI.APIKey, cfg.AI.Model, cfg.AI.SuggestModel)
		if err != nil {
			logger.Fatal("Failed to initialize AI client", zap.Error(err))
		}
		provider = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI endpoints disabled")
	}

	gate := auth.NewGate(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)

	srv := server.New(store, provider, gate, logger)
	router := srv.Router()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("Starting server",
		zap.String("addr", addr),
		zap.String("storage", cfg.Storage.Type))

	if err := router.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
