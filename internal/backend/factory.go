// Package backend assembles the store, the optional text-generation backend,
// and the optional event publisher from configuration.
package backend

import (
	"context"
	"fmt"

	"finmon/internal/amqp"
	"finmon/internal/config"
	"finmon/internal/gemini"
	applog "finmon/internal/log"
	"finmon/internal/narrative"
	"finmon/internal/store"
	"finmon/internal/store/memory"
	"finmon/internal/storage"
)

const (
	SQLiteStore StoreType = "sqlite"
	MemoryStore StoreType = "memory"
)

type (
	// StoreType selects the transaction store implementation.
	StoreType string

	// CleanupFunc releases resources held by a created component.
	CleanupFunc func() error

	// Stores bundles the two store ports with their cleanup function.
	Stores struct {
		Writer  store.TransactionWriter
		Lister  store.TransactionLister
		Cleanup CleanupFunc
	}
)

// IsValid returns true if the store type is known.
func (st StoreType) IsValid() bool {
	switch st {
	case SQLiteStore, MemoryStore:
		return true
	default:
		return false
	}
}

// Factory creates backends based on configuration.
type Factory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) *Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Factory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateStores builds the transaction store named in the config.
func (f *Factory) CreateStores(cfg *config.Config) (*Stores, error) {
	st := StoreType(cfg.DataBackend)
	if !st.IsValid() {
		return nil, fmt.Errorf("invalid store type: %s", cfg.DataBackend)
	}

	switch st {
	case SQLiteStore:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite store", "db_path", cfg.SQLiteDBPath)
		return &Stores{Writer: repo, Lister: repo, Cleanup: repo.Close}, nil

	default:
		mem := memory.New()
		f.logger.Info("Initialized memory store")
		return &Stores{Writer: mem, Lister: mem, Cleanup: nil}, nil
	}
}

// CreateTextGenerator builds the Gemini backend when an API key is
// configured. A missing key or a failed client construction yields a nil
// generator: the narrative pipeline then runs on its fallback rules.
func (f *Factory) CreateTextGenerator(ctx context.Context, cfg *config.Config) narrative.TextGenerator {
	if cfg.GeminiAPIKey == "" {
		f.logger.Warn("GEMINI_API_KEY not set, narrative falls back to rule-based analysis")
		return nil
	}

	client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		f.logger.Error("Failed to initialize Gemini client, narrative falls back to rule-based analysis", "error", err)
		return nil
	}

	f.logger.Info("Initialized Gemini text backend", "model", cfg.GeminiModel)
	return client
}

// CreatePublisher builds the AMQP event publisher when an URL is configured.
// Publishing is optional; failures here disable events but not the service.
func (f *Factory) CreatePublisher(cfg *config.Config) *amqp.Client {
	if cfg.AMQPURL == "" {
		return nil
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		f.logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		return nil
	}

	f.logger.Info("Initialized AMQP publisher",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue)
	return client
}
