package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/statement-roast/internal/config"
	"github.com/Veraticus/statement-roast/internal/ingest"
	"github.com/Veraticus/statement-roast/internal/llm"
	"github.com/Veraticus/statement-roast/internal/storage"
	"github.com/spf13/viper"
)

func loadSettings() (config.Settings, error) {
	return config.Load(viper.GetViper())
}

// openStore opens and migrates the configured database.
func openStore(ctx context.Context, settings config.Settings) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// newExtractor builds the LLM extractor, or returns nil when no API key is
// configured so that text statements are rejected instead.
func newExtractor(settings config.Settings) (ingest.Extractor, error) {
	if settings.LLM.APIKey == "" {
		slog.Debug("No LLM API key configured, text statements are disabled")
		return nil, nil
	}
	extractor, err := llm.NewExtractor(llm.Config{
		Provider:   settings.LLM.Provider,
		APIKey:     settings.LLM.APIKey,
		Model:      settings.LLM.Model,
		BaseURL:    settings.LLM.BaseURL,
		MaxRetries: settings.LLM.MaxRetries,
		RetryDelay: 2 * time.Second,
	}, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM extractor: %w", err)
	}
	return extractor, nil
}
