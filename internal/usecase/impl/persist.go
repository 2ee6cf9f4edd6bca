// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// loadState reads and decodes the JSON value stored under key into dst. Absent
// keys report false; malformed values are logged and treated as absent so that
// startup always degrades to a default state instead of failing.
func loadState(ctx context.Context, store repository.Store, key string, dst any, logger *slog.Logger) bool {
	data, err := store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			logger.Warn("failed to load persisted state",
				slog.String("key", key), slog.Any("error", err))
		}

		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		logger.Warn("discarding malformed persisted state",
			slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

// saveState serializes v and stores it under key. Persistence is best-effort:
// failures are logged and never surfaced to the caller.
func saveState(ctx context.Context, store repository.Store, key string, v any, logger *slog.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("failed to serialize state",
			slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := store.Save(ctx, key, data); err != nil {
		logger.Warn("failed to persist state",
			slog.String("key", key), slog.Any("error", err))
	}
}
