// Package testutil provides shared helpers for tests that need a database.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/Veraticus/statement-roast/internal/storage"
)

// SetupTestDB creates a migrated in-memory database that is closed when the
// test finishes. Any summaries given are stored up front.
//
// Example:
//
//	db := testutil.SetupTestDB(t,
//		testutil.Summary("me", "2025-05", model.AwardIndiceGodin),
//		testutil.Summary("me", "2025-06", model.AwardIndiceGodin),
//	)
func SetupTestDB(t *testing.T, seed ...model.MonthlySummary) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	for i := range seed {
		if err := store.SaveSummary(ctx, &seed[i]); err != nil {
			t.Fatalf("failed to seed summary %s/%s: %v", seed[i].SessionID, seed[i].Month, err)
		}
	}

	return store
}

// Summary builds a minimal valid summary for seeding.
func Summary(sessionID, month string, awards ...model.AwardID) model.MonthlySummary {
	totals := make(map[model.Category]float64)
	for _, c := range model.AllCategories() {
		totals[c] = 0
	}
	return model.MonthlySummary{
		SessionID:      sessionID,
		Month:          month,
		TopCategory:    model.CategoryOther,
		AwardsWon:      awards,
		CategoryTotals: totals,
	}
}
