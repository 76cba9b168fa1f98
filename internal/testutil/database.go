// Package testutil provides shared helpers for tests that need a real,
// migrated expense store behind them.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tallyfolk/tally/internal/model"
	"github.com/tallyfolk/tally/internal/storage"
)

// TestStore wraps a migrated SQLiteStore together with the expenses
// seeded into it.
type TestStore struct {
	Store  *storage.SQLiteStore
	t      *testing.T
	Seeded []model.Expense
}

// SetupTestStore creates a store backed by a temp file, runs migrations,
// and registers cleanup. Seed expenses are inserted in order and the
// returned copies carry their assigned IDs.
func SetupTestStore(t *testing.T, seed ...model.Expense) *TestStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	seeded := make([]model.Expense, 0, len(seed))
	for _, e := range seed {
		id, insertErr := store.InsertExpense(ctx, e)
		if insertErr != nil {
			t.Fatalf("failed to seed expense %+v: %v", e, insertErr)
		}
		e.ID = id
		seeded = append(seeded, e)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestStore{
		Store:  store,
		t:      t,
		Seeded: seeded,
	}
}

// MustCount returns the number of expense rows or fails the test.
func (ts *TestStore) MustCount(ctx context.Context) int64 {
	ts.t.Helper()
	count, err := ts.Store.CountExpenses(ctx)
	if err != nil {
		ts.t.Fatalf("failed to count expenses: %v", err)
	}
	return count
}

// SampleExpenses returns a small fixed dataset spanning two months and
// two categories, handy for list and summary assertions.
func SampleExpenses() []model.Expense {
	return []model.Expense{
		{Date: "2024-01-01", Amount: 10.50, Category: "Food", Subcategory: "Lunch"},
		{Date: "2024-01-02", Amount: -5.25, Category: "Food", Note: "refund"},
		{Date: "2024-02-01", Amount: 20, Category: "Travel"},
	}
}
