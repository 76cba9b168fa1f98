package storage

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/tallyfolk/tally/internal/common"
	"github.com/tallyfolk/tally/internal/model"
)

// Helper function to create a migrated test store.
func createTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// seedExpenses inserts the given expenses and fails the test on any error.
func seedExpenses(t *testing.T, store *SQLiteStore, expenses []model.Expense) {
	t.Helper()
	ctx := context.Background()
	for _, e := range expenses {
		if _, err := store.InsertExpense(ctx, e); err != nil {
			t.Fatalf("Failed to seed expense %+v: %v", e, err)
		}
	}
}

// januaryScenario is the canonical three-record fixture: two January Food
// entries (one credit) and one February Travel entry.
func januaryScenario() []model.Expense {
	return []model.Expense{
		{Date: "2024-01-01", Amount: 10, Category: "Food"},
		{Date: "2024-01-02", Amount: -5, Category: "Food"},
		{Date: "2024-02-01", Amount: 20, Category: "Travel"},
	}
}

func floatsEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSQLiteStore_InsertExpense(t *testing.T) {
	tests := []struct {
		name    string
		expense model.Expense
		wantErr bool
	}{
		{
			name:    "valid expense",
			expense: model.Expense{Date: "2024-01-15", Amount: 42.50, Category: "Groceries", Subcategory: "Produce", Note: "weekly shop"},
		},
		{
			name:    "empty subcategory and note are fine",
			expense: model.Expense{Date: "2024-01-15", Amount: 3, Category: "Transport"},
		},
		{
			name:    "zero amount is allowed",
			expense: model.Expense{Date: "2024-01-15", Amount: 0, Category: "Other"},
		},
		{
			name:    "missing date",
			expense: model.Expense{Amount: 5, Category: "Food"},
			wantErr: true,
		},
		{
			name:    "malformed date",
			expense: model.Expense{Date: "15/01/2024", Amount: 5, Category: "Food"},
			wantErr: true,
		},
		{
			name:    "missing category",
			expense: model.Expense{Date: "2024-01-15", Amount: 5},
			wantErr: true,
		},
		{
			name:    "blank category",
			expense: model.Expense{Date: "2024-01-15", Amount: 5, Category: "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStore(t)
			defer cleanup()
			ctx := context.Background()

			id, err := store.InsertExpense(ctx, tt.expense)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InsertExpense() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if id <= 0 {
				t.Errorf("InsertExpense() id = %d, want positive", id)
			}
		})
	}
}

func TestSQLiteStore_InsertExpenseAssignsUniqueIDs(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first, err := store.InsertExpense(ctx, model.Expense{Date: "2024-01-01", Amount: 1, Category: "Food"})
	if err != nil {
		t.Fatalf("InsertExpense() error = %v", err)
	}
	second, err := store.InsertExpense(ctx, model.Expense{Date: "2024-01-01", Amount: 1, Category: "Food"})
	if err != nil {
		t.Fatalf("InsertExpense() error = %v", err)
	}

	if first == second {
		t.Errorf("Expected distinct ids, got %d twice", first)
	}
	if second != first+1 {
		t.Errorf("Expected sequential ids, got %d then %d", first, second)
	}
}

func TestSQLiteStore_ListExpenses(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantDates []string
		wantErr   bool
	}{
		{
			name:      "january only",
			start:     "2024-01-01",
			end:       "2024-01-31",
			wantDates: []string{"2024-01-01", "2024-01-02"},
		},
		{
			name:      "both ends inclusive",
			start:     "2024-01-02",
			end:       "2024-02-01",
			wantDates: []string{"2024-01-02", "2024-02-01"},
		},
		{
			name:      "single day",
			start:     "2024-01-01",
			end:       "2024-01-01",
			wantDates: []string{"2024-01-01"},
		},
		{
			name:      "no matches",
			start:     "2023-01-01",
			end:       "2023-12-31",
			wantDates: []string{},
		},
		{
			name:    "blank start is rejected",
			start:   "",
			end:     "2024-01-31",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStore(t)
			defer cleanup()
			seedExpenses(t, store, januaryScenario())
			ctx := context.Background()

			got, err := store.ListExpenses(ctx, tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListExpenses() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got == nil {
				t.Fatal("ListExpenses() returned nil slice")
			}
			if len(got) != len(tt.wantDates) {
				t.Fatalf("ListExpenses() returned %d rows, want %d", len(got), len(tt.wantDates))
			}
			for i, e := range got {
				if e.Date != tt.wantDates[i] {
					t.Errorf("row %d date = %s, want %s", i, e.Date, tt.wantDates[i])
				}
				if i > 0 && got[i-1].ID >= e.ID {
					t.Errorf("rows not ordered by id: %d before %d", got[i-1].ID, e.ID)
				}
			}
		})
	}
}

func TestSQLiteStore_ListExpensesRoundTripsFields(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	ctx := context.Background()

	in := model.Expense{
		Date:        "2024-05-20",
		Amount:      -17.25,
		Category:    "Shopping",
		Subcategory: "Returns",
		Note:        "refunded jacket",
	}
	id, err := store.InsertExpense(ctx, in)
	if err != nil {
		t.Fatalf("InsertExpense() error = %v", err)
	}

	got, err := store.ListExpenses(ctx, "2024-05-20", "2024-05-20")
	if err != nil {
		t.Fatalf("ListExpenses() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListExpenses() returned %d rows, want 1", len(got))
	}

	e := got[0]
	if e.ID != id {
		t.Errorf("id = %d, want %d", e.ID, id)
	}
	if e.Date != in.Date || e.Category != in.Category || e.Subcategory != in.Subcategory || e.Note != in.Note {
		t.Errorf("fields not preserved: got %+v, want %+v", e, in)
	}
	if !floatsEqual(e.Amount, in.Amount) {
		t.Errorf("amount = %v, want %v", e.Amount, in.Amount)
	}
}

func TestSQLiteStore_SummarizeExpenses(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		category *string
		want     []model.CategorySummary
	}{
		{
			name:  "january groups food only",
			start: "2024-01-01",
			end:   "2024-01-31",
			want: []model.CategorySummary{
				{Category: "Food", TotalAmount: 5, Count: 2},
			},
		},
		{
			name:  "full range orders categories ascending",
			start: "2024-01-01",
			end:   "2024-12-31",
			want: []model.CategorySummary{
				{Category: "Food", TotalAmount: 5, Count: 2},
				{Category: "Travel", TotalAmount: 20, Count: 1},
			},
		},
		{
			name:     "category filter",
			start:    "2024-01-01",
			end:      "2024-12-31",
			category: ptr("Travel"),
			want: []model.CategorySummary{
				{Category: "Travel", TotalAmount: 20, Count: 1},
			},
		},
		{
			name:     "category filter with no matches",
			start:    "2024-01-01",
			end:      "2024-12-31",
			category: ptr("Housing"),
			want:     []model.CategorySummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStore(t)
			defer cleanup()
			seedExpenses(t, store, januaryScenario())
			ctx := context.Background()

			got, err := store.SummarizeExpenses(ctx, tt.start, tt.end, tt.category)
			if err != nil {
				t.Fatalf("SummarizeExpenses() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SummarizeExpenses() returned %d rows, want %d", len(got), len(tt.want))
			}
			for i, cs := range got {
				if cs.Category != tt.want[i].Category {
					t.Errorf("row %d category = %s, want %s", i, cs.Category, tt.want[i].Category)
				}
				if !floatsEqual(cs.TotalAmount, tt.want[i].TotalAmount) {
					t.Errorf("row %d total = %v, want %v", i, cs.TotalAmount, tt.want[i].TotalAmount)
				}
				if cs.Count != tt.want[i].Count {
					t.Errorf("row %d count = %d, want %d", i, cs.Count, tt.want[i].Count)
				}
			}
		})
	}
}

func TestSQLiteStore_DeleteExpenses(t *testing.T) {
	tests := []struct {
		name        string
		filter      Filter
		wantDeleted int64
		wantLeft    int64
		wantErr     error
	}{
		{
			name:        "by id",
			filter:      Filter{ID: ptr(int64(1))},
			wantDeleted: 1,
			wantLeft:    2,
		},
		{
			name:        "by category",
			filter:      Filter{Category: ptr("Food")},
			wantDeleted: 2,
			wantLeft:    1,
		},
		{
			name:        "by date range",
			filter:      Filter{StartDate: ptr("2024-01-01"), EndDate: ptr("2024-01-31")},
			wantDeleted: 2,
			wantLeft:    1,
		},
		{
			name:        "by exact date",
			filter:      Filter{Date: ptr("2024-02-01")},
			wantDeleted: 1,
			wantLeft:    2,
		},
		{
			name:        "empty subcategory matches default rows",
			filter:      Filter{Subcategory: ptr(""), Category: ptr("Travel")},
			wantDeleted: 1,
			wantLeft:    2,
		},
		{
			name:        "no matching rows deletes nothing",
			filter:      Filter{Category: ptr("Utilities")},
			wantDeleted: 0,
			wantLeft:    3,
		},
		{
			name:     "empty filter refused",
			filter:   Filter{},
			wantErr:  common.ErrNoFilters,
			wantLeft: 3,
		},
		{
			name:     "lone start date refused",
			filter:   Filter{StartDate: ptr("2024-01-01")},
			wantErr:  common.ErrNoFilters,
			wantLeft: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStore(t)
			defer cleanup()
			seedExpenses(t, store, januaryScenario())
			ctx := context.Background()

			deleted, err := store.DeleteExpenses(ctx, tt.filter)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DeleteExpenses() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("DeleteExpenses() error = %v", err)
				}
				if deleted != tt.wantDeleted {
					t.Errorf("DeleteExpenses() = %d, want %d", deleted, tt.wantDeleted)
				}
			}

			left, err := store.CountExpenses(ctx)
			if err != nil {
				t.Fatalf("CountExpenses() error = %v", err)
			}
			if left != tt.wantLeft {
				t.Errorf("CountExpenses() = %d, want %d", left, tt.wantLeft)
			}
		})
	}
}

func TestSQLiteStore_UpdateExpenses(t *testing.T) {
	tests := []struct {
		name        string
		filter      Filter
		changes     Changes
		wantUpdated int64
		wantErr     error
	}{
		{
			name:        "recategorize by filter",
			filter:      Filter{Category: ptr("Food")},
			changes:     Changes{Category: ptr("Dining")},
			wantUpdated: 2,
		},
		{
			name:        "update by id",
			filter:      Filter{ID: ptr(int64(3))},
			changes:     Changes{Amount: ptr(25.0), Note: ptr("train upgrade")},
			wantUpdated: 1,
		},
		{
			name:    "no changes refused before filters",
			filter:  Filter{},
			changes: Changes{},
			wantErr: common.ErrNoUpdateValues,
		},
		{
			name:    "no changes refused even with filters",
			filter:  Filter{Category: ptr("Food")},
			changes: Changes{},
			wantErr: common.ErrNoUpdateValues,
		},
		{
			name:    "no filters refused when changes present",
			filter:  Filter{},
			changes: Changes{Note: ptr("bulk note")},
			wantErr: common.ErrNoFilters,
		},
		{
			name:    "lone end date refused",
			filter:  Filter{EndDate: ptr("2024-01-31")},
			changes: Changes{Note: ptr("bulk note")},
			wantErr: common.ErrNoFilters,
		},
		{
			name:    "malformed new date rejected",
			filter:  Filter{ID: ptr(int64(1))},
			changes: Changes{Date: ptr("January 5")},
			wantErr: ErrInvalidExpense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStore(t)
			defer cleanup()
			seedExpenses(t, store, januaryScenario())
			ctx := context.Background()

			updated, err := store.UpdateExpenses(ctx, tt.filter, tt.changes)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateExpenses() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateExpenses() error = %v", err)
			}
			if updated != tt.wantUpdated {
				t.Errorf("UpdateExpenses() = %d, want %d", updated, tt.wantUpdated)
			}
		})
	}
}

func TestSQLiteStore_UpdateExpensesWritesValues(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	seedExpenses(t, store, januaryScenario())
	ctx := context.Background()

	updated, err := store.UpdateExpenses(ctx,
		Filter{Category: ptr("Food")},
		Changes{Category: ptr("Dining"), Subcategory: ptr("Restaurants")})
	if err != nil {
		t.Fatalf("UpdateExpenses() error = %v", err)
	}
	if updated != 2 {
		t.Fatalf("UpdateExpenses() = %d, want 2", updated)
	}

	rows, err := store.ListExpenses(ctx, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("ListExpenses() error = %v", err)
	}
	for _, e := range rows {
		if e.Category != "Dining" {
			t.Errorf("row %d category = %s, want Dining", e.ID, e.Category)
		}
		if e.Subcategory != "Restaurants" {
			t.Errorf("row %d subcategory = %s, want Restaurants", e.ID, e.Subcategory)
		}
		// Untouched columns keep their values.
		if e.Note != "" {
			t.Errorf("row %d note = %q, want empty", e.ID, e.Note)
		}
	}
}

func TestSQLiteStore_PreviewExpenses(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()
	seedExpenses(t, store, januaryScenario())
	ctx := context.Background()

	filter := Filter{Category: ptr("Food")}

	preview, err := store.PreviewExpenses(ctx, filter)
	if err != nil {
		t.Fatalf("PreviewExpenses() error = %v", err)
	}
	if len(preview) != 2 {
		t.Fatalf("PreviewExpenses() returned %d rows, want 2", len(preview))
	}

	// Preview never mutates.
	count, err := store.CountExpenses(ctx)
	if err != nil {
		t.Fatalf("CountExpenses() error = %v", err)
	}
	if count != 3 {
		t.Fatalf("CountExpenses() = %d, want 3 after preview", count)
	}

	// The real delete touches exactly the previewed rows.
	deleted, err := store.DeleteExpenses(ctx, filter)
	if err != nil {
		t.Fatalf("DeleteExpenses() error = %v", err)
	}
	if deleted != int64(len(preview)) {
		t.Errorf("DeleteExpenses() = %d, want %d (preview size)", deleted, len(preview))
	}

	if _, err := store.PreviewExpenses(ctx, Filter{}); !errors.Is(err, common.ErrNoFilters) {
		t.Errorf("PreviewExpenses(empty) error = %v, want ErrNoFilters", err)
	}
}
