package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tallyfolk/tally/internal/common"
	"github.com/tallyfolk/tally/internal/model"
)

// expenseColumns is the canonical column order for expense rows.
var expenseColumns = []string{"id", "date", "amount", "category", "subcategory", "note"}

// InsertExpense writes one expense row and returns its assigned id.
func (s *SQLiteStore) InsertExpense(ctx context.Context, e model.Expense) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateExpense(e); err != nil {
		return 0, err
	}

	query, args, err := builder.Insert("expenses").
		Columns("date", "amount", "category", "subcategory", "note").
		Values(e.Date, e.Amount, e.Category, e.Subcategory, e.Note).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// ListExpenses returns every expense whose date falls inclusively within
// [start, end], ordered by id ascending.
func (s *SQLiteStore) ListExpenses(ctx context.Context, start, end string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(start, "start"); err != nil {
		return nil, err
	}
	if err := validateString(end, "end"); err != nil {
		return nil, err
	}

	query, args, err := builder.Select(expenseColumns...).
		From("expenses").
		Where(sq.Expr("date BETWEEN ? AND ?", start, end)).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// SummarizeExpenses aggregates amounts per category over an inclusive date
// range, optionally restricted to a single category, ordered by category
// ascending.
func (s *SQLiteStore) SummarizeExpenses(ctx context.Context, start, end string, category *string) ([]model.CategorySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(start, "start"); err != nil {
		return nil, err
	}
	if err := validateString(end, "end"); err != nil {
		return nil, err
	}

	b := builder.Select("category", "SUM(amount) AS total_amount", "COUNT(*) AS entry_count").
		From("expenses").
		Where(sq.Expr("date BETWEEN ? AND ?", start, end))
	if category != nil {
		b = b.Where(sq.Eq{"category": *category})
	}

	query, args, err := b.GroupBy("category").OrderBy("category ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build summary query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]model.CategorySummary, 0)
	for rows.Next() {
		var cs model.CategorySummary
		if err := rows.Scan(&cs.Category, &cs.TotalAmount, &cs.Count); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, cs)
	}
	return summaries, rows.Err()
}

// PreviewExpenses returns the rows a delete or update with the same filter
// would touch, without mutating anything. The WHERE clause is built from the
// identical predicate list the mutating statements use.
func (s *SQLiteStore) PreviewExpenses(ctx context.Context, f Filter) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	conds := f.conditions()
	if len(conds) == 0 {
		return nil, common.ErrNoFilters
	}

	b := builder.Select(expenseColumns...).From("expenses")
	for _, cond := range conds {
		b = b.Where(cond)
	}

	query, args, err := b.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build preview query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to preview expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// DeleteExpenses removes every row matching the filter and reports how many
// went. An empty filter is refused with common.ErrNoFilters.
func (s *SQLiteStore) DeleteExpenses(ctx context.Context, f Filter) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	conds := f.conditions()
	if len(conds) == 0 {
		return 0, common.ErrNoFilters
	}

	b := builder.Delete("expenses")
	for _, cond := range conds {
		b = b.Where(cond)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expenses: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return n, nil
}

// UpdateExpenses overwrites the columns named in changes on every row
// matching the filter and reports how many rows were touched. Empty changes
// are refused with common.ErrNoUpdateValues before the filter is examined;
// an empty filter is refused with common.ErrNoFilters.
func (s *SQLiteStore) UpdateExpenses(ctx context.Context, f Filter, c Changes) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	if c.Empty() {
		return 0, common.ErrNoUpdateValues
	}
	if c.Date != nil {
		if _, err := model.ParseDate(*c.Date); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidExpense, err)
		}
	}

	conds := f.conditions()
	if len(conds) == 0 {
		return 0, common.ErrNoFilters
	}

	b := c.apply(builder.Update("expenses"))
	for _, cond := range conds {
		b = b.Where(cond)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update expenses: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count updated rows: %w", err)
	}
	return n, nil
}

// CountExpenses reports the total number of rows in the table.
func (s *SQLiteStore) CountExpenses(ctx context.Context) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	query, _, err := builder.Select("COUNT(*)").From("expenses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return n, nil
}

// scanExpenses drains rows into expense values. Subcategory and note default
// to '' in the schema but are nullable, so they scan through NullString.
func scanExpenses(rows *sql.Rows) ([]model.Expense, error) {
	expenses := make([]model.Expense, 0)
	for rows.Next() {
		var (
			e           model.Expense
			subcategory sql.NullString
			note        sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Category, &subcategory, &note); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Subcategory = subcategory.String
		e.Note = note.String
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
