// Package tracker implements the six expense operations behind the
// tool surface: add, credit, list, summarize, delete, and update.
// Every operation folds its outcome, failures included, into a Result
// envelope; nothing escapes as a transport fault.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/tallyfolk/tally/internal/common"
	"github.com/tallyfolk/tally/internal/model"
	"github.com/tallyfolk/tally/internal/storage"
)

// Store is the persistence surface the operations need.
type Store interface {
	InsertExpense(ctx context.Context, expense model.Expense) (int64, error)
	ListExpenses(ctx context.Context, startDate, endDate string) ([]model.Expense, error)
	SummarizeExpenses(ctx context.Context, startDate, endDate string, category *string) ([]model.CategorySummary, error)
	PreviewExpenses(ctx context.Context, filter storage.Filter) ([]model.Expense, error)
	DeleteExpenses(ctx context.Context, filter storage.Filter) (int64, error)
	UpdateExpenses(ctx context.Context, filter storage.Filter, changes storage.Changes) (int64, error)
}

// Service orchestrates the expense operations over a Store.
type Service struct {
	store Store
}

// New creates a new operation service backed by the given store.
func New(store Store) *Service {
	return &Service{store: store}
}

// Add records one expense with the amount exactly as submitted.
func (s *Service) Add(ctx context.Context, p AddParams) Result {
	if p.Amount == nil {
		return errResult("amount is required")
	}

	id, err := s.store.InsertExpense(ctx, model.Expense{
		Date:        p.Date,
		Amount:      *p.Amount,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Note:        p.Note,
	})
	if err != nil {
		return errResult(err.Error())
	}

	slog.Info("Recorded expense", "id", id, "category", p.Category, "amount", *p.Amount)
	return Result{Status: StatusOK, ID: &id}
}

// Credit records a refund or income offset. The stored amount is always
// negative regardless of the sign the caller submitted.
func (s *Service) Credit(ctx context.Context, p AddParams) Result {
	if p.Amount == nil {
		return errResult("amount is required")
	}

	credited := -math.Abs(*p.Amount)
	id, err := s.store.InsertExpense(ctx, model.Expense{
		Date:        p.Date,
		Amount:      credited,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Note:        p.Note,
	})
	if err != nil {
		return errResult(err.Error())
	}

	slog.Info("Recorded credit", "id", id, "category", p.Category, "amount", credited)
	return Result{Status: StatusOK, ID: &id, Credited: &credited}
}

// List returns every record dated inside the inclusive range, ordered
// by id ascending.
func (s *Service) List(ctx context.Context, p RangeParams) Result {
	rows, err := s.store.ListExpenses(ctx, p.StartDate, p.EndDate)
	if err != nil {
		return errResult(err.Error())
	}
	return Result{Status: StatusOK, Rows: &rows}
}

// Summarize returns per-category totals over the inclusive range,
// ordered by category name. An empty category means no restriction,
// matching how callers omit the field entirely.
func (s *Service) Summarize(ctx context.Context, p SummarizeParams) Result {
	var category *string
	if p.Category != "" {
		category = &p.Category
	}

	summary, err := s.store.SummarizeExpenses(ctx, p.StartDate, p.EndDate, category)
	if err != nil {
		return errResult(err.Error())
	}
	return Result{Status: StatusOK, Summary: &summary}
}

// Delete removes every record matching the filters, or previews the
// match set when dry run is requested. A call with no filters at all is
// declined rather than allowed to clear the table.
func (s *Service) Delete(ctx context.Context, p DeleteParams) Result {
	f := p.filter()

	if p.DryRun {
		rows, err := s.store.PreviewExpenses(ctx, f)
		if err != nil {
			if errors.Is(err, common.ErrNoFilters) {
				return errResult(MsgNoDeleteFilters)
			}
			return errResult(err.Error())
		}
		return dryRunResult(rows)
	}

	deleted, err := s.store.DeleteExpenses(ctx, f)
	if err != nil {
		if errors.Is(err, common.ErrNoFilters) {
			return errResult(MsgNoDeleteFilters)
		}
		return errResult(err.Error())
	}

	slog.Info("Deleted expenses", "count", deleted)
	return Result{Status: StatusOK, Deleted: &deleted}
}

// Update rewrites the selected fields of every record matching the
// filters, or previews the match set when dry run is requested. The
// empty-changes check runs before the empty-filters check, so a call
// missing both is told about the missing values first.
func (s *Service) Update(ctx context.Context, p UpdateParams) Result {
	c := p.changes()
	if c.Empty() {
		return errResult(MsgNoUpdateValues)
	}
	f := p.filter()

	if p.DryRun {
		rows, err := s.store.PreviewExpenses(ctx, f)
		if err != nil {
			if errors.Is(err, common.ErrNoFilters) {
				return errResult(MsgNoUpdateFilters)
			}
			return errResult(err.Error())
		}
		return dryRunResult(rows)
	}

	updated, err := s.store.UpdateExpenses(ctx, f, c)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoUpdateValues):
			return errResult(MsgNoUpdateValues)
		case errors.Is(err, common.ErrNoFilters):
			return errResult(MsgNoUpdateFilters)
		}
		return errResult(err.Error())
	}

	slog.Info("Updated expenses", "count", updated)
	return Result{Status: StatusOK, Updated: &updated}
}
