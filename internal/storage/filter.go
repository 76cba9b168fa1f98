package storage

import (
	sq "github.com/Masterminds/squirrel"
)

// builder renders statements with ?-style placeholders for the sqlite driver.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Filter narrows which expense rows a delete, update, or preview targets.
// A nil field contributes no predicate; a pointer to the empty string is a
// real filter value. Predicates AND together.
type Filter struct {
	ID          *int64
	Date        *string
	StartDate   *string
	EndDate     *string
	Category    *string
	Subcategory *string
}

// Empty reports whether the filter contributes no predicates at all.
func (f Filter) Empty() bool {
	return len(f.conditions()) == 0
}

// conditions renders the filter as an ordered predicate list: id, exact date,
// date range, category, subcategory. The range predicate requires both
// bounds; a lone bound contributes nothing.
func (f Filter) conditions() []sq.Sqlizer {
	conds := make([]sq.Sqlizer, 0, 5)
	if f.ID != nil {
		conds = append(conds, sq.Eq{"id": *f.ID})
	}
	if f.Date != nil {
		conds = append(conds, sq.Eq{"date": *f.Date})
	}
	if f.StartDate != nil && f.EndDate != nil {
		conds = append(conds, sq.Expr("date BETWEEN ? AND ?", *f.StartDate, *f.EndDate))
	}
	if f.Category != nil {
		conds = append(conds, sq.Eq{"category": *f.Category})
	}
	if f.Subcategory != nil {
		conds = append(conds, sq.Eq{"subcategory": *f.Subcategory})
	}
	return conds
}

// Changes carries the replacement values for an update. A nil field leaves
// the column untouched; a pointer to the empty string overwrites with "".
type Changes struct {
	Date        *string
	Amount      *float64
	Category    *string
	Subcategory *string
	Note        *string
}

// Empty reports whether no column would be written.
func (c Changes) Empty() bool {
	return c.Date == nil && c.Amount == nil && c.Category == nil &&
		c.Subcategory == nil && c.Note == nil
}

// apply adds one SET clause per present field: date, amount, category,
// subcategory, note.
func (c Changes) apply(b sq.UpdateBuilder) sq.UpdateBuilder {
	if c.Date != nil {
		b = b.Set("date", *c.Date)
	}
	if c.Amount != nil {
		b = b.Set("amount", *c.Amount)
	}
	if c.Category != nil {
		b = b.Set("category", *c.Category)
	}
	if c.Subcategory != nil {
		b = b.Set("subcategory", *c.Subcategory)
	}
	if c.Note != nil {
		b = b.Set("note", *c.Note)
	}
	return b
}
