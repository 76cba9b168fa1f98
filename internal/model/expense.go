// Package model defines the domain types for expense tracking.
package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for expense dates.
const DateLayout = "2006-01-02"

// Expense is a single spend or credit entry. The sign of Amount carries the
// distinction: positive for a spend, negative for a credit.
type Expense struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Note        string  `json:"note"`
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
}

// CategorySummary is one row of a per-category aggregate over a date range.
type CategorySummary struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
	Count       int64   `json:"count"`
}

// ParseDate parses s as a calendar date in DateLayout form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}
