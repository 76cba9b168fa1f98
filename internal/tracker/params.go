package tracker

import "github.com/tallyfolk/tally/internal/storage"

// AddParams carries the arguments shared by the add_expense and
// credit_expense tools.
type AddParams struct {
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Note        string   `json:"note"`
	Amount      *float64 `json:"amount"`
}

// RangeParams carries the inclusive date range for list_expenses.
type RangeParams struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SummarizeParams carries the date range and optional category filter
// for summarize. An empty category means no category restriction.
type SummarizeParams struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Category  string `json:"category"`
}

// DeleteParams names the filters accepted by delete_expenses. A nil
// field does not filter; a pointer to the empty string does.
type DeleteParams struct {
	ID          *int64  `json:"expense_id"`
	Date        *string `json:"date"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	DryRun      bool    `json:"dry_run"`
}

func (p DeleteParams) filter() storage.Filter {
	return storage.Filter{
		ID:          p.ID,
		Date:        p.Date,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Category:    p.Category,
		Subcategory: p.Subcategory,
	}
}

// UpdateParams names the filters and replacement values accepted by
// update_expenses. Filter fields carry a filter_ prefix on the wire so
// they cannot be confused with the new_ values they sit next to.
type UpdateParams struct {
	ID                *int64   `json:"expense_id"`
	FilterDate        *string  `json:"filter_date"`
	StartDate         *string  `json:"start_date"`
	EndDate           *string  `json:"end_date"`
	FilterCategory    *string  `json:"filter_category"`
	FilterSubcategory *string  `json:"filter_subcategory"`
	NewDate           *string  `json:"new_date"`
	NewAmount         *float64 `json:"new_amount"`
	NewCategory       *string  `json:"new_category"`
	NewSubcategory    *string  `json:"new_subcategory"`
	NewNote           *string  `json:"new_note"`
	DryRun            bool     `json:"dry_run"`
}

func (p UpdateParams) filter() storage.Filter {
	return storage.Filter{
		ID:          p.ID,
		Date:        p.FilterDate,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Category:    p.FilterCategory,
		Subcategory: p.FilterSubcategory,
	}
}

func (p UpdateParams) changes() storage.Changes {
	return storage.Changes{
		Date:        p.NewDate,
		Amount:      p.NewAmount,
		Category:    p.NewCategory,
		Subcategory: p.NewSubcategory,
		Note:        p.NewNote,
	}
}
