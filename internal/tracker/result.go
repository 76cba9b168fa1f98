package tracker

import "github.com/tallyfolk/tally/internal/model"

// Status values carried by every tool envelope.
const (
	StatusOK     = "ok"
	StatusError  = "error"
	StatusDryRun = "dry_run"
)

// Declined-operation messages. The wording is part of the tool contract
// and clients match on it.
const (
	MsgNoDeleteFilters = "No filters provided. Refusing to delete all records."
	MsgNoUpdateFilters = "No filters provided. Refusing to update all records."
	MsgNoUpdateValues  = "No new values provided to update."
)

// Result is the uniform envelope every tool returns. Payload fields are
// pointers so that an absent field and a zero-valued field serialize
// differently; Rows in particular must render as an empty array, not
// disappear, when a dry run matches nothing.
type Result struct {
	Status   string                   `json:"status"`
	Message  string                   `json:"message,omitempty"`
	ID       *int64                   `json:"id,omitempty"`
	Credited *float64                 `json:"credited,omitempty"`
	Deleted  *int64                   `json:"deleted,omitempty"`
	Updated  *int64                   `json:"updated,omitempty"`
	Rows     *[]model.Expense         `json:"rows,omitempty"`
	Summary  *[]model.CategorySummary `json:"summary,omitempty"`
}

func errResult(message string) Result {
	return Result{Status: StatusError, Message: message}
}

func dryRunResult(rows []model.Expense) Result {
	return Result{Status: StatusDryRun, Rows: &rows}
}
