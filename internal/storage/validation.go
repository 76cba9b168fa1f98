package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tallyfolk/tally/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidExpense = errors.New("invalid expense")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not blank.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateExpense checks the column constraints before a row is written.
func validateExpense(e model.Expense) error {
	if e.Date == "" {
		return fmt.Errorf("%w: missing date", ErrInvalidExpense)
	}
	if _, err := model.ParseDate(e.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExpense, err)
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidExpense)
	}
	return nil
}
