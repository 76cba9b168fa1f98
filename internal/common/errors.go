// Package common provides shared errors and logging setup used across the application.
package common

import "errors"

// Sentinel errors recognized at operation boundaries.
var (
	// ErrNoFilters is returned when a delete or update would run with an
	// empty WHERE clause. Refusing it is a safety invariant, not a nicety.
	ErrNoFilters = errors.New("no filters provided")

	// ErrNoUpdateValues is returned when an update carries no new field values.
	ErrNoUpdateValues = errors.New("no update values provided")

	// ErrMalformedCategories is returned when the categories resource exists
	// but cannot be parsed.
	ErrMalformedCategories = errors.New("malformed categories resource")
)
