// Package categories serves the category list offered to clients when
// they record expenses.
package categories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tallyfolk/tally/internal/common"
)

// DefaultCategories is the built-in list served when no categories file
// exists. Order is part of the contract.
var DefaultCategories = []string{
	"Food & Dining",
	"Groceries",
	"Transport",
	"Housing",
	"Utilities",
	"Health",
	"Entertainment",
	"Travel",
	"Shopping",
	"Other",
}

// document is the on-disk shape of the categories resource.
type document struct {
	Categories []string `json:"categories"`
}

// Provider reads the category list from a JSON file, falling back to
// DefaultCategories when the file does not exist. The file is read
// fresh on every call so edits apply without a restart.
type Provider struct {
	path string
}

// NewProvider creates a provider reading from the given path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Load returns the current category list. A missing file is not an
// error; a present but malformed file is.
func (p *Provider) Load() ([]string, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		out := make([]string, len(DefaultCategories))
		copy(out, DefaultCategories)
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedCategories, err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories listed", common.ErrMalformedCategories)
	}

	return doc.Categories, nil
}
