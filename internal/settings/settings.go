// Package settings loads the user's checklist configuration: per-category
// enablement and weights for the built-in categories, plus fully custom
// checklist items with their own keyword lists.
//
// The settings file is the canonical source when present; the catalog's
// default weight table is the documented fallback, never a second live source.
package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/compliance"
)

// BuiltinItem is one built-in category's user configuration.
type BuiltinItem struct {
	Enabled  bool     `json:"enabled"`
	Weight   int      `json:"weight"`
	Label    string   `json:"label,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Group    string   `json:"category,omitempty"`
}

// CustomItem is a user-defined checklist item matched by its keyword list.
type CustomItem struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
	Enabled  bool     `json:"enabled"`
	Weight   int      `json:"weight"`
}

// Settings is the full user checklist configuration.
type Settings struct {
	BuiltinItems map[compliance.Category]BuiltinItem `json:"builtinItems"`
	CustomItems  []CustomItem                        `json:"customItems"`
}

// Default returns settings mirroring the catalog's built-in weight table,
// with no custom items.
func Default(c *catalog.Catalog) Settings {
	items := map[compliance.Category]BuiltinItem{}
	for cat, w := range c.DefaultWeights() {
		items[cat] = BuiltinItem{
			Enabled: w.Enabled,
			Weight:  w.Weight,
			Label:   c.Label(cat),
		}
	}

	return Settings{BuiltinItems: items}
}

// Load reads and validates a settings file against the catalog's built-in
// category set.
func Load(c *catalog.Catalog, path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file: %w", err)
	}

	if err := s.Validate(c); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks id uniqueness and weight signs. Custom ids must not collide
// with any built-in category, listed in the settings or not: a partial
// settings file still covers the full catalog through the default fallback.
func (s Settings) Validate(c *catalog.Catalog) error {
	for cat, item := range s.BuiltinItems {
		if item.Weight < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeWeight, cat)
		}
	}

	seen := map[string]bool{}
	for _, cat := range c.Categories() {
		seen[string(cat)] = true
	}

	for cat := range s.BuiltinItems {
		seen[string(cat)] = true
	}

	for _, item := range s.CustomItems {
		if item.ID == "" {
			return ErrMissingID
		}

		if seen[item.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, item.ID)
		}

		seen[item.ID] = true

		if item.Weight < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeWeight, item.ID)
		}
	}

	return nil
}

// Weights converts the settings into the scorer's weight table. Built-in
// categories absent from the settings keep their catalog defaults, so a
// partially migrated settings file never silently drops categories. Custom
// items are keyed by their id.
func (s Settings) Weights(c *catalog.Catalog) compliance.Weights {
	weights := c.DefaultWeights()

	for cat, item := range s.BuiltinItems {
		weights[cat] = compliance.Weight{Enabled: item.Enabled, Weight: item.Weight}
	}

	for _, item := range s.CustomItems {
		weights[compliance.Category(item.ID)] = compliance.Weight{Enabled: item.Enabled, Weight: item.Weight}
	}

	return weights
}

// CustomKeywords returns the keyword lists of enabled custom items, keyed by
// their category id, for registration with the link matcher.
func (s Settings) CustomKeywords() map[compliance.Category][]string {
	if len(s.CustomItems) == 0 {
		return nil
	}

	out := map[compliance.Category][]string{}

	for _, item := range s.CustomItems {
		if !item.Enabled || len(item.Keywords) == 0 {
			continue
		}

		out[compliance.Category(item.ID)] = item.Keywords
	}

	return out
}

// CustomCategories returns the ids of enabled custom items.
func (s Settings) CustomCategories() []compliance.Category {
	var cats []compliance.Category

	for _, item := range s.CustomItems {
		if item.Enabled {
			cats = append(cats, compliance.Category(item.ID))
		}
	}

	return cats
}
