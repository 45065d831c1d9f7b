package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ─── Safety tiers ────────────────────────────────────────────────────────────

// SafetyTier classifies how risky it is to delete a category's data.
type SafetyTier int

const (
	// SafetySafe data is rebuilt automatically by the tools that created it.
	SafetySafe SafetyTier = iota
	// SafetyCaution data may be wanted later (e.g. old build archives).
	SafetyCaution
	// SafetyAdvanced data should only be removed by users who know what it is.
	SafetyAdvanced
)

// String returns the display label for the tier.
func (t SafetyTier) String() string {
	switch t {
	case SafetySafe:
		return "Safe"
	case SafetyCaution:
		return "Caution"
	case SafetyAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// ─── Path templates ──────────────────────────────────────────────────────────

// Template describes one cleanable root as data rather than a preformatted
// string. Home prefixes the path with the invoking user's home directory.
// A non-empty Children pattern expands one level of matching entries under
// the path (e.g. per-iOS-version device support folders) instead of the
// path itself.
type Template struct {
	Home     bool
	Path     string
	Children string
}

// Key returns a canonical string for the template, used for disjointness
// validation and debug logging.
func (t Template) Key() string {
	p := filepath.Clean(t.Path)
	if t.Home {
		p = "~/" + p
	}
	if t.Children != "" {
		p = filepath.Join(p, t.Children)
	}
	return p
}

// ─── Categories ──────────────────────────────────────────────────────────────

// Category is one cleanable group of cache paths. Categories are defined
// once at startup and never mutated.
type Category struct {
	// ID is the stable identifier used by selection and reporting.
	ID string

	// Name and Description are human-readable.
	Name        string
	Description string

	// TypicalSize is a display hint like "5-50GB"; never used for math.
	TypicalSize string

	// Safety classifies deletion risk.
	Safety SafetyTier

	// DefaultSelected marks the category pre-checked in the selection UI.
	DefaultSelected bool

	// Templates are the roots this category may clean. No template may be
	// shared with another category.
	Templates []Template
}

// ErrNotFound is returned by Find for an unknown category id.
var ErrNotFound = errors.New("category not found")

// Catalog is the fixed, ordered registry of categories.
type Catalog struct {
	categories []Category
	byID       map[string]int
}

// New builds a catalog and validates that category ids are unique and that
// template keys are pairwise disjoint across all categories, so no path can
// be claimed (and counted or deleted) twice.
func New(categories []Category) (*Catalog, error) {
	byID := make(map[string]int, len(categories))
	templates := make(map[string]string)

	for i, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category %q has an empty id", cat.Name)
		}
		if _, dup := byID[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		byID[cat.ID] = i

		for _, tpl := range cat.Templates {
			key := tpl.Key()
			if owner, claimed := templates[key]; claimed {
				return nil, fmt.Errorf("template %q claimed by both %q and %q", key, owner, cat.ID)
			}
			templates[key] = cat.ID
		}
	}

	return &Catalog{categories: categories, byID: byID}, nil
}

// Default returns the built-in Xcode cleanup catalog.
func Default() *Catalog {
	c, err := New(defaultCategories())
	if err != nil {
		// The built-in catalog is static; an invalid one is a programming error.
		panic(err)
	}
	return c
}

// All returns the categories in display order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Find returns the category with the given id.
func (c *Catalog) Find(id string) (Category, error) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.categories[i], nil
}

// Without returns a catalog with the given category ids removed, preserving
// order. Unknown ids are ignored.
func (c *Catalog) Without(ids ...string) *Catalog {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	var kept []Category
	for _, cat := range c.categories {
		if !drop[cat.ID] {
			kept = append(kept, cat)
		}
	}

	out, err := New(kept)
	if err != nil {
		// Removing categories cannot introduce duplicates.
		panic(err)
	}
	return out
}
