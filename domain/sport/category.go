// Package sport holds the fixed sport categories and the attributes that are
// meaningful to analyze for each of them.
package sport

import (
	"strings"

	"sportstat/domain/core"
)

// Category is one of the supported sport categories
type Category string

const (
	Football   Category = "Football"
	Basketball Category = "Basketball"
)

// attributes maps each category to its ordered list of meaningful attributes.
// Not user-configurable.
var attributes = map[Category][]string{
	Football:   {"xG", "Gls", "Sh", "Cmp%", "KP", "xA"},
	Basketball: {"PTS", "AST", "TRB", "FG%", "3P%", "FT%", "MP", "TOV", "BLK", "STL"},
}

// aliases accepts the labels used by earlier front-ends as well
var aliases = map[string]Category{
	"football":   Football,
	"futbol":     Football,
	"soccer":     Football,
	"basketball": Basketball,
	"basketbol":  Basketball,
}

// All returns every category in display order
func All() []Category {
	return []Category{Football, Basketball}
}

// String returns the display label
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a key of the fixed attribute map
func (c Category) IsValid() bool {
	_, ok := attributes[c]
	return ok
}

// Attributes returns a copy of the ordered attribute list, or nil for an
// unknown category.
func (c Category) Attributes() []string {
	attrs, ok := attributes[c]
	if !ok {
		return nil
	}
	out := make([]string, len(attrs))
	copy(out, attrs)
	return out
}

// HasAttribute reports whether name belongs to the category's attribute list
func (c Category) HasAttribute(name string) bool {
	for _, attr := range attributes[c] {
		if attr == name {
			return true
		}
	}
	return false
}

// Parse resolves a user-supplied label into a Category
func Parse(label string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	return "", core.NewUnsupportedCategoryError(label)
}
