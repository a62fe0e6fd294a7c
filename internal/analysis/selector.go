package analysis

import (
	"sportstat/domain/core"
	"sportstat/domain/dataset"
	"sportstat/domain/sport"
)

// SelectColumns returns the numeric columns of ds that belong to the
// category's attribute list, in dataset column order.
//
// An empty selection is returned together with an error wrapping
// core.ErrNoApplicableColumns; callers should surface it as a warning.
func SelectColumns(ds *dataset.Dataset, category sport.Category) ([]string, error) {
	if !category.IsValid() {
		return []string{}, core.NewUnsupportedCategoryError(string(category))
	}
	if ds == nil {
		return []string{}, core.ErrNoDatasetLoaded
	}

	selected := []string{}
	for _, name := range ds.NumericColumns() {
		if category.HasAttribute(name) {
			selected = append(selected, name)
		}
	}

	if len(selected) == 0 {
		return selected, core.NewNoApplicableColumnsError(category.String())
	}
	return selected, nil
}
