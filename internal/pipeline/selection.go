package pipeline

import "exportador/internal"

type ColumnOption struct {
	Include bool
	Label   string
}

// Selection is the insertion-ordered set of optional attribute columns, each
// with an include flag and an editable label. Iteration order is the order
// columns were added, which is the order the dataset presented them.
type Selection struct {
	order []string
	opts  map[string]ColumnOption
}

func NewSelection() *Selection {
	return &Selection{opts: map[string]ColumnOption{}}
}

func (s *Selection) Set(column string, opt ColumnOption) {
	if _, ok := s.opts[column]; !ok {
		s.order = append(s.order, column)
	}
	s.opts[column] = opt
}

func (s *Selection) Get(column string) (ColumnOption, bool) {
	opt, ok := s.opts[column]
	return opt, ok
}

func (s *Selection) Columns() []string {
	return s.order
}

func (s *Selection) Len() int {
	return len(s.order)
}

// SelectionFor builds the default selection for a dataset: every column that
// is neither the base column nor part of the mandatory prefix, unchecked,
// labeled by DefaultLabel.
func SelectionFor(ds *internal.Dataset, f Format) *Selection {
	sel := NewSelection()
	for _, col := range ds.Columns {
		if f.fixed(col) {
			continue
		}
		sel.Set(col, ColumnOption{Label: DefaultLabel(col)})
	}
	return sel
}

// MergeSelection carries include flags and labels from a previous selection
// over to one built for a reloaded dataset. Matching is by column name, so
// choices survive reloads as long as the column recurs.
func MergeSelection(prev, next *Selection) *Selection {
	if prev == nil {
		return next
	}
	for _, col := range next.Columns() {
		if old, ok := prev.Get(col); ok {
			next.Set(col, old)
		}
	}
	return next
}
