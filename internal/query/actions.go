package query

import "pokebrowse/internal/domain"

// Action is a single state transition request
type Action interface {
	Type() string
}

// SetSearchText overwrites the search text
type SetSearchText struct {
	Text string
}

func (a SetSearchText) Type() string { return "set_search_text" }

// SetRangeBound overwrites one bound of one numeric range
type SetRangeBound struct {
	Field domain.RangeField
	Bound domain.Bound
	Value string
}

func (a SetRangeBound) Type() string { return "set_range_bound" }

// SetSortColumn overwrites the active sort column
type SetSortColumn struct {
	Column domain.SortColumn
}

func (a SetSortColumn) Type() string { return "set_sort_column" }

// SetSortOrder overwrites the sort direction
type SetSortOrder struct {
	Order domain.SortOrder
}

func (a SetSortOrder) Type() string { return "set_sort_order" }

// SetSort overwrites column and direction in one transition
type SetSort struct {
	Sort Sort
}

func (a SetSort) Type() string { return "set_sort" }

// SetPageIndex overwrites the zero-based page index
type SetPageIndex struct {
	Index int
}

func (a SetPageIndex) Type() string { return "set_page_index" }

// Reduce applies an action to a state and returns the new state. Every
// action is a plain overwrite of its field: nothing is rejected, clamped or
// derived, and in particular filter and sort changes keep the page index.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetSearchText:
		s.Filter.Search = a.Text
	case SetRangeBound:
		r := s.Filter.rangeRef(a.Field)
		if r == nil {
			return s
		}
		if a.Bound == domain.BoundMax {
			r.Max = a.Value
		} else {
			r.Min = a.Value
		}
	case SetSortColumn:
		s.Sort.Column = a.Column
	case SetSortOrder:
		s.Sort.Order = a.Order
	case SetSort:
		s.Sort = a.Sort
	case SetPageIndex:
		s.Page.Index = a.Index
	}
	return s
}

// ToggleSortOrder returns the action flipping the current order
func ToggleSortOrder(s State) Action {
	return SetSortOrder{Order: s.Sort.Order.Toggled()}
}

// CycleSortColumn returns the action selecting the column delta steps away
// from the current one, wrapping around the column list
func CycleSortColumn(s State, delta int) SetSortColumn {
	idx := 0
	for i, col := range domain.SortColumns {
		if col == s.Sort.Column {
			idx = i
			break
		}
	}
	n := len(domain.SortColumns)
	idx = ((idx+delta)%n + n) % n
	return SetSortColumn{Column: domain.SortColumns[idx]}
}

// StepPage returns the action moving the page index by delta, never below 0.
// The store itself does not clamp; this only keeps key navigation sane.
func StepPage(s State, delta int) Action {
	idx := s.Page.Index + delta
	if idx < 0 {
		idx = 0
	}
	return SetPageIndex{Index: idx}
}
