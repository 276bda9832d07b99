// Package query holds the browser's filter, sort and page selections and
// derives the request descriptor the fetch coordinator consumes.
package query

import "pokebrowse/internal/domain"

// Range is a pair of raw bound inputs. Empty means unbounded; the text is
// forwarded untouched, min <= max is not checked.
type Range struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// Get returns the value of one bound
func (r Range) Get(b domain.Bound) string {
	if b == domain.BoundMax {
		return r.Max
	}
	return r.Min
}

// Filter is the combined filter criteria
type Filter struct {
	Search         string `json:"search"`
	BaseExperience Range  `json:"base_experience"`
	Height         Range  `json:"height"`
	Weight         Range  `json:"weight"`
}

// Range returns the range for a field
func (f Filter) Range(field domain.RangeField) Range {
	switch field {
	case domain.FieldBaseExperience:
		return f.BaseExperience
	case domain.FieldHeight:
		return f.Height
	case domain.FieldWeight:
		return f.Weight
	default:
		return Range{}
	}
}

// rangeRef returns a pointer to the range for a field, nil for unknown fields
func (f *Filter) rangeRef(field domain.RangeField) *Range {
	switch field {
	case domain.FieldBaseExperience:
		return &f.BaseExperience
	case domain.FieldHeight:
		return &f.Height
	case domain.FieldWeight:
		return &f.Weight
	default:
		return nil
	}
}

// Sort is the single active sort column and its direction
type Sort struct {
	Column domain.SortColumn `json:"column"`
	Order  domain.SortOrder  `json:"order"`
}

// Page is the client-owned page selection. The total page count is server
// derived and lives in the fetch view model, not here.
type Page struct {
	Index int `json:"index"` // zero-based
}

// State is the whole query state owned by the browser controller
type State struct {
	Filter Filter `json:"filter"`
	Sort   Sort   `json:"sort"`
	Page   Page   `json:"page"`
}

// DefaultState returns the state the browser mounts with
func DefaultState() State {
	return State{
		Sort: Sort{
			Column: domain.SortByName,
			Order:  domain.OrderAscending,
		},
	}
}
