package catalog

import (
	"math"
	"strings"

	"pokebrowse/internal/domain"
)

const (
	// DefaultPerPage is the page size used when none is requested
	DefaultPerPage = 10
	// MaxPerPage caps the page size a client can ask for
	MaxPerPage = 100
)

// Bounds is an inclusive range; nil ends are open
type Bounds struct {
	Min *int
	Max *int
}

// ListParams selects one page of the collection
type ListParams struct {
	Page           int
	PerPage        int
	Search         string
	BaseExperience Bounds
	Height         Bounds
	Weight         Bounds
	Sort           domain.SortColumn
	Order          domain.SortOrder
}

// ListResult is one page plus the paging and sorting actually applied
type ListResult struct {
	Items      []domain.Pokemon
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	Sort       domain.SortColumn
	Order      domain.SortOrder
}

// Range returns the bounds for a numeric field
func (p ListParams) Range(field domain.RangeField) Bounds {
	switch field {
	case domain.FieldBaseExperience:
		return p.BaseExperience
	case domain.FieldHeight:
		return p.Height
	case domain.FieldWeight:
		return p.Weight
	default:
		return Bounds{}
	}
}

// SetRange replaces the bounds for a numeric field
func (p *ListParams) SetRange(field domain.RangeField, b Bounds) {
	switch field {
	case domain.FieldBaseExperience:
		p.BaseExperience = b
	case domain.FieldHeight:
		p.Height = b
	case domain.FieldWeight:
		p.Weight = b
	}
}

// Offset is the number of rows skipped before the page
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// normalized applies defaults and falls back on unknown sort settings
func (p ListParams) normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	// Keep the offset representable
	if maxPage := math.MaxInt / p.PerPage; p.Page > maxPage {
		p.Page = maxPage
	}
	p.Search = strings.TrimSpace(p.Search)
	if !p.Sort.Valid() {
		p.Sort = domain.SortByName
	}
	p.Order = domain.SortOrder(strings.ToLower(string(p.Order)))
	if !p.Order.Valid() {
		p.Order = domain.OrderAscending
	}
	return p
}

// where builds the filter clause. Column names come from domain.RangeFields
// only; every value is a bind argument.
func (p ListParams) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if p.Search != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(p.Search)+"%")
	}
	for _, field := range domain.RangeFields {
		b := p.Range(field)
		if b.Min != nil {
			conds = append(conds, string(field)+" >= ?")
			args = append(args, *b.Min)
		}
		if b.Max != nil {
			conds = append(conds, string(field)+" <= ?")
			args = append(args, *b.Max)
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// TotalPages is ceil(total/perPage)
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
