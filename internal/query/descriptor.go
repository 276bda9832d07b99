package query

import (
	"net/url"
	"strconv"
	"strings"

	"pokebrowse/internal/domain"
)

// WirePageOffset converts the zero-based page index to the one-based page
// number the collection endpoint expects
const WirePageOffset = 1

// Param is a single query parameter
type Param struct {
	Key   string
	Value string
}

// Descriptor is the request-ready form of a State. It is comparable, so two
// descriptors built from equal inputs are ==.
type Descriptor struct {
	Page              int
	Search            string
	BaseExperienceMin string
	BaseExperienceMax string
	HeightMin         string
	HeightMax         string
	WeightMin         string
	WeightMax         string
	Sort              domain.SortColumn
	Order             domain.SortOrder
}

// Combine derives the descriptor from the filter, sort and page selections
func Combine(f Filter, s Sort, p Page) Descriptor {
	return Descriptor{
		Page:              p.Index + WirePageOffset,
		Search:            f.Search,
		BaseExperienceMin: f.BaseExperience.Min,
		BaseExperienceMax: f.BaseExperience.Max,
		HeightMin:         f.Height.Min,
		HeightMax:         f.Height.Max,
		WeightMin:         f.Weight.Min,
		WeightMax:         f.Weight.Max,
		Sort:              s.Column,
		Order:             s.Order,
	}
}

// DescriptorOf is Combine over a whole State
func DescriptorOf(s State) Descriptor {
	return Combine(s.Filter, s.Sort, s.Page)
}

// Params returns the parameters in wire order. Empty filter values are kept.
func (d Descriptor) Params() []Param {
	return []Param{
		{"page", strconv.Itoa(d.Page)},
		{"search", d.Search},
		{domain.ParamName(domain.FieldBaseExperience, domain.BoundMin), d.BaseExperienceMin},
		{domain.ParamName(domain.FieldBaseExperience, domain.BoundMax), d.BaseExperienceMax},
		{domain.ParamName(domain.FieldHeight, domain.BoundMin), d.HeightMin},
		{domain.ParamName(domain.FieldHeight, domain.BoundMax), d.HeightMax},
		{domain.ParamName(domain.FieldWeight, domain.BoundMin), d.WeightMin},
		{domain.ParamName(domain.FieldWeight, domain.BoundMax), d.WeightMax},
		{"sort", string(d.Sort)},
		{"order", string(d.Order)},
	}
}

// Encode renders the query string in wire order. url.Values.Encode sorts
// keys, so the order is built by hand.
func (d Descriptor) Encode() string {
	var b strings.Builder
	for i, p := range d.Params() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
