package domain

// SortColumn is a sortable attribute of the collection
type SortColumn string

const (
	SortByName           SortColumn = "name"
	SortByBaseExperience SortColumn = "base_experience"
	SortByHeight         SortColumn = "height"
	SortByWeight         SortColumn = "weight"
)

// SortColumns lists the sortable columns in display order
var SortColumns = []SortColumn{SortByName, SortByBaseExperience, SortByHeight, SortByWeight}

// Label returns the human-readable column title
func (c SortColumn) Label() string {
	switch c {
	case SortByName:
		return "Name"
	case SortByBaseExperience:
		return "Base Experience"
	case SortByHeight:
		return "Height"
	case SortByWeight:
		return "Weight"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known sort columns
func (c SortColumn) Valid() bool {
	for _, col := range SortColumns {
		if col == c {
			return true
		}
	}
	return false
}

// SortOrder is the direction of the active sort
type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

// Label returns the human-readable order name
func (o SortOrder) Label() string {
	if o == OrderDescending {
		return "Descending"
	}
	return "Ascending"
}

// Toggled returns the opposite order
func (o SortOrder) Toggled() SortOrder {
	if o == OrderDescending {
		return OrderAscending
	}
	return OrderDescending
}

// Valid reports whether o is asc or desc
func (o SortOrder) Valid() bool {
	return o == OrderAscending || o == OrderDescending
}

// RangeField is a numeric attribute that can be bounded by a filter
type RangeField string

const (
	FieldBaseExperience RangeField = "base_experience"
	FieldHeight         RangeField = "height"
	FieldWeight         RangeField = "weight"
)

// RangeFields lists the filterable numeric attributes in display order
var RangeFields = []RangeField{FieldBaseExperience, FieldHeight, FieldWeight}

// Label returns the human-readable field name
func (f RangeField) Label() string {
	switch f {
	case FieldBaseExperience:
		return "Base Experience"
	case FieldHeight:
		return "Height"
	case FieldWeight:
		return "Weight"
	default:
		return string(f)
	}
}

// Bound selects the lower or upper end of a range
type Bound string

const (
	BoundMin Bound = "min"
	BoundMax Bound = "max"
)

// ParamName returns the wire name of a range bound, e.g. height_min
func ParamName(f RangeField, b Bound) string {
	return string(f) + "_" + string(b)
}
