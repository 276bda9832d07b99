package input

import "pokebrowse/internal/query"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State query.State
	Pages int
	Row   int
	Rows  int
}

// QueryState returns the current query selections
func (c *ModelContext) QueryState() query.State {
	return c.State
}

// TotalPages returns the page count of the last applied result
func (c *ModelContext) TotalPages() int {
	return c.Pages
}

// CurrentRow returns the highlighted table row
func (c *ModelContext) CurrentRow() int {
	return c.Row
}

// RowCount returns the number of rows on the current page
func (c *ModelContext) RowCount() int {
	return c.Rows
}
