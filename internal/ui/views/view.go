package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokebrowse/internal/domain"
	"pokebrowse/internal/query"
)

// ReadyMarker is printed once data is on screen when running under e2e tests
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Collection      string
	Query           query.State
	Loading         bool
	Empty           bool
	TotalPages      int
	InFlight        int
	InputMode       string // "", "search", "filter" or "sort"
	TextInput       string // rendered text input of the active text mode
	FocusedField    domain.RangeField
	FocusedBound    domain.Bound
	SortOptionIndex int
	Table           string
	HelpLine        string
	ShowReady       bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// ChromeHeight is the number of lines around the table: title, filter bar,
// pager, help and container padding
const ChromeHeight = 13

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	content.WriteString(r.renderFilterBar(state))
	content.WriteString("\n\n")

	// Main content
	switch {
	case state.Loading:
		content.WriteString(r.styles.StatusLoading.Render("Loading..."))
	case state.Empty:
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("No %s match the current filters.", state.Collection)))
	default:
		content.WriteString(state.Table)
	}
	content.WriteString("\n\n")

	if !state.Loading {
		content.WriteString(r.renderPager(state.Query.Page.Index, state.TotalPages))
		content.WriteString("\n")
	}

	// Push the help line to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}

	content.WriteString(r.styles.Help.Render(state.HelpLine))
	if state.ShowReady && !state.Loading {
		content.WriteString(" " + r.styles.Dim.Render(ReadyMarker))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle renders the logo with right-aligned indicators
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("pokebrowse")

	indicators := []string{r.styles.Dim.Render(state.Collection)}
	if state.InFlight > 0 {
		indicators = append(indicators, r.styles.StatusLoading.Render(fmt.Sprintf("↻ Fetching %d", state.InFlight)))
	}
	rightContent := strings.Join(indicators, r.styles.Dim.Render(" | "))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)

	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

// renderFilterBar renders the search box, the three ranges and the sort controls
func (r *Renderer) renderFilterBar(state ViewState) string {
	var b strings.Builder
	f := state.Query.Filter

	// Search
	b.WriteString(r.styles.Label.Render("Search "))
	if state.InputMode == "search" {
		b.WriteString(r.styles.Focused.Render("[") + state.TextInput + r.styles.Focused.Render("]"))
	} else {
		b.WriteString(r.field(f.Search, "name"))
	}
	b.WriteString("\n")

	// Ranges
	ranges := make([]string, 0, len(domain.RangeFields))
	for _, field := range domain.RangeFields {
		rg := f.Range(field)
		bounds := make([]string, 0, 2)
		for _, bound := range []domain.Bound{domain.BoundMin, domain.BoundMax} {
			focused := state.InputMode == "filter" && state.FocusedField == field && state.FocusedBound == bound
			if focused {
				bounds = append(bounds, r.styles.Focused.Render("[")+state.TextInput+r.styles.Focused.Render("]"))
				continue
			}
			bounds = append(bounds, r.field(rg.Get(bound), string(bound)))
		}
		ranges = append(ranges, r.styles.Label.Render(field.Label()+" ")+strings.Join(bounds, "–"))
	}
	b.WriteString(strings.Join(ranges, "   "))
	b.WriteString("\n")

	// Sort
	sort := state.Query.Sort
	var column string
	if state.InputMode == "sort" && state.SortOptionIndex >= 0 && state.SortOptionIndex < len(domain.SortColumns) {
		column = r.styles.Focused.Render("< " + domain.SortColumns[state.SortOptionIndex].Label() + " >")
	} else {
		column = r.styles.Value.Render(sort.Column.Label())
	}
	arrow := "↑"
	if sort.Order == domain.OrderDescending {
		arrow = "↓"
	}
	b.WriteString(r.styles.Label.Render("Sort ") + column + " " + r.styles.Filter.Render(arrow+" "+sort.Order.Label()))

	switch state.InputMode {
	case "sort":
		b.WriteString("  " + r.styles.Dim.Render("↑/↓ change • o order • enter accept • esc cancel"))
	case "filter":
		b.WriteString("  " + r.styles.Dim.Render("tab next • shift+tab prev • enter/esc done"))
	case "search":
		b.WriteString("  " + r.styles.Dim.Render("enter done • esc revert"))
	}

	return b.String()
}

// field renders a bound value or its placeholder
func (r *Renderer) field(value, placeholder string) string {
	if value == "" {
		return r.styles.Placeholder.Render("[" + placeholder + "]")
	}
	return r.styles.Value.Render("[" + value + "]")
}
