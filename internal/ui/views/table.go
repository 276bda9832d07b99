package views

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"pokebrowse/internal/domain"
)

// NoImage is shown in the image column when an entity has no picture
const NoImage = "no image"

const detailLabelWidth = 16

// Columns returns the table columns sized for the given terminal width
func Columns(width int) []table.Column {
	const (
		nameWidth   = 16
		metricWidth = 15
		minImage    = 12
	)
	// Main padding plus the cell padding of five columns
	imageWidth := width - 4 - 10 - nameWidth - 3*metricWidth
	if imageWidth < minImage {
		imageWidth = minImage
	}

	return []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Base Experience", Width: metricWidth},
		{Title: "Height", Width: metricWidth},
		{Title: "Weight", Width: metricWidth},
		{Title: "Image", Width: imageWidth},
	}
}

// Rows turns a page of entities into table rows, in server order
func Rows(entities []domain.Pokemon) []table.Row {
	rows := make([]table.Row, 0, len(entities))
	for _, p := range entities {
		image := NoImage
		if p.HasImage() {
			image = p.ImageURL
		}
		rows = append(rows, table.Row{
			p.Name,
			domain.FormatMetric(p.BaseExperience),
			domain.FormatMetric(p.Height),
			domain.FormatMetric(p.Weight),
			image,
		})
	}
	return rows
}

// NewTable creates the entity table
func NewTable(styles *Styles, width, height int) table.Model {
	return table.New(
		table.WithColumns(Columns(width)),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithStyles(styles.Table),
	)
}

// DetailContent renders one entity for the detail pager
func (r *Renderer) DetailContent(p domain.Pokemon) string {
	image := NoImage
	if p.HasImage() {
		image = p.ImageURL
	}

	fields := []struct{ label, value string }{
		{"ID", strconv.Itoa(p.ID)},
		{"Name", p.Name},
		{"Base Experience", domain.FormatMetric(p.BaseExperience)},
		{"Height", domain.FormatMetric(p.Height)},
		{"Weight", domain.FormatMetric(p.Weight)},
		{"Image", image},
	}

	label := r.styles.Label.Width(detailLabelWidth)
	lines := []string{r.styles.Title.Render(p.Name)}
	for _, f := range fields {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(f.label), " ", r.styles.Value.Render(f.value)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
