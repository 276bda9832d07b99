package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokebrowse/internal/domain"
	"pokebrowse/internal/query"
	"pokebrowse/internal/ui/input/types"
)

// FilterField is one editable range bound
type FilterField struct {
	Field domain.RangeField
	Bound domain.Bound
}

// FilterFields lists the range bounds in the order tab walks them
var FilterFields = func() []FilterField {
	fields := make([]FilterField, 0, len(domain.RangeFields)*2)
	for _, f := range domain.RangeFields {
		fields = append(fields, FilterField{f, domain.BoundMin}, FilterField{f, domain.BoundMax})
	}
	return fields
}()

// FilterMode edits the six range bounds through one shared text input
type FilterMode struct {
	TextInputMode
	focus int
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode("filter", ti),
	}
}

// Enter focuses the first bound and loads its current value
func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	m.focus = 0
	return append(actions, m.focusCurrent(ctx))
}

func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % len(FilterFields)
		return []types.Action{m.focusCurrent(ctx)}, true
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + len(FilterFields)) % len(FilterFields)
		return []types.Action{m.focusCurrent(ctx)}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

func (m *FilterMode) OnText(text string, ctx types.Context) []types.Action {
	f := FilterFields[m.focus]
	return dispatch(query.SetRangeBound{Field: f.Field, Bound: f.Bound, Value: text})
}

func (m *FilterMode) focusCurrent(ctx types.Context) types.Action {
	f := FilterFields[m.focus]
	m.load(ctx.QueryState().Filter.Range(f.Field).Get(f.Bound))
	return types.FocusFieldAction{Field: f.Field, Bound: f.Bound}
}
