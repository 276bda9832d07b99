package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokebrowse/internal/query"
	"pokebrowse/internal/ui/input/types"
)

// SearchMode edits the search text, dispatching on every keystroke
type SearchMode struct {
	TextInputMode
	original string // search text when the mode was entered
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode("search", ti),
	}
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	m.original = ctx.QueryState().Filter.Search
	m.load(m.original)
	return actions
}

// HandleKey restores the original text on esc; enter keeps the edit
func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "esc" {
		return []types.Action{
			types.DispatchAction{Action: query.SetSearchText{Text: m.original}},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

func (m *SearchMode) OnText(text string, ctx types.Context) []types.Action {
	return dispatch(query.SetSearchText{Text: text})
}
