package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pokebrowse/internal/query"
	"pokebrowse/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode() *NormalMode {
	return &NormalMode{keys: types.Keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{}}, true
	}

	state := ctx.QueryState()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PrevPage):
		if state.Page.Index == 0 {
			return nil, true
		}
		return dispatch(query.StepPage(state, -1)), true

	case key.Matches(msg, m.keys.NextPage):
		// The last known total bounds forward paging; the store itself never clamps
		if state.Page.Index+1 >= ctx.TotalPages() {
			return nil, true
		}
		return dispatch(query.StepPage(state, 1)), true

	case key.Matches(msg, m.keys.FirstPage):
		return dispatch(query.SetPageIndex{Index: 0}), true

	case key.Matches(msg, m.keys.LastPage):
		if ctx.TotalPages() == 0 {
			return nil, true
		}
		return dispatch(query.SetPageIndex{Index: ctx.TotalPages() - 1}), true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case key.Matches(msg, m.keys.Sort):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true

	case key.Matches(msg, m.keys.Order):
		return dispatch(query.ToggleSortOrder(state)), true

	case key.Matches(msg, m.keys.Detail):
		if ctx.RowCount() == 0 {
			return nil, false
		}
		return []types.Action{types.OpenDetailAction{Row: ctx.CurrentRow()}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case msg.String() == "esc":
		return nil, true // Consume the key even if no action
	}

	return nil, false
}

func dispatch(actions ...query.Action) []types.Action {
	out := make([]types.Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, types.DispatchAction{Action: a})
	}
	return out
}
