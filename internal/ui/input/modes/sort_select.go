package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pokebrowse/internal/domain"
	"pokebrowse/internal/query"
	"pokebrowse/internal/ui/input/types"
)

type SortSelectMode struct {
	sortIndex int
	original  query.Sort // sort when the mode was entered
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{
		sortIndex: 0,
	}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	// Start with the current sort column
	m.original = ctx.QueryState().Sort
	m.sortIndex = columnIndex(m.original.Column)

	return []types.Action{types.UpdateSortIndexAction{Index: m.sortIndex}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

// HandleKey processes key messages for sort selection
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true

	case "esc", "q":
		// Cancel: column and order go back together so only one fetch follows
		return []types.Action{
			types.DispatchAction{Action: query.SetSort{Sort: m.original}},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		// Accept current sort and return to normal mode
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k":
		return m.move(ctx, -1), true

	case "down", "j":
		return m.move(ctx, 1), true

	case "o", "tab":
		return dispatch(query.ToggleSortOrder(ctx.QueryState())), true
	}

	return nil, true
}

// move cycles through the columns and applies the choice immediately
func (m *SortSelectMode) move(ctx types.Context, delta int) []types.Action {
	next := query.CycleSortColumn(ctx.QueryState(), delta)
	m.sortIndex = columnIndex(next.Column)
	return []types.Action{
		types.UpdateSortIndexAction{Index: m.sortIndex},
		types.DispatchAction{Action: next},
	}
}

func columnIndex(col domain.SortColumn) int {
	for i, c := range domain.SortColumns {
		if c == col {
			return i
		}
	}
	return 0
}
