package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokebrowse/internal/query"
	"pokebrowse/internal/ui/input/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// queryActions extracts the store actions from handler output
func queryActions(actions []types.Action) []query.Action {
	var out []query.Action
	for _, a := range actions {
		if d, ok := a.(types.DispatchAction); ok {
			out = append(out, d.Action)
		}
	}
	return out
}

func TestSearchModeDispatchesPerKeystroke(t *testing.T) {
	h := New()
	ctx := &ModelContext{State: query.DefaultState(), Pages: 3}

	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, queryActions(actions))
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())

	actions, _ = h.HandleKey(runes("p"), ctx)
	assert.Equal(t, []query.Action{query.SetSearchText{Text: "p"}}, queryActions(actions))

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []query.Action{query.SetSearchText{Text: "pq"}}, queryActions(actions),
		"q is text while searching")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}

func TestSearchEscRevertsToEnteredText(t *testing.T) {
	h := New()
	state := query.Reduce(query.DefaultState(), query.SetSearchText{Text: "pi"})
	ctx := &ModelContext{State: state}

	h.HandleKey(runes("/"), ctx)
	assert.Equal(t, "pi", h.TextInput().Value())

	h.HandleKey(runes("k"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	assert.Equal(t, []query.Action{query.SetSearchText{Text: "pi"}}, queryActions(actions))
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestNextPageStopsAtLastKnownPage(t *testing.T) {
	h := New()
	state := query.Reduce(query.DefaultState(), query.SetPageIndex{Index: 1})

	actions, _ := h.HandleKey(runes("l"), &ModelContext{State: state, Pages: 3})
	assert.Equal(t, []query.Action{query.SetPageIndex{Index: 2}}, queryActions(actions))

	actions, _ = h.HandleKey(runes("l"), &ModelContext{State: state, Pages: 2})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(runes("h"), &ModelContext{State: query.DefaultState(), Pages: 2})
	assert.Empty(t, actions, "no page before the first")
}

func TestQuitKeys(t *testing.T) {
	h := New()
	ctx := &ModelContext{State: query.DefaultState()}

	actions, _ := h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)

	h.HandleKey(runes("/"), ctx)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)
}
