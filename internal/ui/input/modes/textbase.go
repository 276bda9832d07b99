package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokebrowse/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	name      string
	textInput *textinput.Model
}

func NewTextInputMode(name string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		name:      name,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "enter":
		// Edits are applied live, so leaving only changes the mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	default:
		// Let the main handler update the text input
		// Returning false here means the input handler will process it
		return nil, false
	}
}

// load replaces the edited value and moves the cursor to its end
func (m TextInputMode) load(value string) {
	if m.textInput == nil {
		return
	}
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
}
