package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"pokebrowse/internal/domain"
	"pokebrowse/internal/ui/input/modes"
	"pokebrowse/internal/ui/input/types"
)

// InputTransformer turns the input handler's state into view fields
type InputTransformer struct {
	mode      types.Mode
	textInput *textinput.Model
	focused   modes.FilterField
	sortIndex int
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{
		mode:    types.ModeNormal,
		focused: modes.FilterFields[0],
	}
}

// SetMode sets the current input mode and the text input it edits, if any
func (it *InputTransformer) SetMode(mode types.Mode, ti *textinput.Model) {
	it.mode = mode
	it.textInput = ti
}

// SetFocusedField records the range bound being edited
func (it *InputTransformer) SetFocusedField(field domain.RangeField, bound domain.Bound) {
	it.focused = modes.FilterField{Field: field, Bound: bound}
}

// SetSortIndex records the highlighted sort option
func (it *InputTransformer) SetSortIndex(index int) {
	it.sortIndex = index
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if it.textInput == nil {
		return ""
	}

	switch it.mode {
	case types.ModeSearch, types.ModeFilter:
		return it.textInput.View()
	default:
		return ""
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case types.ModeSearch:
		return "search"
	case types.ModeFilter:
		return "filter"
	case types.ModeSort:
		return "sort"
	default:
		return ""
	}
}
