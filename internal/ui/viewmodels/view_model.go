package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"pokebrowse/internal/fetch"
	"pokebrowse/internal/query"
	"pokebrowse/internal/ui/input/types"
	"pokebrowse/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	collection       string
	width            int
	height           int
	help             help.Model
	showReady        bool
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(collection string, showReady bool) *ViewModel {
	return &ViewModel{
		collection:       collection,
		showReady:        showReady,
		help:             help.New(),
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// Input returns the transformer holding the input mode state
func (vm *ViewModel) Input() *InputTransformer {
	return vm.inputTransformer
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(q query.State, data fetch.ViewModel, inFlight int, table string) views.ViewState {
	return views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Collection:      vm.collection,
		Query:           q,
		Loading:         data.Loading,
		Empty:           !data.Loading && len(data.Entities) == 0,
		TotalPages:      data.TotalPages,
		InFlight:        inFlight,
		InputMode:       vm.inputTransformer.GetInputModeString(),
		TextInput:       vm.inputTransformer.GetInputText(),
		FocusedField:    vm.inputTransformer.focused.Field,
		FocusedBound:    vm.inputTransformer.focused.Bound,
		SortOptionIndex: vm.inputTransformer.sortIndex,
		Table:           table,
		HelpLine:        vm.help.View(types.Keys),
		ShowReady:       vm.showReady,
	}
}
