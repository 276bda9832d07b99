package types

import (
	"pokebrowse/internal/domain"
	"pokebrowse/internal/query"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// DispatchAction forwards a query transition to the store
type DispatchAction struct {
	Action query.Action
}

func (a DispatchAction) Type() string { return "dispatch" }

// Filter field focus
type FocusFieldAction struct {
	Field domain.RangeField
	Bound domain.Bound
}

func (a FocusFieldAction) Type() string { return "focus_field" }

// Sort actions
type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenDetailAction struct {
	Row int
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
