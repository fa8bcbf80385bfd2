package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/ui/state"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditField
	ModeForm
	ModeConfirm
	ModeSort
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEditField:
		return "edit"
	case ModeForm:
		return "form"
	case ModeConfirm:
		return "confirm"
	case ModeSort:
		return "sort"
	}
	return ""
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	ActiveTab() state.Tab
	LoggedIn() bool
	HasResults() bool
	HasNextPage() bool
	HasPrevPage() bool
	HasSuggestions() bool
	FormOpen() bool
	FormFields() int
	FormFocus() int
	SortColumn() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
