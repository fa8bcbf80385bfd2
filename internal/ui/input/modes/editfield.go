package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/ui/input/types"
	"jobdash/internal/ui/state"
)

// EditFieldMode edits one search field with autocomplete
type EditFieldMode struct {
	TextInputMode
}

func NewEditFieldMode(ti *textinput.Model) *EditFieldMode {
	return &EditFieldMode{TextInputMode: NewTextInputMode(types.ModeEditField, "edit", ti)}
}

func (m *EditFieldMode) Enter(ctx types.Context) []types.Action {
	return append(m.TextInputMode.Enter(ctx), types.BeginEditAction{})
}

func (m *EditFieldMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "tab":
		if ctx.ActiveTab() == state.TabSearch {
			return []types.Action{types.CycleFieldAction{Delta: 1}}, true
		}
		return nil, true
	case "shift+tab":
		if ctx.ActiveTab() == state.TabSearch {
			return []types.Action{types.CycleFieldAction{Delta: -1}}, true
		}
		return nil, true
	case "up", "ctrl+p":
		if ctx.HasSuggestions() {
			return []types.Action{types.PickSuggestionAction{Delta: -1}}, true
		}
		return nil, true
	case "down", "ctrl+n":
		if ctx.HasSuggestions() {
			return []types.Action{types.PickSuggestionAction{Delta: 1}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
