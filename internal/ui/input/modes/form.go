package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/ui/input/types"
	"jobdash/internal/ui/state"
)

// FormMode drives the login and add-job forms
type FormMode struct {
	TextInputMode
}

func NewFormMode(ti *textinput.Model) *FormMode {
	return &FormMode{TextInputMode: NewTextInputMode(types.ModeForm, "form", ti)}
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return append(m.TextInputMode.Enter(ctx), types.BeginEditAction{})
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "tab", "down":
		return []types.Action{types.FormFocusAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FormFocusAction{Delta: -1}}, true
	case "ctrl+s":
		return []types.Action{types.SubmitFormAction{}}, true
	case "ctrl+p":
		if ctx.ActiveTab() == state.TabAdmin {
			return []types.Action{types.ParseSalaryAction{}}, true
		}
		return nil, true
	case "enter":
		// enter walks the fields and submits from the last one
		if ctx.FormFocus() < ctx.FormFields()-1 {
			return []types.Action{types.FormFocusAction{Delta: 1}}, true
		}
		return []types.Action{types.SubmitFormAction{}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
