package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/ui/input/types"
)

type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.ConfirmAction{Accept: true},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "esc", "n", "N":
		return []types.Action{
			types.ConfirmAction{Accept: false},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// anything else keeps the question open
	return nil, true
}
