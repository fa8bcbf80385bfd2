package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/search"
	"jobdash/internal/ui/input/types"
)

// SortSelectMode picks the job table's sort column from a list.
// Moving the cursor applies the column at once; esc puts the old one back.
type SortSelectMode struct {
	sortIndex     int
	originalIndex int
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	m.sortIndex = 0
	current := ctx.SortColumn()
	for i, column := range search.SortColumns {
		if column == current {
			m.sortIndex = i
			break
		}
	}
	m.originalIndex = m.sortIndex
	return []types.Action{types.UpdateSortIndexAction{Index: m.sortIndex}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.UpdateSortIndexAction{Index: -1}}
}

func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "esc", "q":
		actions := []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}
		if m.sortIndex != m.originalIndex {
			actions = append([]types.Action{types.SortByAction{Column: search.SortColumns[m.originalIndex]}}, actions...)
		}
		return actions, true
	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "up", "k":
		return m.move(-1), true
	case "down", "j":
		return m.move(1), true
	}
	return nil, true
}

func (m *SortSelectMode) move(delta int) []types.Action {
	n := len(search.SortColumns)
	m.sortIndex = (m.sortIndex + delta + n) % n
	return []types.Action{
		types.UpdateSortIndexAction{Index: m.sortIndex},
		types.SortByAction{Column: search.SortColumns[m.sortIndex]},
	}
}
