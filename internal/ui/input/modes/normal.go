package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/ui/input/types"
	"jobdash/internal/ui/state"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// digits jump straight to a tab
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '8' {
		return []types.Action{types.SwitchTabAction{Tab: state.AllTabs[s[0]-'1']}}, true
	}

	k := types.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.NextTab):
		return []types.Action{types.SwitchTabAction{Delta: 1}}, true
	case key.Matches(msg, k.PrevTab):
		return []types.Action{types.SwitchTabAction{Delta: -1}}, true
	case key.Matches(msg, k.Refresh):
		return []types.Action{types.RefreshAction{}}, true
	}

	switch ctx.ActiveTab() {
	case state.TabSearch, state.TabJobs:
		return m.handleResults(msg, ctx)
	case state.TabTop30:
		return m.handleScroll(msg)
	case state.TabAdmin:
		return m.handleAdmin(msg, ctx)
	case state.TabLogin:
		if key.Matches(msg, k.Edit) {
			if ctx.LoggedIn() {
				return []types.Action{types.RequestConfirmAction{Action: state.PendingLogout}}, true
			}
			return []types.Action{types.OpenFormAction{}}, true
		}
	}
	return nil, false
}

func (m *NormalMode) handleScroll(msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, types.Keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	}
	switch msg.Type {
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}
	return nil, false
}

func (m *NormalMode) handleResults(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := types.Keys
	onSearch := ctx.ActiveTab() == state.TabSearch

	switch {
	case key.Matches(msg, k.Edit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEditField}}, true
	case key.Matches(msg, k.NextPage):
		if !ctx.HasNextPage() {
			return nil, true
		}
		return []types.Action{types.PageAction{Delta: 1}}, true
	case key.Matches(msg, k.PrevPage):
		if !ctx.HasPrevPage() {
			return nil, true
		}
		return []types.Action{types.PageAction{Delta: -1}}, true
	case key.Matches(msg, k.PageSize):
		return []types.Action{types.PageSizeAction{Delta: 1}}, true
	case key.Matches(msg, k.PageSizeDn):
		return []types.Action{types.PageSizeAction{Delta: -1}}, true
	case key.Matches(msg, k.Export):
		return []types.Action{types.ExportAction{}}, true
	case key.Matches(msg, k.Reset):
		return []types.Action{types.ResetFiltersAction{}}, true
	}

	if onSearch {
		switch msg.String() {
		case "[":
			return []types.Action{types.AdjustSalaryAction{Lower: true, Steps: -1}}, true
		case "]":
			return []types.Action{types.AdjustSalaryAction{Lower: true, Steps: 1}}, true
		case "{":
			return []types.Action{types.AdjustSalaryAction{Steps: -1}}, true
		case "}":
			return []types.Action{types.AdjustSalaryAction{Steps: 1}}, true
		case "backspace", "delete":
			return []types.Action{types.ClearFieldAction{}}, true
		}
	} else {
		switch {
		case key.Matches(msg, k.Sort):
			return []types.Action{types.CycleSortAction{}}, true
		case key.Matches(msg, k.SortDir):
			return []types.Action{types.FlipSortAction{}}, true
		case key.Matches(msg, k.SortPick):
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true
		}
	}

	if !ctx.HasResults() {
		return nil, false
	}
	return m.handleScroll(msg)
}

func (m *NormalMode) handleAdmin(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := types.Keys
	switch {
	case key.Matches(msg, k.Toggle):
		return []types.Action{types.RequestConfirmAction{Action: state.PendingToggleCrawl}}, true
	case key.Matches(msg, k.Import):
		return []types.Action{types.RequestConfirmAction{Action: state.PendingImport}}, true
	case key.Matches(msg, k.Crawl):
		return []types.Action{types.RequestConfirmAction{Action: state.PendingCrawl}}, true
	case key.Matches(msg, k.AddJob):
		return []types.Action{types.OpenFormAction{}}, true
	case key.Matches(msg, k.Logs):
		return []types.Action{types.OpenLogsAction{}}, true
	}
	return nil, false
}
