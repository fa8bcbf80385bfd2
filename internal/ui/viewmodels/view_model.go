package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"jobdash/internal/config"
	"jobdash/internal/ui/input/types"
	"jobdash/internal/ui/state"
	"jobdash/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	help             help.Model
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// ShortHelp lists the bindings that matter on the active tab
func (vm *ViewModel) ShortHelp() []key.Binding {
	k := types.Keys
	switch vm.inputTransformer.mode {
	case types.ModeEditField:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "pick")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	case types.ModeForm:
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	case types.ModeConfirm:
		return nil
	case types.ModeSort:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "column")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "undo")),
		}
	}

	common := []key.Binding{k.NextTab, k.Refresh, k.Help, k.Quit}
	switch vm.state.ActiveTab {
	case state.TabSearch:
		return append([]key.Binding{k.Edit, k.SalaryMin, k.SalaryMax, k.NextPage, k.PrevPage, k.PageSize, k.Reset, k.Export}, common...)
	case state.TabJobs:
		return append([]key.Binding{k.Edit, k.Sort, k.SortDir, k.SortPick, k.NextPage, k.PrevPage, k.PageSize, k.Export}, common...)
	case state.TabTop30:
		return append([]key.Binding{k.Up, k.Down}, common...)
	case state.TabAdmin:
		return append([]key.Binding{k.Toggle, k.Import, k.Crawl, k.AddJob, k.Logs}, common...)
	case state.TabLogin:
		return append([]key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", vm.state.ActiveTab.Title(vm.state.LoggedIn)))}, common...)
	}
	return common
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	confirm := ""
	if vm.inputTransformer.mode == types.ModeConfirm {
		enabled := vm.state.Admin.Settings != nil && vm.state.Admin.Settings.Enabled()
		confirm = vm.state.Pending.Prompt(enabled)
	}

	baseURL := ""
	if vm.config != nil {
		baseURL = vm.config.API.BaseURL
	}

	return views.ViewState{
		Width:     vm.width,
		Height:    vm.height,
		App:       vm.state,
		Mode:      vm.inputTransformer.GetInputModeString(),
		TextInput: vm.inputTransformer.GetInputText(),
		Confirm:   confirm,
		Spinner:   vm.spinner,
		HelpView:  vm.help.View(types.TabKeys{Short: vm.ShortHelp()}),
		BaseURL:   baseURL,
	}
}
