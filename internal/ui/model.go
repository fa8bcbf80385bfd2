package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/api"
	"jobdash/internal/config"
	"jobdash/internal/domain"
	"jobdash/internal/eventbus"
	"jobdash/internal/export"
	"jobdash/internal/search"
	"jobdash/internal/session"
	"jobdash/internal/ui/commands"
	"jobdash/internal/ui/handlers"
	"jobdash/internal/ui/input"
	inputtypes "jobdash/internal/ui/input/types"
	"jobdash/internal/ui/state"
	"jobdash/internal/ui/viewmodels"
	"jobdash/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.AppState // centralized state
	sessions *session.Manager

	// UI-specific state not in AppState
	width       int
	height      int
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer            // view renderer
	eventHandler *handlers.EventHandler     // event processing handler
	viewModel    *viewmodels.ViewModel      // view model for rendering
	cmdExecutor  *commands.Executor         // command executor
	inputHandler *input.Handler             // input handling
	helpRenderer *HelpRenderer              // help content
	pager        *Pager                     // ov pager for help and logs
	gates        map[state.Tab]*search.Gate // autocomplete debounce per search pane

	// logsGen identifies the live admin log refresh chain
	logsGen uint64

	// send delivers messages from timer goroutines back into Update
	send func(tea.Msg)
	now  func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, backend commands.Backend, sessions *session.Manager, bus eventbus.EventBus) *Model {
	appState := state.NewAppState(cfg.Search.PageSize)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		sessions:     sessions,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPager(),
		gates: map[state.Tab]*search.Gate{
			state.TabSearch: search.NewGate(cfg.Debounce()),
			state.TabJobs:   search.NewGate(cfg.Debounce()),
		},
		send: func(tea.Msg) {},
		now:  time.Now,
	}

	m.cmdExecutor = commands.NewExecutor(backend, sessions, bus, commands.Options{
		LogLines:    cfg.UI.LogLines,
		ExportLimit: cfg.Search.ExportLimit,
	})
	m.eventHandler = handlers.NewEventHandler(appState, m.afterLogin)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, *m.inputHandler.TextInputModel())

	// A stored token means we are still logged in from a previous run
	if sessions != nil && sessions.Current().IsAdmin() {
		appState.LoggedIn = true
		appState.Username = "admin"
	}
	appState.SetTab(state.ParseTab(cfg.UI.DefaultTab))

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.send = p.Send
	m.pager.SetProgram(p)
}

// State exposes the application state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTab(m.state.ActiveTab, false))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// A blocking popup swallows everything until dismissed
		if m.state.Popup != "" {
			switch msg.String() {
			case "enter", "esc", "q", " ":
				return m, m.processAction(inputtypes.DismissPopupAction{})
			case "ctrl+c":
				return m, m.processAction(inputtypes.QuitAction{Force: true})
			}
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Cursor blinks go to the text input, everything else to the model
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	m.viewModel.SetSpinner(m.spinner.View())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// loadTab starts the fetches a tab needs. Without force, tabs that are
// loaded or loading are left alone.
func (m *Model) loadTab(tab state.Tab, force bool) tea.Cmd {
	s := m.state
	fresh := func(l *state.Load) bool {
		if !force && (l.Loaded || l.Loading) {
			return false
		}
		l.Start()
		return true
	}

	switch tab {
	case state.TabDashboard:
		if fresh(&s.DashboardLoad) {
			return m.cmdExecutor.LoadDashboard()
		}
	case state.TabAnalytics:
		if fresh(&s.AnalyticsLoad) {
			return m.cmdExecutor.LoadAnalytics()
		}
	case state.TabTop30:
		if fresh(&s.Top30Load) {
			return m.cmdExecutor.LoadTop30()
		}
	case state.TabSources:
		if fresh(&s.SourcesLoad) {
			return m.cmdExecutor.LoadSources()
		}
	case state.TabSearch, state.TabJobs:
		pane := s.PaneFor(tab)
		if force || pane.Results.Status() == search.StatusIdle {
			return m.runSearch(tab)
		}
	case state.TabAdmin:
		if !s.LoggedIn {
			return nil
		}
		var cmds []tea.Cmd
		if fresh(&s.Admin.SettingsLoad) {
			cmds = append(cmds, m.cmdExecutor.LoadAdminSettings())
		}
		// logs are always refreshed on entry and the refresh chain restarts
		s.Admin.LogsLoad.Start()
		cmds = append(cmds, m.cmdExecutor.LoadAdminLogs(), m.startLogsTicker())
		return tea.Batch(cmds...)
	}
	return nil
}

func (m *Model) startLogsTicker() tea.Cmd {
	m.logsGen++
	return m.logsTick(m.logsGen)
}

func (m *Model) logsTick(gen uint64) tea.Cmd {
	return tea.Tick(m.config.LogRefresh(), func(t time.Time) tea.Msg {
		return logsTickMsg{gen: gen, at: t}
	})
}

// afterLogin moves to the admin panel once a session exists
func (m *Model) afterLogin() tea.Cmd {
	m.state.SetTab(state.TabAdmin)
	return m.loadTab(state.TabAdmin, true)
}

// runSearch applies the tab's edited criteria and loads the resulting page
func (m *Model) runSearch(tab state.Tab) tea.Cmd {
	pane := m.state.PaneFor(tab)
	return m.loadPage(tab, pane.Filter.Search())
}

func (m *Model) loadPage(tab state.Tab, q search.JobQuery) tea.Cmd {
	pane := m.state.PaneFor(tab)
	seq := pane.Results.Begin(q)
	return m.cmdExecutor.LoadPage(tab, seq, q)
}

// scheduleSuggest debounces autocomplete for the field being edited
func (m *Model) scheduleSuggest(tab state.Tab, field domain.Field, text string) {
	gate := m.gates[tab]
	pane := m.state.PaneFor(tab)
	if text == "" {
		gate.Stop()
		pane.Suggestions.Clear(field)
		return
	}
	send := m.send
	gate.Schedule(func() {
		send(suggestTriggerMsg{target: tab, field: field, query: text})
	})
}

func (m *Model) suggestLimit(tab state.Tab) int {
	if tab == state.TabJobs {
		return m.config.Search.JobListSuggestionLimit
	}
	return m.config.Search.SuggestionLimit
}

// stopSuggest cancels pending autocomplete for the pane's field and hides the list
func (m *Model) stopSuggest(tab state.Tab) {
	pane := m.state.PaneFor(tab)
	m.gates[tab].Stop()
	pane.Suggestions.Clear(pane.Field)
	pane.Pick = -1
}

// activeForm returns the form on the active tab
func (m *Model) activeForm() *state.Form {
	switch m.state.ActiveTab {
	case state.TabLogin:
		return &m.state.Login
	case state.TabAdmin:
		return &m.state.Admin.JobForm
	}
	return nil
}

// beginEdit loads the value under the cursor into the shared text input
func (m *Model) beginEdit() {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeEditField:
		if pane, ok := m.state.Pane(); ok {
			pane.Pick = -1
			m.inputHandler.SetText(pane.Filter.Criteria().Get(pane.Field), false)
		}
	case inputtypes.ModeForm:
		if form := m.activeForm(); form != nil {
			masked := m.state.ActiveTab == state.TabLogin && form.Focus == state.LoginPassword
			m.inputHandler.SetText(form.Value(form.Focus), masked)
		}
	}
}

// enterMode switches the input handler and runs the resulting Enter actions
func (m *Model) enterMode(mode inputtypes.Mode) tea.Cmd {
	actions, cmd := m.inputHandler.SwitchMode(mode, &input.ModelContext{State: m.state})
	cmds := []tea.Cmd{cmd}
	for _, a := range actions {
		cmds = append(cmds, m.processAction(a))
	}
	return tea.Batch(cmds...)
}

func (m *Model) crawlEnabled() bool {
	return m.state.Admin.Settings != nil && m.state.Admin.Settings.Enabled()
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	s := m.state
	pane, hasPane := s.Pane()

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if hasPane {
			rows := len(pane.Results.Rows())
			switch a.Direction {
			case "up":
				pane.Results.Move(-1)
			case "down":
				pane.Results.Move(1)
			case "home":
				pane.Results.Select(0)
			case "end":
				pane.Results.Select(rows - 1)
			}
			return nil
		}
		if s.ActiveTab == state.TabTop30 {
			maxOffset := len(s.Top30) - views.Top30Visible(m.height)
			if maxOffset < 0 {
				maxOffset = 0
			}
			switch a.Direction {
			case "up":
				s.Top30Offset--
			case "down":
				s.Top30Offset++
			case "home":
				s.Top30Offset = 0
			case "end":
				s.Top30Offset = maxOffset
			}
			s.Top30Offset = min(max(s.Top30Offset, 0), maxOffset)
		}

	case inputtypes.SwitchTabAction:
		if a.Delta != 0 {
			s.CycleTab(a.Delta)
		} else if !s.SetTab(a.Tab) {
			s.SetStatus("Log in to open the admin panel")
			return nil
		}
		return m.loadTab(s.ActiveTab, false)

	case inputtypes.BeginEditAction:
		m.beginEdit()

	case inputtypes.UpdateTextAction:
		switch m.inputHandler.CurrentMode() {
		case inputtypes.ModeEditField:
			if hasPane {
				pane.Filter.Update(pane.Field, a.Text)
				pane.Pick = -1
				m.scheduleSuggest(s.ActiveTab, pane.Field, a.Text)
			}
		case inputtypes.ModeForm:
			if form := m.activeForm(); form != nil {
				form.SetFocused(a.Text)
				if s.ActiveTab == state.TabAdmin && form.Focus == state.JobSalary {
					s.Admin.ParsedSalary = nil
					s.Admin.ParseErr = ""
				}
			}
		}

	case inputtypes.CycleFieldAction:
		if !hasPane {
			return nil
		}
		m.stopSuggest(s.ActiveTab)
		n := len(domain.Fields)
		pane.Field = domain.Fields[((int(pane.Field)+a.Delta)%n+n)%n]
		m.beginEdit()

	case inputtypes.PickSuggestionAction:
		if hasPane {
			pane.MovePick(a.Delta)
		}

	case inputtypes.SubmitTextAction:
		if a.Mode != inputtypes.ModeEditField || !hasPane {
			return nil
		}
		if picked, ok := pane.PickedSuggestion(); ok {
			pane.Filter.Update(pane.Field, picked)
		}
		m.stopSuggest(s.ActiveTab)
		return m.runSearch(s.ActiveTab)

	case inputtypes.CancelTextAction:
		switch {
		case hasPane:
			m.stopSuggest(s.ActiveTab)
		case s.ActiveTab == state.TabAdmin:
			s.Admin.ShowJobForm = false
		}

	case inputtypes.ClearFieldAction:
		if hasPane {
			pane.Filter.Clear(pane.Field)
			return m.runSearch(s.ActiveTab)
		}

	case inputtypes.ResetFiltersAction:
		if hasPane {
			pane.Filter.Reset()
			return m.runSearch(s.ActiveTab)
		}

	case inputtypes.AdjustSalaryAction:
		if hasPane {
			pane.Filter.NudgeSalary(a.Lower, a.Steps)
			return m.runSearch(s.ActiveTab)
		}

	case inputtypes.PageAction:
		if hasPane {
			return m.loadPage(s.ActiveTab, pane.Filter.SetPage(pane.Filter.Page()+a.Delta))
		}

	case inputtypes.PageSizeAction:
		if hasPane {
			return m.loadPage(s.ActiveTab, pane.Filter.CyclePerPage(a.Delta))
		}

	case inputtypes.CycleSortAction:
		if hasPane {
			dir := pane.Filter.Sort().Dir
			if dir == "" {
				dir = search.DefaultSort.Dir
			}
			q, err := pane.Filter.SetSort(pane.Filter.NextSortColumn(), dir)
			if err != nil {
				s.SetError(err.Error())
				return nil
			}
			return m.loadPage(s.ActiveTab, q)
		}

	case inputtypes.SortByAction:
		if hasPane {
			dir := pane.Filter.Sort().Dir
			if dir == "" {
				dir = search.DefaultSort.Dir
			}
			q, err := pane.Filter.SetSort(a.Column, dir)
			if err != nil {
				s.SetError(err.Error())
				return nil
			}
			return m.loadPage(s.ActiveTab, q)
		}

	case inputtypes.UpdateSortIndexAction:
		s.SortPick = a.Index

	case inputtypes.FlipSortAction:
		if hasPane {
			cur := pane.Filter.Sort()
			if cur.Column == "" {
				cur = search.DefaultSort
			}
			q, err := pane.Filter.SetSort(cur.Column, cur.Dir.Flip())
			if err != nil {
				s.SetError(err.Error())
				return nil
			}
			return m.loadPage(s.ActiveTab, q)
		}

	case inputtypes.RefreshAction:
		return m.loadTab(s.ActiveTab, true)

	case inputtypes.ExportAction:
		if !hasPane {
			return nil
		}
		if s.Exporting {
			s.SetStatus("An export is already running")
			return nil
		}
		s.Exporting = true
		path := export.DefaultFilename(m.now())
		s.SetStatus(fmt.Sprintf("Exporting to %s...", path))
		return m.cmdExecutor.Export(path, pane.Filter.Query())

	case inputtypes.OpenLogsAction:
		if len(s.Admin.Logs) == 0 {
			s.SetStatus("No log lines loaded yet")
			return nil
		}
		return m.showPager("logs", strings.Join(s.Admin.Logs, "\n"))

	case inputtypes.ToggleHelpAction:
		return m.showPager("help", m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		return func() tea.Msg {
			return quitMsg{saveConfig: true}
		}

	case inputtypes.OpenFormAction:
		switch s.ActiveTab {
		case state.TabAdmin:
			s.Admin.ShowJobForm = true
			s.Admin.JobForm.Err = ""
		case state.TabLogin:
			s.Login.Err = ""
		default:
			return nil
		}
		return m.enterMode(inputtypes.ModeForm)

	case inputtypes.FormFocusAction:
		if form := m.activeForm(); form != nil {
			form.MoveFocus(a.Delta)
			m.beginEdit()
		}

	case inputtypes.SubmitFormAction:
		return m.submitForm()

	case inputtypes.ParseSalaryAction:
		raw := strings.TrimSpace(s.Admin.JobForm.Value(state.JobSalary))
		if raw == "" {
			s.Admin.ParseErr = "enter a salary first"
			return nil
		}
		s.Admin.ParseErr = ""
		return m.cmdExecutor.ParseSalary(raw)

	case inputtypes.RequestConfirmAction:
		if !s.LoggedIn {
			return nil
		}
		s.Pending = a.Action
		return m.enterMode(inputtypes.ModeConfirm)

	case inputtypes.ConfirmAction:
		pending := s.Pending
		s.Pending = state.PendingNone
		if !a.Accept || pending == state.PendingNone {
			return nil
		}
		if pending == state.PendingLogout {
			return m.logout()
		}
		s.Admin.Busy = pendingLabel(pending)
		return m.cmdExecutor.RunAdminAction(pending, m.crawlEnabled())

	case inputtypes.DismissPopupAction:
		s.Popup = ""
	}

	return nil
}

func pendingLabel(p state.PendingAction) string {
	switch p {
	case state.PendingToggleCrawl:
		return "Switching crawler..."
	case state.PendingImport:
		return "Importing..."
	case state.PendingCrawl:
		return "Crawling..."
	}
	return ""
}

// submitForm validates the active form and sends it
func (m *Model) submitForm() tea.Cmd {
	s := m.state
	switch s.ActiveTab {
	case state.TabLogin:
		form := &s.Login
		username := strings.TrimSpace(form.Value(state.LoginUsername))
		password := form.Value(state.LoginPassword)
		if username == "" || password == "" {
			form.Err = "Username and password are required"
			return nil
		}
		form.Err = ""
		form.Busy = true
		m.inputHandler.Reset()
		return m.cmdExecutor.Login(username, password)

	case state.TabAdmin:
		form := &s.Admin.JobForm
		job := domain.NewJob{
			Title:     strings.TrimSpace(form.Value(state.JobTitle)),
			Company:   strings.TrimSpace(form.Value(state.JobCompany)),
			SalaryRaw: strings.TrimSpace(form.Value(state.JobSalary)),
			Location:  strings.TrimSpace(form.Value(state.JobLocation)),
			Level:     strings.TrimSpace(form.Value(state.JobLevel)),
			AvgSalary: s.Admin.ParsedSalary,
		}
		if err := job.Validate(); err != nil {
			form.Err = err.Error()
			return nil
		}
		form.Err = ""
		form.Busy = true
		s.Admin.Busy = "Saving job..."
		m.inputHandler.Reset()
		return m.cmdExecutor.CreateJob(job)
	}
	return nil
}

func (m *Model) logout() tea.Cmd {
	m.logsGen++ // ends the log refresh chain
	if m.sessions != nil {
		if err := m.sessions.Logout(); err != nil {
			log.Printf("logout: %v", err)
		}
	}
	return m.eventHandler.HandleEvent(eventbus.LoggedOutEvent{})
}

// adminFailure surfaces a failed admin call. A rejected token ends the session.
func (m *Model) adminFailure(what string, err error) tea.Cmd {
	log.Printf("[admin] %s failed: %v", what, err)
	if api.IsUnauthorized(err) {
		m.state.Popup = "Your session has expired. Log in again."
		return m.logout()
	}
	m.state.Popup = fmt.Sprintf("%s failed: %s", what, api.ErrorMessage(err))
	return nil
}

// showPager hands the terminal to ov until the user leaves it
func (m *Model) showPager(what, content string) tea.Cmd {
	send := m.send
	pager := m.pager
	return func() tea.Msg {
		send(pauseRenderingMsg{})
		err := pager.Show(content)
		send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return api.ErrorMessage(err)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.state
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case suggestTriggerMsg:
		pane := s.PaneFor(msg.target)
		seq := pane.Suggestions.Begin(msg.field)
		return m, m.cmdExecutor.Suggest(msg.target, msg.field, msg.query, m.suggestLimit(msg.target), seq)

	case commands.SuggestionsMsg:
		pane := s.PaneFor(msg.Target)
		if pane.Suggestions.Deliver(msg.Field, msg.Seq, msg.Items) && pane.Field == msg.Field {
			pane.Pick = -1
		}
		return m, nil

	case commands.PageLoadedMsg:
		pane := s.PaneFor(msg.Target)
		if pane.Results.Complete(msg.Seq, msg.Page, msg.Err) && msg.Err != nil {
			log.Printf("[jobs] %s page failed: %v", msg.Target, msg.Err)
		}
		return m, nil

	case commands.DashboardMsg:
		s.DashboardLoad.Finish(errText(msg.Err))
		if msg.Err == nil {
			d := msg.Dashboard
			s.Dashboard = &d
		}
		return m, nil

	case commands.AnalyticsMsg:
		s.AnalyticsLoad.Finish(errText(msg.Err))
		if msg.Err == nil {
			r := msg.Report
			s.Analytics = &r
		}
		return m, nil

	case commands.Top30Msg:
		s.Top30Load.Finish(errText(msg.Err))
		if msg.Err == nil {
			s.Top30 = msg.Jobs
			s.Top30Offset = 0
		}
		return m, nil

	case commands.SourcesMsg:
		s.SourcesLoad.Finish(errText(msg.Err))
		if msg.Err == nil {
			r := msg.Report
			s.Sources = &r
		}
		return m, nil

	case commands.LoginMsg:
		s.Login.Busy = false
		if msg.Err != nil {
			// the backend detail is shown as is
			s.Login.Err = api.ErrorMessage(msg.Err)
			log.Printf("[session] login failed: %v", msg.Err)
			return m, nil
		}
		return m, m.eventHandler.HandleEvent(eventbus.LoggedInEvent{Username: msg.Username})

	case commands.AdminSettingsMsg:
		s.Admin.SettingsLoad.Finish(errText(msg.Err))
		if msg.Err != nil {
			if api.IsUnauthorized(msg.Err) {
				return m, m.adminFailure("Loading settings", msg.Err)
			}
			return m, nil
		}
		settings := msg.Settings
		s.Admin.Settings = &settings
		return m, nil

	case commands.AdminLogsMsg:
		s.Admin.LogsLoad.Finish(errText(msg.Err))
		if msg.Err != nil {
			if api.IsUnauthorized(msg.Err) {
				return m, m.adminFailure("Loading logs", msg.Err)
			}
			return m, nil
		}
		s.Admin.Logs = msg.Lines
		return m, nil

	case logsTickMsg:
		if msg.gen != m.logsGen || !s.LoggedIn || s.ActiveTab != state.TabAdmin {
			return m, nil
		}
		return m, tea.Batch(m.cmdExecutor.LoadAdminLogs(), m.logsTick(msg.gen))

	case commands.AdminActionMsg:
		s.Admin.Busy = ""
		if msg.Err != nil {
			return m, m.adminFailure(strings.TrimSuffix(pendingLabel(msg.Action), "..."), msg.Err)
		}
		if msg.Settings != nil {
			settings := *msg.Settings
			s.Admin.Settings = &settings
		}
		s.SetStatus(msg.Status)
		return m, m.cmdExecutor.LoadAdminLogs()

	case commands.SalaryParsedMsg:
		// ignore replies for a salary that has since been edited
		if strings.TrimSpace(s.Admin.JobForm.Value(state.JobSalary)) != msg.Raw {
			return m, nil
		}
		switch {
		case msg.Err != nil:
			s.Admin.ParsedSalary = nil
			s.Admin.ParseErr = api.ErrorMessage(msg.Err)
		case msg.Value == nil:
			s.Admin.ParsedSalary = nil
			s.Admin.ParseErr = "could not parse salary"
		default:
			s.Admin.ParsedSalary = msg.Value
			s.Admin.ParseErr = ""
		}
		return m, nil

	case commands.JobCreatedMsg:
		s.Admin.Busy = ""
		s.Admin.JobForm.Busy = false
		if msg.Err != nil {
			return m, m.adminFailure("Saving job", msg.Err)
		}
		s.Admin.JobForm.Reset()
		s.Admin.ParsedSalary = nil
		s.Admin.ParseErr = ""
		s.Admin.ShowJobForm = false
		s.SetStatus(fmt.Sprintf("Job #%d created", msg.Job.ID))
		return m, nil

	case commands.ExportMsg:
		s.Exporting = false
		if msg.Err != nil {
			s.SetError("Export failed: " + api.ErrorMessage(msg.Err))
			return m, nil
		}
		s.SetStatus(fmt.Sprintf("Exported %d jobs to %s", msg.Result.Rows, msg.Result.Path))
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
			if msg.what == "logs" {
				s.SetError(fmt.Sprintf("Could not open the log pager: %v", msg.err))
			}
		}
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() should handle the actual resuming
		m.inPagerMode = false
		return m, nil

	case handlers.ClearStatusMsg:
		if s.StatusMessage == msg.Message {
			s.StatusMessage = ""
			s.StatusIsError = false
		}
		return m, nil

	case quitMsg:
		for _, g := range m.gates {
			g.Stop()
		}
		if msg.saveConfig && m.bus != nil {
			m.bus.Publish(eventbus.ConfigChangedEvent{
				PageSize:   s.Jobs.Filter.PerPage(),
				DefaultTab: s.ActiveTab.String(),
			})
		}
		return m, tea.Quit

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}
