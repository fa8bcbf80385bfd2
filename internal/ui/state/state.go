package state

import (
	"strings"

	"jobdash/internal/domain"
	"jobdash/internal/search"
)

// Tab identifies one screen of the dashboard
type Tab int

const (
	TabDashboard Tab = iota
	TabAnalytics
	TabTop30
	TabSources
	TabSearch
	TabJobs
	TabAdmin
	TabLogin
)

// AllTabs lists every tab in display order
var AllTabs = []Tab{TabDashboard, TabAnalytics, TabTop30, TabSources, TabSearch, TabJobs, TabAdmin, TabLogin}

func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "dashboard"
	case TabAnalytics:
		return "analytics"
	case TabTop30:
		return "top30"
	case TabSources:
		return "sources"
	case TabSearch:
		return "search"
	case TabJobs:
		return "jobs"
	case TabAdmin:
		return "admin"
	case TabLogin:
		return "login"
	}
	return "unknown"
}

// Title is the label shown in the tab bar
func (t Tab) Title(loggedIn bool) string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabAnalytics:
		return "Analytics"
	case TabTop30:
		return "Top 30"
	case TabSources:
		return "Sources"
	case TabSearch:
		return "Search"
	case TabJobs:
		return "Jobs"
	case TabAdmin:
		return "Admin"
	case TabLogin:
		if loggedIn {
			return "Logout"
		}
		return "Login"
	}
	return "?"
}

// ParseTab maps a tab name from config or flags to a Tab. Unknown names
// fall back to the dashboard.
func ParseTab(s string) Tab {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllTabs {
		if t.String() == s {
			return t
		}
	}
	return TabDashboard
}

// Load tracks one asynchronous fetch for a read-only tab
type Load struct {
	Loading bool
	Loaded  bool
	Err     string
}

// Start marks the fetch as in flight
func (l *Load) Start() {
	l.Loading = true
	l.Err = ""
}

// Finish records the outcome of the fetch
func (l *Load) Finish(errMsg string) {
	l.Loading = false
	l.Loaded = errMsg == ""
	l.Err = errMsg
}

// Form is a small multi-field text form
type Form struct {
	Labels []string
	Values []string
	Focus  int
	Err    string
	Busy   bool
}

// NewForm creates an empty form with the given field labels
func NewForm(labels ...string) Form {
	return Form{Labels: labels, Values: make([]string, len(labels))}
}

// Value returns the value of field i
func (f *Form) Value(i int) string {
	if i < 0 || i >= len(f.Values) {
		return ""
	}
	return f.Values[i]
}

// SetFocused replaces the value of the focused field
func (f *Form) SetFocused(v string) {
	if f.Focus >= 0 && f.Focus < len(f.Values) {
		f.Values[f.Focus] = v
	}
}

// MoveFocus cycles the focused field by delta
func (f *Form) MoveFocus(delta int) {
	n := len(f.Values)
	if n == 0 {
		return
	}
	f.Focus = ((f.Focus+delta)%n + n) % n
}

// Reset clears every value and the error
func (f *Form) Reset() {
	for i := range f.Values {
		f.Values[i] = ""
	}
	f.Focus = 0
	f.Err = ""
	f.Busy = false
}

// Login form fields
const (
	LoginUsername = iota
	LoginPassword
)

// Add job form fields
const (
	JobTitle = iota
	JobCompany
	JobSalary
	JobLocation
	JobLevel
)

// PendingAction is an admin call waiting for confirmation
type PendingAction int

const (
	PendingNone PendingAction = iota
	PendingToggleCrawl
	PendingImport
	PendingCrawl
	PendingLogout
)

// Prompt is the confirmation question for the action
func (p PendingAction) Prompt(crawlEnabled bool) string {
	switch p {
	case PendingToggleCrawl:
		if crawlEnabled {
			return "Disable crawling?"
		}
		return "Enable crawling?"
	case PendingImport:
		return "Run the CSV import now?"
	case PendingCrawl:
		return "Start a crawl now?"
	case PendingLogout:
		return "Log out?"
	}
	return ""
}

// SearchPane is the state behind a tab with a job query, results and autocomplete
type SearchPane struct {
	Filter      *search.FilterState
	Results     *search.Paginator
	Suggestions *search.SuggestionBox
	Field       domain.Field
	Pick        int // highlighted suggestion, -1 for none
}

// NewSearchPane creates an idle pane
func NewSearchPane(perPage int, sort search.Sort) *SearchPane {
	return &SearchPane{
		Filter:      search.NewFilterState(perPage, sort),
		Results:     search.NewPaginator(),
		Suggestions: search.NewSuggestionBox(),
		Field:       domain.FieldTitle,
		Pick:        -1,
	}
}

// CurrentSuggestions returns the list shown under the focused field
func (p *SearchPane) CurrentSuggestions() []string {
	return p.Suggestions.Get(p.Field)
}

// MovePick moves the suggestion highlight, wrapping to none past either end
func (p *SearchPane) MovePick(delta int) {
	n := len(p.CurrentSuggestions())
	if n == 0 {
		p.Pick = -1
		return
	}
	next := p.Pick + delta
	if next < -1 {
		next = n - 1
	}
	if next >= n {
		next = -1
	}
	p.Pick = next
}

// PickedSuggestion returns the highlighted suggestion
func (p *SearchPane) PickedSuggestion() (string, bool) {
	list := p.CurrentSuggestions()
	if p.Pick < 0 || p.Pick >= len(list) {
		return "", false
	}
	return list[p.Pick], true
}

// AdminState holds the admin panel
type AdminState struct {
	Settings     *domain.AdminSettings
	SettingsLoad Load
	Logs         []string
	LogsLoad     Load
	Busy         string
	JobForm      Form
	ParsedSalary *float64
	ParseErr     string
	ShowJobForm  bool
}

// AppState contains all the application state
type AppState struct {
	ActiveTab Tab
	Username  string
	LoggedIn  bool

	// Read-only tabs
	Dashboard     *domain.Dashboard
	DashboardLoad Load
	Analytics     *domain.AnalyticsReport
	AnalyticsLoad Load
	Top30         []domain.TopJob
	Top30Load     Load
	Top30Offset   int
	Sources       *domain.SourcesReport
	SourcesLoad   Load

	// Tabs with a job table
	Search *SearchPane
	Jobs   *SearchPane

	Admin AdminState
	Login Form

	Pending PendingAction

	// UI state
	StatusMessage string
	StatusIsError bool
	Popup         string
	Exporting     bool

	// SortPick is the highlighted row of the sort picker, -1 when closed
	SortPick int
}

// NewAppState creates a new application state
func NewAppState(perPage int) *AppState {
	return &AppState{
		ActiveTab: TabDashboard,
		Search:    NewSearchPane(perPage, search.Sort{}),
		Jobs:      NewSearchPane(perPage, search.DefaultSort),
		Admin:     AdminState{JobForm: NewForm("Title", "Company", "Salary", "Location", "Level")},
		Login:     NewForm("Username", "Password"),
		SortPick:  -1,
	}
}

// VisibleTabs is the tab bar; Admin only appears once logged in
func (s *AppState) VisibleTabs() []Tab {
	tabs := make([]Tab, 0, len(AllTabs))
	for _, t := range AllTabs {
		if t == TabAdmin && !s.LoggedIn {
			continue
		}
		tabs = append(tabs, t)
	}
	return tabs
}

// CycleTab moves the active tab by delta among the visible tabs
func (s *AppState) CycleTab(delta int) Tab {
	tabs := s.VisibleTabs()
	idx := 0
	for i, t := range tabs {
		if t == s.ActiveTab {
			idx = i
		}
	}
	idx = ((idx+delta)%len(tabs) + len(tabs)) % len(tabs)
	s.ActiveTab = tabs[idx]
	return s.ActiveTab
}

// SetTab activates t if it is visible. It returns false otherwise.
func (s *AppState) SetTab(t Tab) bool {
	for _, v := range s.VisibleTabs() {
		if v == t {
			s.ActiveTab = t
			return true
		}
	}
	return false
}

// Pane returns the search pane of the active tab, if it has one
func (s *AppState) Pane() (*SearchPane, bool) {
	switch s.ActiveTab {
	case TabSearch:
		return s.Search, true
	case TabJobs:
		return s.Jobs, true
	}
	return nil, false
}

// PaneFor returns the search pane belonging to tab
func (s *AppState) PaneFor(t Tab) *SearchPane {
	if t == TabJobs {
		return s.Jobs
	}
	return s.Search
}

// SetStatus shows an informational message in the status bar
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error in the status bar
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// SignedIn records a successful login
func (s *AppState) SignedIn(username string) {
	s.LoggedIn = true
	s.Username = username
	s.Login.Reset()
}

// SignedOut drops everything tied to the admin session
func (s *AppState) SignedOut() {
	s.LoggedIn = false
	s.Username = ""
	s.Admin = AdminState{JobForm: NewForm("Title", "Company", "Salary", "Location", "Level")}
	if s.ActiveTab == TabAdmin {
		s.ActiveTab = TabLogin
	}
}
