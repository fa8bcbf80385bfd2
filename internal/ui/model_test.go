package ui

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdash/internal/api"
	"jobdash/internal/config"
	"jobdash/internal/domain"
	"jobdash/internal/eventbus"
	"jobdash/internal/session"
	inputtypes "jobdash/internal/ui/input/types"
	"jobdash/internal/ui/state"
)

func ptr(v float64) *float64 { return &v }

type fakeBackend struct {
	mu sync.Mutex

	listQueries []url.Values
	page        domain.PageResult
	listErr     error

	suggestCalls []string
	suggestions  []string

	loginToken string
	loginErr   error

	settings    domain.AdminSettings
	settingsErr error
	toggledTo   []bool
	importErr   error
	logs        []string
	logsErr     error
	created     []domain.NewJob
	authSeen    []session.Auth
}

func (f *fakeBackend) ListJobs(_ context.Context, q url.Values) (domain.PageResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listQueries = append(f.listQueries, q)
	return f.page, f.listErr
}

func (f *fakeBackend) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.listQueries) == 0 {
		return nil
	}
	return f.listQueries[len(f.listQueries)-1]
}

func (f *fakeBackend) Suggestions(_ context.Context, field domain.Field, q string, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suggestCalls = append(f.suggestCalls, field.String()+":"+q)
	return f.suggestions, nil
}

func (f *fakeBackend) ParseSalary(_ context.Context, raw string) (*float64, error) {
	if raw == "negotiable" {
		return nil, &api.ParseSalaryError{Message: "Could not parse salary"}
	}
	return ptr(25), nil
}

func (f *fakeBackend) SalaryValues(context.Context) ([]float64, error) {
	return []float64{10, 20, 20, 35, 60}, nil
}

func (f *fakeBackend) ByLocation(context.Context, int) ([]domain.SeriesPoint, error) {
	return []domain.SeriesPoint{{Label: "Ha Noi", AvgSalary: 30}, {Label: "Da Nang", AvgSalary: 22}}, nil
}

func (f *fakeBackend) ByLevel(context.Context) ([]domain.SeriesPoint, error) {
	return []domain.SeriesPoint{{Label: "Senior", AvgSalary: 45}}, nil
}

func (f *fakeBackend) SalaryStats(context.Context) (domain.SalaryStats, error) {
	return domain.SalaryStats{Count: 5, Min: 10, Max: 60, Avg: 29, Median: 20}, nil
}

func (f *fakeBackend) SalaryByLevel(context.Context) ([]domain.LevelSalary, error) {
	return []domain.LevelSalary{{Level: "Junior", Count: 3, AvgSalary: 12}}, nil
}

func (f *fakeBackend) SalaryByLocation(context.Context, int) ([]domain.LocationSalary, error) {
	return []domain.LocationSalary{{Location: "Ho Chi Minh", Count: 9, AvgSalary: 31}}, nil
}

func (f *fakeBackend) TopSkills(context.Context, int) ([]domain.SkillStat, error) {
	return []domain.SkillStat{{Skill: "Go", Frequency: 4, AvgSalary: 40}}, nil
}

func (f *fakeBackend) CompanyAnalysis(context.Context, int) ([]domain.CompanyStat, error) {
	return []domain.CompanyStat{{Company: "FPT", JobCount: 7, AvgSalary: 25}}, nil
}

func (f *fakeBackend) TitleSalaryInsights(context.Context, int) ([]domain.TitleSalary, error) {
	return []domain.TitleSalary{{Title: "Backend Developer", Count: 2, AvgSalary: 33}}, nil
}

func (f *fakeBackend) SalaryDistribution(context.Context, int) ([]domain.DistributionBin, error) {
	return []domain.DistributionBin{{Bin: "0-10", Count: 1}, {Bin: "10-20", Count: 4}}, nil
}

func (f *fakeBackend) MarketOverview(context.Context) (domain.MarketOverview, error) {
	return domain.MarketOverview{TotalJobs: 1200, JobsWithSalary: 800, DataCompleteness: 66.7}, nil
}

func (f *fakeBackend) DataSources(context.Context) ([]domain.SourceStat, error) {
	return []domain.SourceStat{{Source: "topcv", Count: 700, AvgSalary: ptr(21.5), LastCrawled: "2026-10-17T08:00:00"}}, nil
}

func (f *fakeBackend) TrendingJobs(context.Context, int, int) ([]domain.TrendingJob, error) {
	return []domain.TrendingJob{{ID: 1, Title: "Go Engineer", Company: "VNG", Salary: ptr(50), CrawledAt: "2026-10-16 09:30:00"}}, nil
}

func (f *fakeBackend) Top30Jobs(context.Context) ([]domain.TopJob, error) {
	jobs := make([]domain.TopJob, 30)
	for i := range jobs {
		jobs[i] = domain.TopJob{ID: i + 1, Title: "Job", Company: "Co", Salary: ptr(float64(100 - i))}
	}
	return jobs, nil
}

func (f *fakeBackend) Login(_ context.Context, username, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeBackend) AdminSettings(_ context.Context, auth session.Auth) (domain.AdminSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authSeen = append(f.authSeen, auth)
	return f.settings, f.settingsErr
}

func (f *fakeBackend) ToggleCrawl(_ context.Context, _ session.Auth, enabled bool) (domain.AdminSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggledTo = append(f.toggledTo, enabled)
	if enabled {
		f.settings.CrawlEnabled = 1
	} else {
		f.settings.CrawlEnabled = 0
	}
	return f.settings, nil
}

func (f *fakeBackend) TriggerImport(context.Context, session.Auth) (domain.ActionStatus, error) {
	return domain.ActionStatus{Status: "import started"}, f.importErr
}

func (f *fakeBackend) TriggerCrawl(context.Context, session.Auth) (domain.ActionStatus, error) {
	return domain.ActionStatus{Status: "crawl started"}, nil
}

func (f *fakeBackend) AdminLogs(context.Context, session.Auth, int) ([]string, error) {
	return f.logs, f.logsErr
}

func (f *fakeBackend) CreateJob(_ context.Context, _ session.Auth, job domain.NewJob) (domain.CreatedJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, job)
	return domain.CreatedJob{ID: 501, Status: "created"}, nil
}

type harness struct {
	t     *testing.T
	m     *Model
	be    *fakeBackend
	sess  *session.Manager
	sends chan tea.Msg
}

func newHarness(t *testing.T, be *fakeBackend, token string) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Search.DebounceMillis = 20

	store := &session.MemoryStore{}
	if token != "" {
		require.NoError(t, store.Save(token))
	}
	sess, err := session.NewManager(store, nil)
	require.NoError(t, err)

	h := &harness{t: t, be: be, sess: sess, sends: make(chan tea.Msg, 64)}
	h.m = NewModel(cfg, be, sess, nil)
	h.m.send = func(msg tea.Msg) { h.sends <- msg }
	h.m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// run executes cmd and returns the messages it produced. Commands that
// block on a timer (ticks, cursor blinks) are abandoned.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, run(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// settle feeds the output of cmd back into the model until it goes quiet
func (h *harness) settle(cmd tea.Cmd) {
	for depth := 0; depth < 6 && cmd != nil; depth++ {
		var next []tea.Cmd
		for _, msg := range run(cmd) {
			if _, ok := msg.(spinner.TickMsg); ok {
				continue
			}
			_, c := h.m.Update(msg)
			next = append(next, c)
		}
		cmd = tea.Batch(next...)
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		_, cmd := h.m.Update(keyMsg(k))
		h.settle(cmd)
	}
}

// typeText feeds runes without settling, so cursor blinks don't stretch
// the gap between keystrokes past the debounce window
func (h *harness) typeText(s string) {
	for _, r := range s {
		h.m.Update(keyMsg(string(r)))
	}
}

func jobs(n int) []domain.Job {
	out := make([]domain.Job, n)
	for i := range out {
		out[i] = domain.Job{ID: i + 1, Title: "Developer", Company: "Acme", Skills: "Go"}
	}
	return out
}

func TestSearchTabLoadsFirstPageOnVisit(t *testing.T) {
	be := &fakeBackend{page: domain.PageResult{Items: jobs(12), Total: 12}}
	h := newHarness(t, be, "")

	h.press("5")

	s := h.m.State()
	require.Equal(t, state.TabSearch, s.ActiveTab)
	assert.Equal(t, url.Values{"page": {"1"}, "per_page": {"20"}}, be.lastQuery())
	assert.Len(t, s.Search.Results.Rows(), 12)
	assert.False(t, s.Search.Results.HasNextPage())

	// paging forward is refused when everything fits on one page
	h.press("n")
	assert.Len(t, be.listQueries, 1)
}

func TestTypingDebouncesSuggestionsAndEnterSearches(t *testing.T) {
	be := &fakeBackend{
		page:        domain.PageResult{Items: jobs(3), Total: 3},
		suggestions: []string{"developer", "devops engineer"},
	}
	h := newHarness(t, be, "")
	h.press("5")

	h.press("/")
	require.Equal(t, inputtypes.ModeEditField, h.m.inputHandler.CurrentMode())
	h.typeText("dev")
	assert.Equal(t, "dev", h.m.State().Search.Filter.Criteria().Title)

	var trigger tea.Msg
	select {
	case trigger = <-h.sends:
	case <-time.After(time.Second):
		t.Fatal("debounced suggestion never fired")
	}
	assert.Equal(t, suggestTriggerMsg{target: state.TabSearch, field: domain.FieldTitle, query: "dev"}, trigger)
	select {
	case extra := <-h.sends:
		t.Fatalf("unexpected second trigger %#v", extra)
	case <-time.After(100 * time.Millisecond):
	}

	_, cmd := h.m.Update(trigger)
	h.settle(cmd)
	assert.Equal(t, []string{"title:dev"}, be.suggestCalls)
	assert.Equal(t, []string{"developer", "devops engineer"}, h.m.State().Search.CurrentSuggestions())

	h.press("down", "down", "enter")
	assert.Equal(t, inputtypes.ModeNormal, h.m.inputHandler.CurrentMode())
	assert.Equal(t, "devops engineer", be.lastQuery().Get("title"))
	assert.Empty(t, h.m.State().Search.CurrentSuggestions())
}

func TestTabCyclesSearchFields(t *testing.T) {
	be := &fakeBackend{}
	h := newHarness(t, be, "")
	h.press("5", "/")

	h.press("tab")
	assert.Equal(t, domain.FieldCompany, h.m.State().Search.Field)
	h.typeText("FPT")
	h.press("esc")

	s := h.m.State().Search
	assert.Equal(t, "FPT", s.Filter.Criteria().Company)
	assert.True(t, s.Filter.Dirty())
	// company never goes to the server
	h.press("enter", "enter")
	assert.Empty(t, be.lastQuery().Get("company"))
	assert.False(t, s.Filter.Dirty())
}

func TestSalaryKeysNarrowTheRange(t *testing.T) {
	be := &fakeBackend{}
	h := newHarness(t, be, "")
	h.press("5")

	h.press("]", "]", "{")
	q := be.lastQuery()
	assert.Equal(t, "10", q.Get("min_salary"))
	assert.Equal(t, "145", q.Get("max_salary"))
	assert.Equal(t, "1", q.Get("page"))
}

func TestJobsTabSortsAndPages(t *testing.T) {
	be := &fakeBackend{page: domain.PageResult{Items: jobs(20), Total: 143}}
	h := newHarness(t, be, "")
	h.press("6")

	q := be.lastQuery()
	assert.Equal(t, "avg_salary", q.Get("sort_by"))
	assert.Equal(t, "desc", q.Get("sort_dir"))

	h.press("n")
	assert.Equal(t, "2", be.lastQuery().Get("page"))

	h.press("r")
	q = be.lastQuery()
	assert.Equal(t, "asc", q.Get("sort_dir"))
	assert.Equal(t, "1", q.Get("page"))

	h.press("s")
	assert.Equal(t, "title", be.lastQuery().Get("sort_by"))

	h.press("+")
	assert.Equal(t, "50", be.lastQuery().Get("per_page"))
}

func TestSortPickerPreviewsAndRestores(t *testing.T) {
	be := &fakeBackend{page: domain.PageResult{Items: jobs(5), Total: 5}}
	h := newHarness(t, be, "")
	h.press("6", "S")
	require.Equal(t, inputtypes.ModeSort, h.m.inputHandler.CurrentMode())
	assert.Equal(t, 0, h.m.State().SortPick)
	assert.Contains(t, h.m.View(), "Sort by (desc)")

	h.press("down")
	assert.Equal(t, "title", be.lastQuery().Get("sort_by"))
	assert.Equal(t, "desc", be.lastQuery().Get("sort_dir"))

	h.press("esc")
	assert.Equal(t, inputtypes.ModeNormal, h.m.inputHandler.CurrentMode())
	assert.Equal(t, "avg_salary", be.lastQuery().Get("sort_by"))
	assert.Equal(t, -1, h.m.State().SortPick)

	h.press("S", "down", "down", "enter")
	assert.Equal(t, "company", be.lastQuery().Get("sort_by"))
	assert.Equal(t, "company", h.m.State().Jobs.Filter.Sort().Column)
	assert.NotContains(t, h.m.View(), "Sort by")
}

func TestLoginFailureShowsBackendDetail(t *testing.T) {
	be := &fakeBackend{loginErr: &api.APIError{StatusCode: 401, Detail: "Incorrect username or password"}}
	h := newHarness(t, be, "")

	h.press("8", "enter")
	require.Equal(t, inputtypes.ModeForm, h.m.inputHandler.CurrentMode())
	h.typeText("admin")
	h.press("enter")
	h.typeText("wrong")
	h.press("enter")

	s := h.m.State()
	assert.False(t, s.LoggedIn)
	assert.Equal(t, "Incorrect username or password", s.Login.Err)
	assert.False(t, h.sess.Current().IsAdmin())
	assert.NotContains(t, s.VisibleTabs(), state.TabAdmin)
}

func TestLoginSuccessOpensAdminPanel(t *testing.T) {
	be := &fakeBackend{
		loginToken: "tok-1",
		settings:   domain.AdminSettings{CrawlEnabled: 1},
		logs:       []string{"crawler started", "42 jobs saved"},
	}
	h := newHarness(t, be, "")

	h.press("8", "enter")
	h.typeText("admin")
	h.press("enter")
	h.typeText("secret")
	assert.Equal(t, "secret", h.m.State().Login.Value(state.LoginPassword))
	h.press("enter")

	s := h.m.State()
	require.True(t, s.LoggedIn)
	assert.Equal(t, "admin", s.Username)
	assert.Equal(t, state.TabAdmin, s.ActiveTab)
	assert.Equal(t, session.Auth{Token: "tok-1"}, h.sess.Current())
	require.NotNil(t, s.Admin.Settings)
	assert.True(t, s.Admin.Settings.Enabled())
	assert.Equal(t, []string{"crawler started", "42 jobs saved"}, s.Admin.Logs)
	assert.Equal(t, session.Auth{Token: "tok-1"}, be.authSeen[len(be.authSeen)-1])
}

func TestLogoutAfterConfirmation(t *testing.T) {
	be := &fakeBackend{}
	h := newHarness(t, be, "tok-1")
	require.True(t, h.m.State().LoggedIn)

	h.press("8", "enter")
	require.Equal(t, inputtypes.ModeConfirm, h.m.inputHandler.CurrentMode())
	h.press("n")
	assert.True(t, h.m.State().LoggedIn)

	h.press("enter", "y")
	s := h.m.State()
	assert.False(t, s.LoggedIn)
	assert.Equal(t, session.Anonymous, h.sess.Current())
	assert.NotContains(t, s.VisibleTabs(), state.TabAdmin)
}

func TestToggleCrawlFlipsCurrentState(t *testing.T) {
	be := &fakeBackend{settings: domain.AdminSettings{CrawlEnabled: 1}}
	h := newHarness(t, be, "tok-1")

	h.press("7")
	require.Equal(t, state.TabAdmin, h.m.State().ActiveTab)

	h.press("t")
	assert.Contains(t, h.m.View(), "Disable crawling? (y/n)")

	h.press("y")
	assert.Equal(t, []bool{false}, be.toggledTo)
	assert.False(t, h.m.State().Admin.Settings.Enabled())
	assert.Equal(t, "crawl disabled", h.m.State().StatusMessage)
}

func TestFailedAdminActionBlocksWithPopup(t *testing.T) {
	be := &fakeBackend{importErr: &api.APIError{StatusCode: 409, Detail: "import already running"}}
	h := newHarness(t, be, "tok-1")
	h.press("7", "i", "y")

	s := h.m.State()
	assert.Equal(t, "Importing failed: import already running", s.Popup)
	assert.Empty(t, s.Admin.Busy)

	// q only dismisses while the popup is up
	_, cmd := h.m.Update(keyMsg("q"))
	assert.Nil(t, cmd)
	assert.Empty(t, s.Popup)
}

func TestRejectedTokenEndsSession(t *testing.T) {
	be := &fakeBackend{settingsErr: &api.APIError{StatusCode: 401, Detail: "Could not validate credentials"}}
	h := newHarness(t, be, "stale")
	h.press("7")

	s := h.m.State()
	assert.False(t, s.LoggedIn)
	assert.Equal(t, state.TabLogin, s.ActiveTab)
	assert.Contains(t, s.Popup, "session has expired")
	assert.Equal(t, session.Anonymous, h.sess.Current())
}

func TestAddJobWithParsedSalary(t *testing.T) {
	be := &fakeBackend{}
	h := newHarness(t, be, "tok-1")
	h.press("7", "a")
	require.Equal(t, inputtypes.ModeForm, h.m.inputHandler.CurrentMode())

	h.typeText("Go Dev")
	h.press("tab")
	h.typeText("Acme")
	h.press("tab")
	h.typeText("20-30tr")
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	h.settle(cmd)
	require.NotNil(t, h.m.State().Admin.ParsedSalary)
	assert.Equal(t, 25.0, *h.m.State().Admin.ParsedSalary)

	_, cmd = h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	h.settle(cmd)

	require.Len(t, be.created, 1)
	job := be.created[0]
	assert.Equal(t, "Go Dev", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "20-30tr", job.SalaryRaw)
	require.NotNil(t, job.AvgSalary)
	assert.False(t, h.m.State().Admin.ShowJobForm)
	assert.Equal(t, "Job #501 created", h.m.State().StatusMessage)
}

func TestAddJobRequiresTitleAndCompany(t *testing.T) {
	be := &fakeBackend{}
	h := newHarness(t, be, "tok-1")
	h.press("7", "a")
	h.typeText("Only a title")
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	h.settle(cmd)

	assert.Empty(t, be.created)
	assert.Equal(t, "title and company are required", h.m.State().Admin.JobForm.Err)
}

func TestStaleLogTicksAreDropped(t *testing.T) {
	be := &fakeBackend{}
	h := newHarness(t, be, "tok-1")
	h.press("7")
	gen := h.m.logsGen

	_, cmd := h.m.Update(logsTickMsg{gen: gen - 1})
	assert.Nil(t, cmd)

	h.press("1")
	_, cmd = h.m.Update(logsTickMsg{gen: gen})
	assert.Nil(t, cmd, "ticks stop once the admin tab is left")
}

func TestExportWritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	be := &fakeBackend{page: domain.PageResult{Items: jobs(4), Total: 4}}
	h := newHarness(t, be, "")
	h.m.now = func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) }
	h.press("6", "x")

	assert.Equal(t, "10000", be.lastQuery().Get("per_page"))
	assert.Equal(t, "Exported 4 jobs to jobs_export_2026-10-18.xlsx", h.m.State().StatusMessage)
	_, err := os.Stat(filepath.Join(dir, "jobs_export_2026-10-18.xlsx"))
	assert.NoError(t, err)
	assert.False(t, h.m.State().Exporting)
}

func TestExportKeepsCompanyFilter(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	items := jobs(4)
	items[1].Company = "Globex"
	items[3].Company = "Initech"
	be := &fakeBackend{page: domain.PageResult{Items: items, Total: 4}}
	h := newHarness(t, be, "")
	h.m.now = func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) }
	h.press("5")

	pane := h.m.State().Search
	pane.Filter.Update(domain.FieldCompany, "acme")
	pane.Filter.Search()
	h.press("x")

	assert.Empty(t, be.lastQuery().Get("company"))
	assert.Equal(t, "Exported 2 jobs to jobs_export_2026-10-18.xlsx", h.m.State().StatusMessage)
}

func TestPageErrorShowsDetail(t *testing.T) {
	be := &fakeBackend{listErr: &api.APIError{StatusCode: 400, Detail: "Invalid sort column"}}
	h := newHarness(t, be, "")
	h.press("6")

	res := h.m.State().Jobs.Results
	assert.Empty(t, res.Rows())
	assert.Contains(t, res.Summary(), "Invalid sort column")

	be.listErr = errors.New("connection refused")
	h.press("R")
	assert.Contains(t, res.Summary(), "connection refused")
}

func TestQuitPublishesSettings(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	got := make(chan eventbus.ConfigChangedEvent, 1)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ConfigChangedEvent)
	})

	cfg := config.DefaultConfig()
	m := NewModel(cfg, &fakeBackend{}, nil, bus)
	m.State().SetTab(state.TabJobs)
	m.State().Jobs.Filter.CyclePerPage(1)

	_, cmd := m.Update(quitMsg{saveConfig: true})
	require.NotNil(t, cmd)

	select {
	case e := <-got:
		assert.Equal(t, 50, e.PageSize)
		assert.Equal(t, "jobs", e.DefaultTab)
	case <-time.After(time.Second):
		t.Fatal("no ConfigChanged event")
	}
}

func TestEveryTabRenders(t *testing.T) {
	be := &fakeBackend{
		page:     domain.PageResult{Items: jobs(5), Total: 5},
		settings: domain.AdminSettings{CrawlEnabled: 0},
		logs:     []string{"line one"},
	}
	h := newHarness(t, be, "tok-1")

	for i, tab := range state.AllTabs {
		h.press(string(rune('1' + i)))
		view := h.m.View()
		assert.NotEmpty(t, view, tab.String())
		assert.Contains(t, view, tab.Title(true), tab.String())
	}

	h.press("1")
	assert.Contains(t, h.m.View(), "Average salary by location")
	h.press("4")
	assert.Contains(t, h.m.View(), "topcv")
	h.press("7")
	view := h.m.View()
	assert.Contains(t, view, "crawling disabled")
	assert.Contains(t, view, "line one")
}

func TestPopupCoversView(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, "")
	h.m.State().Popup = "Crawl failed: boom"
	view := h.m.View()
	assert.Contains(t, view, "Crawl failed: boom")
	assert.True(t, strings.Contains(view, "enter/esc to dismiss"))
}
