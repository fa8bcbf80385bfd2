package commands

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"jobdash/internal/domain"
	"jobdash/internal/eventbus"
	"jobdash/internal/export"
	"jobdash/internal/search"
	"jobdash/internal/session"
	"jobdash/internal/ui/state"
)

// Analytics tab sizes
const (
	DashboardLocations  = 10
	AnalyticsLocations  = 10
	AnalyticsSkills     = 15
	AnalyticsCompanies  = 12
	AnalyticsTitles     = 10
	DistributionBins    = 12
	TrendingDays        = 30
	TrendingLimit       = 15
	DefaultLogLines     = 100
	defaultCallDeadline = 30 * time.Second
)

// Options tune the executor
type Options struct {
	LogLines    int
	ExportLimit int
	// Deadline bounds every call on top of the client's own timeout
	Deadline time.Duration
}

// Executor turns UI intents into tea.Cmds that call the backend
type Executor struct {
	backend   Backend
	sessions  *session.Manager
	bus       eventbus.EventBus
	suggester *search.Suggester
	opts      Options
}

// NewExecutor creates a new command executor
func NewExecutor(backend Backend, sessions *session.Manager, bus eventbus.EventBus, opts Options) *Executor {
	if opts.LogLines <= 0 {
		opts.LogLines = DefaultLogLines
	}
	if opts.ExportLimit <= 0 {
		opts.ExportLimit = export.DefaultLimit
	}
	if opts.Deadline <= 0 {
		opts.Deadline = defaultCallDeadline
	}
	return &Executor{
		backend:   backend,
		sessions:  sessions,
		bus:       bus,
		suggester: search.NewSuggester(backend),
		opts:      opts,
	}
}

func (e *Executor) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), e.opts.Deadline)
}

func (e *Executor) auth() session.Auth {
	if e.sessions == nil {
		return session.Anonymous
	}
	return e.sessions.Current()
}

func (e *Executor) publish(ev eventbus.DomainEvent) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

// LoadPage fetches the page described by q. seq comes from Paginator.Begin.
func (e *Executor) LoadPage(target state.Tab, seq uint64, q search.JobQuery) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()
		page, err := e.backend.ListJobs(ctx, q.Values())
		return PageLoadedMsg{Target: target, Seq: seq, Page: page, Err: err}
	}
}

// Suggest fetches autocomplete candidates. It never fails: errors become an empty list.
func (e *Executor) Suggest(target state.Tab, field domain.Field, query string, limit int, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()
		items := e.suggester.Fetch(ctx, field, query, limit)
		return SuggestionsMsg{Target: target, Field: field, Seq: seq, Items: items}
	}
}

// LoadDashboard fetches the three landing page series concurrently
func (e *Executor) LoadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()

		var d domain.Dashboard
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			d.SalaryValues, err = e.backend.SalaryValues(gctx)
			return err
		})
		g.Go(func() (err error) {
			d.ByLocation, err = e.backend.ByLocation(gctx, DashboardLocations)
			return err
		})
		g.Go(func() (err error) {
			d.ByLevel, err = e.backend.ByLevel(gctx)
			return err
		})
		err := g.Wait()
		return DashboardMsg{Dashboard: d, Err: err}
	}
}

// LoadAnalytics fetches every advanced analytics endpoint concurrently
func (e *Executor) LoadAnalytics() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()

		var r domain.AnalyticsReport
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			r.Stats, err = e.backend.SalaryStats(gctx)
			return err
		})
		g.Go(func() (err error) {
			r.ByLevel, err = e.backend.SalaryByLevel(gctx)
			return err
		})
		g.Go(func() (err error) {
			r.ByLocation, err = e.backend.SalaryByLocation(gctx, AnalyticsLocations)
			return err
		})
		g.Go(func() (err error) {
			r.TopSkills, err = e.backend.TopSkills(gctx, AnalyticsSkills)
			return err
		})
		g.Go(func() (err error) {
			r.Companies, err = e.backend.CompanyAnalysis(gctx, AnalyticsCompanies)
			return err
		})
		g.Go(func() (err error) {
			r.Titles, err = e.backend.TitleSalaryInsights(gctx, AnalyticsTitles)
			return err
		})
		g.Go(func() (err error) {
			r.Distribution, err = e.backend.SalaryDistribution(gctx, DistributionBins)
			return err
		})
		err := g.Wait()
		return AnalyticsMsg{Report: r, Err: err}
	}
}

// LoadTop30 is a single bulk fetch, there is no paging
func (e *Executor) LoadTop30() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()
		jobs, err := e.backend.Top30Jobs(ctx)
		return Top30Msg{Jobs: jobs, Err: err}
	}
}

// LoadSources fetches overview, sources and trending jobs concurrently
func (e *Executor) LoadSources() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()

		var r domain.SourcesReport
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			r.Overview, err = e.backend.MarketOverview(gctx)
			return err
		})
		g.Go(func() (err error) {
			r.Sources, err = e.backend.DataSources(gctx)
			return err
		})
		g.Go(func() (err error) {
			r.Trending, err = e.backend.TrendingJobs(gctx, TrendingDays, TrendingLimit)
			return err
		})
		err := g.Wait()
		return SourcesMsg{Report: r, Err: err}
	}
}

// Login exchanges credentials for a token through the session manager
func (e *Executor) Login(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()
		err := e.sessions.Login(ctx, e.backend, username, password)
		return LoginMsg{Username: username, Err: err}
	}
}

func (e *Executor) LoadAdminSettings() tea.Cmd {
	auth := e.auth()
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()
		s, err := e.backend.AdminSettings(ctx, auth)
		return AdminSettingsMsg{Settings: s, Err: err}
	}
}

func (e *Executor) LoadAdminLogs() tea.Cmd {
	auth := e.auth()
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()
		lines, err := e.backend.AdminLogs(ctx, auth, e.opts.LogLines)
		return AdminLogsMsg{Lines: lines, Err: err}
	}
}

// RunAdminAction performs a confirmed toggle, import or crawl
func (e *Executor) RunAdminAction(action state.PendingAction, crawlEnabled bool) tea.Cmd {
	auth := e.auth()
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()

		msg := AdminActionMsg{Action: action}
		switch action {
		case state.PendingToggleCrawl:
			s, err := e.backend.ToggleCrawl(ctx, auth, !crawlEnabled)
			if err != nil {
				msg.Err = err
				break
			}
			msg.Settings = &s
			msg.Status = "crawl disabled"
			if s.Enabled() {
				msg.Status = "crawl enabled"
			}
		case state.PendingImport:
			st, err := e.backend.TriggerImport(ctx, auth)
			msg.Status, msg.Err = st.Status, err
		case state.PendingCrawl:
			st, err := e.backend.TriggerCrawl(ctx, auth)
			msg.Status, msg.Err = st.Status, err
		default:
			return nil
		}

		if msg.Err == nil {
			log.Printf("[admin] %s done: %s", actionName(action), msg.Status)
			e.publish(eventbus.AdminActionCompletedEvent{Action: actionName(action), Status: msg.Status})
		}
		return msg
	}
}

func actionName(a state.PendingAction) string {
	switch a {
	case state.PendingToggleCrawl:
		return "toggle_crawl"
	case state.PendingImport:
		return "import"
	case state.PendingCrawl:
		return "crawl"
	}
	return "unknown"
}

// ParseSalary asks the backend to interpret a raw salary string
func (e *Executor) ParseSalary(raw string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()
		v, err := e.backend.ParseSalary(ctx, raw)
		return SalaryParsedMsg{Raw: raw, Value: v, Err: err}
	}
}

// CreateJob submits a manual job entry
func (e *Executor) CreateJob(job domain.NewJob) tea.Cmd {
	auth := e.auth()
	return func() tea.Msg {
		ctx, cancel := e.ctx()
		defer cancel()
		created, err := e.backend.CreateJob(ctx, auth, job)
		if err == nil {
			e.publish(eventbus.JobCreatedEvent{ID: created.ID, Title: job.Title})
		}
		return JobCreatedMsg{Job: created, Err: err}
	}
}

// Export writes an unpaged workbook of the jobs matching q, company and skills included
func (e *Executor) Export(path string, q search.JobQuery) tea.Cmd {
	limit := e.opts.ExportLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*e.opts.Deadline)
		defer cancel()
		res, err := export.Export(ctx, e.backend, path, export.Options{Limit: limit, Query: q.Values(), Criteria: q.Criteria})
		return ExportMsg{Result: res, Err: err}
	}
}
