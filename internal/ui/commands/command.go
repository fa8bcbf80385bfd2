package commands

import (
	"context"
	"net/url"

	"jobdash/internal/domain"
	"jobdash/internal/export"
	"jobdash/internal/session"
	"jobdash/internal/ui/state"
)

// Backend is the part of the REST client the TUI talks to
type Backend interface {
	ListJobs(ctx context.Context, query url.Values) (domain.PageResult, error)
	Suggestions(ctx context.Context, field domain.Field, q string, limit int) ([]string, error)
	ParseSalary(ctx context.Context, raw string) (*float64, error)

	SalaryValues(ctx context.Context) ([]float64, error)
	ByLocation(ctx context.Context, topN int) ([]domain.SeriesPoint, error)
	ByLevel(ctx context.Context) ([]domain.SeriesPoint, error)

	SalaryStats(ctx context.Context) (domain.SalaryStats, error)
	SalaryByLevel(ctx context.Context) ([]domain.LevelSalary, error)
	SalaryByLocation(ctx context.Context, limit int) ([]domain.LocationSalary, error)
	TopSkills(ctx context.Context, limit int) ([]domain.SkillStat, error)
	CompanyAnalysis(ctx context.Context, limit int) ([]domain.CompanyStat, error)
	TitleSalaryInsights(ctx context.Context, limit int) ([]domain.TitleSalary, error)
	SalaryDistribution(ctx context.Context, bins int) ([]domain.DistributionBin, error)

	MarketOverview(ctx context.Context) (domain.MarketOverview, error)
	DataSources(ctx context.Context) ([]domain.SourceStat, error)
	TrendingJobs(ctx context.Context, days, limit int) ([]domain.TrendingJob, error)
	Top30Jobs(ctx context.Context) ([]domain.TopJob, error)

	Login(ctx context.Context, username, password string) (string, error)
	AdminSettings(ctx context.Context, auth session.Auth) (domain.AdminSettings, error)
	ToggleCrawl(ctx context.Context, auth session.Auth, enabled bool) (domain.AdminSettings, error)
	TriggerImport(ctx context.Context, auth session.Auth) (domain.ActionStatus, error)
	TriggerCrawl(ctx context.Context, auth session.Auth) (domain.ActionStatus, error)
	AdminLogs(ctx context.Context, auth session.Auth, lines int) ([]string, error)
	CreateJob(ctx context.Context, auth session.Auth, job domain.NewJob) (domain.CreatedJob, error)
}

// PageLoadedMsg carries one page of jobs back to the tab that asked for it
type PageLoadedMsg struct {
	Target state.Tab
	Seq    uint64
	Page   domain.PageResult
	Err    error
}

// SuggestionsMsg carries autocomplete candidates for one field
type SuggestionsMsg struct {
	Target state.Tab
	Field  domain.Field
	Seq    uint64
	Items  []string
}

type DashboardMsg struct {
	Dashboard domain.Dashboard
	Err       error
}

type AnalyticsMsg struct {
	Report domain.AnalyticsReport
	Err    error
}

type Top30Msg struct {
	Jobs []domain.TopJob
	Err  error
}

type SourcesMsg struct {
	Report domain.SourcesReport
	Err    error
}

type LoginMsg struct {
	Username string
	Err      error
}

type AdminSettingsMsg struct {
	Settings domain.AdminSettings
	Err      error
}

type AdminLogsMsg struct {
	Lines []string
	Err   error
}

// AdminActionMsg reports the outcome of a toggle, import or crawl
type AdminActionMsg struct {
	Action   state.PendingAction
	Status   string
	Settings *domain.AdminSettings
	Err      error
}

type SalaryParsedMsg struct {
	Raw   string
	Value *float64
	Err   error
}

type JobCreatedMsg struct {
	Job domain.CreatedJob
	Err error
}

type ExportMsg struct {
	Result export.Result
	Err    error
}
