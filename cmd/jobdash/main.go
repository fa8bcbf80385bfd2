// Command jobdash is the headless companion of the TUI: scripted searches,
// exports and admin calls against the job market backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/robfig/cron/v3"

	"jobdash/internal/api"
	"jobdash/internal/config"
	"jobdash/internal/domain"
	"jobdash/internal/export"
	"jobdash/internal/search"
	"jobdash/internal/session"
)

const usage = `usage: jobdash [-config file] [-api url] <command> [flags]

commands:
  search    query the job list (-title -company -location -level -skills -min -max -page -per-page -sort)
  export    write matching jobs to an .xlsx workbook (-o file, same filters as search)
  top       print the top 30 best paid jobs
  login     store an admin token (-u user [-p password])
  logout    forget the stored token
  admin     settings | crawl | import | toggle on|off | logs [-follow] | add`

// app carries what every subcommand needs
type app struct {
	cfg      *config.Config
	client   *api.Client
	sessions *session.Manager
	out      io.Writer // plain log lines
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(api.ErrorMessage(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("jobdash", flag.ContinueOnError)
	configPath := global.String("config", "", "Path to the config file")
	apiURL := global.String("api", "", "Backend base URL")
	verbose := global.Bool("v", false, "Log requests to stderr")
	global.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		global.Usage()
		return errors.New("no command given")
	}

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	svc := config.NewConfigService()
	if *configPath != "" {
		svc = config.NewConfigServiceAt(*configPath, nil)
	}
	cfg, err := svc.Load()
	if err != nil {
		return err
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}

	sessions, err := session.NewManager(session.NewFileStore(cfg.TokenPath), nil)
	if err != nil {
		return err
	}
	a := &app{
		cfg: cfg,
		client: api.New(cfg.API.BaseURL,
			api.WithTimeout(cfg.Timeout()),
			api.WithRateLimit(cfg.API.RequestsPerSecond, cfg.API.Burst),
		),
		sessions: sessions,
		out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "search":
		return a.search(ctx, rest)
	case "export":
		return a.export(ctx, rest)
	case "top":
		return a.top(ctx)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		if err := a.sessions.Logout(); err != nil {
			return err
		}
		pterm.Success.Println("Logged out")
		return nil
	case "admin":
		return a.admin(ctx, rest)
	}
	global.Usage()
	return fmt.Errorf("unknown command %q", cmd)
}

// filterFlags registers the search criteria on fs
type filterFlags struct {
	title, company, location, level, skills *string
	min, max                                *float64
	perPage                                 *int
	sort                                    *string
}

func addFilterFlags(fs *flag.FlagSet, perPage int) *filterFlags {
	return &filterFlags{
		title:    fs.String("title", "", "Title contains"),
		company:  fs.String("company", "", "Company contains (filtered client side)"),
		location: fs.String("location", "", "Location contains"),
		level:    fs.String("level", "", "Level contains"),
		skills:   fs.String("skills", "", "Comma-separated skills, any may match (filtered client side)"),
		min:      fs.Float64("min", domain.SalaryFloor, "Minimum salary in M VND"),
		max:      fs.Float64("max", domain.SalaryCeil, "Maximum salary in M VND"),
		perPage:  fs.Int("per-page", perPage, "Page size (10, 20, 50 or 100)"),
		sort:     fs.String("sort", "", "Sort as column[:asc|desc], e.g. avg_salary:desc"),
	}
}

// filter builds the filter state the flags describe
func (f *filterFlags) filter() (*search.FilterState, error) {
	fs := search.NewFilterState(*f.perPage, search.Sort{})
	if _, err := fs.SetPerPage(*f.perPage); err != nil {
		return nil, err
	}
	fs.Update(domain.FieldTitle, *f.title)
	fs.Update(domain.FieldCompany, *f.company)
	fs.Update(domain.FieldLocation, *f.location)
	fs.Update(domain.FieldLevel, *f.level)
	fs.Update(domain.FieldSkill, *f.skills)
	fs.SetSalary(*f.min, *f.max)

	if *f.sort != "" {
		column, dir := parseSort(*f.sort)
		if _, err := fs.SetSort(column, dir); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

func parseSort(s string) (string, search.SortDir) {
	column, dir, ok := strings.Cut(s, ":")
	if !ok || dir == "" {
		return column, search.SortDesc
	}
	return column, search.SortDir(strings.ToLower(dir))
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	ff := addFilterFlags(fs, a.cfg.Search.PageSize)
	page := fs.Int("page", 1, "Page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := ff.filter()
	if err != nil {
		return err
	}
	filter.Search()

	results := search.NewPaginator()
	if err := results.Load(ctx, a.client, filter.SetPage(*page)); err != nil {
		return err
	}

	for _, chip := range filter.ActiveChips() {
		pterm.Info.Println(chip.Label)
	}
	rows := results.Rows()
	if len(rows) > 0 {
		data := pterm.TableData{{"ID", "Title", "Company", "Level", "Salary", "Location", "Skills"}}
		for _, r := range rows {
			j := r.Job
			data = append(data, []string{
				strconv.Itoa(j.ID), j.Title, j.Company, j.Level, salary(j.AvgSalary), j.Location, j.Skills,
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	}
	pterm.Println(fmt.Sprintf("%s · page %d of %d", results.Summary(), *page, results.TotalPages()))
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	ff := addFilterFlags(fs, a.cfg.Search.PageSize)
	out := fs.String("o", export.DefaultFilename(time.Now()), "Output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter, err := ff.filter()
	if err != nil {
		return err
	}

	q := filter.Search()
	bar := pb.New(0)
	bar.Set("prefix", "writing rows ")
	started := false
	res, err := export.Export(ctx, a.client, *out, export.Options{
		Limit:    a.cfg.Search.ExportLimit,
		Query:    q.Values(),
		Criteria: q.Criteria,
		Progress: func(done, total int) {
			if !started {
				bar.SetTotal(int64(total))
				bar.Start()
				started = true
			}
			bar.SetCurrent(int64(done))
		},
	})
	if started {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Exported %s of %s jobs to %s",
		humanize.Comma(int64(res.Rows)), humanize.Comma(int64(res.Total)), res.Path)
	return nil
}

func (a *app) top(ctx context.Context) error {
	jobs, err := a.client.Top30Jobs(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		pterm.Info.Println("No jobs with a salary yet")
		return nil
	}
	data := pterm.TableData{{"#", "Title", "Company", "Salary", "Level", "Location", "Source"}}
	for i, j := range jobs {
		data = append(data, []string{
			strconv.Itoa(i + 1), j.Title, j.Company, salary(j.Salary), j.Level, j.Location, j.Source,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	user := fs.String("u", "admin", "Username")
	pass := fs.String("p", os.Getenv("JOBDASH_PASSWORD"), "Password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pass == "" {
		p, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}
		*pass = p
	}
	if err := a.sessions.Login(ctx, a.client, *user, *pass); err != nil {
		return err
	}
	pterm.Success.Printfln("Logged in as %s", *user)
	return nil
}

func (a *app) admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("admin needs a subcommand: settings | crawl | import | toggle on|off | logs | add")
	}
	auth := a.sessions.Current()
	if !auth.IsAdmin() {
		return errors.New("not logged in; run jobdash login first")
	}

	switch args[0] {
	case "settings":
		s, err := a.client.AdminSettings(ctx, auth)
		if err != nil {
			return err
		}
		printCrawlState(s)
		return nil

	case "toggle":
		if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
			return errors.New("usage: admin toggle on|off")
		}
		s, err := a.client.ToggleCrawl(ctx, auth, args[1] == "on")
		if err != nil {
			return err
		}
		printCrawlState(s)
		return nil

	case "crawl":
		st, err := a.client.TriggerCrawl(ctx, auth)
		if err != nil {
			return err
		}
		pterm.Success.Println("Crawl: " + st.Status)
		return nil

	case "import":
		st, err := a.client.TriggerImport(ctx, auth)
		if err != nil {
			return err
		}
		pterm.Success.Println("Import: " + st.Status)
		return nil

	case "logs":
		return a.logs(ctx, auth, args[1:])

	case "add":
		return a.addJob(ctx, auth, args[1:])
	}
	return fmt.Errorf("unknown admin command %q", args[0])
}

func printCrawlState(s domain.AdminSettings) {
	if s.Enabled() {
		pterm.Success.Println("Crawling is enabled")
		return
	}
	pterm.Warning.Println("Crawling is disabled")
}

func (a *app) logs(ctx context.Context, auth session.Auth, args []string) error {
	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	lines := fs.Int("n", a.cfg.UI.LogLines, "Number of lines")
	follow := fs.Bool("follow", false, "Keep polling for new lines")
	if err := fs.Parse(args); err != nil {
		return err
	}

	printed, err := a.client.AdminLogs(ctx, auth, *lines)
	if err != nil {
		return err
	}
	for _, l := range printed {
		fmt.Fprintln(a.out, l)
	}
	if !*follow {
		return nil
	}

	// A slow poll makes the next tick skip rather than run alongside it
	errs := make(chan error, 1)
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(log.Default()))))
	spec := fmt.Sprintf("@every %s", a.cfg.LogRefresh())
	if _, err := c.AddFunc(spec, func() {
		cur, err := a.client.AdminLogs(ctx, auth, *lines)
		if err != nil {
			if api.IsUnauthorized(err) {
				select {
				case errs <- err:
				default:
				}
				return
			}
			log.Printf("[logs] poll failed: %v", err)
			return
		}
		for _, l := range newLines(printed, cur) {
			fmt.Fprintln(a.out, l)
		}
		printed = cur
	}); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	c.Start()
	defer func() { <-c.Stop().Done() }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errs:
		return err
	}
}

// newLines returns the tail of cur that was not in prev. The backend sends
// a sliding window, so the overlap is the longest suffix of prev that
// starts cur.
func newLines(prev, cur []string) []string {
	for k := min(len(prev), len(cur)); k > 0; k-- {
		if equal(prev[len(prev)-k:], cur[:k]) {
			return cur[k:]
		}
	}
	return cur
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (a *app) addJob(ctx context.Context, auth session.Auth, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	job := domain.NewJob{}
	fs.StringVar(&job.Title, "title", "", "Job title (required)")
	fs.StringVar(&job.Company, "company", "", "Company (required)")
	fs.StringVar(&job.SalaryRaw, "salary", "", "Salary as written, parsed by the backend")
	fs.StringVar(&job.Location, "location", "", "Location")
	fs.StringVar(&job.Level, "level", "", "Level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(job.SalaryRaw) != "" {
		v, err := a.client.ParseSalary(ctx, job.SalaryRaw)
		var perr *api.ParseSalaryError
		switch {
		case errors.As(err, &perr):
			pterm.Warning.Printfln("Salary not understood (%s); saving without an average", perr.Message)
		case err != nil:
			return err
		default:
			job.AvgSalary = v
		}
	}

	created, err := a.client.CreateJob(ctx, auth, job)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("Job #%d created (%s), salary %s", created.ID, created.Status, salary(job.AvgSalary))
	return nil
}

func salary(v *float64) string {
	if v == nil {
		return "-"
	}
	return humanize.FtoaWithDigits(*v, 1) + " M VND"
}
