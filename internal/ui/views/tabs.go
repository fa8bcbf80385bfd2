package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobdash/internal/domain"
	"jobdash/internal/search"
	"jobdash/internal/ui/state"
)

func (r *Renderer) section(title string) string {
	return r.styles.Section.Render(title)
}

func (r *Renderer) card(label, value string) string {
	return r.styles.Card.Render(r.styles.Label.Render(label) + "\n" + r.styles.Value.Render(value))
}

func (r *Renderer) dashboardTab(vs ViewState, width int) string {
	app := vs.App
	if line, ok := r.loadLine(app.DashboardLoad, vs.Spinner); ok && app.Dashboard == nil {
		return line
	}
	if app.Dashboard == nil {
		return r.styles.Dim.Render("Press R to load the dashboard")
	}
	d := app.Dashboard

	var b strings.Builder
	b.WriteString(r.section("Salary distribution"))
	b.WriteString("\n")
	if len(d.SalaryValues) == 0 {
		b.WriteString(r.styles.Dim.Render("no salaries yet"))
	} else {
		bins := width - 4
		if bins > 60 {
			bins = 60
		}
		lo, hi := d.SalaryValues[0], d.SalaryValues[0]
		for _, v := range d.SalaryValues {
			lo, hi = min(lo, v), max(hi, v)
		}
		b.WriteString(r.styles.Spark.Render(Sparkline(Histogram(d.SalaryValues, bins))))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%s jobs with a salary, %s to %s",
			Count(len(d.SalaryValues)), SalaryValue(lo), SalaryValue(hi))))
	}
	b.WriteString("\n")

	b.WriteString(r.section("Average salary by location"))
	b.WriteString("\n")
	b.WriteString(r.Bars(seriesBars(d.ByLocation), width))
	b.WriteString("\n")

	b.WriteString(r.section("Average salary by level"))
	b.WriteString("\n")
	b.WriteString(r.Bars(seriesBars(d.ByLevel), width))

	if line, ok := r.loadLine(app.DashboardLoad, vs.Spinner); ok {
		b.WriteString("\n\n" + line)
	}
	return b.String()
}

func seriesBars(points []domain.SeriesPoint) []BarItem {
	out := make([]BarItem, 0, len(points))
	for _, p := range points {
		out = append(out, BarItem{Label: p.Label, Value: p.AvgSalary})
	}
	return out
}

func (r *Renderer) analyticsTab(vs ViewState, width int) string {
	app := vs.App
	if line, ok := r.loadLine(app.AnalyticsLoad, vs.Spinner); ok && app.Analytics == nil {
		return line
	}
	if app.Analytics == nil {
		return r.styles.Dim.Render("Press R to load analytics")
	}
	a := app.Analytics

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		r.card("Jobs with salary", Count(a.Stats.Count)),
		r.card("Average", SalaryValue(a.Stats.Avg)),
		r.card("Median", SalaryValue(a.Stats.Median)),
		r.card("Min", SalaryValue(a.Stats.Min)),
		r.card("Max", SalaryValue(a.Stats.Max)),
	)

	col := width/2 - 2
	levels := make([]BarItem, 0, len(a.ByLevel))
	for _, l := range a.ByLevel {
		levels = append(levels, BarItem{Label: l.Level, Value: l.AvgSalary, Note: fmt.Sprintf("(%d)", l.Count)})
	}
	locations := make([]BarItem, 0, len(a.ByLocation))
	for _, l := range a.ByLocation {
		locations = append(locations, BarItem{Label: l.Location, Value: l.AvgSalary, Note: fmt.Sprintf("(%d)", l.Count)})
	}
	skills := make([]BarItem, 0, len(a.TopSkills))
	for _, s := range a.TopSkills {
		skills = append(skills, BarItem{Label: s.Skill, Value: s.AvgSalary, Note: fmt.Sprintf("×%d", s.Frequency)})
	}
	companies := make([]BarItem, 0, len(a.Companies))
	for _, c := range a.Companies {
		companies = append(companies, BarItem{Label: c.Company, Value: c.AvgSalary, Note: fmt.Sprintf("(%d jobs)", c.JobCount)})
	}
	titles := make([]BarItem, 0, len(a.Titles))
	for _, t := range a.Titles {
		titles = append(titles, BarItem{Label: t.Title, Value: t.AvgSalary, Note: fmt.Sprintf("(%d)", t.Count)})
	}

	counts := make([]int, 0, len(a.Distribution))
	labels := make([]string, 0, len(a.Distribution))
	for _, bin := range a.Distribution {
		counts = append(counts, bin.Count)
		labels = append(labels, bin.Bin)
	}
	dist := r.styles.Spark.Render(Sparkline(counts))
	if len(labels) > 0 {
		dist += "\n" + r.styles.Dim.Render(labels[0]+" … "+labels[len(labels)-1])
	}

	left := lipgloss.NewStyle().Width(col).Render(strings.Join([]string{
		r.section("By level"), r.Bars(levels, col),
		r.section("By location"), r.Bars(locations, col),
		r.section("Distribution"), dist,
	}, "\n"))
	right := lipgloss.NewStyle().Width(col).Render(strings.Join([]string{
		r.section("Top skills"), r.Bars(skills, col),
		r.section("Companies"), r.Bars(companies, col),
		r.section("Titles"), r.Bars(titles, col),
	}, "\n"))

	out := cards + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	if line, ok := r.loadLine(app.AnalyticsLoad, vs.Spinner); ok {
		out += "\n\n" + line
	}
	return out
}

// Top30Visible is how many leaderboard entries fit on screen
func Top30Visible(height int) int {
	n := (height - 10) / 2
	if n < 3 {
		n = 3
	}
	return n
}

func (r *Renderer) top30Tab(vs ViewState, width int) string {
	app := vs.App
	if line, ok := r.loadLine(app.Top30Load, vs.Spinner); ok && len(app.Top30) == 0 {
		return line
	}
	if len(app.Top30) == 0 {
		if app.Top30Load.Loaded {
			return r.styles.Dim.Render("No jobs with a salary yet")
		}
		return r.styles.Dim.Render("Press R to load the leaderboard")
	}

	visible := Top30Visible(vs.Height)
	start := app.Top30Offset
	end := min(start+visible, len(app.Top30))

	var b strings.Builder
	for i := start; i < end; i++ {
		j := app.Top30[i]
		salary := "-"
		if j.Salary != nil {
			salary = lipgloss.NewStyle().Foreground(SalaryColor(*j.Salary)).Bold(true).Render(Salary(j.Salary))
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			r.styles.Highlight.Render(fmt.Sprintf("#%-2d", i+1)),
			salary,
			r.styles.Value.Render(Truncate(j.Title, width-20))))
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("     %s · %s · %s · %s",
			Truncate(j.Company, 30), orDash(j.Level), orDash(j.Location), orDash(j.Source))))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Status.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(app.Top30))))
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func (r *Renderer) sourcesTab(vs ViewState, width int) string {
	app := vs.App
	if line, ok := r.loadLine(app.SourcesLoad, vs.Spinner); ok && app.Sources == nil {
		return line
	}
	if app.Sources == nil {
		return r.styles.Dim.Render("Press R to load data sources")
	}
	s := app.Sources

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		r.card("Total jobs", Count(s.Overview.TotalJobs)),
		r.card("With salary", Count(s.Overview.JobsWithSalary)),
		r.card("Completeness", fmt.Sprintf("%.1f%%", s.Overview.DataCompleteness)),
	))
	b.WriteString("\n")

	b.WriteString(r.section("Data sources"))
	b.WriteString("\n")
	if len(s.Sources) == 0 {
		b.WriteString(r.styles.Dim.Render("no sources"))
		b.WriteString("\n")
	}
	for _, src := range s.Sources {
		b.WriteString(fmt.Sprintf("%-18s %8s jobs  avg %-9s last crawl %s\n",
			Truncate(src.Source, 18), Count(src.Count), Salary(src.AvgSalary), Ago(src.LastCrawled)))
	}

	b.WriteString(r.section("Trending (last 30 days)"))
	b.WriteString("\n")
	if len(s.Trending) == 0 {
		b.WriteString(r.styles.Dim.Render("nothing new"))
	}
	titleW := width - 50
	if titleW < 20 {
		titleW = 20
	}
	for _, t := range s.Trending {
		b.WriteString(fmt.Sprintf("%-*s %-20s %9s  %s\n",
			titleW, Truncate(t.Title, titleW), Truncate(t.Company, 20), Salary(t.Salary),
			r.styles.Dim.Render(Ago(t.CrawledAt))))
	}

	out := strings.TrimRight(b.String(), "\n")
	if line, ok := r.loadLine(app.SourcesLoad, vs.Spinner); ok {
		out += "\n\n" + line
	}
	return out
}

// fieldLine renders one search field, showing the live text input when it is being edited
func (r *Renderer) fieldLine(label, value string, focused, editing bool, input string) string {
	name := fmt.Sprintf("%-9s", label+":")
	if focused {
		if editing {
			return r.styles.FieldFocused.Render("› "+name) + " " + input
		}
		return r.styles.FieldFocused.Render("› "+name) + " " + value
	}
	return r.styles.Field.Render("  "+name) + " " + value
}

func (r *Renderer) suggestionList(pane *state.SearchPane, limit int) string {
	list := pane.CurrentSuggestions()
	if len(list) == 0 {
		return ""
	}
	lines := make([]string, 0, limit)
	for i, s := range list {
		if i >= limit {
			lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("    +%d more", len(list)-limit)))
			break
		}
		if i == pane.Pick {
			lines = append(lines, r.styles.SuggestionHit.Render(s))
		} else {
			lines = append(lines, r.styles.Suggestion.Render(s))
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) chipsLine(pane *state.SearchPane) string {
	chips := pane.Filter.ActiveChips()
	line := ""
	if len(chips) == 0 {
		line = r.styles.Dim.Render("no filters applied")
	} else {
		parts := make([]string, 0, len(chips))
		for _, c := range chips {
			parts = append(parts, r.styles.Chip.Render(c.Label))
		}
		line = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	if pane.Filter.Dirty() {
		line += " " + r.styles.StatusWarning.Render("(edited, press enter to search)")
	}
	return line
}

func (r *Renderer) searchTab(vs ViewState, width int) string {
	pane := vs.App.Search
	editing := vs.Mode == "edit"
	c := pane.Filter.Criteria()

	lines := []string{}
	for _, f := range domain.Fields {
		focused := f == pane.Field
		lines = append(lines, r.fieldLine(f.Label(), c.Get(f), focused, editing && focused, vs.TextInput))
		if focused && editing {
			if s := r.suggestionList(pane, 6); s != "" {
				lines = append(lines, s)
			}
		}
	}
	lines = append(lines, r.styles.Field.Render(fmt.Sprintf("  %-9s", "Salary:"))+" "+
		fmt.Sprintf("%s - %s M VND", SalaryValueShort(c.Salary.Min), SalaryValueShort(c.Salary.Max))+
		r.styles.Dim.Render("  [ ] min  { } max"))
	lines = append(lines, "", r.chipsLine(pane), r.summaryLine(pane, vs.Spinner))

	head := strings.Join(lines, "\n")
	if len(pane.Results.Rows()) > 0 {
		used := strings.Count(head, "\n") + 10
		head += "\n" + r.ResultsTable(pane.Results.Rows(), pane.Results.Selected(), width, vs.Height-used)
		head += "\n" + r.resultsFooter(pane)
	}
	return head
}

// SalaryValueShort prints a slider bound without decimals when whole
func SalaryValueShort(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func (r *Renderer) jobsTab(vs ViewState, width int) string {
	pane := vs.App.Jobs
	editing := vs.Mode == "edit"

	lines := []string{r.fieldLine("Title", pane.Filter.Criteria().Title, true, editing, vs.TextInput)}
	if editing {
		if s := r.suggestionList(pane, 10); s != "" {
			lines = append(lines, s)
		}
	}
	if vs.Mode == "sort" && vs.App.SortPick >= 0 {
		lines = append(lines, r.sortPicker(vs.App.SortPick, pane.Filter.Sort().Dir))
	}
	lines = append(lines, r.summaryLine(pane, vs.Spinner))

	head := strings.Join(lines, "\n")
	if len(pane.Results.Rows()) > 0 {
		used := strings.Count(head, "\n") + 10
		head += "\n" + r.ResultsTable(pane.Results.Rows(), pane.Results.Selected(), width, vs.Height-used)
		head += "\n" + r.resultsFooter(pane)
	}
	return head
}

// sortPicker lists the sortable columns with the highlighted one marked
func (r *Renderer) sortPicker(selected int, dir search.SortDir) string {
	if dir == "" {
		dir = search.DefaultSort.Dir
	}
	lines := []string{r.section("Sort by (" + string(dir) + ")")}
	for i, column := range search.SortColumns {
		if i == selected {
			lines = append(lines, r.styles.SuggestionHit.Render("> "+column))
			continue
		}
		lines = append(lines, "  "+column)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) formView(form state.Form, editing bool, input string, masked map[int]bool) string {
	lines := make([]string, 0, len(form.Labels))
	for i, label := range form.Labels {
		value := form.Values[i]
		if masked[i] {
			value = strings.Repeat("•", len([]rune(value)))
		}
		lines = append(lines, r.fieldLine(label, value, i == form.Focus, editing && i == form.Focus, input))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) adminTab(vs ViewState, width int) string {
	app := vs.App
	admin := app.Admin

	var b strings.Builder
	b.WriteString(r.section("Crawler"))
	b.WriteString("\n")
	switch {
	case admin.Settings != nil && admin.Settings.Enabled():
		b.WriteString(r.styles.StatusSuccess.Render("● crawling enabled"))
	case admin.Settings != nil:
		b.WriteString(r.styles.StatusWarning.Render("○ crawling disabled"))
	default:
		if line, ok := r.loadLine(admin.SettingsLoad, vs.Spinner); ok {
			b.WriteString(line)
		} else {
			b.WriteString(r.styles.Dim.Render("unknown"))
		}
	}
	if admin.Busy != "" {
		b.WriteString("  " + r.styles.StatusLoading.Render(vs.Spinner+" "+admin.Busy))
	}
	b.WriteString("\n")

	if admin.ShowJobForm {
		b.WriteString(r.section("Add job"))
		b.WriteString("\n")
		b.WriteString(r.formView(admin.JobForm, vs.Mode == "form", vs.TextInput, nil))
		b.WriteString("\n")
		switch {
		case admin.ParseErr != "":
			b.WriteString(r.styles.StatusError.Render("salary: " + admin.ParseErr))
		case admin.ParsedSalary != nil:
			b.WriteString(r.styles.StatusSuccess.Render("parsed salary: " + Salary(admin.ParsedSalary)))
		default:
			b.WriteString(r.styles.Dim.Render("ctrl+p parse salary · ctrl+s save · esc cancel"))
		}
		if admin.JobForm.Err != "" {
			b.WriteString("\n" + r.styles.StatusError.Render(admin.JobForm.Err))
		}
		b.WriteString("\n")
	}

	b.WriteString(r.section("Backend log"))
	b.WriteString("\n")
	logs := admin.Logs
	if len(logs) == 0 {
		if line, ok := r.loadLine(admin.LogsLoad, vs.Spinner); ok {
			b.WriteString(line)
		} else {
			b.WriteString(r.styles.Dim.Render("no log lines"))
		}
		return b.String()
	}

	room := vs.Height - strings.Count(b.String(), "\n") - 12
	if room < 3 {
		room = 3
	}
	if len(logs) > room {
		logs = logs[len(logs)-room:]
	}
	shown := make([]string, len(logs))
	for i, l := range logs {
		shown[i] = Truncate(l, width-4)
	}
	b.WriteString(r.styles.LogBox.Width(width - 2).Render(strings.Join(shown, "\n")))
	if admin.LogsLoad.Err != "" {
		b.WriteString("\n" + r.styles.StatusError.Render("log refresh failed: "+admin.LogsLoad.Err))
	}
	return b.String()
}

func (r *Renderer) loginTab(vs ViewState, width int) string {
	app := vs.App
	if app.LoggedIn {
		name := app.Username
		if name == "" {
			name = "admin"
		}
		return r.styles.StatusSuccess.Render("Logged in as "+name) + "\n\n" +
			r.styles.Dim.Render("Press enter to log out")
	}

	form := app.Login
	var b strings.Builder
	b.WriteString(r.section("Admin login"))
	b.WriteString("\n")
	b.WriteString(r.formView(form, vs.Mode == "form", vs.TextInput, map[int]bool{state.LoginPassword: true}))
	b.WriteString("\n\n")
	switch {
	case form.Busy:
		b.WriteString(r.styles.StatusLoading.Render(vs.Spinner + " Signing in..."))
	case form.Err != "":
		b.WriteString(r.styles.StatusError.Render(form.Err))
	case vs.Mode != "form":
		b.WriteString(r.styles.Dim.Render("Press enter to sign in"))
	}
	return b.String()
}
