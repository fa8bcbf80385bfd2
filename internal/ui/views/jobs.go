package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"jobdash/internal/search"
	"jobdash/internal/ui/state"
)

// jobColumns sizes the result table for the terminal width
func jobColumns(width int) []table.Column {
	fixed := 6 + 10 + 12 + 12 // id, salary, level, location
	flex := width - fixed - 14
	if flex < 30 {
		flex = 30
	}
	title := flex * 45 / 100
	company := flex * 30 / 100
	skills := flex - title - company
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: title},
		{Title: "Company", Width: company},
		{Title: "Level", Width: 12},
		{Title: "Salary", Width: 10},
		{Title: "Location", Width: 12},
		{Title: "Skills", Width: skills},
	}
}

// ResultsTable renders one page of jobs with the cursor row highlighted
func (r *Renderer) ResultsTable(rows []search.Row, selected, width, height int) string {
	cols := jobColumns(width)
	trows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		j := row.Job
		id := strconv.Itoa(j.ID)
		if row.Synthetic {
			id = "-"
		}
		trows = append(trows, table.Row{
			id,
			Truncate(j.Title, cols[1].Width),
			Truncate(j.Company, cols[2].Width),
			Truncate(j.Level, cols[3].Width),
			Salary(j.AvgSalary),
			Truncate(j.Location, cols[5].Width),
			Truncate(j.Skills, cols[6].Width),
		})
	}

	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(trows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("226")).
		Background(lipgloss.Color("238")).
		Bold(false)
	t.SetStyles(s)
	if selected >= 0 && selected < len(trows) {
		t.SetCursor(selected)
	}
	return t.View()
}

// resultsFooter is the paging line under a results table
func (r *Renderer) resultsFooter(pane *state.SearchPane) string {
	q := pane.Results.Query()
	parts := []string{
		fmt.Sprintf("page %d/%d", max(q.Page, 1), pane.Results.TotalPages()),
		fmt.Sprintf("%d per page", pane.Filter.PerPage()),
	}
	if s := pane.Filter.Sort(); s.Column != "" {
		parts = append(parts, fmt.Sprintf("sort %s %s", s.Column, s.Dir))
	}
	nav := []string{}
	if pane.Results.HasPrevPage() {
		nav = append(nav, "p prev")
	}
	if pane.Results.HasNextPage() {
		nav = append(nav, "n next")
	}
	if len(nav) > 0 {
		parts = append(parts, strings.Join(nav, " "))
	}
	return r.styles.Status.Render(strings.Join(parts, " · "))
}

// summaryLine reports the outcome of the last request
func (r *Renderer) summaryLine(pane *state.SearchPane, spinner string) string {
	res := pane.Results
	text := res.Summary()
	switch res.Status() {
	case search.StatusLoading:
		return r.styles.StatusLoading.Render(spinner + " " + text)
	case search.StatusError:
		return r.styles.StatusError.Render(text)
	case search.StatusSuccess:
		if res.Filtered() {
			return r.styles.StatusWarning.Render(text)
		}
		return r.styles.StatusSuccess.Render(text)
	}
	return r.styles.Dim.Render(text)
}
