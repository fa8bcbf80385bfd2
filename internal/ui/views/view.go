package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobdash/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	App    *state.AppState

	Mode      string // input mode name, empty in normal mode
	TextInput string // rendered text input while editing
	Confirm   string // pending confirmation question
	Spinner   string // current spinner frame
	HelpView  string // short key help for the active tab
	BaseURL   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the style set for callers rendering pager content
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	app := vs.App
	width := vs.Width
	if width <= 0 {
		width = 100
	}
	inner := width - 4 // Main padding

	content := &strings.Builder{}
	content.WriteString(r.titleLine(vs, inner))
	content.WriteString("\n")
	content.WriteString(r.tabBar(app))
	content.WriteString("\n\n")

	var body string
	switch app.ActiveTab {
	case state.TabDashboard:
		body = r.dashboardTab(vs, inner)
	case state.TabAnalytics:
		body = r.analyticsTab(vs, inner)
	case state.TabTop30:
		body = r.top30Tab(vs, inner)
	case state.TabSources:
		body = r.sourcesTab(vs, inner)
	case state.TabSearch:
		body = r.searchTab(vs, inner)
	case state.TabJobs:
		body = r.jobsTab(vs, inner)
	case state.TabAdmin:
		body = r.adminTab(vs, inner)
	case state.TabLogin:
		body = r.loginTab(vs, inner)
	}
	content.WriteString(body)

	footer := r.footer(vs)

	// Pad so the footer sits at the bottom
	if vs.Height > 0 {
		used := strings.Count(content.String(), "\n") + 1
		footerLines := strings.Count(footer, "\n") + 1
		if pad := vs.Height - 2 - used - footerLines; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if app.Popup != "" {
		popup := app.Popup + "\n\n" + r.styles.Dim.Render("enter/esc to dismiss")
		return r.popupRender.RenderPopup(popup, vs.Height, vs.Width, r.styles.ErrorPopup)
	}
	return finalContent
}

func (r *Renderer) titleLine(vs ViewState, width int) string {
	logo := r.styles.Title.Render("jobdash")

	right := []string{}
	if vs.App.LoggedIn {
		right = append(right, r.styles.StatusSuccess.Render("● "+vs.App.Username))
	}
	if vs.BaseURL != "" {
		right = append(right, r.styles.Dim.Render(vs.BaseURL))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	padding := width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + rightContent
}

func (r *Renderer) tabBar(app *state.AppState) string {
	tabs := app.VisibleTabs()
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := t.Title(app.LoggedIn)
		if t == app.ActiveTab {
			parts = append(parts, r.styles.TabActive.Render(label))
		} else {
			parts = append(parts, r.styles.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) footer(vs ViewState) string {
	lines := []string{}

	if vs.Confirm != "" {
		lines = append(lines, r.styles.Confirm.Render(vs.Confirm+" (y/n)"))
	}

	if msg := vs.App.StatusMessage; msg != "" {
		if vs.App.StatusIsError {
			lines = append(lines, r.styles.StatusError.Render(msg))
		} else {
			lines = append(lines, r.styles.Status.Render(msg))
		}
	}

	if vs.HelpView != "" {
		lines = append(lines, vs.HelpView)
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}

// loadLine renders the shared loading or error line of a read-only tab
func (r *Renderer) loadLine(l state.Load, spinner string) (string, bool) {
	switch {
	case l.Loading:
		return r.styles.StatusLoading.Render(spinner + " Loading..."), true
	case l.Err != "":
		return r.styles.StatusError.Render("Error: " + l.Err), true
	}
	return "", false
}
