package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"tab, →, l", "Next tab"},
		{"shift+tab, ←, h", "Previous tab"},
		{"1-8", "Jump to tab"},
		{"↑/↓, j/k", "Move through rows"},
		{"R, ctrl+r", "Reload the current tab"},
	}},
	{"Search & Jobs", []helpEntry{
		{"/, e, enter", "Edit the search field"},
		{"tab / shift+tab", "Next / previous field (while editing)"},
		{"↑/↓", "Pick a suggestion (while editing)"},
		{"enter", "Run the search"},
		{"[ ]", "Lower / raise the minimum salary"},
		{"{ }", "Lower / raise the maximum salary"},
		{"c", "Clear all filters"},
		{"n / p", "Next / previous page"},
		{"+ / -", "Bigger / smaller pages"},
		{"s / r", "Sort column / direction (Jobs)"},
		{"S", "Pick the sort column from a list (Jobs)"},
		{"x", "Export matching jobs to .xlsx"},
	}},
	{"Admin", []helpEntry{
		{"t", "Enable or disable crawling"},
		{"i", "Run the CSV import"},
		{"w", "Start a crawl"},
		{"a", "Add a job by hand"},
		{"v", "Open the backend log in a pager"},
		{"ctrl+p", "Parse the salary field (add job form)"},
		{"ctrl+s", "Submit a form"},
	}},
	{"Other", []helpEntry{
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(18)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("jobdash help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

// Pager hands the terminal to the ov pager and takes it back afterwards
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content in ov
func (p *Pager) Show(content string) error {
	return p.run(strings.NewReader(content))
}

func (p *Pager) run(r io.Reader) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
