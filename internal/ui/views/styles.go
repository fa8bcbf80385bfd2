package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Chip          lipgloss.Style
	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	Section       lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Bar           lipgloss.Style
	Spark         lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	FieldFocused  lipgloss.Style
	Field         lipgloss.Style
	Suggestion    lipgloss.Style
	SuggestionHit lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Popup         lipgloss.Style
	ErrorPopup    lipgloss.Style
	LogBox        lipgloss.Style
	Highlight     lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	SelectionBg   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			MarginRight(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginRight(1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Spark: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		FieldFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Field:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Suggestion:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2),
		SuggestionHit: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).PaddingLeft(2),
		Help:          lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		ErrorPopup: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 2),
		LogBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// SalaryColor buckets an average salary (million VND) into a color
func SalaryColor(v float64) lipgloss.Color {
	switch {
	case v >= 60:
		return lipgloss.Color("78") // green
	case v >= 30:
		return lipgloss.Color("214") // yellow
	default:
		return lipgloss.Color("245")
	}
}
