package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Artist      lipgloss.Style
	Filename    lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Loading     lipgloss.Style
	ViewerBox   lipgloss.Style
	ViewerTitle lipgloss.Style
	Button      lipgloss.Style
	ButtonDone  lipgloss.Style
	Timestamp   lipgloss.Style
	Backdrop    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Artist:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Filename:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		ViewerBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		ViewerTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		ButtonDone: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")).
			Padding(0, 1),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Faint(true),
		Backdrop:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
