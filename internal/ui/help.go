package ui

import (
	"fmt"
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

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("lyrix Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("type"), descStyle.Render("Filter by title, artist or filename")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑, ctrl+p"), descStyle.Render("Previous result")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↓, ctrl+n"), descStyle.Render("Next result")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("enter"), descStyle.Render("Open highlighted result")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("esc"), descStyle.Render("Clear the search")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("mouse"), descStyle.Render("Hover to highlight, click to open")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Viewer"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("c, y"), descStyle.Render("Copy the raw lyrics")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("d, s"), descStyle.Render("Save the lyrics file")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("p"), descStyle.Render("Open in pager")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Scroll")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("esc, q"), descStyle.Render("Close (or click outside)")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("f1"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s   %s", keyStyle.Render("ctrl+c"), descStyle.Render("Quit")))

	return help.String()
}

// PagerOps shows text in ov, handing the terminal over while it runs
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
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

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Keep ov from writing to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
