package content

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"lyrix/internal/domain"
)

// DefaultTimestampStyle colors timestamps dim blue
var DefaultTimestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Faint(true)

// Render turns formatted lines into terminal text. Only timestamp
// segments are styled, so Strip(Render(lines)) == Plain(lines).
func Render(lines []domain.FormattedLine, timestamp lipgloss.Style) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, seg := range line.Segments {
			if seg.Timestamp {
				b.WriteString(timestamp.Render(seg.Text))
			} else {
				b.WriteString(seg.Text)
			}
		}
	}
	return b.String()
}

// Strip removes terminal decoration from rendered text
func Strip(rendered string) string {
	return ansi.Strip(rendered)
}
