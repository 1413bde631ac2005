package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// PopupRect returns where a popup of the given size lands when centered
func PopupRect(popupW, popupH, width, height int) Rect {
	return Rect{
		X: max(0, (width-popupW)/2),
		Y: max(0, (height-popupH)/2),
		W: popupW,
		H: popupH,
	}
}

// RenderPopupOverlay draws the popup centered over a greyed-out copy of
// mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, styledPopup string, height, width int) string {
	rect := PopupRect(lipgloss.Width(styledPopup), lipgloss.Height(styledPopup), width, height)

	base := strings.Split(pr.desaturate(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	for i, line := range popupLines {
		row := rect.Y + i
		if row >= len(base) {
			break
		}
		base[row] = spliceLine(base[row], line, rect.X, rect.W)
	}

	if len(base) > height && height > 0 {
		base = base[:height]
	}
	return strings.Join(base, "\n")
}

// desaturate strips ANSI color/style codes and recolors text dim gray
func (pr *PopupRenderer) desaturate(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = pr.styles.Backdrop.Render(line)
	}
	return strings.Join(lines, "\n")
}

// spliceLine replaces w cells of base starting at x with overlay, keeping
// what is visible on either side
func spliceLine(base, overlay string, x, w int) string {
	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+w, "")
	return left + overlay + right
}
