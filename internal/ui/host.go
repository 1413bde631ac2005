package ui

import tea "github.com/charmbracelet/bubbletea"

// terminalHost applies the viewer's presentation requests to the model.
// Calls happen inside Update, so it mutates the model directly and
// queues any command the input returns.
type terminalHost struct {
	m *Model
}

// SuppressScroll stops wheel events from moving the result list
func (h terminalHost) SuppressScroll() {
	h.m.scrollLocked = true
	h.m.input.Blur()
}

// RestoreScroll lets wheel events move the result list again
func (h terminalHost) RestoreScroll() {
	h.m.scrollLocked = false
}

// FocusSearch returns keyboard focus to the search input
func (h terminalHost) FocusSearch() {
	h.m.queue(h.m.input.Focus())
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// frameSequence holds a terminal control sequence that is prefixed to
// every frame until cleared. The renderer only rewrites changed lines,
// so it reaches the terminal once per change.
type frameSequence struct {
	seq string
}

func (f *frameSequence) Write(p []byte) (int, error) {
	f.seq = string(p)
	return len(p), nil
}
