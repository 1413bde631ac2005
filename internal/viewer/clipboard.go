package viewer

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// osc52Limit caps the payload sent through the terminal
const osc52Limit = 100 * 1024

// Clipboard is the sink copy actions write plain text to
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard uses the platform clipboard (pbcopy, xclip, wl-copy...)
type SystemClipboard struct{}

// WriteText copies text to the system clipboard
func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return errors.New("no system clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// OSC52Clipboard asks the terminal to set the clipboard. Works over SSH.
type OSC52Clipboard struct {
	Out io.Writer
}

// WriteText emits an OSC 52 sequence, wrapped for tmux or screen if needed
func (c OSC52Clipboard) WriteText(text string) error {
	if len(text) > osc52Limit {
		return errors.New("content too large for terminal clipboard")
	}

	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	seq := osc52.New(text)
	term := strings.ToLower(os.Getenv("TERM"))
	if os.Getenv("TMUX") != "" || strings.HasPrefix(term, "tmux") {
		seq = seq.Tmux()
	} else if strings.HasPrefix(term, "screen") {
		seq = seq.Screen()
	}

	_, err := seq.WriteTo(out)
	return err
}

// NewClipboard picks a clipboard backend by name: "system", "osc52" or
// "auto" (system when available, terminal otherwise)
func NewClipboard(backend string) Clipboard {
	switch backend {
	case "system":
		return SystemClipboard{}
	case "osc52":
		return OSC52Clipboard{}
	default:
		if clipboard.Unsupported || os.Getenv("SSH_TTY") != "" {
			return OSC52Clipboard{}
		}
		return SystemClipboard{}
	}
}
