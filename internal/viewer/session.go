package viewer

import (
	"errors"
	"log"
	"time"

	"lyrix/internal/clock"
	"lyrix/internal/domain"
)

// DefaultCopyRevert is how long the copy button shows "Copied"
const DefaultCopyRevert = 2 * time.Second

// ErrNotOpen is returned by actions that need an open viewer
var ErrNotOpen = errors.New("viewer is not open")

// Options configures a viewer Session
type Options struct {
	Host        Host
	Clipboard   Clipboard
	Downloader  Downloader
	Clock       clock.Clock
	CopyRevert  time.Duration
	// PostRevert delivers a fired revert timer back to the owner's event
	// loop. Defaults to calling RevertCopy directly.
	PostRevert func(generation uint64)
}

// Session owns the overlay state. It is not safe for concurrent use;
// all calls come from the single event loop.
type Session struct {
	state       domain.ViewerState
	host        Host
	clipboard   Clipboard
	downloader  Downloader
	clock       clock.Clock
	copyRevert  time.Duration
	postRevert  func(uint64)
	revertTimer *clock.Timer
	generation  uint64
}

// NewSession creates a closed viewer
func NewSession(opts Options) *Session {
	s := &Session{
		host:       opts.Host,
		clipboard:  opts.Clipboard,
		downloader: opts.Downloader,
		clock:      opts.Clock,
		copyRevert: opts.CopyRevert,
		postRevert: opts.PostRevert,
	}
	if s.host == nil {
		s.host = NopHost{}
	}
	if s.clock == nil {
		s.clock = clock.Real()
	}
	if s.copyRevert <= 0 {
		s.copyRevert = DefaultCopyRevert
	}
	if s.postRevert == nil {
		s.postRevert = s.RevertCopy
	}
	return s
}

// State returns a snapshot of the viewer
func (s *Session) State() domain.ViewerState {
	return s.state
}

// IsOpen reports whether the overlay is showing
func (s *Session) IsOpen() bool {
	return s.state.IsOpen
}

// Open shows resolved content. Opening over another entry replaces it.
func (s *Session) Open(resolved domain.ResolvedContent) {
	s.cancelRevert()

	wasOpen := s.state.IsOpen
	s.state = domain.ViewerState{
		IsOpen:     true,
		Key:        resolved.Entry.Key(),
		Title:      resolved.Title,
		Artist:     resolved.Entry.Artist,
		Filename:   resolved.Entry.Filename,
		RawContent: resolved.RawText,
		Formatted:  resolved.Formatted,
		CopyStatus: domain.CopyIdle,
	}

	if !wasOpen {
		s.host.SuppressScroll()
	}
	log.Printf("Viewer opened: %s", resolved.Entry.Filename)
}

// Close hides the overlay and hands focus back to the search input.
// Returns false when the viewer was already closed.
func (s *Session) Close() bool {
	if !s.state.IsOpen {
		return false
	}

	s.cancelRevert()
	s.state = domain.ViewerState{}
	s.host.RestoreScroll()
	s.host.FocusSearch()
	return true
}

// Copy sends the raw, undecorated text to the clipboard. A successful
// copy shows Copied and restarts the revert delay; a failed one leaves
// the status Idle and returns a *domain.ClipboardError.
func (s *Session) Copy() error {
	if !s.state.IsOpen {
		return ErrNotOpen
	}

	s.cancelRevert()
	if s.clipboard == nil {
		s.state.CopyStatus = domain.CopyIdle
		return &domain.ClipboardError{Err: errors.New("no clipboard configured")}
	}
	if err := s.clipboard.WriteText(s.state.RawContent); err != nil {
		s.state.CopyStatus = domain.CopyIdle
		return &domain.ClipboardError{Err: err}
	}

	s.state.CopyStatus = domain.CopyCopied
	gen := s.generation
	s.revertTimer = s.clock.AfterFunc(s.copyRevert, func() {
		s.postRevert(gen)
	})
	return nil
}

// RevertCopy returns the copy status to Idle if generation still names
// the latest scheduled revert
func (s *Session) RevertCopy(generation uint64) {
	if generation != s.generation {
		return
	}
	s.revertTimer = nil
	s.state.CopyStatus = domain.CopyIdle
}

// Download offers the raw text under the entry's filename
func (s *Session) Download() (string, error) {
	if !s.state.IsOpen {
		return "", ErrNotOpen
	}
	if s.downloader == nil {
		return "", errors.New("downloads are not available")
	}
	return s.downloader.Offer(s.state.Filename, s.state.RawContent)
}

// cancelRevert stops the pending timer and invalidates its generation so
// a firing that already raced past Stop is ignored
func (s *Session) cancelRevert() {
	if s.revertTimer != nil {
		s.revertTimer.Stop()
		s.revertTimer = nil
	}
	s.generation++
}
