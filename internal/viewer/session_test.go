package viewer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyrix/internal/clock"
	"lyrix/internal/content"
	"lyrix/internal/domain"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

type recordingHost struct {
	calls []string
}

func (h *recordingHost) SuppressScroll() { h.calls = append(h.calls, "suppress") }
func (h *recordingHost) RestoreScroll()  { h.calls = append(h.calls, "restore") }
func (h *recordingHost) FocusSearch()    { h.calls = append(h.calls, "focus") }

type fixture struct {
	session   *Session
	clock     *clock.FakeClock
	clipboard *fakeClipboard
	host      *recordingHost
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:     clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		clipboard: &fakeClipboard{},
		host:      &recordingHost{},
	}
	f.session = NewSession(Options{
		Host:       f.host,
		Clipboard:  f.clipboard,
		Downloader: DirDownloader{Dir: t.TempDir()},
		Clock:      f.clock,
		CopyRevert: 2 * time.Second,
	})
	return f
}

func resolved(filename, raw string) domain.ResolvedContent {
	return domain.ResolvedContent{
		Entry:     domain.CatalogEntry{Filename: filename, Path: "/" + filename, Title: strings.TrimSuffix(filename, ".lrc")},
		Title:     strings.TrimSuffix(filename, ".lrc"),
		RawText:   raw,
		Formatted: content.Format(raw),
	}
}

func TestOpenPopulatesStateAndSuppressesScroll(t *testing.T) {
	f := newFixture(t)
	f.session.Open(resolved("Song.lrc", "[00:01.00]la"))

	st := f.session.State()
	assert.True(t, st.IsOpen)
	assert.Equal(t, "Song", st.Title)
	assert.Equal(t, "Song.lrc", st.Filename)
	assert.Equal(t, "[00:01.00]la", st.RawContent)
	assert.Equal(t, domain.CopyIdle, st.CopyStatus)
	assert.Equal(t, []string{"suppress"}, f.host.calls)
}

func TestReopenDoesNotSuppressTwice(t *testing.T) {
	f := newFixture(t)
	f.session.Open(resolved("A.lrc", "a"))
	f.session.Open(resolved("B.lrc", "b"))

	assert.Equal(t, "B.lrc", f.session.State().Filename)
	assert.Equal(t, []string{"suppress"}, f.host.calls)
}

func TestCloseRestoresScrollAndFocus(t *testing.T) {
	f := newFixture(t)
	f.session.Open(resolved("Song.lrc", "x"))
	require.NoError(t, f.session.Copy())

	assert.True(t, f.session.Close())
	assert.False(t, f.session.IsOpen())
	assert.Equal(t, domain.CopyIdle, f.session.State().CopyStatus)
	assert.Equal(t, []string{"suppress", "restore", "focus"}, f.host.calls)
	assert.Equal(t, 0, f.clock.Pending(), "closing cancels the revert timer")

	assert.False(t, f.session.Close(), "second close is a no-op")
	assert.Len(t, f.host.calls, 3)
}

func TestCopySendsRawTextEvenWhenFormatted(t *testing.T) {
	f := newFixture(t)
	raw := "[ti:x]\n[00:12.34]Hello\n\n[00:15.00]World\n"
	f.session.Open(resolved("Song.lrc", raw))

	require.NoError(t, f.session.Copy())
	assert.Equal(t, []string{raw}, f.clipboard.writes)
	assert.Equal(t, domain.CopyCopied, f.session.State().CopyStatus)
}

func TestCopyRevertsAfterDelay(t *testing.T) {
	f := newFixture(t)
	f.session.Open(resolved("Song.lrc", "x"))
	require.NoError(t, f.session.Copy())

	f.clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, domain.CopyCopied, f.session.State().CopyStatus)

	f.clock.Advance(time.Millisecond)
	assert.Equal(t, domain.CopyIdle, f.session.State().CopyStatus)
}

func TestScenarioCSecondCopyRestartsDelay(t *testing.T) {
	f := newFixture(t)
	f.session.Open(resolved("Song.lrc", "x"))
	require.NoError(t, f.session.Copy())

	f.clock.Advance(500 * time.Millisecond)
	require.NoError(t, f.session.Copy())
	assert.Equal(t, 1, f.clock.Pending(), "the first revert is cancelled, not just ignored")

	// 2000ms after the first copy
	f.clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, domain.CopyCopied, f.session.State().CopyStatus)

	// 2000ms after the second copy
	f.clock.Advance(500 * time.Millisecond)
	assert.Equal(t, domain.CopyIdle, f.session.State().CopyStatus)
}

func TestLateRevertFromOldGenerationIsIgnored(t *testing.T) {
	var posted []uint64
	f := newFixture(t)
	f.session = NewSession(Options{
		Clipboard:  f.clipboard,
		Clock:      f.clock,
		CopyRevert: 2 * time.Second,
		PostRevert: func(gen uint64) { posted = append(posted, gen) },
	})
	f.session.Open(resolved("Song.lrc", "x"))

	require.NoError(t, f.session.Copy())
	f.clock.Advance(2 * time.Second)
	require.Len(t, posted, 1)
	stale := posted[0]

	// The revert message is still queued when the user copies again
	require.NoError(t, f.session.Copy())
	f.session.RevertCopy(stale)
	assert.Equal(t, domain.CopyCopied, f.session.State().CopyStatus)

	f.clock.Advance(2 * time.Second)
	require.Len(t, posted, 2)
	f.session.RevertCopy(posted[1])
	assert.Equal(t, domain.CopyIdle, f.session.State().CopyStatus)
}

func TestCopyFailureLeavesIdle(t *testing.T) {
	f := newFixture(t)
	f.session.Open(resolved("Song.lrc", "x"))
	require.NoError(t, f.session.Copy())

	f.clipboard.err = errors.New("denied")
	err := f.session.Copy()

	var clipErr *domain.ClipboardError
	require.True(t, errors.As(err, &clipErr))
	assert.Equal(t, domain.CopyIdle, f.session.State().CopyStatus)
	assert.Equal(t, 0, f.clock.Pending())
}

func TestCopyWithoutClipboardReportsError(t *testing.T) {
	s := NewSession(Options{})
	s.Open(resolved("Song.lrc", "x"))

	err := s.Copy()

	var clipErr *domain.ClipboardError
	require.True(t, errors.As(err, &clipErr))
	assert.Equal(t, domain.CopyIdle, s.State().CopyStatus)
}

func TestActionsOnClosedViewer(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.session.Copy(), ErrNotOpen)
	_, err := f.session.Download()
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.Empty(t, f.clipboard.writes)
}

func TestDownloadWritesRawTextUnderFilename(t *testing.T) {
	dir := t.TempDir()
	f := newFixture(t)
	f.session = NewSession(Options{Clipboard: f.clipboard, Downloader: DirDownloader{Dir: dir}, Clock: f.clock})
	raw := "[00:01.00]one\n\n[00:02.00]two\n"
	f.session.Open(resolved("Song A - Artist X.lrc", raw))

	first, err := f.session.Download()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Song A - Artist X.lrc"), first)

	second, err := f.session.Download()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Song A - Artist X (1).lrc"), second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, raw, string(data))
}

func TestDownloaderRejectsEmptyName(t *testing.T) {
	_, err := DirDownloader{Dir: t.TempDir()}.Offer("", "x")
	assert.Error(t, err)
}

func TestOSC52ClipboardWritesSequence(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	require.NoError(t, OSC52Clipboard{Out: &buf}.WriteText("hello"))
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b]52;c;"))
	assert.Contains(t, buf.String(), "aGVsbG8=")
}

func TestOSC52ClipboardRejectsHugePayload(t *testing.T) {
	var buf bytes.Buffer
	err := OSC52Clipboard{Out: &buf}.WriteText(strings.Repeat("x", osc52Limit+1))
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestNewClipboardByName(t *testing.T) {
	assert.IsType(t, SystemClipboard{}, NewClipboard("system"))
	assert.IsType(t, OSC52Clipboard{}, NewClipboard("osc52"))
	assert.NotNil(t, NewClipboard("auto"))
}
