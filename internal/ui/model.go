package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lyrix/internal/clock"
	"lyrix/internal/config"
	"lyrix/internal/content"
	"lyrix/internal/domain"
	"lyrix/internal/eventbus"
	"lyrix/internal/query"
	"lyrix/internal/session"
	"lyrix/internal/ui/views"
	"lyrix/internal/viewer"
)

const searchPlaceholder = "Search title, artist or filename"

// Options wires the model to its collaborators
type Options struct {
	Config     *config.Config
	Bus        eventbus.EventBus
	Loader     session.CatalogLoader
	Resolver   session.Resolver
	Clipboard  viewer.Clipboard
	Downloader viewer.Downloader
	Clock      clock.Clock
}

// Model represents the UI state
type Model struct {
	ctx      context.Context
	session  *session.Session
	loader   session.CatalogLoader
	resolver session.Resolver

	// UI-specific state not in the session
	width        int
	height       int
	input        textinput.Model
	spinner      spinner.Model
	viewport     viewport.Model
	help         help.Model
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	listOffset   int
	lastQuery    string
	shownKey     domain.EntryKey
	scrollLocked bool
	flash        string // UI-only message, e.g. a pager failure
	osc          frameSequence

	// Commands queued by the host adapter during an update
	pending []tea.Cmd

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	renderer := views.NewRenderer()

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Loading catalog..."
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Blur()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = renderer.Styles().Loading

	m := &Model{
		ctx:          ctx,
		loader:       opts.Loader,
		resolver:     opts.Resolver,
		input:        input,
		spinner:      sp,
		viewport:     viewport.New(0, 0),
		help:         help.New(),
		renderer:     renderer,
		helpRenderer: NewHelpRenderer(),
	}

	// OSC 52 goes out inside the next frame, not around the renderer
	clip := opts.Clipboard
	if c, ok := clip.(viewer.OSC52Clipboard); ok && c.Out == nil {
		c.Out = &m.osc
		clip = c
	}

	v := viewer.NewSession(viewer.Options{
		Host:       terminalHost{m: m},
		Clipboard:  clip,
		Downloader: opts.Downloader,
		Clock:      opts.Clock,
		CopyRevert: cfg.Viewer.CopyRevert.Duration,
		PostRevert: m.postRevert,
	})
	engine := query.NewEngine(query.ParseFields(cfg.Search.Fields), cfg.Search.MinLength)
	m.session = session.New(engine, v, opts.Bus)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Session exposes the browser state, mainly for tests and the CLI
func (m *Model) Session() *session.Session {
	return m.session
}

// Init starts the catalog load and the loading spinner
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		m.resizeViewer()
		m.ensureVisible()

	case spinner.TickMsg:
		if m.session.Status() != session.LoadPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionMsg:
		m.dispatch(msg.event)

	case revertMsg:
		m.dispatch(session.CopyReverted{Generation: msg.generation})

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.flash = fmt.Sprintf("Pager failed: %v", msg.err)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, searchKeys.Quit) {
			return m, tea.Quit
		}
		if m.session.Viewer().IsOpen {
			m.handleViewerKey(msg)
		} else {
			m.handleSearchKey(msg)
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.queue(cmd)
	}

	return m, m.flush()
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	status := m.session.Status()
	state := views.ViewState{
		Width:        m.width,
		Height:       m.height,
		Loading:      status == session.LoadPending,
		LoadFailed:   status == session.LoadFailed,
		SpinnerView:  m.spinner.View(),
		InputView:    m.input.View(),
		Query:        m.session.Query(),
		Results:      m.session.Results(),
		Selected:     m.session.Selected(),
		ListOffset:   m.listOffset,
		ListHeight:   m.listHeight(),
		CatalogSize:  len(m.session.Catalog()),
		Notice:       m.session.Notice(),
		NoticeIsInfo: !m.session.NoticeIsError(),
	}
	if m.flash != "" {
		state.Notice = m.flash
		state.NoticeIsInfo = false
	}

	if st := m.session.Viewer(); st.IsOpen {
		state.HelpView = m.help.View(viewerKeys)
		state.Viewer = &views.ViewerView{
			Title:      st.Title,
			Artist:     st.Artist,
			Filename:   st.Filename,
			Body:       m.viewport.View(),
			CopyStatus: st.CopyStatus,
			ScrollInfo: fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100),
		}
	} else {
		state.HelpView = m.help.View(searchKeys)
	}

	return m.osc.seq + m.renderer.Render(state)
}

// dispatch feeds one event to the session and syncs the widgets with
// the result
func (m *Model) dispatch(ev session.Event) {
	wasPending := m.session.Status() == session.LoadPending

	if req := m.session.Dispatch(ev); req != nil {
		m.queue(m.fetch(*req))
	}

	if wasPending && m.session.Status() != session.LoadPending {
		m.catalogSettled()
	}

	st := m.session.Viewer()
	if st.CopyStatus != domain.CopyCopied {
		m.osc.seq = ""
	}
	switch {
	case st.IsOpen && st.Key != m.shownKey:
		m.showViewer(st)
	case !st.IsOpen:
		m.shownKey = domain.EntryKey{}
	}

	if q := m.session.Query(); q != m.lastQuery {
		m.lastQuery = q
		m.listOffset = 0
	}
	m.ensureVisible()
}

// catalogSettled enables the search input, or flags it when loading failed
func (m *Model) catalogSettled() {
	if m.session.Status() == session.LoadFailed {
		cause := m.session.LoadErr()
		var loadErr *domain.LoadError
		if errors.As(cause, &loadErr) {
			cause = loadErr.Err
		}
		m.input.Placeholder = fmt.Sprintf("Catalog unavailable: %v", cause)
		m.input.Blur()
		return
	}
	m.input.Placeholder = searchPlaceholder
	m.queue(m.input.Focus())
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) {
	// Input is disabled until the catalog is available
	if m.session.Status() != session.LoadReady {
		return
	}

	switch {
	case key.Matches(msg, searchKeys.Up):
		m.dispatch(session.NavigatePrevious{})
	case key.Matches(msg, searchKeys.Down):
		m.dispatch(session.NavigateNext{})
	case key.Matches(msg, searchKeys.Confirm):
		m.dispatch(session.Confirm{})
	case key.Matches(msg, searchKeys.Clear):
		m.flash = ""
		m.input.SetValue("")
		m.dispatch(session.QueryChanged{Query: ""})
	case key.Matches(msg, searchKeys.Help):
		m.queue(m.showPager(m.helpRenderer.RenderHelpContent()))
	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.queue(cmd)
		if m.input.Value() != before {
			m.flash = ""
			m.dispatch(session.QueryChanged{Query: m.input.Value()})
		}
	}
}

func (m *Model) handleViewerKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, viewerKeys.Close):
		m.dispatch(session.Close{})
	case key.Matches(msg, viewerKeys.Copy):
		m.dispatch(session.CopyRequested{})
	case key.Matches(msg, viewerKeys.Download):
		m.dispatch(session.DownloadRequested{})
	case key.Matches(msg, viewerKeys.Pager):
		st := m.session.Viewer()
		m.queue(m.showPager(content.Render(st.Formatted, m.renderer.Styles().Timestamp)))
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.queue(cmd)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.session.Viewer().IsOpen {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.viewerRect().Contains(msg.X, msg.Y) {
			m.dispatch(session.Close{})
			return
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.queue(cmd)
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !m.scrollLocked {
			m.listOffset = max(0, m.listOffset-1)
		}
		return
	case tea.MouseButtonWheelDown:
		if !m.scrollLocked {
			m.listOffset = min(m.listOffset+1, m.maxOffset())
		}
		return
	}

	index, ok := m.resultAt(msg.X, msg.Y)
	if !ok {
		return
	}
	switch {
	case msg.Action == tea.MouseActionMotion && index != m.session.Selected():
		m.dispatch(session.SelectIndex{Index: index})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dispatch(session.ConfirmIndex{Index: index})
	}
}

// resultAt maps a screen cell to a result index
func (m *Model) resultAt(x, y int) (int, bool) {
	if m.session.Status() != session.LoadReady || x < views.ResultsLeft {
		return 0, false
	}
	row := y - views.ResultsTop
	if row < 0 || row >= m.listHeight() {
		return 0, false
	}
	index := m.listOffset + row
	if index >= len(m.session.Results()) {
		return 0, false
	}
	return index, true
}

// listHeight is the number of result rows that fit: the screen minus
// padding (2), header (4) and footer (2)
func (m *Model) listHeight() int {
	return max(m.height-8, 1)
}

func (m *Model) maxOffset() int {
	return max(len(m.session.Results())-m.listHeight(), 0)
}

// ensureVisible scrolls the result list so the highlight stays on screen
func (m *Model) ensureVisible() {
	h := m.listHeight()
	if sel := m.session.Selected(); sel >= 0 {
		if sel < m.listOffset {
			m.listOffset = sel
		} else if sel >= m.listOffset+h {
			m.listOffset = sel - h + 1
		}
	}
	m.listOffset = min(max(m.listOffset, 0), m.maxOffset())
}

func (m *Model) resizeViewer() {
	w, h := views.ViewerSize(m.width, m.height)
	// Border and padding take four columns
	m.viewport.Width = max(w-4, 1)
	m.viewport.Height = max(h-views.ViewerChrome, 1)
	if st := m.session.Viewer(); st.IsOpen {
		m.setViewerContent(st)
	}
}

func (m *Model) viewerRect() views.Rect {
	w, _ := views.ViewerSize(m.width, m.height)
	return views.PopupRect(w, m.viewport.Height+views.ViewerChrome, m.width, m.height)
}

func (m *Model) showViewer(st domain.ViewerState) {
	m.shownKey = st.Key
	m.flash = ""
	m.setViewerContent(st)
	m.viewport.GotoTop()
}

func (m *Model) setViewerContent(st domain.ViewerState) {
	body := content.Render(st.Formatted, m.renderer.Styles().Timestamp)
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(body))
}

// loadCatalog runs the one startup load in the background
func (m *Model) loadCatalog() tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		if loader == nil {
			return sessionMsg{event: session.CatalogFailed{Err: errors.New("no catalog configured")}}
		}
		return sessionMsg{event: session.LoadCatalog(ctx, loader)}
	}
}

// fetch resolves a content request in the background
func (m *Model) fetch(req session.FetchRequest) tea.Cmd {
	resolver := m.resolver
	ctx := m.ctx
	return func() tea.Msg {
		if resolver == nil {
			return sessionMsg{event: session.ContentFailed{RequestID: req.ID, Key: req.Entry.Key(), Err: errors.New("no resolver configured")}}
		}
		return sessionMsg{event: req.Execute(ctx, resolver)}
	}
}

func (m *Model) showPager(text string) tea.Cmd {
	pager := m.pager
	return func() tea.Msg {
		if pager == nil {
			return pagerMsg{err: errors.New("pager is not available")}
		}
		return pagerMsg{err: pager.ShowInPager(text)}
	}
}

// postRevert delivers the copy-status timer to the update loop
func (m *Model) postRevert(generation uint64) {
	if m.program != nil {
		m.program.Send(revertMsg{generation: generation})
		return
	}
	// No program in tests driven by a fake clock: the timer fires on
	// the test goroutine, which is the update loop
	m.dispatch(session.CopyReverted{Generation: generation})
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
