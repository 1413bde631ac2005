package session

import (
	"errors"
	"fmt"
	"log"

	"lyrix/internal/domain"
	"lyrix/internal/eventbus"
	"lyrix/internal/query"
	"lyrix/internal/selection"
	"lyrix/internal/viewer"
)

// LoadStatus tracks the startup catalog load
type LoadStatus int

const (
	LoadPending LoadStatus = iota
	LoadReady
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Session owns all browser state: the catalog, the last search, the
// selection cursor, the viewer and the outstanding content request.
// Every change goes through Dispatch, from a single goroutine.
type Session struct {
	status  LoadStatus
	loadErr error
	catalog []domain.CatalogEntry

	engine *query.Engine
	search query.State
	cursor *selection.Cursor
	viewer *viewer.Session
	bus    eventbus.EventBus

	nextID    uint64
	pending   *FetchRequest
	notice    string
	noticeErr bool
}

// New creates a session waiting for its catalog. bus may be nil.
func New(engine *query.Engine, v *viewer.Session, bus eventbus.EventBus) *Session {
	if engine == nil {
		engine = query.NewEngine(query.DefaultFields, 1)
	}
	if v == nil {
		v = viewer.NewSession(viewer.Options{})
	}
	return &Session{
		status: LoadPending,
		engine: engine,
		cursor: selection.NewCursor(),
		viewer: v,
		bus:    bus,
	}
}

// Status returns the catalog load state
func (s *Session) Status() LoadStatus { return s.status }

// LoadErr returns the catalog load failure, if any
func (s *Session) LoadErr() error { return s.loadErr }

// Catalog returns the loaded entries in catalog order
func (s *Session) Catalog() []domain.CatalogEntry { return s.catalog }

// Query returns the current search text
func (s *Session) Query() string { return s.search.Query }

// Results returns the entries matching the current query
func (s *Session) Results() []domain.CatalogEntry { return s.search.Results }

// Selected returns the highlighted result index, or selection.None
func (s *Session) Selected() int { return s.cursor.Index() }

// Viewer returns a snapshot of the viewer
func (s *Session) Viewer() domain.ViewerState { return s.viewer.State() }

// Pending returns the outstanding content request
func (s *Session) Pending() (FetchRequest, bool) {
	if s.pending == nil {
		return FetchRequest{}, false
	}
	return *s.pending, true
}

// Notice returns the last user-visible message
func (s *Session) Notice() string { return s.notice }

// NoticeIsError reports whether the notice describes a failure
func (s *Session) NoticeIsError() bool { return s.noticeErr }

func (s *Session) setNotice(text string, isErr bool) {
	s.notice = text
	s.noticeErr = isErr
}

// Dispatch applies one event. The returned request, when non-nil, must
// be executed by the caller and its result dispatched back. Errors are
// turned into the notice and never returned.
func (s *Session) Dispatch(ev Event) *FetchRequest {
	switch ev := ev.(type) {
	case QueryChanged:
		s.setQuery(ev.Query)

	case NavigateNext:
		s.cursor.Next()

	case NavigatePrevious:
		s.cursor.Previous()

	case Confirm:
		return s.confirm()

	case SelectIndex:
		if !s.cursor.Valid(ev.Index) {
			log.Printf("Ignoring select of index %d with %d results", ev.Index, s.cursor.Len())
			return nil
		}
		s.cursor.Set(ev.Index)

	case ConfirmIndex:
		if !s.cursor.Valid(ev.Index) {
			log.Printf("Ignoring confirm of index %d with %d results", ev.Index, s.cursor.Len())
			return nil
		}
		s.cursor.Set(ev.Index)
		return s.confirm()

	case Close:
		s.close()

	case CopyRequested:
		s.copy()

	case DownloadRequested:
		s.download()

	case CatalogLoaded:
		s.status = LoadReady
		s.loadErr = nil
		s.catalog = ev.Entries
		s.setQuery(s.search.Query)
		s.publish(domain.CatalogLoadedEvent{Source: ev.Source, Entries: len(ev.Entries)})

	case CatalogFailed:
		s.status = LoadFailed
		s.loadErr = ev.Err
		s.catalog = nil
		s.setQuery(s.search.Query)
		s.setNotice(fmt.Sprintf("Could not load lyrics: %v", ev.Err), true)
		s.publish(domain.CatalogFailedEvent{Err: ev.Err})

	case ContentResolved:
		s.commit(ev)

	case ContentFailed:
		s.fail(ev)

	case CopyReverted:
		s.viewer.RevertCopy(ev.Generation)
	}
	return nil
}

func (s *Session) setQuery(q string) {
	s.search = query.State{
		Query:   q,
		Results: s.engine.Search(s.catalog, q),
	}
	s.cursor.Reset(len(s.search.Results))
	s.publish(domain.SearchCompletedEvent{Query: q, Matches: len(s.search.Results)})
}

func (s *Session) confirm() *FetchRequest {
	entry, ok := s.cursor.Confirm(s.search.Results)
	if !ok {
		return nil
	}

	s.nextID++
	req := FetchRequest{ID: s.nextID, Entry: entry}
	s.pending = &req
	s.setNotice("", false)
	log.Printf("Requesting content %d for %s", req.ID, entry.Path)
	return &req
}

// isCurrent reports whether a result belongs to the latest request
func (s *Session) isCurrent(id uint64, key domain.EntryKey) bool {
	return s.pending != nil && s.pending.ID == id && s.pending.Entry.Key() == key
}

func (s *Session) commit(ev ContentResolved) {
	key := ev.Content.Entry.Key()
	if !s.isCurrent(ev.RequestID, key) {
		log.Printf("Discarding stale content %d for %s", ev.RequestID, key.Filename)
		s.publish(domain.StaleContentDiscardedEvent{Key: key, RequestID: ev.RequestID})
		return
	}

	s.pending = nil
	s.viewer.Open(ev.Content)
	s.publish(domain.ContentResolvedEvent{Key: key, Bytes: len(ev.Content.RawText)})
	s.publish(domain.ViewerOpenedEvent{Key: key})
}

func (s *Session) fail(ev ContentFailed) {
	if !s.isCurrent(ev.RequestID, ev.Key) {
		log.Printf("Discarding stale failure %d for %s", ev.RequestID, ev.Key.Filename)
		s.publish(domain.StaleContentDiscardedEvent{Key: ev.Key, RequestID: ev.RequestID})
		return
	}

	s.pending = nil
	s.setNotice(fmt.Sprintf("Could not open %s: %v", ev.Key.Filename, ev.Err), true)
	s.publish(domain.ContentFailedEvent{Key: ev.Key, Err: ev.Err})
}

func (s *Session) close() {
	s.pending = nil
	key := s.viewer.State().Key
	if s.viewer.Close() {
		s.publish(domain.ViewerClosedEvent{Key: key})
	}
}

func (s *Session) copy() {
	st := s.viewer.State()
	if err := s.viewer.Copy(); err != nil {
		if errors.Is(err, viewer.ErrNotOpen) {
			return
		}
		s.setNotice(err.Error(), true)
		s.publish(domain.CopyFailedEvent{Err: err})
		return
	}
	s.setNotice("", false)
	s.publish(domain.CopiedEvent{Key: st.Key, Bytes: len(st.RawContent)})
}

func (s *Session) download() {
	st := s.viewer.State()
	path, err := s.viewer.Download()
	if err != nil {
		if errors.Is(err, viewer.ErrNotOpen) {
			return
		}
		s.setNotice(fmt.Sprintf("Download failed: %v", err), true)
		s.publish(domain.ErrorEvent{Message: "download failed", Err: err})
		return
	}
	s.setNotice(fmt.Sprintf("Saved %s", path), false)
	s.publish(domain.DownloadedEvent{Key: st.Key, Path: path})
}

func (s *Session) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
