package session

import (
	"context"

	"lyrix/internal/domain"
)

// Event is one input to Dispatch. The set is closed: only the types in
// this file implement it.
type Event interface {
	isEvent()
}

// QueryChanged carries the search text exactly as typed
type QueryChanged struct {
	Query string
}

// NavigateNext moves the highlight down one result
type NavigateNext struct{}

// NavigatePrevious moves the highlight up one result
type NavigatePrevious struct{}

// Confirm opens the highlighted result
type Confirm struct{}

// SelectIndex highlights a result directly (pointer hover)
type SelectIndex struct {
	Index int
}

// ConfirmIndex highlights and opens a result (pointer click)
type ConfirmIndex struct {
	Index int
}

// Close dismisses the viewer
type Close struct{}

// CopyRequested copies the open entry's raw text
type CopyRequested struct{}

// DownloadRequested saves the open entry's raw text to a file
type DownloadRequested struct{}

// CatalogLoaded delivers the startup catalog
type CatalogLoaded struct {
	Source  string
	Entries []domain.CatalogEntry
}

// CatalogFailed reports that the startup catalog could not be loaded
type CatalogFailed struct {
	Err error
}

// ContentResolved delivers the result of a FetchRequest
type ContentResolved struct {
	RequestID uint64
	Content   domain.ResolvedContent
}

// ContentFailed reports a failed FetchRequest
type ContentFailed struct {
	RequestID uint64
	Key       domain.EntryKey
	Err       error
}

// CopyReverted is the copy-status timer firing
type CopyReverted struct {
	Generation uint64
}

func (QueryChanged) isEvent()      {}
func (NavigateNext) isEvent()      {}
func (NavigatePrevious) isEvent()  {}
func (Confirm) isEvent()           {}
func (SelectIndex) isEvent()       {}
func (ConfirmIndex) isEvent()      {}
func (Close) isEvent()             {}
func (CopyRequested) isEvent()     {}
func (DownloadRequested) isEvent() {}
func (CatalogLoaded) isEvent()     {}
func (CatalogFailed) isEvent()     {}
func (ContentResolved) isEvent()   {}
func (ContentFailed) isEvent()     {}
func (CopyReverted) isEvent()      {}

// Resolver fetches and formats an entry's content
type Resolver interface {
	Resolve(ctx context.Context, entry domain.CatalogEntry) (domain.ResolvedContent, error)
}

// CatalogLoader loads the catalog once
type CatalogLoader interface {
	Load(ctx context.Context) ([]domain.CatalogEntry, error)
	Location() string
}

// FetchRequest asks the host to resolve Entry. The entry is captured
// when the request is made, so the fetch always uses that path.
type FetchRequest struct {
	ID    uint64
	Entry domain.CatalogEntry
}

// Execute runs the request and returns the event to dispatch with its result
func (r FetchRequest) Execute(ctx context.Context, resolver Resolver) Event {
	resolved, err := resolver.Resolve(ctx, r.Entry)
	if err != nil {
		return ContentFailed{RequestID: r.ID, Key: r.Entry.Key(), Err: err}
	}
	return ContentResolved{RequestID: r.ID, Content: resolved}
}

// LoadCatalog runs the loader and returns CatalogLoaded or CatalogFailed
func LoadCatalog(ctx context.Context, loader CatalogLoader) Event {
	entries, err := loader.Load(ctx)
	if err != nil {
		return CatalogFailed{Err: err}
	}
	return CatalogLoaded{Source: loader.Location(), Entries: entries}
}
