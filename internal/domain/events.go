package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventCatalogFailed   EventType = "CatalogFailed"
	EventSearchCompleted EventType = "SearchCompleted"
	EventContentResolved EventType = "ContentResolved"
	EventContentFailed   EventType = "ContentFailed"
	EventStaleDiscarded  EventType = "StaleContentDiscarded"
	EventViewerOpened    EventType = "ViewerOpened"
	EventViewerClosed    EventType = "ViewerClosed"
	EventCopied          EventType = "Copied"
	EventCopyFailed      EventType = "CopyFailed"
	EventDownloaded      EventType = "Downloaded"
	EventError           EventType = "Error"
	EventIndexWritten    EventType = "IndexWritten"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the catalog is available
type CatalogLoadedEvent struct {
	Source  string
	Entries int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogFailedEvent is emitted when the catalog cannot be loaded
type CatalogFailedEvent struct {
	Err error
}

func (e CatalogFailedEvent) Type() EventType { return EventCatalogFailed }

// SearchCompletedEvent is emitted after every query change
type SearchCompletedEvent struct {
	Query   string
	Matches int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// ContentResolvedEvent is emitted when a fetch result is committed to the viewer
type ContentResolvedEvent struct {
	Key   EntryKey
	Bytes int
}

func (e ContentResolvedEvent) Type() EventType { return EventContentResolved }

// ContentFailedEvent is emitted when fetching an entry's content fails
type ContentFailedEvent struct {
	Key EntryKey
	Err error
}

func (e ContentFailedEvent) Type() EventType { return EventContentFailed }

// StaleContentDiscardedEvent is emitted when a late fetch result is dropped
type StaleContentDiscardedEvent struct {
	Key       EntryKey
	RequestID uint64
}

func (e StaleContentDiscardedEvent) Type() EventType { return EventStaleDiscarded }

// ViewerOpenedEvent is emitted when the overlay opens
type ViewerOpenedEvent struct {
	Key EntryKey
}

func (e ViewerOpenedEvent) Type() EventType { return EventViewerOpened }

// ViewerClosedEvent is emitted when the overlay closes
type ViewerClosedEvent struct {
	Key EntryKey
}

func (e ViewerClosedEvent) Type() EventType { return EventViewerClosed }

// CopiedEvent is emitted after a successful clipboard copy
type CopiedEvent struct {
	Key   EntryKey
	Bytes int
}

func (e CopiedEvent) Type() EventType { return EventCopied }

// CopyFailedEvent is emitted when the clipboard rejects a copy
type CopyFailedEvent struct {
	Err error
}

func (e CopyFailedEvent) Type() EventType { return EventCopyFailed }

// DownloadedEvent is emitted after the raw content is written to disk
type DownloadedEvent struct {
	Key  EntryKey
	Path string
}

func (e DownloadedEvent) Type() EventType { return EventDownloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// IndexWrittenEvent is emitted when the indexer rewrites the catalog file
type IndexWrittenEvent struct {
	Path    string
	Entries int
}

func (e IndexWrittenEvent) Type() EventType { return EventIndexWritten }
