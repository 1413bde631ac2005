package domain

// UnknownArtist is shown when a filename carries no artist segment
const UnknownArtist = "Unknown artist"

// TitleSeparator splits "Title - Artist" filenames
const TitleSeparator = " - "

// CatalogEntry represents one lyric file in the catalog.
// Entries are created once by the catalog loader and never mutated.
type CatalogEntry struct {
	Filename string // e.g. "Song A - Artist X.lrc"
	Path     string // locator used to fetch the raw content
	Title    string // derived from Filename
	Artist   string // derived from Filename, UnknownArtist if absent
}

// Key returns the identity of the entry
func (e CatalogEntry) Key() EntryKey {
	return EntryKey{Filename: e.Filename, Path: e.Path}
}

// EntryKey identifies an entry by filename and path together, so two
// catalog records sharing a filename stay distinct.
type EntryKey struct {
	Filename string
	Path     string
}

// IsZero reports whether the key is unset
func (k EntryKey) IsZero() bool {
	return k.Filename == "" && k.Path == ""
}

// Segment is one piece of a formatted lyric line
type Segment struct {
	Text      string
	Timestamp bool // rendered with the timestamp style
}

// FormattedLine is one line of formatted lyric content
type FormattedLine struct {
	Segments []Segment
}

// ResolvedContent is the displayable form of an entry's content
type ResolvedContent struct {
	Entry     CatalogEntry
	Title     string
	RawText   string
	Formatted []FormattedLine
}

// CopyStatus represents the state of the copy button
type CopyStatus int

const (
	CopyIdle CopyStatus = iota
	CopyCopied
)

func (s CopyStatus) String() string {
	switch s {
	case CopyCopied:
		return "Copied"
	default:
		return "Idle"
	}
}

// ViewerState is a snapshot of the detail overlay
type ViewerState struct {
	IsOpen     bool
	Key        EntryKey
	Title      string
	Artist     string
	Filename   string
	RawContent string
	Formatted  []FormattedLine
	CopyStatus CopyStatus
}
