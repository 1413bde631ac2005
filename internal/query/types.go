package query

import "lyrix/internal/domain"

// Field names an entry attribute the engine can match against
type Field string

const (
	FieldFilename Field = "filename"
	FieldTitle    Field = "title"
	FieldArtist   Field = "artist"
)

// DefaultFields are checked when no fields are configured
var DefaultFields = []Field{FieldFilename, FieldTitle, FieldArtist}

// State holds the outcome of the last search
type State struct {
	Query   string
	Results []domain.CatalogEntry
}

func (f Field) value(e domain.CatalogEntry) string {
	switch f {
	case FieldTitle:
		return e.Title
	case FieldArtist:
		return e.Artist
	default:
		return e.Filename
	}
}
