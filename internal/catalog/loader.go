package catalog

import (
	"context"
	"log"

	"lyrix/internal/domain"
)

// Loader fetches and normalizes the catalog
type Loader struct {
	source Source
	format Format
	suffix string
}

// NewLoader creates a loader for the given location
func NewLoader(location, suffix string) *Loader {
	return &Loader{
		source: NewSource(location),
		format: FormatFor(location),
		suffix: suffix,
	}
}

// NewLoaderFromSource creates a loader over an arbitrary source
func NewLoaderFromSource(source Source, format Format, suffix string) *Loader {
	return &Loader{source: source, format: format, suffix: suffix}
}

// Location returns where the catalog is read from
func (l *Loader) Location() string {
	return l.source.Location()
}

// Load fetches the catalog once and returns its entries in file order.
// Every failure is reported as a *domain.LoadError.
func (l *Loader) Load(ctx context.Context) ([]domain.CatalogEntry, error) {
	rc, err := l.source.Open(ctx)
	if err != nil {
		return nil, &domain.LoadError{Source: l.source.Location(), Err: err}
	}
	defer rc.Close()

	records, err := Decode(rc, l.format)
	if err != nil {
		return nil, &domain.LoadError{Source: l.source.Location(), Err: err}
	}

	entries := make([]domain.CatalogEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, NewEntry(rec.Filename, rec.Path, l.suffix))
	}

	log.Printf("Loaded %d catalog entries from %s", len(entries), l.source.Location())
	return entries, nil
}
