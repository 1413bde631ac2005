package content

import (
	"context"
	"log"

	"lyrix/internal/domain"
)

// TitleMode selects which name the viewer shows
type TitleMode int

const (
	TitleDerived TitleMode = iota
	TitleFilename
)

// Resolver turns a catalog entry into displayable content
type Resolver struct {
	fetcher          Fetcher
	formatTimestamps bool
	titleMode        TitleMode
}

// NewResolver creates a resolver
func NewResolver(fetcher Fetcher, formatTimestamps bool, titleMode TitleMode) *Resolver {
	return &Resolver{
		fetcher:          fetcher,
		formatTimestamps: formatTimestamps,
		titleMode:        titleMode,
	}
}

// Resolve fetches the entry's content from the path the entry carries.
// Failures are returned as *domain.FetchError.
func (r *Resolver) Resolve(ctx context.Context, entry domain.CatalogEntry) (domain.ResolvedContent, error) {
	raw, err := r.fetcher.Fetch(ctx, entry.Path)
	if err != nil {
		log.Printf("Fetch failed for %s: %v", entry.Path, err)
		return domain.ResolvedContent{}, &domain.FetchError{Path: entry.Path, Err: err}
	}

	title := entry.Title
	if r.titleMode == TitleFilename || title == "" {
		title = entry.Filename
	}

	formatted := Verbatim(raw)
	if r.formatTimestamps {
		formatted = Format(raw)
	}

	return domain.ResolvedContent{
		Entry:     entry,
		Title:     title,
		RawText:   raw,
		Formatted: formatted,
	}, nil
}
