package catalog

import (
	"strings"

	"lyrix/internal/domain"
)

// NewEntry builds a catalog entry and derives its display fields.
// The suffix is stripped case-insensitively; the remainder is split on
// " - " and the first two segments become title and artist.
func NewEntry(filename, path, suffix string) domain.CatalogEntry {
	title, artist := DeriveTitleArtist(filename, suffix)
	return domain.CatalogEntry{
		Filename: filename,
		Path:     path,
		Title:    title,
		Artist:   artist,
	}
}

// DeriveTitleArtist splits "Title - Artist.lrc" into its two parts
func DeriveTitleArtist(filename, suffix string) (string, string) {
	name := filename
	if suffix != "" && len(name) >= len(suffix) && strings.EqualFold(name[len(name)-len(suffix):], suffix) {
		name = name[:len(name)-len(suffix)]
	}

	parts := strings.Split(name, domain.TitleSeparator)
	if len(parts) < 2 {
		return name, domain.UnknownArtist
	}
	return parts[0], parts[1]
}
