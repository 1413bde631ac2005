package query

import (
	"strings"

	"lyrix/internal/domain"
)

// Engine filters a catalog by case-insensitive substring containment
type Engine struct {
	fields    []Field
	minLength int
}

// NewEngine creates an engine over the given fields. An empty field
// list falls back to DefaultFields; minLength below 1 is treated as 1.
func NewEngine(fields []Field, minLength int) *Engine {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	if minLength < 1 {
		minLength = 1
	}
	return &Engine{fields: fields, minLength: minLength}
}

// ParseFields converts config strings into fields, skipping unknown names
func ParseFields(names []string) []Field {
	var fields []Field
	for _, n := range names {
		switch f := Field(strings.ToLower(n)); f {
		case FieldFilename, FieldTitle, FieldArtist:
			fields = append(fields, f)
		}
	}
	return fields
}

// Fields returns the fields checked by the engine
func (e *Engine) Fields() []Field {
	return e.fields
}

// Search returns the entries matching query in catalog order.
// Blank or too-short queries match nothing.
func (e *Engine) Search(catalog []domain.CatalogEntry, query string) []domain.CatalogEntry {
	if strings.TrimSpace(query) == "" || len([]rune(query)) < e.minLength {
		return nil
	}

	needle := strings.ToLower(query)
	var results []domain.CatalogEntry
	for _, entry := range catalog {
		if e.Matches(entry, needle) {
			results = append(results, entry)
		}
	}
	return results
}

// Matches reports whether any checked field contains the lowercased needle
func (e *Engine) Matches(entry domain.CatalogEntry, needle string) bool {
	for _, f := range e.fields {
		if strings.Contains(strings.ToLower(f.value(entry)), needle) {
			return true
		}
	}
	return false
}
