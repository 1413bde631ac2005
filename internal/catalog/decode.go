package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Record is the on-disk shape of a catalog entry
type Record struct {
	Filename string `json:"filename" yaml:"filename"`
	Path     string `json:"path" yaml:"path"`
}

// Format selects the catalog decoder
type Format int

const (
	FormatJSON Format = iota // JSON, comments and trailing commas allowed
	FormatYAML
)

// FormatFor guesses the catalog format from its location
func FormatFor(location string) Format {
	loc := strings.ToLower(location)
	if i := strings.IndexAny(loc, "?#"); i >= 0 && IsURL(loc) {
		loc = loc[:i]
	}
	switch filepath.Ext(loc) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a catalog payload into records. Every record must carry
// a filename and a path.
func Decode(r io.Reader, format Format) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var records []Record
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &records); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	}

	if records == nil {
		return nil, errors.New("catalog is not a list of entries")
	}

	for i, rec := range records {
		if rec.Filename == "" {
			return nil, fmt.Errorf("entry %d has no filename", i)
		}
		if rec.Path == "" {
			return nil, fmt.Errorf("entry %d (%s) has no path", i, rec.Filename)
		}
	}
	return records, nil
}
