package indexer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"lyrix/internal/catalog"
	"lyrix/internal/domain"
	"lyrix/internal/eventbus"
)

// Indexer scans a lyrics directory and writes the catalog file
type Indexer struct {
	dir     string
	output  string
	pattern glob.Glob
	bus     eventbus.EventBus
}

// New creates an indexer. pattern is matched against file names only.
func New(dir, pattern, output string, bus eventbus.EventBus) (*Indexer, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return &Indexer{
		dir:     dir,
		output:  output,
		pattern: g,
		bus:     bus,
	}, nil
}

// Dir returns the scanned directory
func (ix *Indexer) Dir() string { return ix.dir }

// Output returns the catalog file path
func (ix *Indexer) Output() string { return ix.output }

// Scan lists matching files in name order. Entry paths are relative to
// the catalog file's directory and use forward slashes.
func (ix *Indexer) Scan() ([]catalog.Record, error) {
	if _, err := os.Stat(ix.dir); err != nil {
		return nil, fmt.Errorf("lyrics directory %s: %w", ix.dir, err)
	}

	dirEntries, err := os.ReadDir(ix.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", ix.dir, err)
	}

	base := filepath.Dir(ix.output)
	records := make([]catalog.Record, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !ix.pattern.Match(de.Name()) {
			continue
		}

		full := filepath.Join(ix.dir, de.Name())
		rel, err := filepath.Rel(base, full)
		if err != nil {
			rel = full
		}
		records = append(records, catalog.Record{
			Filename: de.Name(),
			Path:     filepath.ToSlash(rel),
		})
	}
	return records, nil
}

// Run scans once and rewrites the catalog file
func (ix *Indexer) Run() (int, error) {
	records, err := ix.Scan()
	if err != nil {
		return 0, err
	}
	if err := WriteCatalog(ix.output, records); err != nil {
		return 0, err
	}

	log.Printf("Indexed %d files from %s into %s", len(records), ix.dir, ix.output)
	if ix.bus != nil {
		ix.bus.Publish(domain.IndexWrittenEvent{Path: ix.output, Entries: len(records)})
	}
	return len(records), nil
}

// WriteCatalog writes records as an indented JSON array. Non-ASCII
// characters are written as-is. The file is replaced atomically.
func WriteCatalog(path string, records []catalog.Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
