package indexer

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups bursts of file events into one rewrite
const DefaultDebounce = 300 * time.Millisecond

// Watch rewrites the catalog whenever a matching file in the lyrics
// directory is created, removed or renamed. It blocks until ctx is done.
func (ix *Indexer) Watch(ctx context.Context, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(ix.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", ix.dir, err)
	}
	log.Printf("Watching %s for changes", ix.dir)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ix.relevant(event) {
				continue
			}
			pending = time.After(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-pending:
			pending = nil
			if _, err := ix.Run(); err != nil {
				log.Printf("Failed to rebuild catalog: %v", err)
			}
		}
	}
}

func (ix *Indexer) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return ix.pattern.Match(filepath.Base(event.Name))
}
