package viewer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Downloader offers raw content to the user as a file
type Downloader interface {
	Offer(filename, text string) (string, error)
}

// DirDownloader writes files into a directory without overwriting
type DirDownloader struct {
	Dir string
}

// Offer writes text under filename, adding " (1)", " (2)"... when the
// name is taken. Returns the path written.
func (d DirDownloader) Offer(filename, text string) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", d.Dir, err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; i < 1000; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(d.Dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}
		if _, err := f.WriteString(text); err != nil {
			f.Close()
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("too many copies of %s in %s", name, d.Dir)
}
