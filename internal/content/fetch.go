package content

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"lyrix/internal/catalog"
)

// maxContentBytes caps a single lyric file
const maxContentBytes = 8 << 20

// Fetcher retrieves the raw text stored at an entry path
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// SourceFetcher resolves entry paths against a base directory or URL
type SourceFetcher struct {
	Base string
}

// NewSourceFetcher creates a fetcher rooted at base
func NewSourceFetcher(base string) *SourceFetcher {
	return &SourceFetcher{Base: base}
}

// Fetch reads the whole document. Gzip payloads are decompressed.
func (f *SourceFetcher) Fetch(ctx context.Context, path string) (string, error) {
	src := catalog.NewSource(catalog.Resolve(f.Base, path))
	rc, err := src.Open(ctx)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return readText(rc)
}

func readText(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	var body io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return "", fmt.Errorf("invalid gzip content: %w", err)
		}
		defer zr.Close()
		body = zr
	}

	data, err := io.ReadAll(io.LimitReader(body, maxContentBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxContentBytes {
		return "", fmt.Errorf("content exceeds %d bytes", maxContentBytes)
	}
	return string(data), nil
}
