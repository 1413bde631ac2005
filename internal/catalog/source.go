package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// HTTPTimeout bounds a whole request made by an HTTPSource without its
// own client, body read included
var HTTPTimeout = 30 * time.Second

// Source yields the raw bytes of a catalog or a lyric file
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Location() string
}

// NewSource picks a source implementation from the location's scheme
func NewSource(location string) Source {
	if IsURL(location) {
		return &HTTPSource{URL: location}
	}
	return &FileSource{Path: location}
}

// IsURL reports whether location is an http(s) URL
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Resolve joins a relative entry path onto a base directory or URL.
// Absolute paths and URLs are returned unchanged.
func Resolve(base, p string) string {
	if IsURL(p) || base == "" {
		return p
	}
	if IsURL(base) {
		u, err := url.Parse(base)
		if err != nil {
			return p
		}
		ref, err := url.Parse(p)
		if err != nil {
			return p
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path = path.Dir(u.Path) + "/"
		}
		return u.ResolveReference(ref).String()
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, filepath.FromSlash(p))
}

// BaseOf returns the directory (or URL prefix) a catalog location lives in
func BaseOf(location string) string {
	if IsURL(location) {
		u, err := url.Parse(location)
		if err != nil {
			return location
		}
		u.Path = path.Dir(u.Path) + "/"
		u.RawQuery = ""
		return u.String()
	}
	return filepath.Dir(location)
}

// FileSource reads from the local filesystem
type FileSource struct {
	Path string
}

// Open opens the file
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Location returns the file path
func (s *FileSource) Location() string { return s.Path }

// HTTPSource fetches over HTTP(S)
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Open performs a GET request; non-2xx responses are errors
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: HTTPTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Location returns the URL
func (s *HTTPSource) Location() string { return s.URL }
