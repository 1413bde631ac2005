package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyrix/internal/domain"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestLoadJSONPreservesOrder(t *testing.T) {
	p := writeFile(t, t.TempDir(), "database.json", `[
		{"filename": "B - Two.lrc", "path": "lyrics/B - Two.lrc"},
		{"filename": "A - One.lrc", "path": "lyrics/A - One.lrc"}
	]`)

	entries, err := NewLoader(p, ".lrc").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "B - Two.lrc", entries[0].Filename)
	assert.Equal(t, "Two", entries[0].Artist)
	assert.Equal(t, "A - One.lrc", entries[1].Filename)
}

func TestLoadAcceptsJSONC(t *testing.T) {
	p := writeFile(t, t.TempDir(), "database.json", `[
		// generated by hand
		{"filename": "Song.lrc", "path": "lyrics/Song.lrc",},
	]`)

	entries, err := NewLoader(p, ".lrc").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Song", entries[0].Title)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "catalog.yaml", `
- filename: Song A - Artist X.lrc
  path: /a
- filename: Song B.lrc
  path: /b
`)

	entries, err := NewLoader(p, ".lrc").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/a", entries[0].Path)
	assert.Equal(t, domain.UnknownArtist, entries[1].Artist)
}

func TestLoadKeepsDuplicateFilenames(t *testing.T) {
	p := writeFile(t, t.TempDir(), "database.json", `[
		{"filename": "Same.lrc", "path": "a/Same.lrc"},
		{"filename": "Same.lrc", "path": "b/Same.lrc"}
	]`)

	entries, err := NewLoader(p, ".lrc").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].Key(), entries[1].Key())
}

func TestLoadFailuresAreLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		location string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"malformed", writeFile(t, dir, "bad.json", `{"filename": `)},
		{"not a list", writeFile(t, dir, "object.json", `{"filename": "x", "path": "y"}`)},
		{"null", writeFile(t, dir, "null.json", `null`)},
		{"missing path", writeFile(t, dir, "nopath.json", `[{"filename": "x.lrc"}]`)},
		{"missing filename", writeFile(t, dir, "noname.json", `[{"path": "x.lrc"}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := NewLoader(tt.location, ".lrc").Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, entries)

			var loadErr *domain.LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.location, loadErr.Source)
		})
	}
}

func TestLoadOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/database.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"filename": "Song A - Artist X.lrc", "path": "lyrics/a.lrc"}]`))
	}))
	defer srv.Close()

	entries, err := NewLoader(srv.URL+"/site/database.json", ".lrc").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = NewLoader(srv.URL+"/missing.json", ".lrc").Load(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "404"))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"site", "lyrics/a.lrc", filepath.Join("site", "lyrics", "a.lrc")},
		{"", "lyrics/a.lrc", "lyrics/a.lrc"},
		{"site", "/abs/a.lrc", "/abs/a.lrc"},
		{"https://host/site/", "lyrics/a.lrc", "https://host/site/lyrics/a.lrc"},
		{"https://host/site/", "/a", "https://host/a"},
		{"site", "https://cdn/a.lrc", "https://cdn/a.lrc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.base, tt.path), "%s + %s", tt.base, tt.path)
	}
}

func TestBaseOf(t *testing.T) {
	assert.Equal(t, "https://host/site/", BaseOf("https://host/site/database.json?v=2"))
	assert.Equal(t, filepath.Join("a", "b"), BaseOf(filepath.Join("a", "b", "database.json")))
}

func TestLoadOverHTTPTimesOut(t *testing.T) {
	old := HTTPTimeout
	HTTPTimeout = 50 * time.Millisecond
	t.Cleanup(func() { HTTPTimeout = old })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	start := time.Now()
	_, err := NewLoader(srv.URL+"/database.json", ".lrc").Load(context.Background())
	require.Error(t, err)

	var loadErr *domain.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Less(t, time.Since(start), 5*time.Second)
}
