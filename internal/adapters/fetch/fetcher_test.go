package fetch_test

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcelBraghetto/forge/internal/adapters/fetch"
	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/core/ports/mocks"
)

// zipArchive builds an in-memory zip with the given file paths (directories
// are implied by the paths).
func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func newFetcher(t *testing.T) *fetch.ZipFetcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return fetch.NewFetcher(log)
}

func TestFetcher_Fetch_DownloadsAndRenamesRoot(t *testing.T) {
	archive := zipArchive(t, map[string]string{
		"SDL2-2.28.5/CMakeLists.txt": "project(SDL2)",
		"SDL2-2.28.5/src/SDL.c":      "int main;",
		"SDL2-2.28.5/include/SDL.h":  "#pragma once",
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer server.Close()

	parent := t.TempDir()
	f := newFetcher(t)

	got, err := f.Fetch(context.Background(), server.URL, "SDL2", parent)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(parent, "SDL2"), got)
	require.FileExists(t, filepath.Join(got, "src", "SDL.c"))
	require.FileExists(t, filepath.Join(got, "include", "SDL.h"))
}

func TestFetcher_Fetch_MemoizesOnDirectoryPresence(t *testing.T) {
	archive := zipArchive(t, map[string]string{"root/file.txt": "hello"})

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write(archive)
	}))
	defer server.Close()

	parent := t.TempDir()
	f := newFetcher(t)

	_, err := f.Fetch(context.Background(), server.URL, "dep", parent)
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())

	// Second call must perform zero network work.
	_, err = f.Fetch(context.Background(), server.URL, "dep", parent)
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())
}

func TestFetcher_Fetch_RejectsMultiRootArchive(t *testing.T) {
	archive := zipArchive(t, map[string]string{
		"root-a/file.txt": "a",
		"root-b/file.txt": "b",
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer server.Close()

	f := newFetcher(t)

	_, err := f.Fetch(context.Background(), server.URL, "dep", t.TempDir())
	require.ErrorIs(t, err, domain.ErrArchiveLayout)
}

func TestFetcher_Fetch_HTTPErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := newFetcher(t)

	_, err := f.Fetch(context.Background(), server.URL, "dep", t.TempDir())
	require.Error(t, err)
	require.NoDirExists(t, filepath.Join(t.TempDir(), "dep"))
}
