package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soil-farming-agent/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	storage, err := NewStorage(utils.UploadConfig{
		Dir:       filepath.Join(t.TempDir(), "uploads"),
		MaxFiles:  5,
		MaxSizeMB: 5,
	}, zap.NewNop())
	require.NoError(t, err)
	return storage
}

// fileHeaders builds real multipart.FileHeaders by round-tripping a form
// through the stdlib parser, matching how they arrive from an HTTP request.
func fileHeaders(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["images"]
}

func TestSaveImagesAcceptsPNG(t *testing.T) {
	storage := newTestStorage(t)

	paths, err := storage.SaveImages(fileHeaders(t, map[string][]byte{"a.png": pngHeader}))
	require.NoError(t, err)
	require.Len(t, paths, 1)

	assert.True(t, strings.HasPrefix(paths[0], "/uploads/"))
	assert.True(t, strings.HasSuffix(paths[0], ".png"))

	// The file actually landed on disk under the configured dir
	written, err := os.ReadFile(filepath.Join(storage.Dir(), filepath.Base(paths[0])))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, written)
}

func TestSaveImagesDropsDisallowedType(t *testing.T) {
	storage := newTestStorage(t)

	paths, err := storage.SaveImages(fileHeaders(t, map[string][]byte{
		"notes.txt": []byte("not an image at all"),
		"page.html": []byte("<html><body>nope</body></html>"),
	}))
	require.NoError(t, err)
	assert.Empty(t, paths)

	entries, err := os.ReadDir(storage.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected files must not reach disk")
}

func TestSaveImagesTrustsContentNotFilename(t *testing.T) {
	storage := newTestStorage(t)

	// A script dressed up with a .png name is still dropped
	paths, err := storage.SaveImages(fileHeaders(t, map[string][]byte{
		"innocent.png": []byte("#!/bin/sh\nrm -rf /\n"),
	}))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSaveImagesDropsOversize(t *testing.T) {
	storage := newTestStorage(t)

	oversize := make([]byte, 6*1024*1024)
	copy(oversize, pngHeader)

	paths, err := storage.SaveImages(fileHeaders(t, map[string][]byte{
		"huge.png": oversize,
		"ok.png":   pngHeader,
	}))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], ".png"))
}

func TestSaveImagesTruncatesToMaxFiles(t *testing.T) {
	storage, err := NewStorage(utils.UploadConfig{
		Dir:       filepath.Join(t.TempDir(), "uploads"),
		MaxFiles:  2,
		MaxSizeMB: 5,
	}, zap.NewNop())
	require.NoError(t, err)

	paths, err := storage.SaveImages(fileHeaders(t, map[string][]byte{
		"a.png": pngHeader,
		"b.png": pngHeader,
		"c.png": pngHeader,
		"d.png": pngHeader,
	}))
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}
