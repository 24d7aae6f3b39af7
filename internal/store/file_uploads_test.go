package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stay/internal/logger"
)

func TestNewUploadFileStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "photos")

	s, err := NewUploadFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, dir, s.Dir())
	assert.DirExists(t, dir)
}

func TestUploadFileStorage_SaveFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewUploadFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.SaveFile(context.Background(), "photo-1.jpg", strings.NewReader("jpeg bytes")))

	content, err := os.ReadFile(filepath.Join(dir, "photo-1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))

	staged, err := os.ReadDir(filepath.Join(dir, stagingDirName))
	require.NoError(t, err)
	assert.Empty(t, staged, "temporary files are cleaned up")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		if e.Name() != "photo-1.jpg" {
			assert.Equal(t, stagingDirName, e.Name(), "only the photo and the staging dir live in the upload dir")
		}
	}
}

func TestUploadFileStorage_StagesOutsideServedNames(t *testing.T) {
	dir := t.TempDir()
	s, err := NewUploadFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	var inUploadDir, inStaging []string
	content := readerFunc(func(p []byte) (int, error) {
		// snapshot both directories while the write is in progress
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			if e.Name() != stagingDirName {
				inUploadDir = append(inUploadDir, e.Name())
			}
		}
		staged, err := os.ReadDir(filepath.Join(dir, stagingDirName))
		require.NoError(t, err)
		for _, e := range staged {
			inStaging = append(inStaging, e.Name())
		}
		return 0, io.EOF
	})

	require.NoError(t, s.SaveFile(context.Background(), "photo-2.jpg", content))
	assert.Empty(t, inUploadDir)
	assert.NotEmpty(t, inStaging)
	assert.FileExists(t, filepath.Join(dir, "photo-2.jpg"))
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestUploadFileStorage_RejectsPaths(t *testing.T) {
	s, err := NewUploadFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../escape.jpg", "a/b.jpg", ".hidden.jpg", stagingDirName} {
		t.Run(name, func(t *testing.T) {
			err := s.SaveFile(context.Background(), name, strings.NewReader("x"))
			assert.ErrorIs(t, err, ErrSavingFile)
		})
	}
}

func TestUploadFileStorage_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	s, err := NewUploadFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.SaveFile(ctx, "photo.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrSavingFile)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, "photo.jpg"))
}
