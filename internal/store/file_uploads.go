package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-stay/internal/logger"
)

// stagingDirName holds in-progress writes. It lives inside the upload dir so
// the final rename stays on one filesystem; dot-prefixed paths are not
// served under /uploads/.
const stagingDirName = ".staging"

// uploadFileStorage is the local-directory implementation of
// [UploadStorage]. Files are written to a temporary name in the staging dir
// first and renamed into place, so a partially written photo is never
// served.
type uploadFileStorage struct {
	dir        string
	stagingDir string
	logger     *logger.Logger
}

// NewUploadFileStorage creates dir when missing and returns an
// [UploadStorage] writing into it.
func NewUploadFileStorage(dir string, logger *logger.Logger) (UploadStorage, error) {
	stagingDir := filepath.Join(dir, stagingDirName)
	if err := os.MkdirAll(stagingDir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating upload dir: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating upload file storage")
	return &uploadFileStorage{
		dir:        dir,
		stagingDir: stagingDir,
		logger:     logger,
	}, nil
}

func (s *uploadFileStorage) Dir() string {
	return s.dir
}

// SaveFile writes content to dir/fileName. Names containing path separators
// and hidden names are rejected.
func (s *uploadFileStorage) SaveFile(ctx context.Context, fileName string, content io.Reader) error {
	log := logger.FromContext(ctx)

	if fileName == "" || fileName != filepath.Base(fileName) || strings.HasPrefix(fileName, ".") {
		return fmt.Errorf("%w: invalid file name %q", ErrSavingFile, fileName)
	}

	tmp, err := os.CreateTemp(s.stagingDir, "upload-*")
	if err != nil {
		log.Err(err).Str("func", "uploadFileStorage.SaveFile").Msg("failed to create temp file")
		return fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, contextReader{ctx: ctx, r: content}); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "uploadFileStorage.SaveFile").Str("file", fileName).Msg("failed to write file")
		return fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, fileName)); err != nil {
		log.Err(err).Str("func", "uploadFileStorage.SaveFile").Str("file", fileName).Msg("failed to move file into place")
		return fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	log.Debug().Str("file", fileName).Msg("file saved")
	return nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
