package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-stay/internal/config"
	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/store"
	"github.com/MKhiriev/go-stay/internal/utils"
	"github.com/MKhiriev/go-stay/models"
)

const (
	defaultPhotoExt  = ".jpg"
	linkPhotoPrefix  = "photo-"
	maxPhotoExtChars = 5
)

type uploadService struct {
	uploadStorage store.UploadStorage
	fetcher       RemoteFetcher
	ids           IDGenerator

	maxFiles int
	maxSize  int64

	logger *logger.Logger
}

func NewUploadService(uploadStorage store.UploadStorage, fetcher RemoteFetcher, ids IDGenerator, cfg config.Files, logger *logger.Logger) UploadService {
	return &uploadService{
		uploadStorage: uploadStorage,
		fetcher:       fetcher,
		ids:           ids,
		maxFiles:      cfg.MaxUploadFiles,
		maxSize:       cfg.MaxUploadSize,
		logger:        logger,
	}
}

// UploadByLink downloads an http(s) link and stores it as photo-<id><ext>,
// where ext is taken from the link path.
func (s *uploadService) UploadByLink(ctx context.Context, link string) (string, error) {
	log := s.logger.ForContext(ctx)

	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		log.Error().Str("link", link).Msg("invalid link provided")
		return "", ErrInvalidLink
	}

	body, err := s.fetcher.Fetch(ctx, u.String())
	if err != nil {
		log.Err(err).Str("link", u.String()).Msg("remote fetch failed")
		if errors.Is(err, ErrRemoteFetchFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrRemoteFetchFailed, err)
	}
	defer body.Close()

	fileName := linkPhotoPrefix + s.ids.Generate() + photoExt(path.Base(u.Path))
	if err = s.uploadStorage.SaveFile(ctx, fileName, s.limit(body)); err != nil {
		log.Err(err).Str("file", fileName).Msg("saving fetched photo failed")
		return "", fmt.Errorf("saving fetched photo failed: %w", err)
	}

	return fileName, nil
}

// UploadFiles stores each file as <id><original ext>. Files already saved
// are kept when a later one fails.
func (s *uploadService) UploadFiles(ctx context.Context, files []models.UploadedFile) ([]string, error) {
	log := s.logger.ForContext(ctx)

	if len(files) == 0 {
		return nil, ErrNoFilesProvided
	}
	if s.maxFiles > 0 && len(files) > s.maxFiles {
		log.Error().Int("files", len(files)).Int("max", s.maxFiles).Msg("too many files provided")
		return nil, ErrTooManyFiles
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		fileName := s.ids.Generate() + photoExt(filepath.Base(file.OriginalName))
		if err := s.uploadStorage.SaveFile(ctx, fileName, s.limit(file.Content)); err != nil {
			log.Err(err).Str("file", fileName).Str("original", file.OriginalName).Msg("saving uploaded photo failed")
			return nil, fmt.Errorf("saving uploaded photo failed: %w", err)
		}
		names = append(names, fileName)
	}

	return names, nil
}

func (s *uploadService) limit(r io.Reader) io.Reader {
	if s.maxSize <= 0 {
		return r
	}
	return &sizeLimitedReader{r: r, left: s.maxSize}
}

// photoExt returns the lower-cased extension of name, or .jpg when name has
// none or it is not a short alphanumeric suffix.
func photoExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > maxPhotoExtChars+1 {
		return defaultPhotoExt
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return defaultPhotoExt
		}
	}
	return ext
}

// sizeLimitedReader fails with ErrFileTooLarge once more than left bytes
// have been read.
type sizeLimitedReader struct {
	r    io.Reader
	left int64
}

func (l *sizeLimitedReader) Read(p []byte) (int, error) {
	if l.left < 0 {
		return 0, ErrFileTooLarge
	}
	if int64(len(p)) > l.left+1 {
		p = p[:l.left+1]
	}

	n, err := l.r.Read(p)
	l.left -= int64(n)
	if l.left < 0 {
		return 0, ErrFileTooLarge
	}
	return n, err
}

type remoteFetcher struct {
	client *utils.HTTPClient
}

func NewRemoteFetcher(client *utils.HTTPClient) RemoteFetcher {
	return &remoteFetcher{client: client}
}

// Fetch performs a GET of url and returns the unread response body. Non-2xx
// answers are reported as ErrRemoteFetchFailed.
func (f *remoteFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteFetchFailed, err)
	}

	if !resp.IsSuccess() {
		resp.RawBody().Close()
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRemoteFetchFailed, resp.StatusCode())
	}

	return resp.RawBody(), nil
}
