package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-stay/internal/service"
	"github.com/MKhiriev/go-stay/internal/utils"
	"github.com/MKhiriev/go-stay/models"
)

const (
	uploadFormField     = "photos"
	multipartMemorySize = 8 << 20
)

func (h *Handler) uploadByLink(w http.ResponseWriter, r *http.Request) error {
	var req models.UploadByLinkRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	fileName, err := h.services.UploadService.UploadByLink(r.Context(), req.Link)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, fileName, http.StatusOK)
	return err
}

// uploadFiles stores the files of the multipart field "photos". The whole
// request body is bounded by the configured upload size.
func (h *Handler) uploadFiles(w http.ResponseWriter, r *http.Request) error {
	if h.settings.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.settings.MaxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemorySize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return service.ErrFileTooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadFormField]
	files := make([]models.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll(files)
			return fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
		}
		files = append(files, models.UploadedFile{OriginalName: header.Filename, Content: file})
	}
	defer closeAll(files)

	names, err := h.services.UploadService.UploadFiles(r.Context(), files)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, names, http.StatusOK)
	return err
}

func closeAll(files []models.UploadedFile) {
	for _, f := range files {
		if c, ok := f.Content.(multipart.File); ok {
			c.Close()
		}
	}
}
