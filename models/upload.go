// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// UploadByLinkRequest is the body of POST /upload-by-link.
type UploadByLinkRequest struct {
	Link string `json:"link"`
}

// UploadedFile is a single file received in a multipart upload.
type UploadedFile struct {
	// OriginalName is the client-side file name; only its extension is kept.
	OriginalName string

	// Content streams the file bytes. The caller owns closing it.
	Content io.Reader
}
