package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"skillswap/pkg/utils"
)

const (
	MaxPhotoSize     = 5 * 1024 * 1024
	DefaultAvatarURL = "/static/images/default_avatar.png"
)

var allowedExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
}

// PhotoStore persists profile photos under generated names.
type PhotoStore interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
	// URL is the client-facing location of a stored photo.
	URL(name string) string
}

func extensionOf(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

// ValidatePhoto checks the upload's extension and size. Size is checked first
// so an oversized file of any type reports the size limit.
func ValidatePhoto(filename string, size int64) error {
	if size > MaxPhotoSize {
		return utils.ErrFileTooLarge
	}
	if _, ok := allowedExtensions[extensionOf(filename)]; !ok {
		return utils.ErrInvalidFileType
	}
	return nil
}

// NewPhotoName returns a random file name that keeps the upload's extension.
func NewPhotoName(filename string) string {
	return uuid.NewString() + "." + extensionOf(filename)
}

// ContentType reports the MIME type for an allowed photo name.
func ContentType(filename string) string {
	if ct, ok := allowedExtensions[extensionOf(filename)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// PhotoURL resolves a stored reference, falling back to the default avatar.
func PhotoURL(store PhotoStore, name string) string {
	if name == "" {
		return DefaultAvatarURL
	}
	return store.URL(name)
}
