package filestorage

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStorage is the upload sink: it accepts a file and returns a durable public URL.
type FileStorage interface {
	// SaveFile stores the uploaded file under folder and returns its public URL
	SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)
}

// Folders used by the handlers
const (
	FolderProfiles     = "profiles"
	FolderGallery      = "gallery"
	FolderBoardMinutes = "board-minutes"
)

// objectName builds "<folder>/<uuid><ext>" from the client filename
func objectName(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	name := uuid.New().String() + ext
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// joinURL joins a base URL and an object key without doubled slashes
func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

// ContentType returns the declared content type of an upload, if any
func ContentType(fileHeader *multipart.FileHeader) string {
	if fileHeader == nil {
		return ""
	}
	return fileHeader.Header.Get("Content-Type")
}

// IsPDF reports whether the upload looks like a PDF document
func IsPDF(fileHeader *multipart.FileHeader) bool {
	if fileHeader == nil {
		return false
	}
	if strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(ContentType(fileHeader)), "application/pdf")
}
