package storage

import (
	"io"             // File copying
	"mime/multipart" // Uploaded file headers
	"os"             // Filesystem operations
	"path/filepath"  // Path handling
	"strconv"        // Timestamp formatting
	"strings"        // Filename sanitization
	"time"           // Collision-avoiding filename prefix
)

// SavedFile describes a file persisted to the content directory
type SavedFile struct {
	Filename         string // Stored (unique) filename
	OriginalFilename string // Filename as uploaded
	FilePath         string // Full path on disk
	FileSize         int64  // Size in bytes
	MimeType         string // MIME type reported by the client
}

// FileStore persists uploaded images under per-category subdirectories
type FileStore struct {
	baseDir string // Base content directory
}

// NewFileStore creates a file store rooted at baseDir
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Save writes an uploaded file under the category's subdirectory using a
// timestamp-prefixed name to avoid collisions
func (s *FileStore) Save(file *multipart.FileHeader, categorySlug string) (*SavedFile, error) {
	// Create category directory if it doesn't exist
	categoryDir := filepath.Join(s.baseDir, categorySlug)
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return nil, err
	}

	// Generate unique filename with timestamp prefix
	original := sanitizeFilename(file.Filename)
	uniqueName := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + original
	dstPath := filepath.Join(categoryDir, uniqueName)

	src, err := file.Open() // Open the uploaded file
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(dstPath) // Create the destination file
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	// Copy file contents to disk
	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath) // Drop the partial file
		return nil, err
	}

	return &SavedFile{
		Filename:         uniqueName,
		OriginalFilename: original,
		FilePath:         dstPath,
		FileSize:         file.Size,
		MimeType:         file.Header.Get("Content-Type"),
	}, nil
}

// Remove deletes a stored file from disk
func (s *FileStore) Remove(path string) error {
	return os.Remove(path)
}

// sanitizeFilename strips any path components from an uploaded filename
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/")) // Drop directories, also Windows-style
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "upload" // Fallback for degenerate names
	}
	return name
}
