package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/TobiasLindner/DevFolio/internal/pkg/constants"
	"github.com/TobiasLindner/DevFolio/internal/pkg/env"
)

// MediaStorage saves validated uploads below the configured upload folder,
// grouped into dated subdirectories. Filenames are stamped with a UUID so
// uploads can never collide or overwrite each other.
type MediaStorage struct {
	baseDir string
}

// MediaFile describes one stored upload for admin listings
type MediaFile struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"` // relative to the upload folder
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// SaveResult describes the outcome of a save operation
type SaveResult struct {
	FileName     string
	RelativePath string // relative to the upload folder
	AbsolutePath string
	URL          string
	Size         int64
}

// NewMediaStorage creates a storage manager rooted at UPLOAD_DIR
func NewMediaStorage() *MediaStorage {
	return &MediaStorage{
		baseDir: env.GetEnv("UPLOAD_DIR", "./public/uploads"),
	}
}

// SaveFile writes an upload stream to disk under a dated folder with a
// UUID-stamped name derived from the original filename.
func (m *MediaStorage) SaveFile(src io.Reader, originalName string) (*SaveResult, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = sanitizeBaseName(base)
	if base == "" {
		base = "upload"
	}

	now := time.Now()
	relativeDir := fmt.Sprintf("%d/%02d", now.Year(), now.Month())
	fileName := fmt.Sprintf("%s_%s%s", base, uuid.New().String(), ext)
	relativePath := filepath.Join(relativeDir, fileName)
	absolutePath := filepath.Join(m.baseDir, relativePath)

	if err := os.MkdirAll(filepath.Dir(absolutePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(absolutePath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	fiberlog.Infof("[Storage] Saved upload %s (%d bytes)", relativePath, size)

	return &SaveResult{
		FileName:     fileName,
		RelativePath: relativePath,
		AbsolutePath: absolutePath,
		URL:          constants.UploadsRoute + "/" + filepath.ToSlash(relativePath),
		Size:         size,
	}, nil
}

// ListFiles returns all stored media files, newest first
func (m *MediaStorage) ListFiles() ([]MediaFile, error) {
	var files []MediaFile

	err := filepath.Walk(m.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(m.baseDir, path)
		if err != nil {
			return err
		}
		files = append(files, MediaFile{
			Name:       info.Name(),
			Path:       filepath.ToSlash(rel),
			URL:        constants.UploadsRoute + "/" + filepath.ToSlash(rel),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})

	return files, nil
}

// DeleteFile removes a stored media file. The relative path is resolved
// against the upload folder and must not escape it.
func (m *MediaStorage) DeleteFile(relativePath string) error {
	absolutePath, err := m.ResolvePath(relativePath)
	if err != nil {
		return err
	}

	if err := os.Remove(absolutePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	fiberlog.Infof("[Storage] Deleted upload %s", relativePath)
	return nil
}

// ResolvePath turns a relative media path into an absolute one, rejecting
// traversal outside the upload folder.
func (m *MediaStorage) ResolvePath(relativePath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relativePath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid media path: %s", relativePath)
	}
	return filepath.Join(m.baseDir, cleaned), nil
}

// sanitizeBaseName keeps only characters that are safe in a filename
func sanitizeBaseName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
