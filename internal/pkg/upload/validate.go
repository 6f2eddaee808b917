package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strings"
)

// Upload describes an uploaded file under validation: the claimed filename,
// the declared content type from the multipart header (may be empty) and the
// payload stream. The stream is read exactly once and rewound to offset 0
// before and after the read, so callers can still persist the original bytes.
type Upload struct {
	Filename    string
	ContentType string
	File        io.ReadSeeker
}

// allowedMIMETypes maps a normalized extension to the declared MIME types we
// accept for it. A missing or "application/octet-stream" declaration is
// tolerated because browsers are unreliable here; the content sniff is the
// real check.
var allowedMIMETypes = map[string]map[string]bool{
	"png":  {"image/png": true},
	"jpg":  {"image/jpeg": true, "image/pjpeg": true},
	"gif":  {"image/gif": true},
	"webp": {"image/webp": true},
	"svg":  {"image/svg+xml": true, "application/svg+xml": true, "text/svg+xml": true, "text/svg": true},
}

// NormalizeExtension canonicalizes a file extension token: surrounding
// whitespace and a leading dot are stripped, the rest is lowercased and the
// "jpeg" alias collapses to "jpg". Unknown tokens pass through unchanged;
// they are rejected later by set membership, not here.
func NormalizeExtension(ext string) string {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	if normalized == "jpeg" {
		return "jpg"
	}
	return normalized
}

// ValidateImage checks an untrusted upload against the allowed extension set:
// the extension must be allowed, the payload's magic signature must match the
// extension, the declared MIME type must fit the detected format, and SVG
// payloads must additionally pass the structural sanitizer. A nil return
// means the upload is safe to store. Every failure is a user-facing message,
// never an internal fault.
func ValidateImage(u Upload, allowedExtensions []string) error {
	if !strings.Contains(u.Filename, ".") {
		return errors.New("File extension is required.")
	}

	parts := strings.Split(u.Filename, ".")
	extension := NormalizeExtension(parts[len(parts)-1])

	normalizedAllowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		normalizedAllowed[NormalizeExtension(ext)] = true
	}
	if !normalizedAllowed[extension] {
		return fmt.Errorf("Invalid file type. Allowed: %s", formatAllowed(normalizedAllowed))
	}

	payload := readUploadedBytes(u.File)
	if len(payload) == 0 {
		return errors.New("Uploaded file is empty.")
	}

	detected := DetectFormat(payload)
	if detected == "" {
		return errors.New("File content is not a valid supported image format.")
	}

	if detected != extension {
		return errors.New("File extension does not match file content.")
	}

	declaredMime := strings.ToLower(strings.TrimSpace(u.ContentType))
	if declaredMime != "" && declaredMime != "application/octet-stream" && !allowedMIMETypes[detected][declaredMime] {
		return errors.New("MIME type does not match the uploaded image format.")
	}

	if detected == "svg" {
		return ValidateSVG(payload)
	}

	return nil
}

// ValidateFileHeader runs ValidateImage against a multipart form file as
// received by a Fiber handler.
func ValidateFileHeader(fh *multipart.FileHeader, allowedExtensions []string) error {
	src, err := fh.Open()
	if err != nil {
		// Unreadable stream is treated like an empty payload, not a fault.
		return errors.New("Uploaded file is empty.")
	}
	defer src.Close()

	return ValidateImage(Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		File:        src,
	}, allowedExtensions)
}

// readUploadedBytes buffers the whole payload and leaves the cursor at the
// start again so the caller can still save the file afterward. Read errors
// degrade to an empty payload.
func readUploadedBytes(file io.ReadSeeker) []byte {
	if file == nil {
		return nil
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	payload, err := io.ReadAll(file)
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return nil
	}
	if err != nil {
		return nil
	}
	return payload
}

func formatAllowed(normalized map[string]bool) string {
	tokens := make([]string, 0, len(normalized))
	for ext := range normalized {
		tokens = append(tokens, ext)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ", ")
}
