package upload

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultExtensions = []string{"png", "jpg", "jpeg", "gif", "webp", "svg"}

func pngPayload() []byte {
	return append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)
}

func newUpload(filename, contentType string, payload []byte) (Upload, *bytes.Reader) {
	reader := bytes.NewReader(payload)
	return Upload{
		Filename:    filename,
		ContentType: contentType,
		File:        reader,
	}, reader
}

func TestNormalizeExtension(t *testing.T) {
	cases := map[string]string{
		"png":    "png",
		".PNG":   "png",
		" jpg ":  "jpg",
		"JPEG":   "jpg",
		".jpeg":  "jpg",
		"svg":    "svg",
		"exe":    "exe",
		"":       "",
		".":      "",
		" .GIF ": "gif",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeExtension(input), "input %q", input)
	}
}

func TestValidateImagePNG(t *testing.T) {
	u, reader := newUpload("safe.png", "image/png", pngPayload())

	err := ValidateImage(u, defaultExtensions)
	require.NoError(t, err)

	// The payload must still be readable from the start afterwards.
	pos, err := reader.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

func TestValidateImageExtensionContentMismatch(t *testing.T) {
	u, _ := newUpload("wrong.jpg", "image/jpeg", pngPayload())

	err := ValidateImage(u, defaultExtensions)
	require.Error(t, err)
	assert.Equal(t, "File extension does not match file content.", err.Error())
}

func TestValidateImageMissingExtension(t *testing.T) {
	u, _ := newUpload("noextension", "image/png", pngPayload())

	err := ValidateImage(u, defaultExtensions)
	require.Error(t, err)
	assert.Equal(t, "File extension is required.", err.Error())
}

func TestValidateImageDisallowedExtension(t *testing.T) {
	u, _ := newUpload("payload.exe", "", pngPayload())

	err := ValidateImage(u, defaultExtensions)
	require.Error(t, err)
	assert.Equal(t, "Invalid file type. Allowed: gif, jpg, png, svg, webp", err.Error())
}

func TestValidateImageEmptyPayload(t *testing.T) {
	u, reader := newUpload("empty.png", "image/png", nil)

	err := ValidateImage(u, defaultExtensions)
	require.Error(t, err)
	assert.Equal(t, "Uploaded file is empty.", err.Error())

	pos, err := reader.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

func TestValidateImageUnknownContent(t *testing.T) {
	u, _ := newUpload("fake.png", "image/png", []byte("this is not an image at all"))

	err := ValidateImage(u, defaultExtensions)
	require.Error(t, err)
	assert.Equal(t, "File content is not a valid supported image format.", err.Error())
}

func TestValidateImageMIMEMismatch(t *testing.T) {
	u, _ := newUpload("safe.png", "image/gif", pngPayload())

	err := ValidateImage(u, defaultExtensions)
	require.Error(t, err)
	assert.Equal(t, "MIME type does not match the uploaded image format.", err.Error())
}

func TestValidateImageToleratesVagueMIME(t *testing.T) {
	for _, contentType := range []string{"", "application/octet-stream"} {
		u, _ := newUpload("safe.png", contentType, pngPayload())
		assert.NoError(t, ValidateImage(u, defaultExtensions), "content type %q", contentType)
	}
}

func TestValidateImageJPEGAlias(t *testing.T) {
	payload := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 16)...)

	// jpeg extension collapses to jpg for both the filename and the allow list
	u, _ := newUpload("photo.JPEG", "image/jpeg", payload)
	assert.NoError(t, ValidateImage(u, []string{"jpg"}))

	u, _ = newUpload("photo.jpg", "image/pjpeg", payload)
	assert.NoError(t, ValidateImage(u, []string{"jpeg"}))
}

func TestValidateImageSVGRunsSanitizer(t *testing.T) {
	safe := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`)
	u, _ := newUpload("icon.svg", "image/svg+xml", safe)
	assert.NoError(t, ValidateImage(u, defaultExtensions))

	hostile := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	u, _ = newUpload("icon.svg", "image/svg+xml", hostile)
	err := ValidateImage(u, defaultExtensions)
	require.Error(t, err)
	assert.Equal(t, "SVG tag <script> is not allowed.", err.Error())
}

func TestValidateImageRewindsCursorOnFailure(t *testing.T) {
	u, reader := newUpload("wrong.jpg", "image/jpeg", pngPayload())

	require.Error(t, ValidateImage(u, defaultExtensions))

	pos, err := reader.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

func TestValidateImageReadsFromStartDespiteDirtyCursor(t *testing.T) {
	reader := bytes.NewReader(pngPayload())
	_, err := reader.Seek(5, io.SeekStart)
	require.NoError(t, err)

	u := Upload{Filename: "safe.png", ContentType: "image/png", File: reader}
	assert.NoError(t, ValidateImage(u, defaultExtensions))
}

func TestValidateFileHeader(t *testing.T) {
	fh := newFileHeader(t, "safe.png", "image/png", pngPayload())
	assert.NoError(t, ValidateFileHeader(fh, defaultExtensions))

	fh = newFileHeader(t, "wrong.jpg", "image/jpeg", pngPayload())
	err := ValidateFileHeader(fh, defaultExtensions)
	require.Error(t, err)
	assert.Equal(t, "File extension does not match file content.", err.Error())
}

// newFileHeader builds a real multipart.FileHeader the way Fiber hands it to
// handlers, by round-tripping the payload through a multipart form.
func newFileHeader(t *testing.T, filename, contentType string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}
