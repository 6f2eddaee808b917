package controllers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadApp() *fiber.App {
	app := fiber.New()
	app.Post("/admin/media/upload", HandleAdminMediaUpload)
	return app
}

func newUploadRequest(t *testing.T, filename, contentType string, payload []byte) *http.Request {
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

	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestHandleAdminMediaUploadValidPNG(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	app := newUploadApp()

	payload := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)
	resp, err := app.Test(newUploadRequest(t, "safe.png", "image/png", payload), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(readBody(t, resp), "/uploads/"))
}

func TestHandleAdminMediaUploadExtensionMismatch(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	app := newUploadApp()

	payload := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)
	resp, err := app.Test(newUploadRequest(t, "wrong.jpg", "image/jpeg", payload), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "File extension does not match file content.", readBody(t, resp))
}

func TestHandleAdminMediaUploadHostileSVG(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	app := newUploadApp()

	payload := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	resp, err := app.Test(newUploadRequest(t, "icon.svg", "image/svg+xml", payload), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SVG tag <script> is not allowed.", readBody(t, resp))
}

func TestHandleAdminMediaDeleteRemovesLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pic.png"), []byte("x"), 0644))

	app := fiber.New()
	app.Post("/admin/media/delete", HandleAdminMediaDelete)

	form := url.Values{"path": {"pic.png"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/media/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	// Redirect back to the gallery; the backup removal job is queued async
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	_, statErr := os.Stat(filepath.Join(dir, "pic.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestHandleAdminMediaUploadMissingFile(t *testing.T) {
	app := newUploadApp()

	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", nil)
	req.Header.Set("HX-Request", "true")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No file selected.", readBody(t, resp))
}
