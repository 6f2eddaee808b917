package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *MediaStorage {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)
	return NewMediaStorage()
}

func TestSaveFile(t *testing.T) {
	m := newTestStorage(t)

	result, err := m.SaveFile(strings.NewReader("payload"), "My Photo.PNG")
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.Size)
	assert.True(t, strings.HasPrefix(result.FileName, "My_Photo_"))
	assert.True(t, strings.HasSuffix(result.FileName, ".png"))
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/"))

	now := time.Now()
	wantDir := fmt.Sprintf("%d/%02d", now.Year(), now.Month())
	assert.Equal(t, wantDir, filepath.ToSlash(filepath.Dir(result.RelativePath)))

	data, err := os.ReadFile(result.AbsolutePath)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestSaveFileNamesNeverCollide(t *testing.T) {
	m := newTestStorage(t)

	first, err := m.SaveFile(strings.NewReader("a"), "icon.svg")
	require.NoError(t, err)
	second, err := m.SaveFile(strings.NewReader("b"), "icon.svg")
	require.NoError(t, err)

	assert.NotEqual(t, first.RelativePath, second.RelativePath)
}

func TestListFiles(t *testing.T) {
	m := newTestStorage(t)

	files, err := m.ListFiles()
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = m.SaveFile(strings.NewReader("a"), "one.png")
	require.NoError(t, err)
	_, err = m.SaveFile(strings.NewReader("bb"), "two.png")
	require.NoError(t, err)

	files, err = m.ListFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, strings.HasPrefix(f.URL, "/uploads/"))
	}
}

func TestDeleteFile(t *testing.T) {
	m := newTestStorage(t)

	result, err := m.SaveFile(strings.NewReader("x"), "gone.png")
	require.NoError(t, err)

	require.NoError(t, m.DeleteFile(result.RelativePath))
	_, err = os.Stat(result.AbsolutePath)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	m := newTestStorage(t)

	assert.Error(t, m.DeleteFile("../outside.txt"))
	assert.Error(t, m.DeleteFile("../../etc/passwd"))
}

func TestSanitizeBaseName(t *testing.T) {
	cases := map[string]string{
		"My Photo":      "My_Photo",
		"weird*chars?":  "weirdchars",
		"UPPER_case.ok": "UPPER_case_ok",
		"über":          "ber",
		"___":           "",
	}
	for input, want := range cases {
		assert.Equal(t, want, sanitizeBaseName(input), "input %q", input)
	}
}
