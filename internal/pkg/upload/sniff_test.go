package upload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormatRaster(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
		want    string
	}{
		{"png", append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, 0x00), "png"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, "jpg"},
		{"gif87a", []byte("GIF87a trailing"), "gif"},
		{"gif89a", []byte("GIF89a trailing"), "gif"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), "webp"},
		{"riff without webp", []byte("RIFF\x00\x00\x00\x00WAVEfmt "), ""},
		{"truncated riff", []byte("RIFF\x00\x00"), ""},
		{"empty", nil, ""},
		{"plain text", []byte("hello world"), ""},
		{"truncated png magic", []byte{0x89, 0x50, 0x4E}, ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectFormat(tc.payload), tc.name)
	}
}

func TestDetectFormatSVG(t *testing.T) {
	assert.Equal(t, "svg", DetectFormat([]byte(`<?xml version="1.0"?><svg></svg>`)))
	assert.Equal(t, "svg", DetectFormat([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)))

	// BOM and leading whitespace before the markup are tolerated
	payload := append([]byte{0xEF, 0xBB, 0xBF}, []byte("  \t\r\n<svg/>")...)
	assert.Equal(t, "svg", DetectFormat(payload))

	// Markers are matched case-insensitively
	assert.Equal(t, "svg", DetectFormat([]byte(`<SVG WIDTH="10"/>`)))

	// A comment before the svg element still sniffs as SVG
	assert.Equal(t, "svg", DetectFormat([]byte(`<!-- icon --><svg/>`)))
}

func TestDetectFormatSVGSniffLimit(t *testing.T) {
	// An svg marker past the sniff window is not detected
	padding := bytes.Repeat([]byte("a"), svgSniffLimit)
	assert.Equal(t, "", DetectFormat(append(padding, []byte("<svg/>")...)))

	// Inside the window it is
	padding = bytes.Repeat([]byte("<!-- x -->"), 10)
	assert.Equal(t, "svg", DetectFormat(append(padding, []byte("<svg/>")...)))
}
