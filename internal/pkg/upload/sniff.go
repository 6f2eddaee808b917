package upload

import "bytes"

// Magic signatures of the supported raster formats.
var (
	pngMagic   = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic  = []byte{0xFF, 0xD8, 0xFF}
	gif87Magic = []byte("GIF87a")
	gif89Magic = []byte("GIF89a")
	riffMagic  = []byte("RIFF")
	webpMagic  = []byte("WEBP")
)

// svgSniffLimit bounds how far into the payload we look for SVG markup.
const svgSniffLimit = 4096

// DetectFormat determines the actual format of a payload from its magic
// signature, independent of filename or declared content type. It returns
// the normalized extension token ("png", "jpg", "gif", "webp", "svg") or an
// empty string when the payload matches none of the supported formats.
func DetectFormat(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}

	switch {
	case bytes.HasPrefix(payload, pngMagic):
		return "png"
	case bytes.HasPrefix(payload, jpegMagic):
		return "jpg"
	case bytes.HasPrefix(payload, gif87Magic), bytes.HasPrefix(payload, gif89Magic):
		return "gif"
	case len(payload) >= 12 && bytes.Equal(payload[:4], riffMagic) && bytes.Equal(payload[8:12], webpMagic):
		return "webp"
	}

	// SVG has no magic number; look for XML or an <svg> element near the
	// start, tolerating a UTF-8 BOM and leading whitespace.
	head := payload
	if len(head) > svgSniffLimit {
		head = head[:svgSniffLimit]
	}
	head = bytes.ToLower(bytes.TrimLeft(head, "\xef\xbb\xbf \t\r\n"))
	if bytes.HasPrefix(head, []byte("<?xml")) || bytes.Contains(head, []byte("<svg")) {
		return "svg"
	}

	return ""
}
