package upload

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// safeSVGTags is the allow-list the sanitizer enforces. Anything not in here
// is rejected, no matter how harmless it looks; new attack vectors would slip
// through a deny-list, so the allow-list is the security boundary.
var safeSVGTags = map[string]bool{
	"svg":            true,
	"g":              true,
	"path":           true,
	"circle":         true,
	"ellipse":        true,
	"line":           true,
	"polyline":       true,
	"polygon":        true,
	"rect":           true,
	"text":           true,
	"tspan":          true,
	"defs":           true,
	"lineargradient": true,
	"radialgradient": true,
	"stop":           true,
	"title":          true,
	"desc":           true,
	"clippath":       true,
	"mask":           true,
	"pattern":        true,
	"symbol":         true,
	"use":            true,
}

// blockedSVGTags only sharpens the error message for well-known dangerous
// elements; the allow-list above already rejects them.
var blockedSVGTags = map[string]bool{
	"script":        true,
	"foreignobject": true,
	"iframe":        true,
	"object":        true,
	"embed":         true,
	"audio":         true,
	"video":         true,
}

// blockedSVGPatterns is a cheap case-insensitive pre-filter applied before
// the XML parse. It catches DTD/entity declarations (XXE, billion laughs)
// and inline-script URIs anywhere in the document.
var blockedSVGPatterns = []string{
	"<!doctype",
	"<!entity",
	"javascript:",
	"data:text/html",
}

// ValidateSVG parses an SVG payload and walks every element against the tag
// allow-list and the per-attribute rules: no event handlers, no inline
// styles, no script URIs, and href/url() references must stay inside the
// document. A nil return means the SVG is structurally safe.
func ValidateSVG(payload []byte) error {
	text := bytes.TrimPrefix(payload, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(text) {
		return errors.New("SVG must be valid UTF-8 text.")
	}

	lowered := strings.ToLower(string(text))
	for _, pattern := range blockedSVGPatterns {
		if strings.Contains(lowered, pattern) {
			return errors.New("SVG contains blocked executable content.")
		}
	}

	decoder := xml.NewDecoder(bytes.NewReader(text))
	sawRoot := false
	rootClosed := false
	depth := 0
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.New("SVG markup is invalid.")
		}

		switch t := token.(type) {
		case xml.StartElement:
			// Only comments and whitespace may follow the document element;
			// a second top-level element is junk after the document.
			if rootClosed {
				return errors.New("SVG markup is invalid.")
			}
			depth++

			tagName := strings.ToLower(t.Name.Local)
			if !sawRoot {
				sawRoot = true
				if tagName != "svg" {
					return errors.New("SVG root element is invalid.")
				}
			}

			if blockedSVGTags[tagName] || !safeSVGTags[tagName] {
				return fmt.Errorf("SVG tag <%s> is not allowed.", tagName)
			}

			for _, attr := range t.Attr {
				if err := validateSVGAttribute(attr); err != nil {
					return err
				}
			}
		case xml.EndElement:
			depth--
			if depth == 0 {
				rootClosed = true
			}
		case xml.CharData:
			if rootClosed && len(bytes.TrimSpace(t)) > 0 {
				return errors.New("SVG markup is invalid.")
			}
		case xml.Directive:
			if rootClosed {
				return errors.New("SVG markup is invalid.")
			}
		}
	}

	if !sawRoot {
		return errors.New("SVG markup is invalid.")
	}

	return nil
}

func validateSVGAttribute(attr xml.Attr) error {
	name := strings.ToLower(attr.Name.Local)
	value := strings.TrimSpace(attr.Value)
	loweredValue := strings.ToLower(value)

	if strings.HasPrefix(name, "on") {
		return errors.New("SVG event handler attributes are not allowed.")
	}

	if name == "style" {
		// CSS can smuggle url() and expression-based execution.
		return errors.New("Inline SVG styles are not allowed.")
	}

	if strings.Contains(loweredValue, "javascript:") || strings.Contains(loweredValue, "data:text/html") {
		return errors.New("SVG attribute contains unsafe URI.")
	}

	// href and xlink:href may only point at fragments inside the document.
	if name == "href" {
		if value != "" && !strings.HasPrefix(value, "#") {
			return errors.New("SVG external references are not allowed.")
		}
	}

	if strings.Contains(loweredValue, "url(") && !strings.HasPrefix(loweredValue, "url(#") {
		return errors.New("SVG URL references must be internal fragment links.")
	}

	return nil
}
