package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const safeSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <title>icon</title>
  <defs>
    <linearGradient id="grad">
      <stop offset="0" stop-color="red"/>
    </linearGradient>
  </defs>
  <g>
    <rect width="10" height="10" fill="url(#grad)"/>
    <circle cx="5" cy="5" r="2"/>
    <use href="#frag"/>
  </g>
</svg>`

func TestValidateSVGSafeDocument(t *testing.T) {
	assert.NoError(t, ValidateSVG([]byte(safeSVG)))
}

func TestValidateSVGWithBOM(t *testing.T) {
	payload := append([]byte{0xEF, 0xBB, 0xBF}, []byte(safeSVG)...)
	assert.NoError(t, ValidateSVG(payload))
}

func TestValidateSVGInvalidUTF8(t *testing.T) {
	payload := []byte("<svg>\xff\xfe</svg>")
	err := ValidateSVG(payload)
	require.Error(t, err)
	assert.Equal(t, "SVG must be valid UTF-8 text.", err.Error())
}

func TestValidateSVGBlockedPatterns(t *testing.T) {
	cases := []string{
		`<!DOCTYPE svg [<!ENTITY x "y">]><svg>&x;</svg>`,
		`<svg><a href="JAVASCRIPT:alert(1)">x</a></svg>`,
		`<svg><a href="data:text/html,<script>alert(1)</script>">x</a></svg>`,
	}
	for _, doc := range cases {
		err := ValidateSVG([]byte(doc))
		require.Error(t, err, doc)
		assert.Equal(t, "SVG contains blocked executable content.", err.Error(), doc)
	}
}

func TestValidateSVGMalformedMarkup(t *testing.T) {
	for _, doc := range []string{"", "   ", "<svg><rect></svg>", "not xml at all <"} {
		err := ValidateSVG([]byte(doc))
		require.Error(t, err, "doc %q", doc)
		assert.Equal(t, "SVG markup is invalid.", err.Error(), "doc %q", doc)
	}
}

func TestValidateSVGTrailingContent(t *testing.T) {
	cases := []string{
		`<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg><rect/>`,
		`<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>trailing junk`,
	}
	for _, doc := range cases {
		err := ValidateSVG([]byte(doc))
		require.Error(t, err, doc)
		assert.Equal(t, "SVG markup is invalid.", err.Error(), doc)
	}

	// Trailing whitespace and comments are ordinary XML misc content
	assert.NoError(t, ValidateSVG([]byte("<svg><rect/></svg>\n<!-- exported -->\n")))
}

func TestValidateSVGRootElement(t *testing.T) {
	err := ValidateSVG([]byte(`<html><svg/></html>`))
	require.Error(t, err)
	assert.Equal(t, "SVG root element is invalid.", err.Error())
}

func TestValidateSVGBlockedTags(t *testing.T) {
	cases := map[string]string{
		`<svg><script>alert(1)</script></svg>`:                  "SVG tag <script> is not allowed.",
		`<svg><foreignObject><b>x</b></foreignObject></svg>`:    "SVG tag <foreignobject> is not allowed.",
		`<svg><iframe src="#"/></svg>`:                          "SVG tag <iframe> is not allowed.",
		`<svg><filter id="f"/></svg>`:                           "SVG tag <filter> is not allowed.",
		`<svg><animate attributeName="x" from="0" to="1"/></svg>`: "SVG tag <animate> is not allowed.",
	}
	for doc, want := range cases {
		err := ValidateSVG([]byte(doc))
		require.Error(t, err, doc)
		assert.Equal(t, want, err.Error(), doc)
	}
}

func TestValidateSVGScriptRemovedPasses(t *testing.T) {
	hostile := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script><rect width="1" height="1"/></svg>`
	require.Error(t, ValidateSVG([]byte(hostile)))

	cleaned := `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>`
	assert.NoError(t, ValidateSVG([]byte(cleaned)))
}

func TestValidateSVGEventHandlers(t *testing.T) {
	err := ValidateSVG([]byte(`<svg onload="alert(1)"><rect/></svg>`))
	require.Error(t, err)
	assert.Equal(t, "SVG event handler attributes are not allowed.", err.Error())

	err = ValidateSVG([]byte(`<svg><rect onclick="alert(1)"/></svg>`))
	require.Error(t, err)
	assert.Equal(t, "SVG event handler attributes are not allowed.", err.Error())
}

func TestValidateSVGInlineStyle(t *testing.T) {
	err := ValidateSVG([]byte(`<svg><rect style="fill:red"/></svg>`))
	require.Error(t, err)
	assert.Equal(t, "Inline SVG styles are not allowed.", err.Error())
}

func TestValidateSVGHrefRules(t *testing.T) {
	// Fragment references stay allowed
	assert.NoError(t, ValidateSVG([]byte(`<svg><use href="#fragment"/></svg>`)))
	assert.NoError(t, ValidateSVG([]byte(`<svg xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#fragment"/></svg>`)))

	// External references are rejected, on both href and xlink:href
	err := ValidateSVG([]byte(`<svg><use href="https://evil.example/a.svg#x"/></svg>`))
	require.Error(t, err)
	assert.Equal(t, "SVG external references are not allowed.", err.Error())

	err = ValidateSVG([]byte(`<svg xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="https://evil.example/a.svg#x"/></svg>`))
	require.Error(t, err)
	assert.Equal(t, "SVG external references are not allowed.", err.Error())
}

func TestValidateSVGURLReferences(t *testing.T) {
	assert.NoError(t, ValidateSVG([]byte(`<svg><rect fill="url(#grad)"/></svg>`)))

	err := ValidateSVG([]byte(`<svg><rect fill="url(https://evil.example/x)"/></svg>`))
	require.Error(t, err)
	assert.Equal(t, "SVG URL references must be internal fragment links.", err.Error())
}
