package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderContentBlocks(t *testing.T) {
	out := RenderContent("# Title\n\nSome *emphasis* and **bold** text.\n- item one\n- item two\n> a quote")

	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<em>emphasis</em>")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<li>item one</li>")
	assert.Contains(t, out, "<blockquote>a quote</blockquote>")
}

func TestRenderContentCodeBlocks(t *testing.T) {
	out := RenderContent("```\nfunc main() {}\n```")
	assert.Contains(t, out, "<pre><code>func main() {}\n</code></pre>")

	out = RenderContent("use `go test` locally")
	assert.Contains(t, out, "<code>go test</code>")
}

func TestRenderContentLinks(t *testing.T) {
	out := RenderContent("see [the docs](https://example.com/docs)")
	assert.Contains(t, out, `<a href="https://example.com/docs">the docs</a>`)
}

func TestRenderContentEscapesHTML(t *testing.T) {
	out := RenderContent(`<script>alert(1)</script>`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderContentUnclosedCodeFence(t *testing.T) {
	out := RenderContent("```\nleft open")
	assert.Contains(t, out, "</code></pre>")
}
