package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	boldPattern    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern  = regexp.MustCompile(`\*([^*]+)\*`)
	codePattern    = regexp.MustCompile("`([^`]+)`")
	linkPattern    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// RenderContent converts the markdown subset used by blog posts into HTML.
// Input is escaped first, so post content cannot inject markup.
func RenderContent(content string) string {
	var out strings.Builder
	inCode := false

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			if inCode {
				out.WriteString("</code></pre>\n")
			} else {
				out.WriteString("<pre><code>")
			}
			inCode = !inCode
			continue
		}
		if inCode {
			out.WriteString(html.EscapeString(line))
			out.WriteString("\n")
			continue
		}

		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			level := len(m[1])
			out.WriteString(fmt.Sprintf("<h%d>%s</h%d>\n", level, renderInline(m[2]), level))
			continue
		}
		if strings.HasPrefix(line, "- ") {
			out.WriteString("<li>" + renderInline(strings.TrimPrefix(line, "- ")) + "</li>\n")
			continue
		}
		if strings.HasPrefix(line, "> ") {
			out.WriteString("<blockquote>" + renderInline(strings.TrimPrefix(line, "> ")) + "</blockquote>\n")
			continue
		}

		out.WriteString("<p>" + renderInline(line) + "</p>\n")
	}

	if inCode {
		out.WriteString("</code></pre>\n")
	}

	return out.String()
}

func renderInline(text string) string {
	text = html.EscapeString(text)
	text = codePattern.ReplaceAllString(text, "<code>$1</code>")
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")
	text = linkPattern.ReplaceAllString(text, `<a href="$2">$1</a>`)
	return text
}
