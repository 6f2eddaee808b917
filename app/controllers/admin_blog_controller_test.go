package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":             "hello-world",
		"Go 1.25 Released!":       "go-1-25-released",
		"  spaces  everywhere  ":  "spaces-everywhere",
		"already-a-slug":          "already-a-slug",
		"Ümläuts & Symbols":       "ml-uts-symbols",
		"":                        "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
