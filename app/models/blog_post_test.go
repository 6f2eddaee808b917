package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlogPostTagList(t *testing.T) {
	p := &BlogPost{Tags: "go, web , , security"}
	assert.Equal(t, []string{"go", "web", "security"}, p.TagList())

	p.Tags = ""
	assert.Nil(t, p.TagList())
}

func TestBlogPostEstimateReadTime(t *testing.T) {
	p := &BlogPost{Content: "short"}
	assert.Equal(t, 1, p.EstimateReadTime())

	p.Content = strings.Repeat("word ", 450)
	assert.Equal(t, 3, p.EstimateReadTime())

	p.Content = ""
	assert.Equal(t, 1, p.EstimateReadTime())
}
