package main

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The published OpenAPI document must stay valid and cover every route the
// API router serves.
func TestOpenAPIDocument(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	for _, path := range []string{"/posts", "/posts/{slug}", "/projects", "/stats"} {
		assert.NotNil(t, doc.Paths.Find(path), "missing documented path %s", path)
	}
}
