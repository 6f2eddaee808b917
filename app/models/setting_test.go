package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppSettingsAllowedExtensionList(t *testing.T) {
	s := &AppSettings{AllowedExtensions: "png, jpg , ,svg"}
	assert.Equal(t, []string{"png", "jpg", "svg"}, s.AllowedExtensionList())

	s.AllowedExtensions = ""
	assert.Empty(t, s.AllowedExtensionList())
}

func TestAppSettingsDefaults(t *testing.T) {
	s := defaultAppSettings()
	assert.Equal(t, "DevFolio", s.SiteTitle)
	assert.True(t, s.IsImageUploadEnabled())
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif", "webp", "svg"}, s.AllowedExtensionList())
	assert.NoError(t, s.Validate())
}

func TestAppSettingsValidate(t *testing.T) {
	s := &AppSettings{SiteTitle: "", AllowedExtensions: "png"}
	assert.Error(t, s.Validate())

	s.SiteTitle = "Site"
	s.AllowedExtensions = ""
	assert.Error(t, s.Validate())
}
