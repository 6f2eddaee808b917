package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	u, err := CreateUser("Site Owner", "owner@example.com", "correct horse battery")
	require.NoError(t, err)

	assert.Equal(t, ROLE_ADMIN, u.Role)
	assert.Equal(t, STATUS_ACTIVE, u.Status)
	assert.True(t, u.IsActive())
	assert.NotEqual(t, "correct horse battery", u.Password)
	assert.True(t, u.CheckPassword("correct horse battery"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser("Site Owner", "not-an-email", "correct horse battery")
	assert.Error(t, err)

	_, err = CreateUser("SO", "owner@example.com", "correct horse battery")
	assert.Error(t, err, "name below minimum length")
}

func TestSetPassword(t *testing.T) {
	u, err := CreateUser("Site Owner", "owner@example.com", "first password")
	require.NoError(t, err)

	require.NoError(t, u.SetPassword("second password"))
	assert.False(t, u.CheckPassword("first password"))
	assert.True(t, u.CheckPassword("second password"))
}
