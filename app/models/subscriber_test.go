package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberGenerateTokens(t *testing.T) {
	s := &Subscriber{Email: "reader@example.com", Active: true}

	require.NoError(t, s.GenerateTokens())
	assert.Len(t, s.ConfirmToken, 32)
	assert.Len(t, s.UnsubscribeToken, 32)
	assert.NotEqual(t, s.ConfirmToken, s.UnsubscribeToken)
	require.NotNil(t, s.ConfirmSentAt)

	// Regenerating replaces both tokens
	oldConfirm := s.ConfirmToken
	oldUnsubscribe := s.UnsubscribeToken
	require.NoError(t, s.GenerateTokens())
	assert.NotEqual(t, oldConfirm, s.ConfirmToken)
	assert.NotEqual(t, oldUnsubscribe, s.UnsubscribeToken)
}

func TestSubscriberConfirm(t *testing.T) {
	s := &Subscriber{Email: "reader@example.com", Active: true}
	require.NoError(t, s.GenerateTokens())

	s.Confirm()
	assert.True(t, s.Confirmed)
	assert.NotNil(t, s.ConfirmedAt)
	assert.Empty(t, s.ConfirmToken, "confirm token must be single use")
}

func TestSubscriberUnsubscribe(t *testing.T) {
	s := &Subscriber{Email: "reader@example.com", Active: true, Confirmed: true}

	s.Unsubscribe()
	assert.False(t, s.Active)
	assert.NotNil(t, s.UnsubscribedAt)
}

func TestSubscriberConfirmTokenExpiry(t *testing.T) {
	s := &Subscriber{Email: "reader@example.com", Active: true}
	require.NoError(t, s.GenerateTokens())

	assert.True(t, s.IsConfirmTokenValid(s.ConfirmToken))
	assert.False(t, s.IsConfirmTokenValid("wrong-token"))

	expired := time.Now().Add(-49 * time.Hour)
	s.ConfirmSentAt = &expired
	assert.False(t, s.IsConfirmTokenValid(s.ConfirmToken))

	s.ConfirmSentAt = nil
	assert.False(t, s.IsConfirmTokenValid(s.ConfirmToken))
}

func TestSubscriberValidate(t *testing.T) {
	s := &Subscriber{Email: "not-an-email"}
	assert.Error(t, s.Validate())

	s.Email = "reader@example.com"
	assert.NoError(t, s.Validate())
}
