package jobqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJob(t *testing.T) {
	job, err := NewJob(JobTypeEmailSend, EmailSendPayload{
		To:      "reader@example.com",
		Subject: "Hello",
		Body:    "<p>Hi</p>",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, JobTypeEmailSend, job.Type)
	assert.Equal(t, JobStatusPending, job.Status)
	assert.Equal(t, DefaultMaxRetries, job.MaxRetries)
	assert.Zero(t, job.Retries)

	var payload EmailSendPayload
	require.NoError(t, job.DecodePayload(&payload))
	assert.Equal(t, "reader@example.com", payload.To)
	assert.Equal(t, "Hello", payload.Subject)
}

func TestNewJobUniqueIDs(t *testing.T) {
	a, err := NewJob(JobTypeMediaBackup, MediaBackupPayload{MediaPath: "2026/08/a.png"})
	require.NoError(t, err)
	b, err := NewJob(JobTypeMediaBackup, MediaBackupPayload{MediaPath: "2026/08/a.png"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewJobMediaBackupDelete(t *testing.T) {
	job, err := NewJob(JobTypeMediaBackupDelete, MediaBackupDeletePayload{MediaPath: "2026/08/a.png"})
	require.NoError(t, err)

	assert.Equal(t, JobTypeMediaBackupDelete, job.Type)

	var payload MediaBackupDeletePayload
	require.NoError(t, job.DecodePayload(&payload))
	assert.Equal(t, "2026/08/a.png", payload.MediaPath)
}

func TestNewJobRejectsUnmarshalablePayload(t *testing.T) {
	_, err := NewJob(JobTypeEmailSend, make(chan int))
	assert.Error(t, err)
}

func TestDecodePayloadMismatch(t *testing.T) {
	job, err := NewJob(JobTypeMediaBackup, MediaBackupPayload{
		MediaPath: "2026/08/icon.svg",
		LocalPath: "/data/uploads/2026/08/icon.svg",
	})
	require.NoError(t, err)

	var payload MediaBackupPayload
	require.NoError(t, job.DecodePayload(&payload))
	assert.Equal(t, "2026/08/icon.svg", payload.MediaPath)

	var wrong []string
	assert.Error(t, job.DecodePayload(&wrong))
}
