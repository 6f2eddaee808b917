package jobqueue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobType identifies what a queued job does
type JobType string

const (
	// JobTypeEmailSend delivers one email (newsletter confirmation or broadcast)
	JobTypeEmailSend JobType = "email_send"
	// JobTypeMediaBackup copies a stored upload to the S3 backup bucket
	JobTypeMediaBackup JobType = "media_backup"
	// JobTypeMediaBackupDelete removes a deleted upload's backup copy
	JobTypeMediaBackupDelete JobType = "media_backup_delete"
)

// JobStatus tracks a job through its lifecycle
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Job is the unit of background work persisted in Redis
type Job struct {
	ID         string          `json:"id"`
	Type       JobType         `json:"type"`
	Status     JobStatus       `json:"status"`
	Payload    json.RawMessage `json:"payload"`
	Retries    int             `json:"retries"`
	MaxRetries int             `json:"max_retries"`
	LastError  string          `json:"last_error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EmailSendPayload is the payload for JobTypeEmailSend
type EmailSendPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MediaBackupPayload is the payload for JobTypeMediaBackup
type MediaBackupPayload struct {
	MediaPath string `json:"media_path"` // path relative to the upload folder
	LocalPath string `json:"local_path"` // absolute path on disk
}

// MediaBackupDeletePayload is the payload for JobTypeMediaBackupDelete
type MediaBackupDeletePayload struct {
	MediaPath string `json:"media_path"` // path relative to the upload folder
}

// NewJob creates a pending job with a marshaled payload
func NewJob(jobType JobType, payload interface{}) (*Job, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job payload: %w", err)
	}

	now := time.Now()
	return &Job{
		ID:         uuid.New().String(),
		Type:       jobType,
		Status:     JobStatusPending,
		Payload:    raw,
		MaxRetries: DefaultMaxRetries,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// DecodePayload unmarshals the job payload into the given struct
func (j *Job) DecodePayload(v interface{}) error {
	return json.Unmarshal(j.Payload, v)
}
