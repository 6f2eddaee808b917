package jobqueue

import (
	"fmt"
	"sync"

	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/TobiasLindner/DevFolio/internal/pkg/s3backup"
)

var (
	backupClient     *s3backup.Client
	backupClientErr  error
	backupClientOnce sync.Once
)

// getBackupClient lazily initializes the shared S3 client so the queue can
// start even when backups are disabled.
func getBackupClient() (*s3backup.Client, error) {
	backupClientOnce.Do(func() {
		cfg := s3backup.LoadConfig()
		if !cfg.IsEnabled() {
			backupClientErr = fmt.Errorf("S3 backup is disabled")
			return
		}
		backupClient, backupClientErr = s3backup.NewClient(cfg)
	})
	return backupClient, backupClientErr
}

// processMediaBackup copies a stored upload to the backup bucket. When
// backups are disabled the job completes as a no-op instead of retrying.
func processMediaBackup(job *Job) error {
	var payload MediaBackupPayload
	if err := job.DecodePayload(&payload); err != nil {
		return fmt.Errorf("invalid backup payload: %w", err)
	}

	client, err := getBackupClient()
	if err != nil {
		fiberlog.Infof("[JobQueue] Skipping backup of %s: %v", payload.MediaPath, err)
		return nil
	}

	exists, err := client.ObjectExists(payload.MediaPath)
	if err != nil {
		return fmt.Errorf("failed to check existing backup: %w", err)
	}
	if exists {
		fiberlog.Infof("[JobQueue] Backup of %s already exists, skipping", payload.MediaPath)
		return nil
	}

	if _, err := client.UploadFile(payload.LocalPath, payload.MediaPath); err != nil {
		return fmt.Errorf("failed to back up %s: %w", payload.MediaPath, err)
	}

	return nil
}

// processMediaBackupDelete removes the backup copy of a deleted upload.
// When backups are disabled the job completes as a no-op.
func processMediaBackupDelete(job *Job) error {
	var payload MediaBackupDeletePayload
	if err := job.DecodePayload(&payload); err != nil {
		return fmt.Errorf("invalid backup delete payload: %w", err)
	}

	client, err := getBackupClient()
	if err != nil {
		fiberlog.Infof("[JobQueue] Skipping backup delete of %s: %v", payload.MediaPath, err)
		return nil
	}

	if err := client.DeleteFile(payload.MediaPath); err != nil {
		return fmt.Errorf("failed to delete backup of %s: %w", payload.MediaPath, err)
	}

	return nil
}
