package jobqueue

import (
	"fmt"

	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/TobiasLindner/DevFolio/internal/pkg/mail"
)

// processEmailSend delivers one queued email via SMTP
func processEmailSend(job *Job) error {
	var payload EmailSendPayload
	if err := job.DecodePayload(&payload); err != nil {
		return fmt.Errorf("invalid email payload: %w", err)
	}

	if payload.To == "" {
		return fmt.Errorf("email payload has no recipient")
	}

	if err := mail.SendMail(payload.To, payload.Subject, payload.Body); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", payload.To, err)
	}

	fiberlog.Infof("[JobQueue] Delivered email %q to %s", payload.Subject, payload.To)
	return nil
}
