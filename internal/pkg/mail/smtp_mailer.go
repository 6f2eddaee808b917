package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/TobiasLindner/DevFolio/internal/pkg/env"
)

// SendMail delivers one HTML email through the configured SMTP relay. The
// newsletter queue is the only caller; failures are returned so the queue
// can retry the job instead of dropping the mail.
func SendMail(to, subject, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "25")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")

	sender := env.GetEnv("SMTP_SENDER", "")
	if sender == "" {
		sender = "newsletter@devfolio.local"
		log.Printf("SMTP_SENDER not set, falling back to %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	headers := fmt.Sprintf(
		"From: DevFolio <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		sender, to, subject,
	)

	addr := fmt.Sprintf("%s:%s", host, port)
	if err := smtp.SendMail(addr, auth, sender, []string{to}, []byte(headers+body)); err != nil {
		log.Printf("SMTP send to %s via %s failed: %v", to, addr, err)
		return err
	}

	log.Printf("Email sent to %s via %s", to, addr)
	return nil
}
