package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Subscriber represents a newsletter subscription. Lifecycle:
// pending (Active, not Confirmed) -> confirmed (Active, Confirmed) ->
// unsubscribed (not Active). Re-subscribing an unsubscribed address
// reactivates the row with a fresh confirmation token.
type Subscriber struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Email            string         `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,max=200"`
	Name             string         `gorm:"type:varchar(100)" json:"name" validate:"max=100"`
	Active           bool           `gorm:"type:tinyint(1);default:1;index" json:"active"`
	Confirmed        bool           `gorm:"type:tinyint(1);default:0;index" json:"confirmed"`
	ConfirmToken     string         `gorm:"type:varchar(100);index" json:"-"`
	ConfirmSentAt    *time.Time     `gorm:"type:timestamp;default:null" json:"-"`
	ConfirmedAt      *time.Time     `gorm:"type:timestamp;default:null" json:"confirmed_at"`
	UnsubscribeToken string         `gorm:"type:varchar(100);index" json:"-"`
	UnsubscribedAt   *time.Time     `gorm:"type:timestamp;default:null" json:"-"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Subscriber model
func (Subscriber) TableName() string {
	return "subscribers"
}

func (s *Subscriber) Validate() error {
	v := validator.New()

	return v.Struct(s)
}

// GenerateTokens creates fresh confirm and unsubscribe tokens
func (s *Subscriber) GenerateTokens() error {
	confirm, err := randomToken()
	if err != nil {
		return err
	}
	unsubscribe, err := randomToken()
	if err != nil {
		return err
	}
	s.ConfirmToken = confirm
	s.UnsubscribeToken = unsubscribe
	now := time.Now()
	s.ConfirmSentAt = &now
	return nil
}

// Confirm marks the subscription as confirmed and clears the confirm token
func (s *Subscriber) Confirm() {
	now := time.Now()
	s.Confirmed = true
	s.ConfirmedAt = &now
	s.ConfirmToken = ""
}

// Unsubscribe deactivates the subscription
func (s *Subscriber) Unsubscribe() {
	now := time.Now()
	s.Active = false
	s.UnsubscribedAt = &now
}

// IsConfirmTokenValid checks the token and its 48 hour expiry window
func (s *Subscriber) IsConfirmTokenValid(token string) bool {
	if s.ConfirmToken == "" || s.ConfirmSentAt == nil {
		return false
	}
	if s.ConfirmToken != token {
		return false
	}
	return time.Since(*s.ConfirmSentAt) < 48*time.Hour
}

func randomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
