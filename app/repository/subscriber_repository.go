package repository

import (
	"gorm.io/gorm"

	"github.com/TobiasLindner/DevFolio/app/models"
)

// subscriberRepository implements the SubscriberRepository interface
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository instance
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Create creates a new subscription in the database
func (r *subscriberRepository) Create(subscriber *models.Subscriber) error {
	return r.db.Create(subscriber).Error
}

// GetByEmail retrieves a subscription by email address
func (r *subscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("email = ?", email).First(&subscriber).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// GetByConfirmToken retrieves a subscription by its confirmation token
func (r *subscriberRepository) GetByConfirmToken(token string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("confirm_token = ? AND confirm_token != ''", token).First(&subscriber).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// GetByUnsubscribeToken retrieves a subscription by its unsubscribe token
func (r *subscriberRepository) GetByUnsubscribeToken(token string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("unsubscribe_token = ? AND unsubscribe_token != ''", token).First(&subscriber).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// GetConfirmed retrieves all active, confirmed subscribers
func (r *subscriberRepository) GetConfirmed() ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.Where("active = ? AND confirmed = ?", true, true).Find(&subscribers).Error
	return subscribers, err
}

// Update updates an existing subscription
func (r *subscriberRepository) Update(subscriber *models.Subscriber) error {
	return r.db.Save(subscriber).Error
}

// Stats returns subscriber counts per lifecycle state
func (r *subscriberRepository) Stats() (*SubscriberStats, error) {
	stats := &SubscriberStats{}
	if err := r.db.Model(&models.Subscriber{}).
		Where("active = ? AND confirmed = ?", true, true).Count(&stats.Confirmed).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Subscriber{}).
		Where("active = ? AND confirmed = ?", true, false).Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Subscriber{}).
		Where("active = ?", false).Count(&stats.Unsubscribed).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
