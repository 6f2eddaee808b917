package controllers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/env"
	"github.com/TobiasLindner/DevFolio/internal/pkg/jobqueue"
)

// subscribeForm is the newsletter signup payload
type subscribeForm struct {
	Email string `form:"email" validate:"required,email,max=200"`
	Name  string `form:"name" validate:"max=100"`
}

// HandleNewsletterSubscribe handles a newsletter signup. Existing
// subscriptions are resolved by state: confirmed ones are reported as
// already subscribed, pending ones get the confirmation mail again and
// unsubscribed ones are reactivated with fresh tokens.
func HandleNewsletterSubscribe(c *fiber.Ctx) error {
	var form subscribeForm
	if err := c.BodyParser(&form); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid form data.", "/")
	}
	if err := validator.New().Struct(&form); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Please provide a valid email address.", "/")
	}

	subscriberRepo := repository.GetGlobalFactory().GetSubscriberRepository()

	existing, err := subscriberRepo.GetByEmail(form.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		fiberlog.Errorf("Error looking up subscriber: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Subscription failed. Please try again.", "/")
	}

	if existing != nil {
		switch {
		case existing.Active && existing.Confirmed:
			return respondError(c, fiber.StatusConflict, "This email is already subscribed to the newsletter.", "/")
		case existing.Active:
			// Pending confirmation: re-issue the token and resend
			if err := existing.GenerateTokens(); err != nil {
				fiberlog.Errorf("Error regenerating tokens: %v", err)
				return respondError(c, fiber.StatusInternalServerError, "Subscription failed. Please try again.", "/")
			}
			if err := subscriberRepo.Update(existing); err != nil {
				fiberlog.Errorf("Error updating subscriber: %v", err)
				return respondError(c, fiber.StatusInternalServerError, "Subscription failed. Please try again.", "/")
			}
			sendConfirmationMail(existing)
			return respondSuccess(c, "Confirmation email sent. Please check your inbox.", "/")
		default:
			// Previously unsubscribed: reactivate as pending
			existing.Active = true
			existing.Confirmed = false
			existing.UnsubscribedAt = nil
			if err := existing.GenerateTokens(); err != nil {
				fiberlog.Errorf("Error regenerating tokens: %v", err)
				return respondError(c, fiber.StatusInternalServerError, "Subscription failed. Please try again.", "/")
			}
			if err := subscriberRepo.Update(existing); err != nil {
				fiberlog.Errorf("Error reactivating subscriber: %v", err)
				return respondError(c, fiber.StatusInternalServerError, "Subscription failed. Please try again.", "/")
			}
			sendConfirmationMail(existing)
			return respondSuccess(c, "Welcome back! Please confirm your subscription via email.", "/")
		}
	}

	subscriber := &models.Subscriber{
		Email:  form.Email,
		Name:   form.Name,
		Active: true,
	}
	if err := subscriber.GenerateTokens(); err != nil {
		fiberlog.Errorf("Error generating tokens: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Subscription failed. Please try again.", "/")
	}
	if err := subscriberRepo.Create(subscriber); err != nil {
		fiberlog.Errorf("Error creating subscriber: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Subscription failed. Please try again.", "/")
	}

	sendConfirmationMail(subscriber)
	return respondSuccess(c, "Almost there! Please confirm your subscription via email.", "/")
}

// HandleNewsletterConfirm confirms a pending subscription by token
func HandleNewsletterConfirm(c *fiber.Ctx) error {
	token := c.Params("token")
	subscriberRepo := repository.GetGlobalFactory().GetSubscriberRepository()

	subscriber, err := subscriberRepo.GetByConfirmToken(token)
	if err != nil || !subscriber.IsConfirmTokenValid(token) {
		return respondError(c, fiber.StatusNotFound, "This confirmation link is invalid or has expired.", "/")
	}

	subscriber.Confirm()
	if err := subscriberRepo.Update(subscriber); err != nil {
		fiberlog.Errorf("Error confirming subscriber: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Confirmation failed. Please try again.", "/")
	}

	return respondSuccess(c, "Subscription confirmed. Thanks for signing up!", "/")
}

// HandleNewsletterUnsubscribe deactivates a subscription by token
func HandleNewsletterUnsubscribe(c *fiber.Ctx) error {
	token := c.Params("token")
	subscriberRepo := repository.GetGlobalFactory().GetSubscriberRepository()

	subscriber, err := subscriberRepo.GetByUnsubscribeToken(token)
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "This unsubscribe link is invalid.", "/")
	}

	subscriber.Unsubscribe()
	if err := subscriberRepo.Update(subscriber); err != nil {
		fiberlog.Errorf("Error unsubscribing: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Unsubscribe failed. Please try again.", "/")
	}

	return respondSuccess(c, "You have been unsubscribed.", "/")
}

// sendConfirmationMail queues the double-opt-in email
func sendConfirmationMail(subscriber *models.Subscriber) {
	base := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:"+env.GetEnv("APP_PORT", "4000"))
	confirmURL := fmt.Sprintf("%s/newsletter/confirm/%s", base, subscriber.ConfirmToken)

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>please confirm your newsletter subscription:</p><p><a href=%q>Confirm subscription</a></p>",
		subscriber.Name, confirmURL,
	)
	if subscriber.Name == "" {
		body = fmt.Sprintf(
			"<p>Hi,</p><p>please confirm your newsletter subscription:</p><p><a href=%q>Confirm subscription</a></p>",
			confirmURL,
		)
	}

	if err := jobqueue.EnqueueEmail(subscriber.Email, "Please confirm your subscription", body); err != nil {
		fiberlog.Errorf("Error enqueueing confirmation email for %s: %v", subscriber.Email, err)
	}
}
