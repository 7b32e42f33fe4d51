// Package notify delivers notifications outside the application (email or logs).
// Delivery is best-effort: the in-app notification row is the record of truth.
package notify

import (
	"context"
	"fmt"

	"one-on-one-backend/internal/config"
	"one-on-one-backend/internal/logger"

	"github.com/google/uuid"
)

// Recipient identifies who a message goes to
type Recipient struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// Message is the rendered content of a notification
type Message struct {
	Type    string
	Subject string
	Body    string
}

// Deliverer sends a message to a recipient
type Deliverer interface {
	Send(ctx context.Context, to Recipient, msg Message) error
}

// LogDeliverer only logs messages; it is the default driver
type LogDeliverer struct{}

// NewLogDeliverer creates a deliverer that writes messages to the application log
func NewLogDeliverer() *LogDeliverer {
	return &LogDeliverer{}
}

// Send logs the message
func (d *LogDeliverer) Send(ctx context.Context, to Recipient, msg Message) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recipient_id":      to.UserID.String(),
		"recipient_email":   to.Email,
		"notification_type": msg.Type,
		"subject":           msg.Subject,
	}).Info("Notification delivered to log")
	return nil
}

// NewFromConfig builds the deliverer selected by NOTIFY_DRIVER
func NewFromConfig(ctx context.Context, cfg *config.Config) (Deliverer, error) {
	switch cfg.NotifyDriver {
	case "", "log":
		return NewLogDeliverer(), nil
	case "smtp":
		return NewSMTPDeliverer(cfg)
	case "ses":
		return NewSESDeliverer(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown notify driver %q", cfg.NotifyDriver)
	}
}
