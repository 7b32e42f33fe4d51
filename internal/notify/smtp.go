package notify

import (
	"context"
	"fmt"

	"one-on-one-backend/internal/config"

	"github.com/wneessen/go-mail"
)

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPDeliverer sends notifications as plain-text email over SMTP
type SMTPDeliverer struct {
	client   mailSender
	from     string
	fromName string
}

// NewSMTPDeliverer creates an SMTP deliverer from SMTP_* settings
func NewSMTPDeliverer(cfg *config.Config) (*SMTPDeliverer, error) {
	opts := []mail.Option{mail.WithPort(cfg.SMTPPort)}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}
	c, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not initialize smtp client: %w", err)
	}
	return &SMTPDeliverer{client: c, from: cfg.MailFrom, fromName: cfg.MailFromName}, nil
}

func (d *SMTPDeliverer) buildMsg(to Recipient, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(d.fromName, d.from); err != nil {
		return nil, fmt.Errorf("failed to set From address: %w", err)
	}
	if err := m.AddToFormat(to.Name, to.Email); err != nil {
		return nil, fmt.Errorf("failed to set To address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

// Send emails the message to the recipient
func (d *SMTPDeliverer) Send(ctx context.Context, to Recipient, msg Message) error {
	if to.Email == "" {
		return fmt.Errorf("recipient %s has no email address", to.UserID)
	}
	m, err := d.buildMsg(to, msg)
	if err != nil {
		return err
	}
	if err := d.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
