package notify

import (
	"context"
	"fmt"

	"one-on-one-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESDeliverer sends notifications through Amazon SES
type SESDeliverer struct {
	client sesAPI
	source string
}

// NewSESDeliverer loads the default AWS configuration and creates an SES deliverer
func NewSESDeliverer(ctx context.Context, cfg *config.Config) (*SESDeliverer, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}
	source := cfg.MailFrom
	if cfg.MailFromName != "" {
		source = fmt.Sprintf("%s <%s>", cfg.MailFromName, cfg.MailFrom)
	}
	return &SESDeliverer{client: ses.NewFromConfig(awsCfg), source: source}, nil
}

// Send emails the message to the recipient
func (d *SESDeliverer) Send(ctx context.Context, to Recipient, msg Message) error {
	if to.Email == "" {
		return fmt.Errorf("recipient %s has no email address", to.UserID)
	}
	_, err := d.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: []string{to.Email}},
		Source:      aws.String(d.source),
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Body)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email via ses: %w", err)
	}
	return nil
}
