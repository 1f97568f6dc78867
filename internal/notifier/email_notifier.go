package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	config "github.com/Keoroanthony/go-crm/configs"
)

// SESAPI is the part of the SES client the email notifier needs.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type EmailNotifier struct {
	client SESAPI
	sender string
}

func NewEmailNotifier(client SESAPI, senderEmail string) *EmailNotifier {
	return &EmailNotifier{client: client, sender: senderEmail}
}

// NewSESEmailNotifier builds an SES client from static credentials.
func NewSESEmailNotifier(ctx context.Context, cfg config.EmailConfig) (*EmailNotifier, error) {
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("sender email address is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	return NewEmailNotifier(ses.NewFromConfig(awsCfg), cfg.SenderEmail), nil
}

func (n *EmailNotifier) NotifyOrderCreated(ctx context.Context, oc OrderConfirmation) error {
	if oc.Email == "" {
		return fmt.Errorf("recipient email address is empty")
	}

	_, err := n.client.SendEmail(ctx, n.buildInput(oc))
	if err != nil {
		log.Printf("Failed to send email for order %d to %s: %v", oc.OrderID, oc.Email, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Order confirmation email sent for order %d to %s", oc.OrderID, oc.Email)
	return nil
}

func (n *EmailNotifier) buildInput(oc OrderConfirmation) *ses.SendEmailInput {
	subject := fmt.Sprintf("Order #%d Confirmation - Thank You for Your Purchase!", oc.OrderID)
	total := oc.TotalAmount.StringFixed(2)

	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>Dear %s,</p>
            <p>Thank you for your order! Your order #%d has been successfully placed.</p>
            <p><strong>Order Details:</strong></p>
            <ul>
                <li>Order ID: %d</li>
                <li>Total Amount: %s</li>
            </ul>
        </body>
        </html>`, oc.CustomerName, oc.OrderID, oc.OrderID, total)

	bodyText := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order! Your order #%d has been successfully placed.\n\n"+
			"Order Details:\nOrder ID: %d\nTotal Amount: %s\n",
		oc.CustomerName, oc.OrderID, oc.OrderID, total)

	return &ses.SendEmailInput{
		Source: aws.String(n.sender),
		Destination: &types.Destination{
			ToAddresses: []string{oc.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}
}
