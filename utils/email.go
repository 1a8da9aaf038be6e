package utils

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"llcart/models"
	"llcart/repository"
)

// EmailService sends transactional mail through SendGrid and archives
// every sent message in the email_details collection.
type EmailService struct {
	client  *sendgrid.Client
	sender  string
	archive repository.EmailRepository
	logger  *slog.Logger
}

func NewEmailService(archive repository.EmailRepository, logger *slog.Logger) *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		panic("SENDGRID_API_KEY is not set in environment variables")
	}
	return &EmailService{
		client:  sendgrid.NewSendClient(apiKey),
		sender:  os.Getenv("EMAIL_SENDER"),
		archive: archive,
		logger:  logger,
	}
}

// Send delivers one message. Archiving is best effort; a failed
// archive write does not fail the send.
func (es *EmailService) Send(ctx context.Context, details models.EmailDetails) error {
	from := mail.NewEmail("LL-CART", es.sender)
	to := mail.NewEmail("", details.Recipient)
	message := mail.NewSingleEmail(from, details.Subject, to, details.MsgBody, details.MsgBody)

	response, err := es.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email provider rejected message: status %d", response.StatusCode)
	}

	if err := es.archive.Insert(ctx, &details); err != nil {
		es.logger.Warn("failed to archive sent email", "recipient", details.Recipient, "error", err)
	}
	return nil
}
