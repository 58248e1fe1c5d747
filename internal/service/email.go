package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"crm-backend/internal/logger"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.Debug("Email sent", "to", toEmail, "subject", subject)
	return nil
}

func (s *emailService) SendCampaignEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	return s.send(ctx, toEmail, toName, subject, body)
}

func (s *emailService) SendTaskAssignmentEmail(ctx context.Context, toEmail, toName, taskTitle, dueOn string) error {
	subject := fmt.Sprintf("New task assigned: %s", taskTitle)
	body := fmt.Sprintf("Hello %s,\n\nYou have been assigned a new task: %s.\nDue date: %s.\n\nPlease check the CRM for details.", toName, taskTitle, dueOn)
	return s.send(ctx, toEmail, toName, subject, body)
}
