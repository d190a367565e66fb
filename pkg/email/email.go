package email

import (
	"context"

	"agroflow-backend/config"
	"agroflow-backend/pkg/i18n"
)

// EmailService sends contact form emails via SMTP. It keeps only the
// configuration; the transport is rebuilt for every call.
type EmailService struct {
	cfg config.SMTPConfig
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// IsConfigured checks if the email service has every required SMTP setting
func (s *EmailService) IsConfigured() bool {
	return len(MissingKeys(s.cfg)) == 0
}

// VerifyTransport builds a transport and checks that the relay accepts a
// connection and the credentials.
func (s *EmailService) VerifyTransport(ctx context.Context) TransportResult {
	t, err := BuildTransport(s.cfg)
	if err != nil {
		return NewTransportResult(err, "")
	}
	return NewTransportResult(t.Verify(ctx), t.Addr())
}

// SendOwnerNotification emails the submission to EMAIL_TO (or EMAIL_FROM),
// with Reply-To set to the submitter.
func (s *EmailService) SendOwnerNotification(ctx context.Context, data ContactEmailData) error {
	msg, err := OwnerNotification(data, s.cfg.Recipient())
	if err != nil {
		return err
	}
	return s.send(ctx, msg)
}

// SendAcknowledgement emails the localized thank-you to the submitter.
func (s *EmailService) SendAcknowledgement(ctx context.Context, data ContactEmailData, lang i18n.Language) error {
	msg, err := Acknowledgement(data, lang)
	if err != nil {
		return err
	}
	return s.send(ctx, msg)
}

func (s *EmailService) send(ctx context.Context, msg Message) error {
	t, err := BuildTransport(s.cfg)
	if err != nil {
		return err
	}
	return t.Send(ctx, msg)
}
