package domain

import (
	"context"

	"agroflow-backend/pkg/email"
	"agroflow-backend/pkg/i18n"
)

// ContactRequest represents a contact form submission as it arrives on the
// wire. Language is optional and defaults to Portuguese.
type ContactRequest struct {
	Name     string `json:"name" validate:"trimmed_min=2" example:"Ana Silva"`
	Email    string `json:"email" validate:"required,email,contact_email" example:"ana@example.com"`
	Message  string `json:"message" validate:"trimmed_min=10" example:"Quero saber mais sobre o sistema."`
	Language string `json:"language,omitempty" example:"pt"`
}

// ContactSubmission is a validated request with its language resolved.
// It lives for one request and is never stored.
type ContactSubmission struct {
	Name     string
	Email    string
	Message  string
	Language i18n.Language
}

// ContactResult is the success acknowledgement returned to the client.
type ContactResult struct {
	Message string
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the request, verifies the mail transport
	// and sends the owner notification followed by the acknowledgement.
	SendContactMessage(ctx context.Context, req *ContactRequest) (*ContactResult, error)
	// CheckTransport verifies the mail transport without sending anything.
	CheckTransport(ctx context.Context) email.TransportResult
}

// ContactMailer is the mail side of the contact pipeline.
type ContactMailer interface {
	VerifyTransport(ctx context.Context) email.TransportResult
	SendOwnerNotification(ctx context.Context, data email.ContactEmailData) error
	SendAcknowledgement(ctx context.Context, data email.ContactEmailData, lang i18n.Language) error
}
