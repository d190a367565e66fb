package usecase

import (
	"context"
	"errors"
	"strings"

	"agroflow-backend/internal/domain"
	"agroflow-backend/pkg/apperror"
	"agroflow-backend/pkg/email"
	"agroflow-backend/pkg/i18n"
	"agroflow-backend/pkg/security"
	"agroflow-backend/pkg/validation"
)

// Pipeline step names, also used in logs.
const (
	StepVerifyTransport   = "verify_transport"
	StepOwnerNotification = "owner_notification"
	StepAcknowledgement   = "acknowledgement"
)

type contactUsecase struct {
	mailer    domain.ContactMailer
	validator *validation.Validator
	events    *security.EventLogger
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer domain.ContactMailer, validator *validation.Validator, events *security.EventLogger) domain.ContactUsecase {
	return &contactUsecase{
		mailer:    mailer,
		validator: validator,
		events:    events,
	}
}

// SendContactMessage validates the contact request and runs the delivery
// pipeline. Every call sends its own two emails; identical submissions are
// not deduplicated.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.ContactResult, error) {
	if req == nil {
		return nil, apperror.BadRequest(i18n.Translate(i18n.KeyInvalidRequest, i18n.Default))
	}

	requestID := domain.RequestIDFrom(ctx)
	clientIP := domain.ClientIPFrom(ctx)
	lang := i18n.Parse(req.Language)

	if err := uc.validator.Validate(req, lang); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			uc.events.LogValidationFailed(ctx, fields.Fields(), clientIP, requestID)
			return nil, apperror.Validation(i18n.Translate(i18n.KeyInvalidFormData, lang), fields)
		}
		return nil, apperror.BadRequest(i18n.Translate(i18n.KeyInvalidRequest, lang))
	}

	sub := domain.ContactSubmission{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Message:  strings.TrimSpace(req.Message),
		Language: lang,
	}
	data := email.ContactEmailData{
		SenderName:  sub.Name,
		SenderEmail: sub.Email,
		Message:     sub.Message,
	}

	// A client that disconnects does not abort a submission half way.
	ctx = context.WithoutCancel(ctx)

	results := runPipeline(ctx, []step{
		{name: StepVerifyTransport, run: uc.verifyStep},
		{name: StepOwnerNotification, run: func(ctx context.Context) error {
			return uc.mailer.SendOwnerNotification(ctx, data)
		}},
		{name: StepAcknowledgement, run: func(ctx context.Context) error {
			return uc.mailer.SendAcknowledgement(ctx, data, sub.Language)
		}},
	})

	if failed, ok := lastFailure(results); ok {
		uc.events.LogDeliveryFailed(ctx, sub.Email, failed.Step, string(failed.Kind()), failed.Err, requestID)
		return nil, failureToAppError(failed, lang)
	}

	uc.events.LogContactSubmitted(ctx, sub.Email, sub.Language.String(), clientIP, requestID)
	return &domain.ContactResult{Message: i18n.Translate(i18n.KeyContactSent, lang)}, nil
}

// CheckTransport verifies the mail transport for the healthcheck.
func (uc *contactUsecase) CheckTransport(ctx context.Context) email.TransportResult {
	res := uc.mailer.VerifyTransport(ctx)
	if !res.Valid {
		uc.events.LogSMTPCheckFailed(ctx, string(res.Kind), res.Error, domain.RequestIDFrom(ctx))
	}
	return res
}

func (uc *contactUsecase) verifyStep(ctx context.Context) error {
	res := uc.mailer.VerifyTransport(ctx)
	if !res.Valid {
		return &TransportCheckError{Result: res}
	}
	return nil
}

// TransportCheckError is returned by the verification step.
type TransportCheckError struct {
	Result email.TransportResult
}

func (e *TransportCheckError) Error() string {
	return "smtp verification failed: " + e.Result.Error
}

// failureToAppError maps a failed step to the client-facing error. A failed
// verification is reported as a server email configuration problem; a failed
// send is reported by its transport kind.
func failureToAppError(failed StepResult, lang i18n.Language) *apperror.AppError {
	var checkErr *TransportCheckError
	if errors.As(failed.Err, &checkErr) {
		return apperror.Config(i18n.Translate(i18n.KeyEmailConfigError, lang), failed.Err).
			WithDetails(checkErr.Result.Error)
	}

	kind := failed.Kind()
	switch kind {
	case email.KindConfig:
		return apperror.Config(i18n.Translate(i18n.KeyEmailConfigError, lang), failed.Err)
	case email.KindAuth:
		return apperror.Transport(apperror.KindAuth, i18n.Translate(i18n.KeyErrAuth, lang), failed.Err)
	case email.KindConnRefused:
		return apperror.Transport(apperror.KindConnRefused, i18n.Translate(i18n.KeyErrConnRefused, lang), failed.Err)
	case email.KindTimeout:
		return apperror.Transport(apperror.KindTimeout, i18n.Translate(i18n.KeyErrTimeout, lang), failed.Err)
	default:
		return apperror.Transport(apperror.KindUnknown, i18n.Translate(i18n.KeyErrUnknown, lang), failed.Err)
	}
}
