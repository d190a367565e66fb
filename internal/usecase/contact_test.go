package usecase_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"agroflow-backend/internal/domain"
	"agroflow-backend/internal/usecase"
	"agroflow-backend/pkg/apperror"
	"agroflow-backend/pkg/email"
	"agroflow-backend/pkg/i18n"
	"agroflow-backend/pkg/validation"

	"github.com/emersion/go-smtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMailer records pipeline calls.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) VerifyTransport(ctx context.Context) email.TransportResult {
	return m.Called(ctx).Get(0).(email.TransportResult)
}

func (m *MockMailer) SendOwnerNotification(ctx context.Context, data email.ContactEmailData) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockMailer) SendAcknowledgement(ctx context.Context, data email.ContactEmailData, lang i18n.Language) error {
	return m.Called(ctx, data, lang).Error(0)
}

func newContactUsecase(t *testing.T, mailer *MockMailer) domain.ContactUsecase {
	t.Helper()
	v, err := validation.New()
	require.NoError(t, err)
	return usecase.NewContactUsecase(mailer, v, nil)
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:     "Ana Silva",
		Email:    "ana@example.com",
		Message:  "Quero saber mais sobre o sistema.",
		Language: "pt",
	}
}

func requireAppError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	return appErr
}

func TestContactValidation(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(r *domain.ContactRequest)
		field string
	}{
		{"short name", func(r *domain.ContactRequest) { r.Name = " A " }, "name"},
		{"bad email", func(r *domain.ContactRequest) { r.Email = "ana@example" }, "email"},
		{"short message", func(r *domain.ContactRequest) { r.Message = "  curta  " }, "message"},
	}

	for _, tc := range cases {
		t.Run("Should reject "+tc.name+" without sending", func(t *testing.T) {
			mailer := new(MockMailer)
			uc := newContactUsecase(t, mailer)

			req := validRequest()
			tc.edit(req)
			res, err := uc.SendContactMessage(context.Background(), req)

			assert.Nil(t, res)
			appErr := requireAppError(t, err)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.Equal(t, "Dados de formulário inválidos", appErr.Message)
			assert.Contains(t, appErr.Fields, tc.field)
			assert.Len(t, appErr.Fields, 1)

			mailer.AssertNotCalled(t, "VerifyTransport", mock.Anything)
			mailer.AssertNotCalled(t, "SendOwnerNotification", mock.Anything, mock.Anything)
			mailer.AssertNotCalled(t, "SendAcknowledgement", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestContactDelivery(t *testing.T) {
	t.Run("Should send exactly two emails on success", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("VerifyTransport", mock.Anything).Return(email.TransportResult{Valid: true})
		mailer.On("SendOwnerNotification", mock.Anything, email.ContactEmailData{
			SenderName: "Ana Silva", SenderEmail: "ana@example.com", Message: "Quero saber mais sobre o sistema.",
		}).Return(nil)
		mailer.On("SendAcknowledgement", mock.Anything, mock.Anything, i18n.PT).Return(nil)
		uc := newContactUsecase(t, mailer)

		res, err := uc.SendContactMessage(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, "Mensagem enviada com sucesso! Verifique sua caixa de entrada e spam.", res.Message)
		mailer.AssertNumberOfCalls(t, "SendOwnerNotification", 1)
		mailer.AssertNumberOfCalls(t, "SendAcknowledgement", 1)
	})

	t.Run("Should not send anything when verification fails", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("VerifyTransport", mock.Anything).Return(email.TransportResult{
			Valid: false, Kind: email.KindAuth, Error: "authentication failed: check SMTP_USER and SMTP_PASS",
		})
		uc := newContactUsecase(t, mailer)

		_, err := uc.SendContactMessage(context.Background(), validRequest())

		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, apperror.KindConfig, appErr.Kind)
		assert.Equal(t, "Erro na configuração de email do servidor. Nossa equipa foi notificada.", appErr.Message)
		assert.Equal(t, "authentication failed: check SMTP_USER and SMTP_PASS", appErr.Details)
		mailer.AssertNotCalled(t, "SendOwnerNotification", mock.Anything, mock.Anything)
		mailer.AssertNotCalled(t, "SendAcknowledgement", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should skip the acknowledgement when the owner email times out", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("VerifyTransport", mock.Anything).Return(email.TransportResult{Valid: true})
		mailer.On("SendOwnerNotification", mock.Anything, mock.Anything).Return(os.ErrDeadlineExceeded)
		uc := newContactUsecase(t, mailer)

		_, err := uc.SendContactMessage(context.Background(), validRequest())

		appErr := requireAppError(t, err)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, apperror.KindTimeout, appErr.Kind)
		assert.Equal(t, "Timeout na conexão com o servidor. Tente novamente.", appErr.Message)
		mailer.AssertNotCalled(t, "SendAcknowledgement", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should map an acknowledgement auth failure", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("VerifyTransport", mock.Anything).Return(email.TransportResult{Valid: true})
		mailer.On("SendOwnerNotification", mock.Anything, mock.Anything).Return(nil)
		mailer.On("SendAcknowledgement", mock.Anything, mock.Anything, i18n.EN).Return(smtp.ErrAuthFailed)
		uc := newContactUsecase(t, mailer)

		req := validRequest()
		req.Language = "en"
		_, err := uc.SendContactMessage(context.Background(), req)

		appErr := requireAppError(t, err)
		assert.Equal(t, apperror.KindAuth, appErr.Kind)
		assert.Equal(t, "SMTP authentication error. Please check your email credentials.", appErr.Message)
	})

	t.Run("Should fall back to English for unsupported languages", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("VerifyTransport", mock.Anything).Return(email.TransportResult{Valid: true})
		mailer.On("SendOwnerNotification", mock.Anything, mock.Anything).Return(nil)
		mailer.On("SendAcknowledgement", mock.Anything, mock.Anything, i18n.EN).Return(nil)
		uc := newContactUsecase(t, mailer)

		req := validRequest()
		req.Language = "fr"
		res, err := uc.SendContactMessage(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Message sent successfully! Check your inbox and spam folder.", res.Message)
	})

	t.Run("Resubmitting the same payload sends again", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("VerifyTransport", mock.Anything).Return(email.TransportResult{Valid: true})
		mailer.On("SendOwnerNotification", mock.Anything, mock.Anything).Return(nil)
		mailer.On("SendAcknowledgement", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		uc := newContactUsecase(t, mailer)

		for i := 0; i < 2; i++ {
			_, err := uc.SendContactMessage(context.Background(), validRequest())
			require.NoError(t, err)
		}

		mailer.AssertNumberOfCalls(t, "VerifyTransport", 2)
		mailer.AssertNumberOfCalls(t, "SendOwnerNotification", 2)
		mailer.AssertNumberOfCalls(t, "SendAcknowledgement", 2)
	})
}

func TestCheckTransport(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("VerifyTransport", mock.Anything).Return(email.TransportResult{Valid: false, Kind: email.KindConfig, Error: "email: missing configuration: SMTP_HOST"}).Once()
	uc := newContactUsecase(t, mailer)

	res := uc.CheckTransport(context.Background())
	assert.False(t, res.Valid)
	assert.Equal(t, email.KindConfig, res.Kind)
	mailer.AssertExpectations(t)
}
