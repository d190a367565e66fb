package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agroflow-backend/config"
	v1 "agroflow-backend/internal/delivery/http/v1"
	"agroflow-backend/internal/domain"
	"agroflow-backend/internal/usecase"
	"agroflow-backend/pkg/email"
	"agroflow-backend/pkg/i18n"
	"agroflow-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

func newTestRouter(t *testing.T, mailer *MockMailer, production bool) *gin.Engine {
	t.Helper()
	v, err := validation.New()
	require.NoError(t, err)

	cfg := &config.Config{
		AppEnv:                 "development",
		AllowedOrigins:         []string{"https://agroflow.pt"},
		ContactRateLimit:       100,
		RateLimitWindowSeconds: 60,
	}
	if production {
		cfg.AppEnv = "production"
	}

	return v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(mailer, v, nil),
		NewsUC:    usecase.NewNewsUsecase(),
		VideoUC:   usecase.NewVideoUsecase(nil, nil, 0),
		HealthUC:  usecase.NewHealthUsecase(nil),
		Config:    cfg,
	})
}

func do(r *gin.Engine, method, path string, body []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func payload(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func workingMailer() *MockMailer {
	m := new(MockMailer)
	m.On("VerifyTransport", mock.Anything).Return(email.TransportResult{Valid: true})
	m.On("SendOwnerNotification", mock.Anything, mock.Anything).Return(nil)
	m.On("SendAcknowledgement", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return m
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should send the message", func(t *testing.T) {
		mailer := workingMailer()
		r := newTestRouter(t, mailer, true)

		w, body := do(r, http.MethodPost, "/api/contact", payload(t, domain.ContactRequest{
			Name: "Ana Silva", Email: "ana@example.com", Message: "Quero saber mais sobre o sistema.", Language: "pt",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Mensagem enviada com sucesso! Verifique sua caixa de entrada e spam.", body["message"])
		mailer.AssertNumberOfCalls(t, "SendOwnerNotification", 1)
		mailer.AssertNumberOfCalls(t, "SendAcknowledgement", 1)
	})

	t.Run("Should reject invalid fields with a field map", func(t *testing.T) {
		mailer := new(MockMailer)
		r := newTestRouter(t, mailer, true)

		w, body := do(r, http.MethodPost, "/api/contact", payload(t, domain.ContactRequest{
			Name: "A", Email: "not-an-email", Message: "curta",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Dados de formulário inválidos", body["error"])
		fields, ok := body["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "message")
		mailer.AssertNotCalled(t, "VerifyTransport", mock.Anything)
	})

	t.Run("Should answer malformed JSON in the default language", func(t *testing.T) {
		r := newTestRouter(t, new(MockMailer), true)

		w, body := do(r, http.MethodPost, "/api/contact", []byte(`{"name":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Pedido inválido. Verifique os dados enviados.", body["error"])
		assert.NotContains(t, body, "details")
	})

	t.Run("Should report a failed verification without sending", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("VerifyTransport", mock.Anything).Return(email.TransportResult{
			Valid: false, Kind: email.KindConfig, Error: "email: missing configuration: SMTP_PASS",
		})

		w, body := do(newTestRouter(t, mailer, false), http.MethodPost, "/api/contact", payload(t, domain.ContactRequest{
			Name: "John", Email: "john@example.com", Message: "Hello there, world!", Language: "en",
		}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Error in server email configuration. Our team has been notified.", body["error"])
		assert.Equal(t, "email: missing configuration: SMTP_PASS", body["details"])
		mailer.AssertNotCalled(t, "SendOwnerNotification", mock.Anything, mock.Anything)
	})
}

func TestCheckTransportEndpoint(t *testing.T) {
	t.Run("Should report a healthy transport", func(t *testing.T) {
		w, body := do(newTestRouter(t, workingMailer(), true), http.MethodGet, "/api/contact", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "SMTP configurado corretamente", body["message"])
	})

	failing := func() *MockMailer {
		m := new(MockMailer)
		m.On("VerifyTransport", mock.Anything).Return(email.TransportResult{
			Valid: false, Kind: email.KindAuth, Error: "authentication failed: check SMTP_USER and SMTP_PASS",
		})
		return m
	}

	t.Run("Should include the diagnostic outside production", func(t *testing.T) {
		w, body := do(newTestRouter(t, failing(), false), http.MethodGet, "/api/contact", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "authentication failed: check SMTP_USER and SMTP_PASS", body["error"])
	})

	t.Run("Should show only the kind in production", func(t *testing.T) {
		_, body := do(newTestRouter(t, failing(), true), http.MethodGet, "/api/contact", nil)
		assert.Equal(t, "AUTH", body["error"])
	})
}

func TestMediaEndpoints(t *testing.T) {
	r := newTestRouter(t, new(MockMailer), true)

	t.Run("News honours the limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news?limit=4", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var items []domain.NewsItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, 4)
	})

	t.Run("News ignores a malformed limit", func(t *testing.T) {
		fetch := func(target string) []domain.NewsItem {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var items []domain.NewsItem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			return items
		}

		defaults := fetch("/api/news")
		assert.NotEmpty(t, defaults)
		assert.LessOrEqual(t, len(defaults), usecase.DefaultNewsLimit)
		assert.Len(t, fetch("/api/news?limit=abc"), len(defaults))
	})

	t.Run("Videos fall back without YouTube", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/news/yto?max=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var list domain.VideoList
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Equal(t, domain.VideoSourceFallback, list.Source)
		assert.Len(t, list.Videos, 2)
	})

	t.Run("Health reports ok", func(t *testing.T) {
		w, body := do(r, http.MethodGet, "/api/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", body["status"])
	})
}
