package security_test

import (
	"context"
	"errors"
	"testing"

	"agroflow-backend/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", security.MaskEmail("ana@example.com"))
	assert.Equal(t, "***", security.MaskEmail("ab"))
	assert.Equal(t, "***@example.com", security.MaskEmail("a@example.com"))
}

func TestEventLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := security.NewEventLoggerWithZap(zap.New(core), "agroflow-backend", "test")
	ctx := context.Background()

	l.LogContactSubmitted(ctx, "ana@example.com", "pt", "10.0.0.1", "req-1")
	l.LogDeliveryFailed(ctx, "ana@example.com", "owner_notification", "TIMEOUT", errors.New("i/o timeout"), "req-2")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "contact_submitted", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "a***@example.com", entries[0].ContextMap()["subject_value"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	assert.Equal(t, "contact_delivery_failed", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["details"], "owner_notification")
}

func TestNilEventLoggerIsSafe(t *testing.T) {
	var l *security.EventLogger
	assert.NotPanics(t, func() {
		l.LogRateLimitTriggered(context.Background(), "10.0.0.1", "curl", "req", "/api/contact")
		_ = l.Sync()
	})
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, security.SeverityHIGH, security.GetSeverity(security.EventSMTPCheckFailed))
	assert.Equal(t, security.SeverityWARN, security.GetSeverity(security.EventRateLimitTriggered))
	assert.Equal(t, security.SeverityINFO, security.GetSeverity(security.EventType("unknown")))
	assert.True(t, security.IsHighOrAbove(security.EventContactDeliveryFailed))
	assert.False(t, security.IsHighOrAbove(security.EventContactSubmitted))
}
