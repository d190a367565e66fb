package security

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audited event
type EventType string

const (
	EventContactSubmitted        EventType = "contact_submitted"
	EventContactValidationFailed EventType = "contact_validation_failed"
	EventContactDeliveryFailed   EventType = "contact_delivery_failed"
	EventSMTPCheckFailed         EventType = "smtp_check_failed"
	EventRateLimitTriggered      EventType = "rate_limit_triggered"
)

// Event represents an audited event to be logged
type Event struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Severity     Severity               `json:"severity"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "ip"
	SubjectValue string                 `json:"subject_value,omitempty"` // Masked or hashed for PII
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// EventLogger provides structured logging for contact pipeline events.
// A nil *EventLogger discards everything.
type EventLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewEventLogger builds a production zap logger writing JSON to stdout.
func NewEventLogger(serviceName, environment string) *EventLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// Set output to stdout for container environments
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger = zap.NewNop()
	}

	return NewEventLoggerWithZap(logger, serviceName, environment)
}

// NewEventLoggerWithZap wraps an existing zap logger.
func NewEventLoggerWithZap(logger *zap.Logger, serviceName, environment string) *EventLogger {
	return &EventLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Log logs an event
func (l *EventLogger) Log(_ context.Context, event Event) {
	if l == nil {
		return
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName
	event.Environment = l.environment

	event.Severity = GetSeverity(event.Event)
	level := event.Severity.zapLevel()
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(event.Severity)),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// LogContactSubmitted logs a fully delivered submission
func (l *EventLogger) LogContactSubmitted(ctx context.Context, email, language, ip, requestID string) {
	l.Log(ctx, Event{
		Event:        EventContactSubmitted,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"language": language},
	})
}

// LogValidationFailed logs which fields were rejected, never their values
func (l *EventLogger) LogValidationFailed(ctx context.Context, fields []string, ip, requestID string) {
	l.Log(ctx, Event{
		Event:     EventContactValidationFailed,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"fields": fields},
	})
}

// LogDeliveryFailed logs the pipeline step that stopped a submission
func (l *EventLogger) LogDeliveryFailed(ctx context.Context, email, step, kind string, err error, requestID string) {
	details := map[string]interface{}{"step": step, "kind": kind}
	if err != nil {
		details["error"] = err.Error()
	}
	l.Log(ctx, Event{
		Event:        EventContactDeliveryFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		RequestID:    requestID,
		Details:      details,
	})
}

// LogSMTPCheckFailed logs a failed transport verification
func (l *EventLogger) LogSMTPCheckFailed(ctx context.Context, kind, diagnostic, requestID string) {
	l.Log(ctx, Event{
		Event:     EventSMTPCheckFailed,
		RequestID: requestID,
		Details:   map[string]interface{}{"kind": kind, "error": diagnostic},
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (l *EventLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	l.Log(ctx, Event{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// Sync flushes any buffered log entries
func (l *EventLogger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}
