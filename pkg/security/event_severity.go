package security

import "go.uber.org/zap/zapcore"

// Severity represents the severity level of a contact event
// This is derived from EventType, NOT caller-provided
type Severity string

const (
	SeverityINFO Severity = "INFO"
	SeverityWARN Severity = "WARN"
	SeverityHIGH Severity = "HIGH"
)

// EventSeverityMap defines the hard-coded severity for each event type
var EventSeverityMap = map[EventType]Severity{
	EventContactSubmitted:        SeverityINFO,
	EventContactValidationFailed: SeverityWARN,
	EventRateLimitTriggered:      SeverityWARN,
	// Lost leads and a broken mail relay need someone to look.
	EventContactDeliveryFailed: SeverityHIGH,
	EventSMTPCheckFailed:       SeverityHIGH,
}

// GetSeverity returns the severity for an event type
// If the event type is not mapped, defaults to INFO
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityINFO
}

// IsHighOrAbove returns true if the event needs operator attention
func IsHighOrAbove(eventType EventType) bool {
	return GetSeverity(eventType) == SeverityHIGH
}

func (s Severity) zapLevel() zapcore.Level {
	switch s {
	case SeverityHIGH:
		return zapcore.ErrorLevel
	case SeverityWARN:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
