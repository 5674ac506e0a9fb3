package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI           LogComponent = "api"
	ComponentDB            LogComponent = "database"
	ComponentAuth          LogComponent = "auth"
	ComponentLuckyDiscount LogComponent = "lucky_discount"
	ComponentEmail         LogComponent = "email"
	ComponentMiddleware    LogComponent = "middleware"
	ComponentServer        LogComponent = "server"
)

// LogContext holds structured context information for logs
type LogContext struct {
	UserID        string
	CorrelationID string
	Component     LogComponent
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger provides enhanced logging with structured context
type StructuredLogger struct {
	logger  *zap.Logger
	context LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component
// on top of the global logger.
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return NewStructuredLoggerFrom(Log, component)
}

// NewStructuredLoggerFrom wraps base. A nil base discards everything.
func NewStructuredLoggerFrom(base *zap.Logger, component LogComponent) *StructuredLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &StructuredLogger{
		logger:  base,
		context: LogContext{Component: component, Fields: make(map[string]interface{})},
	}
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Fields[key] = value
	return newLogger
}

// WithFields adds multiple fields to the log context
func (sl *StructuredLogger) WithFields(fields map[string]interface{}) *StructuredLogger {
	newLogger := sl.clone()
	for k, v := range fields {
		newLogger.context.Fields[k] = v
	}
	return newLogger
}

func (sl *StructuredLogger) WithUserID(userID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.UserID = userID
	return newLogger
}

func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.CorrelationID = correlationID
	return newLogger
}

func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Operation = operation
	return newLogger
}

func (sl *StructuredLogger) WithDuration(duration time.Duration) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Duration = duration
	return newLogger
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	newFields := make(map[string]interface{}, len(sl.context.Fields))
	for k, v := range sl.context.Fields {
		newFields[k] = v
	}

	ctx := sl.context
	ctx.Fields = newFields
	return &StructuredLogger{logger: sl.logger, context: ctx}
}

// buildFields creates zap fields from the log context
func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := make([]zapcore.Field, 0, 5+len(sl.context.Fields))

	if sl.context.Component != "" {
		fields = append(fields, zap.String("component", string(sl.context.Component)))
	}
	if sl.context.UserID != "" {
		fields = append(fields, zap.String("user_id", sl.context.UserID))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}

	for key, value := range sl.context.Fields {
		fields = append(fields, zap.Any(key, value))
	}

	return fields
}

func (sl *StructuredLogger) Debug(msg string) {
	sl.logger.Debug(msg, sl.buildFields()...)
}

func (sl *StructuredLogger) Info(msg string) {
	sl.logger.Info(msg, sl.buildFields()...)
}

func (sl *StructuredLogger) Warn(msg string) {
	sl.logger.Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, fields...)
}

// LogOperation logs the end of an operation with timing
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	err := fn()

	finalLogger := sl.WithOperation(operation).WithDuration(time.Since(start))
	if err != nil {
		finalLogger.Error("Operation failed", err)
	} else {
		finalLogger.Debug("Operation completed")
	}
	return err
}

// LogEligibilityEvent records the outcome of a lucky number draw.
func (sl *StructuredLogger) LogEligibilityEvent(luckyNumber int, loginTime string, eligible bool, ruleID string) {
	sl.WithFields(map[string]interface{}{
		"lucky_number": luckyNumber,
		"login_time":   loginTime,
		"eligible":     eligible,
		"rule_id":      ruleID,
	}).Info("Lucky discount evaluated")
}

// LogClaimEvent records a claim attempt. claimID is empty when nothing was stored.
func (sl *StructuredLogger) LogClaimEvent(claimID, ruleID string, luckyNumber int, notified bool) {
	sl.WithFields(map[string]interface{}{
		"claim_id":     claimID,
		"rule_id":      ruleID,
		"lucky_number": luckyNumber,
		"notified":     notified,
	}).Info("Lucky discount claim processed")
}

// LogAuthEvent logs authentication-related events
func (sl *StructuredLogger) LogAuthEvent(action, userID string, success bool, reason string) {
	sl.WithFields(map[string]interface{}{
		"auth_action": action,
		"user_id":     userID,
		"success":     success,
		"reason":      reason,
	}).Info("Authentication event occurred")
}
