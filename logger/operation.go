package logger

import "go.uber.org/zap"

// Operation-aware logging helpers.
// These functions log with the operation as a structured field, not in the message.
//
// Usage:
//
//	// Instead of:
//	logger.Debugw("encode: dropped characters", "dropped", d)
//
//	// Use:
//	logger.EncodeDebugw("Dropped characters", logger.FieldDropped, d)

// EncodeDebugw logs a debug message tagged with the encode operation
func EncodeDebugw(msg string, keysAndValues ...interface{}) {
	opDebugw(OpEncode, msg, keysAndValues...)
}

// DecodeDebugw logs a debug message tagged with the decode operation
func DecodeDebugw(msg string, keysAndValues ...interface{}) {
	opDebugw(OpDecode, msg, keysAndValues...)
}

// ClockDebugw logs a debug message tagged with the clock operation
func ClockDebugw(msg string, keysAndValues ...interface{}) {
	opDebugw(OpClock, msg, keysAndValues...)
}

func opDebugw(op, msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		WithOperation(Logger, op).Debugw(msg, keysAndValues...)
	}
}

// WithOperation wraps a logger with an operation field.
func WithOperation(l *zap.SugaredLogger, op string) *zap.SugaredLogger {
	return l.With(FieldOperation, op)
}
