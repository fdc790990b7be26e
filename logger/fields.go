package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Context
	FieldOperation = "operation"
	FieldMode      = "mode"

	// Codec
	FieldInputLength = "input_length"
	FieldDropped     = "dropped"
	FieldUnknown     = "unknown"
	FieldHour        = "hour"
	FieldMinute      = "minute"
	FieldWords       = "words"

	// Errors
	FieldError = "error"

	// Files and config
	FieldFile   = "file"
	FieldKey    = "key"
	FieldSource = "source"
)

// Operation names used with FieldOperation.
const (
	OpEncode = "encode"
	OpDecode = "decode"
	OpClock  = "clock"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("cli")
//	log.Infow("Mode selected", logger.FieldMode, mode)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
