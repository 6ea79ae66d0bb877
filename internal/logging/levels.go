package logging

import (
	"fmt"
	"strings"
)

// ValidLogLevels is the set of level names accepted by every component.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel reports whether level names a supported level.
// Levels are upper case.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel returns an error for unsupported levels.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s (valid: DEBUG, INFO, WARN, ERROR)", level)
	}
	return nil
}

// FormatID shortens identifiers such as request IDs for log lines.
func FormatID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// RestyLogger implements resty's Logger interface on top of this package.
type RestyLogger struct{}

// Errorf routes resty errors to Error.
func (RestyLogger) Errorf(format string, v ...any) {
	Error(format, v...)
}

// Warnf routes resty warnings to Warn.
func (RestyLogger) Warnf(format string, v ...any) {
	Warn(format, v...)
}

// Debugf routes resty debug output to Debug.
func (RestyLogger) Debugf(format string, v ...any) {
	Debug(format, v...)
}
