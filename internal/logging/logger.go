// Package logging provides the colored, leveled logging used by labd and
// labctl.
//
// Two charmbracelet/log loggers follow Unix conventions: INFO and SUCCESS go
// to stdout, WARN, ERROR and DEBUG go to stderr. A single writer set through
// SetOutput replaces both (log files, tests). Third-party libraries that want
// an io.Writer (gin) or a printf-style logger (resty) are routed through
// LevelWriter and the package-level helpers so every line shares one format.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	stdlog "log"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	mu sync.RWMutex

	// INFO/SUCCESS
	stdoutLogger = newLogger(os.Stdout)

	// WARN/ERROR/DEBUG
	stderrLogger = newLogger(os.Stderr)

	// Set when a CLI tool has taken control of log output
	cliConfigured = false

	// Current destination of stdoutLogger, used to build the SUCCESS logger
	stdoutOutput io.Writer = os.Stdout
)

// newLogger builds a logger with the shared timestamp format and level colors.
func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	l.SetStyles(levelStyles())
	return l
}

// levelStyles returns the color scheme for each level. Colors are chosen to
// stay readable on both light and dark terminals.
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

func loggers() (*log.Logger, *log.Logger) {
	mu.RLock()
	defer mu.RUnlock()
	return stdoutLogger, stderrLogger
}

// Info logs informational messages to stdout.
func Info(format string, v ...any) {
	out, _ := loggers()
	out.Info(fmt.Sprintf(format, v...))
}

// Warn logs warnings to stderr.
func Warn(format string, v ...any) {
	_, errOut := loggers()
	errOut.Warn(fmt.Sprintf(format, v...))
}

// Error logs errors to stderr.
func Error(format string, v ...any) {
	_, errOut := loggers()
	errOut.Error(fmt.Sprintf(format, v...))
}

// Debug logs debugging details to stderr.
func Debug(format string, v ...any) {
	_, errOut := loggers()
	errOut.Debug(fmt.Sprintf(format, v...))
}

// Success logs a completed operation in green. It is an INFO-level message
// with a SUCCESS label, so it is filtered exactly like Info.
func Success(format string, v ...any) {
	mu.RLock()
	level := stdoutLogger.GetLevel()
	w := stdoutOutput
	mu.RUnlock()

	if level > log.InfoLevel {
		return
	}

	styles := levelStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281"))

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	l.SetStyles(styles)
	l.Info(fmt.Sprintf(format, v...))
}

// SetLevel sets the minimum level on both loggers. Unknown values fall back
// to INFO; callers validate with ValidateLogLevel first.
func SetLevel(level string) {
	var logLevel log.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		logLevel = log.DebugLevel
	case "INFO":
		logLevel = log.InfoLevel
	case "WARN":
		logLevel = log.WarnLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
	}

	mu.Lock()
	defer mu.Unlock()
	stdoutLogger.SetLevel(logLevel)
	stderrLogger.SetLevel(logLevel)
}

// SetOutput sends every level to w, overriding the stdout/stderr split.
// A nil writer suppresses all output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		stdoutLogger.SetLevel(log.FatalLevel + 1)
		stderrLogger.SetLevel(log.FatalLevel + 1)
		return
	}

	level := stdoutLogger.GetLevel()
	stdoutLogger = newLogger(w)
	stderrLogger = newLogger(w)
	stdoutLogger.SetLevel(level)
	stderrLogger.SetLevel(level)
	stdoutOutput = w
}

// SuppressOutput hides everything below ERROR. labctl uses it for
// --log-level=ERROR so command output is not interleaved with logs.
func SuppressOutput() {
	mu.Lock()
	defer mu.Unlock()
	stdoutLogger.SetLevel(log.ErrorLevel)
	stderrLogger.SetLevel(log.ErrorLevel)
	cliConfigured = true
}

// RestoreOutput returns to stdout/stderr at INFO level.
func RestoreOutput() {
	mu.Lock()
	defer mu.Unlock()

	stdoutLogger = newLogger(os.Stdout)
	stderrLogger = newLogger(os.Stderr)
	stdoutLogger.SetLevel(log.InfoLevel)
	stderrLogger.SetLevel(log.InfoLevel)
	stdoutOutput = os.Stdout
	cliConfigured = true
}

// IsConfiguredByCLI reports whether a CLI tool has configured logging.
func IsConfiguredByCLI() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cliConfigured
}

// LevelWriter forwards each written line to one level with an optional
// prefix. Used for gin's DefaultWriter/DefaultErrorWriter.
type LevelWriter struct {
	level  string
	prefix string
}

// NewLevelWriter creates a writer logging at level (DEBUG, INFO, WARN, ERROR).
func NewLevelWriter(level, prefix string) io.Writer {
	return &LevelWriter{level: strings.ToUpper(level), prefix: prefix}
}

// Write splits p into lines and logs each non-empty one.
func (w *LevelWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		msg := line
		if w.prefix != "" {
			msg = w.prefix + ": " + line
		}
		switch w.level {
		case "DEBUG":
			Debug("%s", msg)
		case "WARN":
			Warn("%s", msg)
		case "ERROR":
			Error("%s", msg)
		default:
			Info("%s", msg)
		}
	}
	return len(p), nil
}

// RedirectStandardLog points the standard library logger at w without its
// own timestamp, so net/http server errors share our format. nil discards.
func RedirectStandardLog(w io.Writer) {
	if w == nil {
		stdlog.SetOutput(io.Discard)
		return
	}
	stdlog.SetFlags(0)
	stdlog.SetOutput(w)
}
