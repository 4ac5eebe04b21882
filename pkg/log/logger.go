package log

import (
	"fmt"
	"os"
	"time"
)

// Level represents the severity of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug", "DEBUG":
		return DebugLevel, nil
	case "info", "INFO", "":
		return InfoLevel, nil
	case "warn", "WARN", "warning":
		return WarnLevel, nil
	case "error", "ERROR":
		return ErrorLevel, nil
	case "fatal", "FATAL":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("log: unknown level %q", s)
	}
}

// Logger is the logging interface passed through the codebase.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	// With returns a Logger carrying additional fields on every entry.
	With(fields ...Field) Logger

	// SetLevel sets the minimum log level.
	SetLevel(level Level)
	// GetLevel returns the current minimum log level.
	GetLevel() Level
}

// LoggerOption configures a logger at construction.
type LoggerOption func(*BaseLogger)

// BaseLogger implements Logger with a formatter/outputs pipeline.
type BaseLogger struct {
	level     Level
	fields    []Field
	formatter Formatter
	outputs   []Output
	exit      func(int)
}

// NewLogger creates a new logger with the given options. Without options it
// logs at InfoLevel as JSON to the console.
func NewLogger(options ...LoggerOption) Logger {
	logger := &BaseLogger{
		level:     InfoLevel,
		formatter: &JSONFormatter{},
		exit:      os.Exit,
	}
	for _, option := range options {
		option(logger)
	}
	if len(logger.outputs) == 0 {
		logger.outputs = append(logger.outputs, NewConsoleOutput())
	}
	return logger
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(l *BaseLogger) { l.level = level }
}

// WithFormatter sets the log formatter.
func WithFormatter(formatter Formatter) LoggerOption {
	return func(l *BaseLogger) { l.formatter = formatter }
}

// WithOutput adds an output to the logger.
func WithOutput(output Output) LoggerOption {
	return func(l *BaseLogger) { l.outputs = append(l.outputs, output) }
}

func (l *BaseLogger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}
	entry := &Entry{
		Level:     level,
		Message:   msg,
		Timestamp: time.Now(),
		Fields:    make(Fields, len(l.fields)+len(fields)),
	}
	for _, f := range l.fields {
		entry.Fields[f.Key] = f.Value
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}
	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return
	}
	for _, out := range l.outputs {
		_ = out.Write(entry, formatted)
	}
	if level == FatalLevel {
		l.exit(1)
	}
}

func (l *BaseLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *BaseLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *BaseLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *BaseLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }
func (l *BaseLogger) Fatal(msg string, fields ...Field) { l.log(FatalLevel, msg, fields) }

// With returns a copy of the logger carrying the additional fields.
func (l *BaseLogger) With(fields ...Field) Logger {
	nl := *l
	nl.fields = append(append([]Field(nil), l.fields...), fields...)
	return &nl
}

// SetLevel sets the minimum log level.
func (l *BaseLogger) SetLevel(level Level) { l.level = level }

// GetLevel returns the current minimum log level.
func (l *BaseLogger) GetLevel() Level { return l.level }
