// Package log wraps logrus behind the small structured-logging surface the
// rest of the application uses: package-level leveled logging, field
// constructors, and error-aware entries that expand the application error
// kinds into fields.
package log

import (
	"context"
	"io"
	"os"

	"twopane/internal/errors"

	"github.com/sirupsen/logrus"
)

var logger = NewLogger()

// Field is one structured logging key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F creates a field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logging is the minimal interface components accept when they want an
// injectable logger instead of the package-level one.
type Logging interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
}

// Logger wraps a logrus logger plus the optional log file it owns
type Logger struct {
	l    *logrus.Logger
	file *os.File
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput directs log output to w
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON-formatted output
func WithJSON() Option {
	return func(lg *Logger) {
		lg.l.SetFormatter(&logrus.JSONFormatter{})
	}
}

// WithFile tees log output to the given file in addition to stdout.
// The file is created if missing and appended to otherwise.
func WithFile(path string) Option {
	return func(lg *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			lg.l.WithField("path", path).Warnf("could not open log file: %v", err)
			return
		}
		lg.file = f
		lg.l.SetOutput(io.MultiWriter(os.Stdout, f))
	}
}

// NewLogger creates a logger writing text-formatted lines to stdout
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

// Configure replaces the package-level logger configuration
func Configure(opts ...Option) {
	debug := logger.l.IsLevelEnabled(logrus.DebugLevel)
	logger = NewLogger(opts...)
	if debug {
		logger.l.SetLevel(logrus.DebugLevel)
	}
}

// SetDebug enables or disables debug-level logging on the package logger
func SetDebug(debug bool) {
	if debug {
		logger.l.SetLevel(logrus.DebugLevel)
	} else {
		logger.l.SetLevel(logrus.InfoLevel)
	}
}

// Close releases the log file if one was opened via WithFile
func (lg *Logger) Close() error {
	if lg.file != nil {
		return lg.file.Close()
	}
	return nil
}

// With returns an entry carrying the given fields
func (lg *Logger) With(fields ...Field) *logrus.Entry {
	return lg.l.WithFields(toLogrus(fields))
}

// WithContext returns an entry carrying the given context
func (lg *Logger) WithContext(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return logrus.NewEntry(lg.l)
	}
	return lg.l.WithContext(ctx)
}

func (lg *Logger) Info(args ...interface{})                  { lg.l.Info(args...) }
func (lg *Logger) Infof(format string, args ...interface{})  { lg.l.Infof(format, args...) }
func (lg *Logger) Warn(args ...interface{})                  { lg.l.Warn(args...) }
func (lg *Logger) Warnf(format string, args ...interface{})  { lg.l.Warnf(format, args...) }
func (lg *Logger) Error(args ...interface{})                 { lg.l.Error(args...) }
func (lg *Logger) Errorf(format string, args ...interface{}) { lg.l.Errorf(format, args...) }
func (lg *Logger) Debug(args ...interface{})                 { lg.l.Debug(args...) }
func (lg *Logger) Debugf(format string, args ...interface{}) { lg.l.Debugf(format, args...) }

// Package-level logging against the shared logger

func Info(args ...interface{})                  { logger.Info(args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warn(args ...interface{})                  { logger.Warn(args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(args ...interface{})                 { logger.Error(args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Debug(args ...interface{})                 { logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// LogWithFields returns an entry on the package logger carrying fields
func LogWithFields(fields ...Field) *logrus.Entry {
	return logger.With(fields...)
}

// LogWithError returns an entry with err expanded into structured fields.
// Application errors contribute their kind; file and store errors also
// contribute the path they refer to.
func LogWithError(err error) *logrus.Entry {
	entry := logger.l.WithField("error", errString(err))
	if err == nil {
		return entry
	}

	if k, ok := err.(interface{ Kind() errors.ErrorKind }); ok {
		entry = entry.WithField("error_kind", int(k.Kind()))
	}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		entry = entry.WithField("path", fileErr.Path())
	}
	var storeErr *errors.StoreError
	if errors.As(err, &storeErr) && storeErr.StoragePath() != "" {
		entry = entry.WithField("store", storeErr.StoragePath())
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		entry = entry.WithField("param", configErr.Param())
	}
	return entry
}

// LogError is a convenience for logging err at error level with a message
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

func toLogrus(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
