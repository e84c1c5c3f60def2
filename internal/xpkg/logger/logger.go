package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the structured logger shared by every service mode. Entries are
// JSON lines tagged with the service name, the current action and any
// key-value pairs attached with With.
type Logger interface {
	Action(action string) Logger
	With(args ...any) Logger
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, err error, args ...any)
}

type zeroLogger struct {
	zl zerolog.Logger
}

// New creates a logger for the given service mode.
func New(service string) Logger {
	hostname, _ := os.Hostname()
	zl := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Str("hostname", hostname).
		Logger()
	return &zeroLogger{zl: zl}
}

func (l *zeroLogger) Action(action string) Logger {
	return &zeroLogger{zl: l.zl.With().Str("action", action).Logger()}
}

func (l *zeroLogger) With(args ...any) Logger {
	return &zeroLogger{zl: l.zl.With().Fields(args).Logger()}
}

func (l *zeroLogger) Debug(msg string, args ...any) {
	l.zl.Debug().Fields(args).Msg(msg)
}

func (l *zeroLogger) Info(msg string, args ...any) {
	l.zl.Info().Fields(args).Msg(msg)
}

func (l *zeroLogger) Warn(msg string, args ...any) {
	l.zl.Warn().Fields(args).Msg(msg)
}

func (l *zeroLogger) Error(msg string, err error, args ...any) {
	l.zl.Error().Err(err).Fields(args).Msg(msg)
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	return &zeroLogger{zl: zerolog.Nop()}
}
