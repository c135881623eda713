package telemetry

import (
	"io"

	"github.com/rs/zerolog"
)

type Logger interface {
	Info(msg string)
	Debug(msg string)
	Error(msg string, err error)
}

type NOPLogger struct {
}

func (n NOPLogger) Info(msg string) {
}
func (n NOPLogger) Debug(msg string) {
}
func (n NOPLogger) Error(msg string, err error) {
}

// ZeroLogger writes one JSON line per message to w. Messages below level are dropped.
type ZeroLogger struct {
	log zerolog.Logger
}

func NewZeroLogger(w io.Writer, level zerolog.Level) *ZeroLogger {
	return &ZeroLogger{log: zerolog.New(w).With().Timestamp().Logger().Level(level)}
}

func (l *ZeroLogger) Info(msg string) {
	l.log.Info().Msg(msg)
}

func (l *ZeroLogger) Debug(msg string) {
	l.log.Debug().Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error) {
	l.log.Error().Err(err).Msg(msg)
}
