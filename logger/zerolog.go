package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to Logger.
type zerologLogger struct {
	base  zerolog.Logger
	level atomic.Int32
}

// NewZerologLogger wraps zl. Messages are formatted with fmt and emitted
// at the matching zerolog level; SetLevel filters before zerolog does.
func NewZerologLogger(zl zerolog.Logger, level Level) Logger {
	l := &zerologLogger{base: zl}
	l.level.Store(int32(level))
	return l
}

func (l *zerologLogger) Debug(format string, args ...interface{}) {
	if l.enabled(DEBUG) {
		l.base.Debug().Msg(fmt.Sprintf(format, args...))
	}
}

func (l *zerologLogger) Info(format string, args ...interface{}) {
	if l.enabled(INFO) {
		l.base.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func (l *zerologLogger) Warn(format string, args ...interface{}) {
	if l.enabled(WARN) {
		l.base.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func (l *zerologLogger) Error(format string, args ...interface{}) {
	if l.enabled(ERROR) {
		l.base.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func (l *zerologLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *zerologLogger) enabled(level Level) bool {
	current := Level(l.level.Load())
	return current != OFF && level >= current
}

// ZerologLevel maps a Level to the zerolog level with the same meaning.
func ZerologLevel(level Level) zerolog.Level {
	switch level {
	case DEBUG:
		return zerolog.DebugLevel
	case INFO:
		return zerolog.InfoLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
