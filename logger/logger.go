/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides leveled logging for influxqs.
// The parser logs ignored query tokens at DEBUG and parse failures at WARN.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level defines log levels
type Level int32

const (
	// DEBUG shows every ignored token
	DEBUG Level = iota
	// INFO shows general information
	INFO
	// WARN shows parse failures
	WARN
	// ERROR shows errors only
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "debug" or "WARN".
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "TRACE":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE", "DISABLED":
		return OFF, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger interface defines basic methods for logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	// SetLevel changes the minimum level; safe to call concurrently
	SetLevel(level Level)
}

// writerLogger formats lines as "[time] [LEVEL] message".
type writerLogger struct {
	level  atomic.Int32
	logger *log.Logger
}

// NewLogger creates a logger writing to output.
//
//	log := logger.NewLogger(logger.DEBUG, os.Stderr)
//	log.Debug("dropped %s", token)
func NewLogger(level Level, output io.Writer) Logger {
	l := &writerLogger{logger: log.New(output, "", 0)}
	l.level.Store(int32(level))
	return l
}

func (l *writerLogger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }
func (l *writerLogger) Info(format string, args ...interface{})  { l.log(INFO, format, args...) }
func (l *writerLogger) Warn(format string, args ...interface{})  { l.log(WARN, format, args...) }
func (l *writerLogger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

func (l *writerLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *writerLogger) log(level Level, format string, args ...interface{}) {
	current := Level(l.level.Load())
	if current == OFF || level < current {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] %s", timestamp, level, fmt.Sprintf(format, args...))
}

type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(string, ...interface{}) {}
func (discardLogger) Info(string, ...interface{})  {}
func (discardLogger) Warn(string, ...interface{})  {}
func (discardLogger) Error(string, ...interface{}) {}
func (discardLogger) SetLevel(Level)               {}

type holder struct{ Logger }

var defaultInstance atomic.Value

func init() {
	defaultInstance.Store(holder{NewLogger(WARN, os.Stderr)})
}

// SetDefault sets the logger used by parsers created without WithLogger.
func SetDefault(l Logger) {
	if l == nil {
		l = NewDiscardLogger()
	}
	defaultInstance.Store(holder{l})
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	return defaultInstance.Load().(holder).Logger
}
