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

package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DEBUG,
		"TRACE":   DEBUG,
		"info":    INFO,
		"":        INFO,
		" warn ":  WARN,
		"Warning": WARN,
		"error":   ERROR,
		"off":     OFF,
		"none":    OFF,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

// TestWriterLogger_Format 测试日志格式 "[time] [LEVEL] message"
func TestWriterLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(DEBUG, &buf)

	log.Debug("sort: ignored %q (%s)", "a;b", "unsafe identifier")
	output := buf.String()

	assert.True(t, strings.HasPrefix(output, "["), output)
	assert.Contains(t, output, "] [DEBUG] sort: ignored \"a;b\" (unsafe identifier)")
	assert.True(t, strings.HasSuffix(output, "\n"))
}

// TestWriterLogger_LevelFiltering 测试日志级别过滤
func TestWriterLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		loggerLevel  Level
		messageLevel Level
		shouldLog    bool
	}{
		{DEBUG, DEBUG, true},
		{DEBUG, ERROR, true},
		{INFO, DEBUG, false},
		{INFO, INFO, true},
		{WARN, INFO, false},
		{WARN, WARN, true},
		{WARN, ERROR, true},
		{ERROR, WARN, false},
		{ERROR, ERROR, true},
		{OFF, ERROR, false},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		log := NewLogger(test.loggerLevel, &buf)
		emit(log, test.messageLevel, "test message")
		assert.Equal(t, test.shouldLog, buf.Len() > 0,
			"logger level %s, message level %s", test.loggerLevel, test.messageLevel)
	}
}

func TestWriterLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(DEBUG, &buf)
	log.SetLevel(ERROR)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	assert.Empty(t, buf.String())

	log.Error("error message")
	assert.Contains(t, buf.String(), "[ERROR] error message")
}

// TestConcurrentLogging 测试并发日志记录
func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(INFO, &buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			log.Info("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, strings.Count(buf.String(), "concurrent message"))
}

func TestDiscardLogger(t *testing.T) {
	log := NewDiscardLogger()
	assert.NotPanics(t, func() {
		log.SetLevel(DEBUG)
		for _, level := range []Level{DEBUG, INFO, WARN, ERROR} {
			emit(log, level, "dropped")
		}
	})
}

// TestDefaultLogger 测试全局默认日志器
func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	require.NotNil(t, original)

	var buf bytes.Buffer
	custom := NewLogger(DEBUG, &buf)
	SetDefault(custom)
	assert.Equal(t, custom, GetDefault())

	GetDefault().Info("via default")
	assert.Contains(t, buf.String(), "via default")

	SetDefault(nil)
	assert.NotPanics(t, func() { GetDefault().Error("discarded") })
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	log := NewZerologLogger(zl, INFO)

	log.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	log.Info("parsed %d clauses", 3)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), `"message":"parsed 3 clauses"`)

	buf.Reset()
	log.SetLevel(DEBUG)
	log.Debug("ignored %q", "x")
	assert.Contains(t, buf.String(), `"level":"debug"`)

	buf.Reset()
	log.Warn("w")
	log.Error("e")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	buf.Reset()
	log.SetLevel(OFF)
	log.Error("nothing")
	assert.Empty(t, buf.String())
}

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ZerologLevel(DEBUG))
	assert.Equal(t, zerolog.InfoLevel, ZerologLevel(INFO))
	assert.Equal(t, zerolog.WarnLevel, ZerologLevel(WARN))
	assert.Equal(t, zerolog.ErrorLevel, ZerologLevel(ERROR))
	assert.Equal(t, zerolog.Disabled, ZerologLevel(OFF))
}

func emit(log Logger, level Level, msg string) {
	switch level {
	case DEBUG:
		log.Debug(msg)
	case INFO:
		log.Info(msg)
	case WARN:
		log.Warn(msg)
	case ERROR:
		log.Error(msg)
	}
}
