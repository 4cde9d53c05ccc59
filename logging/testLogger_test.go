package logging

import (
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func matchMessage(message string) interface{} {
	return mock.MatchedBy(func(v string) bool {
		return strings.Contains(v, message) && !strings.HasSuffix(v, "\n")
	})
}

func testTestLogger(t *testing.T, o *Options, expected ...string) {
	var sink = new(mockTestSink)
	for _, message := range expected {
		sink.On("Log", matchMessage(message)).Once()
	}

	logger := NewTestLogger(o, sink)
	logger.Log(level.Key(), level.DebugValue(), MessageKey(), "debug message")
	logger.Log(level.Key(), level.InfoValue(), MessageKey(), "info message")
	logger.Log(level.Key(), level.WarnValue(), MessageKey(), "warn message")
	logger.Log(level.Key(), level.ErrorValue(), MessageKey(), "error message")

	sink.AssertExpectations(t)
}

func TestNewTestLogger(t *testing.T) {
	t.Run("NilLogsAll", func(t *testing.T) {
		testTestLogger(t, nil, `"debug message"`, `"info message"`, `"warn message"`, `"error message"`)
	})

	t.Run("DefaultLogsError", func(t *testing.T) {
		testTestLogger(t, new(Options), `"error message"`)
	})

	t.Run("InfoLogsInfoWarnError", func(t *testing.T) {
		testTestLogger(t, &Options{Level: "info"}, `"info message"`, `"warn message"`, `"error message"`)
	})

	t.Run("FileIgnored", func(t *testing.T) {
		testTestLogger(t, &Options{File: StdoutFile, Format: FormatJSON, Level: "error"}, `"msg":"error message"`)
	})
}

func TestNewTestWriter(t *testing.T) {
	sink := new(mockTestSink)
	sink.On("Log", "one line").Once()

	n, err := NewTestWriter(sink).Write([]byte("one line\n"))
	assert.NoError(t, err)
	assert.Equal(t, 9, n)
	sink.AssertExpectations(t)
}
