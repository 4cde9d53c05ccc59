package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	assert := assert.New(t)
	assert.NotNil(DefaultLogger())
	assert.NoError(DefaultLogger().Log("key", "value"))
}

func TestNew(t *testing.T) {
	assert := assert.New(t)
	for _, o := range []*Options{nil, new(Options), {Format: FormatJSON, Level: "debug"}} {
		assert.NotNil(New(o))
	}
}

func testNewWriterLoggerLogfmt(t *testing.T) {
	var (
		assert = assert.New(t)
		output bytes.Buffer
		logger = NewWriterLogger(&Options{Level: "info"}, &output)
	)

	Debug(logger).Log(MessageKey(), "hidden")
	Info(logger).Log(MessageKey(), "shown", "code", 5)

	line := output.String()
	assert.NotContains(line, "hidden")
	assert.Contains(line, "ts=")
	assert.Contains(line, "caller=logger_test.go")
	assert.Contains(line, "level=info")
	assert.Contains(line, "msg=shown")
	assert.Contains(line, "code=5")
}

func testNewWriterLoggerJSON(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		output  bytes.Buffer
		logger  = NewWriterLogger(&Options{Format: FormatJSON}, &output)
		entry   map[string]interface{}
	)

	Error(logger).Log(MessageKey(), "failed", "code", 13)
	require.NoError(json.Unmarshal(output.Bytes(), &entry))
	assert.Equal("error", entry["level"])
	assert.Equal("failed", entry["msg"])
	assert.Equal(float64(13), entry["code"])
	assert.Contains(entry, "ts")
}

func testNewWriterLoggerZap(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		output  bytes.Buffer
		logger  = NewWriterLogger(&Options{Format: FormatZap, Level: "warn"}, &output)
		entry   map[string]interface{}
	)

	Info(logger).Log(MessageKey(), "hidden")
	Warn(logger).Log(MessageKey(), "shown", "code", 14)

	require.NoError(json.Unmarshal(output.Bytes(), &entry))
	assert.Equal("warn", entry["level"])
	assert.Equal("shown", entry["msg"])
	assert.Equal(float64(14), entry["code"])
	assert.Contains(entry, "ts")
}

func TestNewWriterLogger(t *testing.T) {
	t.Run("Logfmt", testNewWriterLoggerLogfmt)
	t.Run("JSON", testNewWriterLoggerJSON)
	t.Run("Zap", testNewWriterLoggerZap)
}

func TestNewFilter(t *testing.T) {
	testData := []struct {
		level    string
		expected []string
	}{
		{"", []string{"error"}},
		{"nosuch", []string{"error"}},
		{"ERROR", []string{"error"}},
		{"warn", []string{"warn", "error"}},
		{"Info", []string{"info", "warn", "error"}},
		{"debug", []string{"debug", "info", "warn", "error"}},
	}

	for _, record := range testData {
		t.Run(record.level, func(t *testing.T) {
			var (
				assert = assert.New(t)
				output bytes.Buffer
				logger = NewFilter(log.NewLogfmtLogger(&output), &Options{Level: record.level})
			)

			Debug(logger).Log(MessageKey(), "debug")
			Info(logger).Log(MessageKey(), "info")
			Warn(logger).Log(MessageKey(), "warn")
			Error(logger).Log(MessageKey(), "error")

			lines := bytes.Split(bytes.TrimSpace(output.Bytes()), []byte{'\n'})
			assert.Len(lines, len(record.expected))
			for i, expected := range record.expected {
				if i < len(lines) {
					assert.Contains(string(lines[i]), "level="+expected)
					assert.Contains(string(lines[i]), "caller=")
				}
			}
		})
	}
}
