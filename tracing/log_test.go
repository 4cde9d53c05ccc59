package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/tracestatus/logging"
)

func TestLogSpans(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		expectedStart    = time.Now()
		expectedDuration = 17 * time.Millisecond
		expectedError    = errors.New("expected")

		spanner = NewSpanner(
			Now(func() time.Time { return expectedStart }),
			Since(func(time.Time) time.Duration { return expectedDuration }),
		)

		succeeded = spanner.Start("succeeded")(nil)
		failed    = spanner.Start("failed")(expectedError)
		vendor    = spanner.Start("vendor")(NewStatus(StatusCode(77)).Err())

		logger = logging.NewCaptureLogger()
	)

	LogSpans(logger, succeeded, failed, vendor)

	entries := logger.Entries()
	require.Len(entries, 3)

	m := entries[0]
	assert.Equal(level.InfoValue(), m[level.Key()])
	assert.Equal(succeeded.ID(), m[SpanIDKey])
	assert.Equal("succeeded", m[SpanNameKey])
	assert.Equal(expectedStart.UTC(), m[StartKey])
	assert.Equal(expectedDuration, m[DurationKey])
	assert.Equal(StatusOK, m[CodeKey])
	assert.Equal("Not an error; returned on success.", m[DescriptionKey])
	assert.NotContains(m, logging.ErrorKey())

	m = entries[1]
	assert.Equal(level.ErrorValue(), m[level.Key()])
	assert.Equal("failed", m[SpanNameKey])
	assert.Equal(StatusUnknown, m[CodeKey])
	assert.Equal("expected", m[DescriptionKey])
	assert.Equal(expectedError, m[logging.ErrorKey()])

	m = entries[2]
	assert.Equal(level.ErrorValue(), m[level.Key()])
	assert.Equal(StatusCode(77), m[CodeKey])
	assert.NotContains(m, DescriptionKey)
}

func TestLogSpansNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogSpans(nil, NewSpanner().Start("test")(nil))
	})
}

func testLogSpansContextPresent(t *testing.T) {
	var (
		assert = assert.New(t)
		logger = logging.NewCaptureLogger()
		ctx    = logging.WithLogger(context.Background(), logger)
		s      = NewSpanner().Start("fromContext")(context.DeadlineExceeded)
	)

	LogSpansContext(ctx, s)

	entries := logger.Entries()
	if assert.Len(entries, 1) {
		assert.Equal("fromContext", entries[0][SpanNameKey])
		assert.Equal(StatusDeadlineExceeded, entries[0][CodeKey])
	}
}

func testLogSpansContextTestLogger(t *testing.T) {
	ctx := logging.WithLogger(context.Background(), logging.NewTestLogger(nil, t))
	assert.NotPanics(t, func() {
		LogSpansContext(ctx, NewSpanner().Start("visible")(nil), NewSpanner().Start("failed")(context.Canceled))
	})
}

func testLogSpansContextMissing(t *testing.T) {
	assert.NotPanics(t, func() {
		LogSpansContext(context.Background(), NewSpanner().Start("discarded")(nil))
	})
}

func TestLogSpansContext(t *testing.T) {
	t.Run("Present", testLogSpansContextPresent)
	t.Run("TestLogger", testLogSpansContextTestLogger)
	t.Run("Missing", testLogSpansContextMissing)
}
