package tracing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpannerDefaults(t *testing.T) {
	var (
		require = require.New(t)
		assert  = assert.New(t)

		expectedStart    = time.Now()
		expectedDuration = time.Duration(23458729347)
		expectedError    = errors.New("expected")

		now = func() time.Time {
			return expectedStart
		}

		since = func(actualStart time.Time) time.Duration {
			assert.Equal(expectedStart, actualStart)
			return expectedDuration
		}

		sp = NewSpanner(Now(now), Since(since), Now(nil), Since(nil), StatusFunc(nil))
	)

	require.NotNil(sp)

	finisher := sp.Start("test")
	require.NotNil(finisher)

	span := finisher(expectedError)
	require.NotNil(span)
	assert.NotEmpty(span.ID())
	assert.Equal("test", span.Name())
	assert.Equal(expectedStart, span.Start())
	assert.Equal(expectedDuration, span.Duration())
	assert.Equal(expectedError, span.Error())
	assert.Equal(StatusUnknown, span.Status().Code())

	// idempotent
	assert.Equal(span, finisher(errors.New("this should not get set")))
	assert.Equal("test", span.Name())
	assert.Equal(expectedStart, span.Start())
	assert.Equal(expectedDuration, span.Duration())
	assert.Equal(expectedError, span.Error())
	assert.Equal(StatusUnknown, span.Status().Code())

	description, ok := span.Status().Description()
	assert.True(ok)
	assert.Equal("expected", description)
}

func testSpannerSuccess(t *testing.T) {
	var (
		assert = assert.New(t)
		sp     = NewSpanner()

		first  = sp.Start("first")(nil)
		second = sp.Start("second")(nil)
	)

	assert.True(OKStatus() == first.Status())
	assert.True(OKStatus() == second.Status())
	assert.NotEqual(first.ID(), second.ID())
}

func testSpannerStatusFunc(t *testing.T) {
	var (
		assert   = assert.New(t)
		expected = NewStatus(StatusResourceExhausted, "quota")

		sp = NewSpanner(StatusFunc(func(err error) *Status {
			if err != nil {
				return expected
			}

			return nil
		}))
	)

	assert.True(expected == sp.Start("failed")(errors.New("expected")).Status())

	// a nil Status from the strategy falls back to StatusFromError
	assert.True(OKStatus() == sp.Start("succeeded")(nil).Status())
}

func TestSpanner(t *testing.T) {
	t.Run("Defaults", testSpannerDefaults)
	t.Run("Success", testSpannerSuccess)
	t.Run("StatusFunc", testSpannerStatusFunc)
}
