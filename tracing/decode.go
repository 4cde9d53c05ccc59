package tracing

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

var statusCodeType = reflect.TypeOf(StatusCode(0))

// StatusCodeHookFunc returns a mapstructure decode hook that produces StatusCode values from
// configuration.  Strings go through ParseStatusCode, floats must be integral, and anything
// else must be convertible to an integer.  Use with viper.DecodeHook.
func StatusCodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != statusCodeType {
			return data, nil
		}

		switch v := data.(type) {
		case StatusCode:
			return v, nil
		case string:
			return ParseStatusCode(v)
		case float32:
			return statusCodeFromFloat(float64(v))
		case float64:
			return statusCodeFromFloat(v)
		}

		v, err := cast.ToIntE(data)
		if err != nil {
			return nil, err
		}

		return StatusCode(v), nil
	}
}

func statusCodeFromFloat(v float64) (StatusCode, error) {
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidStatusCode, v)
	}

	return StatusCode(v), nil
}
