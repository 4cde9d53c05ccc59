package xviper

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type unmarshaler interface {
	Unmarshal(interface{}, ...viper.DecoderConfigOption) error
}

// DecodeHooks produces a viper decoder option that runs the given hooks ahead of viper's
// standard duration and string slice hooks.
func DecodeHooks(hooks ...mapstructure.DecodeHookFunc) viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			append(
				hooks,
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			)...,
		),
	)
}

// Unmarshal unmarshals each target in turn, stopping at the first error.  Every target
// is decoded with the same options.
func Unmarshal(u unmarshaler, options []viper.DecoderConfigOption, targets ...interface{}) error {
	var err error
	for i := 0; err == nil && i < len(targets); i++ {
		err = u.Unmarshal(targets[i], options...)
	}

	return err
}

type defaulter interface {
	SetDefault(string, interface{})
}

type Defaults map[string]interface{}

func ApplyDefaults(d defaulter, v Defaults) {
	for key, value := range v {
		d.SetDefault(key, value)
	}
}
