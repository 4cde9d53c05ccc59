package xviper

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultNameFlag = "name"
	DefaultFileFlag = "file"
)

// Option is a configuration step applied to a Viper instance
type Option func(*viper.Viper) error

func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		return nil
	}
}

func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

func SetConfigFile(file string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigFile(file)
		return nil
	}
}

func AutomaticEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	return nil
}

func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindConfigName uses the value of the given flag, if set, as the configuration name.
// Viper discards an explicit configuration file when a name is set, so this option does
// nothing once a file has been chosen, as with BindConfigFile.
func BindConfigName(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if len(v.ConfigFileUsed()) > 0 {
			return nil
		}

		if f := fs.Lookup(flag); f != nil {
			configName := f.Value.String()
			if len(configName) > 0 {
				v.SetConfigName(configName)
			}
		}

		return nil
	}
}

// BindConfigFile uses the value of the given flag, if set, as the fully-qualified configuration file
func BindConfigFile(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			configFile := f.Value.String()
			if len(configFile) > 0 {
				v.SetConfigFile(configFile)
			}
		}

		return nil
	}
}

// ReadInConfig reads the configuration.  When optional is true, a configuration file that
// cannot be found is not an error.  Any other problem, such as a malformed file, still is.
func ReadInConfig(optional bool) Option {
	return func(v *viper.Viper) error {
		err := v.ReadInConfig()

		var notFound viper.ConfigFileNotFoundError
		if optional && errors.As(err, &notFound) {
			return nil
		}

		return err
	}
}

// StdOptions is the standard set of configuration steps for an application:  *nix-style
// config paths, environment variables prefixed with the application name, a configuration
// file named for the application, and the given flags bound to their keys.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		err := AddConfigPaths(
			fmt.Sprintf("/etc/%s", applicationName),
			fmt.Sprintf("$HOME/.%s", applicationName),
			".",
		)(v)

		if err == nil {
			err = SetEnvPrefix(applicationName)(v)
		}

		if err == nil {
			err = AutomaticEnv(v)
		}

		if err == nil {
			err = SetConfigName(applicationName)(v)
		}

		if err == nil {
			err = BindPFlags(fs)(v)
		}

		return err
	}
}

func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

func Configure(v *viper.Viper, o ...Option) (*viper.Viper, error) {
	if v != nil {
		for _, f := range o {
			if err := f(v); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}
