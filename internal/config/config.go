package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/mappederr/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultEnvPrefix = "MAPPEDERR"
	DefaultLogLevel  = LogLevelError
	DefaultOutput    = OutputText
)

// Error codes returned by Load and Validate
const (
	CodeInvalidOption   = "InvalidOption"
	CodeReadConfig      = "ReadConfig"
	CodeUnmarshalConfig = "UnmarshalConfig"
	CodeBindFlags       = "BindFlags"
	CodeInvalidLogLevel = "InvalidLogLevel"
	CodeInvalidOutput   = "InvalidOutput"
)

type Config struct {
	LogLevel LogLevel `mapstructure:"log_level"`
	Output   Output   `mapstructure:"output"`
	Strict   bool     `mapstructure:"strict"`
}

// Load resolves the configuration from defaults, an optional TOML file,
// environment variables and finally the given flags. Flag names use dashes
// ("log-level"); config keys and env vars use underscores.
func Load(flags *pflag.FlagSet, opts ...Option) (*Config, error) {
	o := options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel.String())
	v.SetDefault("output", DefaultOutput.String())
	v.SetDefault("strict", false)

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := o.configPath
	if path == "" {
		path = os.Getenv(o.envPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("toml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.InvalidArgument(
				fmt.Sprintf("failed to read config file %s: %v", path, err),
				errors.WithCode(CodeReadConfig),
			)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.InvalidArgument(
			fmt.Sprintf("failed to unmarshal config: %v", err),
			errors.WithCode(CodeUnmarshalConfig),
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == "config" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = errors.InvalidArgument(
				fmt.Sprintf("failed to bind flag %s: %v", f.Name, err),
				errors.Unexpected(),
				errors.WithCode(CodeBindFlags),
			)
		}
	})

	return bindErr
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	if !c.LogLevel.IsValid() {
		return errors.InvalidArgument(
			fmt.Sprintf("invalid log level %q", c.LogLevel),
			errors.WithCode(CodeInvalidLogLevel),
		)
	}

	if !c.Output.IsValid() {
		return errors.InvalidArgument(
			fmt.Sprintf("invalid output %q", c.Output),
			errors.WithCode(CodeInvalidOutput),
		)
	}

	return nil
}

func errInvalidOption(msg string) error {
	return errors.InvalidArgument(msg, errors.WithCode(CodeInvalidOption))
}
