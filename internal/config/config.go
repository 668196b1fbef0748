// Package config loads verikit configuration from defaults, an optional
// YAML file, VERIKIT_* environment variables and bound command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Keys shared with flag bindings.
const (
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyRunnerWorkers = "runner.workers"
	KeyOutputFormat  = "output.format"
	KeyOutputColor   = "output.color"
	KeyMetricsFile   = "metrics.file"
)

const (
	envPrefix      = "VERIKIT"
	configName     = "verikit"
	maxWorkers     = 1024
	defaultLevel   = "info"
	defaultFormat  = "text"
	defaultOutput  = "table"
	defaultColored = true
)

// Config holds all verikit settings.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Runner  RunnerConfig  `mapstructure:"runner"`
	Output  OutputConfig  `mapstructure:"output"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// RunnerConfig bounds batch concurrency.
type RunnerConfig struct {
	Workers int `mapstructure:"workers" validate:"gte=1,lte=1024"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=table json yaml"`
	Color  bool   `mapstructure:"color"`
}

// MetricsConfig controls the Prometheus textfile dump. Empty File disables it.
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// New returns a viper instance with defaults and environment binding set
// up. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file (path, or verikit.yaml from the working
// directory and $HOME/.config/verikit when path is empty), unmarshals and
// validates. A missing default config file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/verikit")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration produced by defaults alone.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: defaultLevel, Format: defaultFormat},
		Runner: RunnerConfig{Workers: defaultWorkers()},
		Output: OutputConfig{Format: defaultOutput, Color: defaultColored},
	}
}

// Validate checks field constraints and wraps failures in ErrInvalidConfig.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, defaultLevel)
	v.SetDefault(KeyLogFormat, defaultFormat)
	v.SetDefault(KeyRunnerWorkers, defaultWorkers())
	v.SetDefault(KeyOutputFormat, defaultOutput)
	v.SetDefault(KeyOutputColor, defaultColored)
	v.SetDefault(KeyMetricsFile, "")
}

func defaultWorkers() int {
	return min(runtime.GOMAXPROCS(0), maxWorkers)
}
