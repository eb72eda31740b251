// Package config loads the settings of an experiment session.
//
// Sources are layered from lowest to highest priority:
//  1. Default values
//  2. A YAML or JSON file (format chosen by extension)
//  3. HAMPATH_* environment variables
//  4. Explicit overrides, usually command-line flags (Merge)
//
// Validate runs last.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/katalvlaran/hampath/experiment"
)

// Sentinel errors.
var (
	ErrInvalidConfig     = errors.New("config: invalid configuration")
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Config is the full configuration of a run.
type Config struct {
	Sizes          []int    `yaml:"sizes" json:"sizes" mapstructure:"sizes" validate:"required,min=1,dive,min=1"`
	Densities      []string `yaml:"densities" json:"densities" mapstructure:"densities" validate:"required,min=1,dive,oneof=sparse medium dense"`
	Repetitions    int      `yaml:"repetitions" json:"repetitions" mapstructure:"repetitions" validate:"min=1"`
	TimeoutSeconds int      `yaml:"timeout_seconds" json:"timeout_seconds" mapstructure:"timeout_seconds" validate:"min=0"`
	Seed           int64    `yaml:"seed" json:"seed" mapstructure:"seed"`
	Output         string   `yaml:"output" json:"output" mapstructure:"output"`
	LogLevel       string   `yaml:"log_level" json:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	MetricsAddr    string   `yaml:"metrics_addr" json:"metrics_addr" mapstructure:"metrics_addr"`
	Redis          Redis    `yaml:"redis" json:"redis" mapstructure:"redis"`
}

// Redis configures the optional batch store. An empty Addr disables it.
type Redis struct {
	Addr       string `yaml:"addr" json:"addr" mapstructure:"addr"`
	Password   string `yaml:"password" json:"password" mapstructure:"password"`
	DB         int    `yaml:"db" json:"db" mapstructure:"db" validate:"min=0"`
	Prefix     string `yaml:"prefix" json:"prefix" mapstructure:"prefix" validate:"required_with=Addr"`
	TTLSeconds int    `yaml:"ttl_seconds" json:"ttl_seconds" mapstructure:"ttl_seconds" validate:"min=0"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Sizes:          []int{10, 20, 30, 40, 50},
		Densities:      experiment.Labels(),
		Repetitions:    5,
		TimeoutSeconds: experiment.DefaultTimeoutSeconds,
		LogLevel:       "info",
		Redis: Redis{
			Prefix: "hampath:",
		},
	}
}

// Timeout is the per-search deadline; 0 means none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisTTL is the expiry of stored batches; 0 means keep forever.
func (c *Config) RedisTTL() time.Duration {
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}

// Merge overlays values keyed by their mapstructure names. Nested sections
// take a nested map ("redis": {"addr": ...}). Slices given here replace the
// current ones; unknown keys are an error.
func (c *Config) Merge(values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ZeroFields:       true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fmt.Errorf("config: merge: %w", err)
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("config: merge: %w", err)
	}

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate checks the struct tags and reports every violation in one error
// wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// formatFieldError renders one violation as "<field path> <problem>".
func formatFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_with":
		return fmt.Sprintf("%s is required when %s is set", field, strings.ToLower(fe.Param()))
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
