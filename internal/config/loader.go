package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader decodes one configuration file format.
type FileLoader interface {
	Load(r io.Reader, target any) error
}

// YAMLLoader reads YAML documents. Unknown keys are rejected.
type YAMLLoader struct{}

func (YAMLLoader) Load(r io.Reader, target any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// JSONLoader reads JSON documents. Unknown keys are rejected.
type JSONLoader struct{}

func (JSONLoader) Load(r io.Reader, target any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	return dec.Decode(target)
}

var fileLoaders = map[string]FileLoader{
	".yaml": YAMLLoader{},
	".yml":  YAMLLoader{},
	".json": JSONLoader{},
}

// Load returns Default overlaid with the file at path. An empty path or a
// missing file yields the defaults. Environment variables and validation are
// separate steps (ApplyEnv, Validate).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	loader, ok := fileLoaders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("config: %s: %w", path, ErrUnsupportedFormat)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err := loader.Load(f, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// EnvPrefix namespaces every environment variable read by ApplyEnv.
const EnvPrefix = "HAMPATH_"

// ApplyEnv overlays HAMPATH_* variables. Lists are comma separated.
// A malformed number is an error naming the variable.
func (c *Config) ApplyEnv() error {
	var errs []error
	if v, ok := getEnv("SIZES"); ok {
		sizes, err := parseInts(v)
		if err != nil {
			errs = append(errs, envError("SIZES", err))
		} else {
			c.Sizes = sizes
		}
	}
	if v, ok := getEnv("DENSITIES"); ok {
		c.Densities = splitList(v)
	}
	getEnvInt("REPETITIONS", &c.Repetitions, &errs)
	getEnvInt("TIMEOUT_SECONDS", &c.TimeoutSeconds, &errs)
	if v, ok := getEnv("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, envError("SEED", err))
		} else {
			c.Seed = seed
		}
	}
	getEnvString("OUTPUT", &c.Output)
	getEnvString("LOG_LEVEL", &c.LogLevel)
	getEnvString("METRICS_ADDR", &c.MetricsAddr)
	getEnvString("REDIS_ADDR", &c.Redis.Addr)
	getEnvString("REDIS_PASSWORD", &c.Redis.Password)
	getEnvInt("REDIS_DB", &c.Redis.DB, &errs)
	getEnvString("REDIS_PREFIX", &c.Redis.Prefix)
	getEnvInt("REDIS_TTL_SECONDS", &c.Redis.TTLSeconds, &errs)

	return errors.Join(errs...)
}

func getEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(v), true
}

func getEnvString(key string, dst *string) {
	if v, ok := getEnv(key); ok {
		*dst = v
	}
}

func getEnvInt(key string, dst *int, errs *[]error) {
	v, ok := getEnv(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, envError(key, err))
		return
	}
	*dst = n
}

func envError(key string, err error) error {
	return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// parseInts reads a comma separated list such as "10,20,30".
func parseInts(s string) ([]int, error) {
	parts := splitList(s)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}
