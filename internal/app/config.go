package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"dhx/internal/crypto"
	"dhx/internal/transport"
)

// Validation and loading errors.
var (
	ErrInvalidListen    = errors.New("app: listen address must not be empty")
	ErrInvalidPrimeBits = errors.New("app: invalid prime bit length")
	ErrInvalidTimeout   = errors.New("app: read timeout must not be negative")
	ErrInvalidLogLevel  = errors.New("app: invalid log level")
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" as well as from plain nanosecond integers.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("app: parsing duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("app: duration must be a string or integer: %w", err)
	}
	*d = Duration(n)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.Std().String(), nil
}

// Config holds the runtime options shared by the serve and connect
// commands. Listen doubles as the default dial target for connect.
type Config struct {
	Listen      string   `yaml:"listen"`
	PrimeBits   int      `yaml:"prime_bits"`
	ReadTimeout Duration `yaml:"read_timeout"`
	LogLevel    string   `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:      "127.0.0.1:8080",
		PrimeBits:   crypto.DefaultPrimeBits,
		ReadTimeout: Duration(transport.DefaultReadTimeout),
		LogLevel:    "info",
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field; the first problem wins.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return ErrInvalidListen
	}
	if c.PrimeBits < crypto.MinPrimeBits {
		return fmt.Errorf("%w: %d < %d", ErrInvalidPrimeBits, c.PrimeBits, crypto.MinPrimeBits)
	}
	if c.ReadTimeout < 0 {
		return ErrInvalidTimeout
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
}
