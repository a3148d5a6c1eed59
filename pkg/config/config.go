// Package config loads disksort settings from a TOML file.
//
// The file is optional. A missing file yields [Default]; a present file is
// decoded over the defaults, so it only needs the keys it changes:
//
//	[sort]
//	algorithm = "lawnmower"
//	lights    = 8
//	format    = "text"
//
//	[cache]
//	backend   = "redis"
//	redis_url = "redis://localhost:6379/0"
//	ttl       = "720h"
//
//	[server]
//	addr = ":8080"
//
// Command-line flags override values from the file.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/disksort/pkg/errors"
)

// appName names the config and cache directories.
const appName = "disksort"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the root of the configuration file.
type Config struct {
	Sort   SortConfig   `toml:"sort"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// SortConfig holds defaults for the sort, compare, render, and watch commands.
type SortConfig struct {
	Algorithm string `toml:"algorithm" validate:"required,oneof=left-to-right lawnmower"`
	Lights    int    `toml:"lights" validate:"min=1,max=4096"`
	Format    string `toml:"format" validate:"required,oneof=text json yaml dot svg"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend  string   `toml:"backend" validate:"oneof=file redis none"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url" validate:"omitempty,url"`
	TTL      Duration `toml:"ttl"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
}

// Duration is a time.Duration decoded from strings like "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sort: SortConfig{
			Algorithm: "lawnmower",
			Lights:    4,
			Format:    "text",
		},
		Cache: CacheConfig{
			Backend: BackendFile,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid configuration")
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required when cache.backend is %q", BackendRedis)
	}
	return nil
}

// Load reads the file at path over the defaults and validates the result.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// =============================================================================
// Paths
// =============================================================================

// DefaultPath returns the config file location using the XDG convention
// (~/.config/disksort/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the cache directory: cfg.Cache.Dir when set, otherwise
// the XDG cache location (~/.cache/disksort).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
