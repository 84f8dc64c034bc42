// Package config loads lehmer configuration from TOML or YAML files.
//
// The file format is chosen by extension: ".yaml" and ".yml" are read as
// YAML, everything else as TOML. A minimal config.toml:
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//
// Environment variables override file values: LEHMER_ADDR,
// LEHMER_REDIS_ADDR, LEHMER_MONGO_URI and LEHMER_LOG_LEVEL.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v2"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

const appName = "lehmer"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config is the complete application configuration.
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
	Store  StoreConfig  `toml:"store" yaml:"store"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string   `toml:"addr" yaml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
}

// CacheConfig configures the result cache.
type CacheConfig struct {
	Backend   string   `toml:"backend" yaml:"backend"`
	Dir       string   `toml:"dir" yaml:"dir"`
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	Prefix    string   `toml:"prefix" yaml:"prefix"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
	// Threshold is the shortest length whose decode results are cached.
	Threshold int `toml:"threshold" yaml:"threshold"`
}

// StoreConfig configures the ordering store.
type StoreConfig struct {
	Backend       string `toml:"backend" yaml:"backend"`
	Dir           string `toml:"dir" yaml:"dir"`
	MongoURI      string `toml:"mongo_uri" yaml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database" yaml:"mongo_database"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Duration is a time.Duration written as a string such as "90s" or "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler (used by TOML).
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
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{10 * time.Second},
		},
		Cache: CacheConfig{
			Backend:   CacheFile,
			RedisAddr: "localhost:6379",
			TTL:       Duration{24 * time.Hour},
			Threshold: 64,
		},
		Store: StoreConfig{
			Backend:       StoreFile,
			MongoDatabase: appName,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lehmer/config.toml, falling back to
// ~/.config/lehmer/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path on top of Default, applies
// environment overrides and validates the result.
//
// An empty path means DefaultPath; a missing default file is not an error,
// but a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, &cfg); err != nil {
			return cfg, err
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return lerrors.Wrap(lerrors.ErrCodeInvalidFormat, err, "parse %s", path)
		}
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return lerrors.Wrap(lerrors.ErrCodeInvalidFormat, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return lerrors.New(lerrors.ErrCodeInvalidFormat, "parse %s: unknown key %q", path, undecoded[0].String())
		}
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LEHMER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LEHMER_REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv("LEHMER_MONGO_URI"); v != "" {
		c.Store.MongoURI = v
	}
	if v := os.Getenv("LEHMER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks enumerated fields and required backend settings.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return lerrors.New(lerrors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
		}
	default:
		return lerrors.New(lerrors.ErrCodeInvalidInput, "unknown cache.backend %q (want file, redis or none)", c.Cache.Backend)
	}

	switch c.Store.Backend {
	case StoreFile, StoreMemory:
	case StoreMongo:
		if c.Store.MongoURI == "" {
			return lerrors.New(lerrors.ErrCodeInvalidInput, "store.mongo_uri is required for the mongo backend")
		}
		if c.Store.MongoDatabase == "" {
			return lerrors.New(lerrors.ErrCodeInvalidInput, "store.mongo_database cannot be empty")
		}
	default:
		return lerrors.New(lerrors.ErrCodeInvalidInput, "unknown store.backend %q (want file, mongo or memory)", c.Store.Backend)
	}

	if c.Cache.TTL.Duration < 0 {
		return lerrors.New(lerrors.ErrCodeInvalidInput, "cache.ttl cannot be negative")
	}
	if c.Cache.Threshold < 0 {
		return lerrors.New(lerrors.ErrCodeInvalidInput, "cache.threshold cannot be negative")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return lerrors.Wrap(lerrors.ErrCodeInvalidInput, err, "log.level")
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
