package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config represents the complete configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	Cache    CacheConfig    `toml:"cache"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Env  string `toml:"env"`
}

type DatabaseConfig struct {
	Path         string `toml:"path"`
	SeedDefaults bool   `toml:"seed_defaults"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig enables the Redis cache when RedisAddr is set
type CacheConfig struct {
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
	TTL           time.Duration `toml:"ttl"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: 4000, Env: "development"},
		Database: DatabaseConfig{Path: "data/avtoelon.db", SeedDefaults: true},
		Log:      LogConfig{Level: "info"},
		Cache:    CacheConfig{TTL: 5 * time.Minute},
	}
}

// Load builds the configuration from defaults, then the TOML file named by
// CONFIG_FILE, then the environment. envFiles are loaded into the
// environment first (".env" when none are given); missing files are
// ignored and variables already set win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookup("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v, ok := lookup("APP_ENV"); ok {
		cfg.Server.Env = v
	}
	if v, ok := lookup("DATABASE_PATH"); ok {
		cfg.Database.Path = v
	}
	if v, ok := lookup("SEED_DEFAULTS"); ok {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SEED_DEFAULTS %q: %w", v, err)
		}
		cfg.Database.SeedDefaults = seed
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("REDIS_ADDR"); ok {
		cfg.Cache.RedisAddr = v
	}
	if v, ok := lookup("REDIS_PASSWORD"); ok {
		cfg.Cache.RedisPassword = v
	}
	if v, ok := lookup("REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.Cache.RedisDB = db
	}
	if v, ok := lookup("CACHE_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		cfg.Cache.TTL = ttl
	}
	return nil
}

// lookup treats blank variables as unset.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Server.Port)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database path is required")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", c.Cache.TTL)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// CacheEnabled reports whether a Redis address is configured.
func (c *Config) CacheEnabled() bool {
	return c.Cache.RedisAddr != ""
}
