// Package config loads item service settings from the environment
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/logger"
)

// Environment variable names
const (
	EnvAssetRoot        = "ITEMS_ASSET_ROOT"
	EnvInventorySize    = "ITEMS_INVENTORY_SIZE"
	EnvTextureSize      = "ITEMS_TEXTURE_SIZE"
	EnvTextureCacheSize = "ITEMS_TEXTURE_CACHE_SIZE"
	EnvRedisAddrs       = "ITEMS_REDIS_ADDR"
	EnvRedisMaster      = "ITEMS_REDIS_MASTER"
	EnvSnapshotTTL      = "ITEMS_SNAPSHOT_TTL"
	EnvEnvironment      = "ITEMS_ENV"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
)

// Config holds the application configuration
type Config struct {
	AssetRoot        string        `validate:"required"`
	InventorySize    int           `validate:"min=1,max=256"`
	TextureSize      int           `validate:"min=1,max=1024"`
	TextureCacheSize int           `validate:"min=1"`
	RedisAddrs       []string      `validate:"dive,hostname_port"`
	RedisMaster      string        `validate:"excluded_without=RedisAddrs"`
	SnapshotTTL      time.Duration `validate:"min=0"`
	Environment      string        `validate:"required"`
	LogLevel         string        `validate:"oneof=debug info warn warning error"`
	LogFormat        string        `validate:"oneof=text json"`
}

// Load reads .env when present, then the environment
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the config from the current environment only
func FromEnv() (*Config, error) {
	vb := errors.NewValidationBuilder()

	cfg := &Config{
		AssetRoot:        getEnv(EnvAssetRoot, "assets"),
		InventorySize:    getEnvInt(EnvInventorySize, 16, vb),
		TextureSize:      getEnvInt(EnvTextureSize, 32, vb),
		TextureCacheSize: getEnvInt(EnvTextureCacheSize, 64, vb),
		RedisAddrs:       splitList(getEnv(EnvRedisAddrs, "")),
		RedisMaster:      getEnv(EnvRedisMaster, ""),
		SnapshotTTL:      getEnvDuration(EnvSnapshotTTL, 0, vb),
		Environment:      getEnv(EnvEnvironment, logger.EnvironmentDev),
		LogLevel:         strings.ToLower(getEnv(EnvLogLevel, logger.LevelInfo)),
		LogFormat:        strings.ToLower(getEnv(EnvLogFormat, logger.FormatText)),
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid configuration")
	}
	return nil
}

// PersistenceEnabled reports whether a Redis address was configured
func (c *Config) PersistenceEnabled() bool {
	return len(c.RedisAddrs) > 0
}

// Logger returns the logger settings
func (c *Config) Logger() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Format = c.LogFormat
	cfg.Environment = c.Environment
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, vb *errors.ValidationBuilder) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		vb.InvalidField(key, "must be an integer")
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration, vb *errors.ValidationBuilder) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		vb.InvalidField(key, "must be a duration such as 30m")
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
